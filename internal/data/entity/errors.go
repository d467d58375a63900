package entity

import "errors"

var ErrDuplicateUsername = errors.New("username already exists")
var ErrNotFound = errors.New("not found")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrValidation = errors.New("validation failed")
