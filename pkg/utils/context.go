package utils

import (
	"context"
)

type contextKey string

const (
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

func SetUserContext(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, UsernameKey, username)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok && username != ""
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok && role != ""
}
