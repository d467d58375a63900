package mirror

import (
	"fmt"
	"strings"
)

const (
	delimiter     = "|"
	commentPrefix = "#"

	userSectionHeader  = "# User Accounts"
	wasteSectionHeader = "# Waste Records"
)

// Record is one account line in a role's mirror file. None of the fields may
// contain the pipe character; the format has no escaping.
type Record struct {
	Username   string
	Password   string
	Role       string
	Identifier string
	Barangay   string
}

// Line serializes the record. Roles that require an identifier always carry
// the identifier column, even when empty; other roles include it only when
// one was supplied.
func (r Record) Line(requiresIdentifier bool) string {
	if requiresIdentifier || r.Identifier != "" {
		return strings.Join([]string{r.Username, r.Password, r.Role, r.Identifier, r.Barangay}, delimiter)
	}
	return strings.Join([]string{r.Username, r.Password, r.Role, r.Barangay}, delimiter)
}

// ParseRecord parses a pipe-delimited line in either the 4-field or the
// 5-field (identifier) layout.
func ParseRecord(line string) (Record, error) {
	parts := strings.Split(line, delimiter)
	switch len(parts) {
	case 4:
		return Record{
			Username: strings.TrimSpace(parts[0]),
			Password: strings.TrimSpace(parts[1]),
			Role:     strings.TrimSpace(parts[2]),
			Barangay: strings.TrimSpace(parts[3]),
		}, nil
	case 5:
		return Record{
			Username:   strings.TrimSpace(parts[0]),
			Password:   strings.TrimSpace(parts[1]),
			Role:       strings.TrimSpace(parts[2]),
			Identifier: strings.TrimSpace(parts[3]),
			Barangay:   strings.TrimSpace(parts[4]),
		}, nil
	default:
		return Record{}, fmt.Errorf("malformed record line: %d fields", len(parts))
	}
}

type lineKind int

const (
	kindBlank lineKind = iota
	kindUserHeader
	kindOtherHeader
	kindComment
	kindRecord
)

// classifyLine drives the section-aware rewrite: only record lines inside the
// user-accounts section are candidates for removal, everything else is kept
// verbatim.
func classifyLine(line string) lineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return kindBlank
	case strings.HasPrefix(line, userSectionHeader):
		return kindUserHeader
	case strings.HasPrefix(line, wasteSectionHeader):
		return kindOtherHeader
	case strings.HasPrefix(line, commentPrefix):
		return kindComment
	default:
		return kindRecord
	}
}
