package mirror

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"greenvault/internal/data/entity"

	"go.uber.org/zap"
)

// Store maintains one human-readable flat file per role, mirroring the
// relational User Store. The mirror is best-effort: callers log failures and
// carry on, the relational store stays authoritative. Files are append-only
// in normal operation and rewritten wholesale only when a record is removed.
// A single process at a time is assumed; there is no file locking.
type Store struct {
	dir string
	log *zap.Logger
}

func NewStore(dir string, log *zap.Logger) *Store {
	return &Store{
		dir: dir,
		log: log,
	}
}

// Path returns the mirror file path for a role.
func (s *Store) Path(role string) string {
	return filepath.Join(s.dir, entity.PolicyFor(role).MirrorFile)
}

// Append adds one record to the role's mirror file, creating the file with
// its header block when absent or empty.
func (s *Store) Append(rec Record) error {
	policy := entity.PolicyFor(rec.Role)
	path := s.Path(rec.Role)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create mirror directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open mirror file %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat mirror file %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if info.Size() == 0 {
		for _, line := range headerLines(rec.Role, policy.RequiresIdentifier) {
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w, rec.Line(policy.RequiresIdentifier))

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write mirror file %s: %w", path, err)
	}

	s.log.Debug("Mirror record appended",
		zap.String("username", rec.Username),
		zap.String("file", path),
	)
	return nil
}

// Remove rewrites the role's mirror file without the lines whose first field
// equals username. Only lines inside the user-accounts section are candidates;
// headers, blank lines and any following section are preserved verbatim and
// in order. A missing file is not an error.
func (s *Store) Remove(username, role string) error {
	path := s.Path(role)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open mirror file %s: %w", path, err)
	}

	var kept []string
	inUserSection := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch classifyLine(line) {
		case kindUserHeader:
			inUserSection = true
		case kindOtherHeader:
			inUserSection = false
		case kindRecord:
			if inUserSection && firstField(line) == username {
				continue
			}
		}
		kept = append(kept, line)
	}
	if err := scanner.Err(); err != nil {
		f.Close()
		return fmt.Errorf("read mirror file %s: %w", path, err)
	}
	f.Close()

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewrite mirror file %s: %w", path, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, line := range kept {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("rewrite mirror file %s: %w", path, err)
	}

	s.log.Debug("Mirror record removed",
		zap.String("username", username),
		zap.String("file", path),
	)
	return nil
}

func headerLines(role string, requiresIdentifier bool) []string {
	format := "# Format: username|password|role|barangay"
	if requiresIdentifier {
		format = "# Format: username|password|role|id|barangay"
	}
	return []string{
		userSectionHeader + " for " + role,
		format,
		"",
	}
}

func firstField(line string) string {
	field, _, _ := strings.Cut(line, delimiter)
	return strings.TrimSpace(field)
}
