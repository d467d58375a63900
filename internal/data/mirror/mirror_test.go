package mirror

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zap.NewNop())

	err := store.Append(Record{
		Username: "m1",
		Password: "secret1",
		Role:     "Barangay Member",
		Barangay: "Central",
	})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "barangaymember.txt"))
	if err != nil {
		t.Fatalf("read mirror file: %v", err)
	}

	want := "# User Accounts for Barangay Member\n" +
		"# Format: username|password|role|barangay\n" +
		"\n" +
		"m1|secret1|Barangay Member|Central\n"
	if string(data) != want {
		t.Fatalf("unexpected file content:\n%s", data)
	}
}

func TestAppend_IdentifierRoleLayout(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zap.NewNop())

	// Identifier roles always carry the identifier column, even when empty
	if err := store.Append(Record{
		Username: "g1",
		Password: "secret1",
		Role:     "Garbage Collector",
		Barangay: "Central",
	}); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "garbagecollector.txt"))
	if err != nil {
		t.Fatalf("read mirror file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "# Format: username|password|role|id|barangay\n") {
		t.Fatalf("missing identifier format header:\n%s", content)
	}
	if !strings.Contains(content, "g1|secret1|Garbage Collector||Central\n") {
		t.Fatalf("missing record with empty identifier column:\n%s", content)
	}
}

func TestAppend_SecondRecordSkipsHeader(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zap.NewNop())

	for _, name := range []string{"m1", "m2"} {
		if err := store.Append(Record{
			Username: name,
			Password: "secret1",
			Role:     "Barangay Member",
			Barangay: "Central",
		}); err != nil {
			t.Fatalf("Append %s: %v", name, err)
		}
	}

	data, _ := os.ReadFile(filepath.Join(dir, "barangaymember.txt"))
	if n := strings.Count(string(data), "# User Accounts"); n != 1 {
		t.Fatalf("expected 1 header, got %d", n)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[len(lines)-2] != "m1|secret1|Barangay Member|Central" ||
		lines[len(lines)-1] != "m2|secret1|Barangay Member|Central" {
		t.Fatalf("append order broken:\n%s", data)
	}
}

func TestRemove_SectionAware(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zap.NewNop())

	path := filepath.Join(dir, "barangaymember.txt")
	original := "# User Accounts for Barangay Member\n" +
		"# Format: username|password|role|barangay\n" +
		"\n" +
		"m1|secret1|Barangay Member|Central\n" +
		"m2|secret2|Barangay Member|Matiao\n" +
		"# Waste Records\n" +
		"m1|2024-01-02|Plastic|12.5\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := store.Remove("m1", "Barangay Member"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	data, _ := os.ReadFile(path)
	want := "# User Accounts for Barangay Member\n" +
		"# Format: username|password|role|barangay\n" +
		"\n" +
		"m2|secret2|Barangay Member|Matiao\n" +
		"# Waste Records\n" +
		"m1|2024-01-02|Plastic|12.5\n"
	if string(data) != want {
		t.Fatalf("section-aware rewrite broken:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestRemove_MissingFileIsNoop(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	if err := store.Remove("m1", "Barangay Member"); err != nil {
		t.Fatalf("Remove on missing file returned error: %v", err)
	}
}

func TestRecord_LineRoundTrip(t *testing.T) {
	records := []struct {
		rec    Record
		withID bool
	}{
		{Record{Username: "m1", Password: "p", Role: "Barangay Member", Barangay: "Central"}, false},
		{Record{Username: "g1", Password: "p", Role: "Garbage Collector", Identifier: "GC-1", Barangay: "Central"}, true},
	}

	for _, tc := range records {
		parsed, err := ParseRecord(tc.rec.Line(tc.withID))
		if err != nil {
			t.Fatalf("ParseRecord(%q): %v", tc.rec.Line(tc.withID), err)
		}
		if parsed != tc.rec {
			t.Fatalf("round trip mismatch: %+v != %+v", parsed, tc.rec)
		}
	}
}

func TestParseRecord_Malformed(t *testing.T) {
	for _, line := range []string{"a|b|c", "a|b|c|d|e|f"} {
		if _, err := ParseRecord(line); err == nil {
			t.Fatalf("expected error for %q", line)
		}
	}
}
