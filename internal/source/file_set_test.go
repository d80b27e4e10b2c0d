package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.rs", []byte("fn a(){}"), 0)
	id2 := fs.Add("main.rs", []byte("fn b(){}"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetByPath("main.rs")
	if !ok {
		t.Fatal("expected file to exist after Add")
	}
	if latest.ID != id2 {
		t.Errorf("expected latest id %d, got %d", id2, latest.ID)
	}
	// Старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "fn a(){}" {
		t.Errorf("unexpected first content %q", got)
	}
}

func TestLoadStripsBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	raw := append(append([]byte{}, BOM...), []byte("fn main() {\r\n}\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if !f.HadBOM() {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if !bytes.Equal(f.Content, []byte("fn main() {\n}\n")) {
		t.Errorf("unexpected content %q", f.Content)
	}
}

func TestPositionAndGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("t.rs", []byte("ab\ncd\n\nef")))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам перевод строки
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tt := range tests {
		if got := f.Position(tt.off); got != tt.want {
			t.Errorf("Position(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}

	lines := map[uint32]string{0: "", 1: "ab", 2: "cd", 3: "", 4: "ef", 5: ""}
	for n, want := range lines {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLineColBefore(t *testing.T) {
	if !(LineCol{1, 5}).Before(LineCol{2, 1}) {
		t.Error("1:5 should be before 2:1")
	}
	if (LineCol{2, 3}).Before(LineCol{2, 3}) {
		t.Error("equal positions are not before each other")
	}
}
