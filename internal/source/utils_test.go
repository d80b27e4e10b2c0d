package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLFKeepsLoneCR(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed {
		t.Fatal("expected change")
	}
	if !bytes.Equal(out, []byte("a\nb\rc")) {
		t.Fatalf("got %q", out)
	}

	same := []byte("no carriage returns")
	out, changed = normalizeCRLF(same)
	if changed || !bytes.Equal(out, same) {
		t.Fatalf("unexpected rewrite %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte("\xEF\xBB\xBFfn"))
	if !had || string(out) != "fn" {
		t.Fatalf("got %q, %v", out, had)
	}
	out, had = removeBOM([]byte("fn"))
	if had || string(out) != "fn" {
		t.Fatalf("got %q, %v", out, had)
	}
}
