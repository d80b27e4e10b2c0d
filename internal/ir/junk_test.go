package ir_test

import (
	"strings"
	"testing"

	"unfmt/internal/ir"
)

func TestJunkTableShape(t *testing.T) {
	if len(ir.JunkTable) != ir.MaxJunk+1 {
		t.Fatalf("table has %d entries, MaxJunk is %d", len(ir.JunkTable), ir.MaxJunk)
	}
	if ir.JunkTable[0] != "" {
		t.Fatalf("entry 0 must be empty, got %q", ir.JunkTable[0])
	}
	for i, j := range ir.JunkTable {
		if len(j) != i {
			t.Fatalf("entry %d has length %d: %q", i, len(j), j)
		}
		if i > 0 && len(ir.JunkTable[i-1]) > len(j) {
			t.Fatalf("entry %d shorter than entry %d", i, i-1)
		}
		if i > 0 && !strings.HasSuffix(j, ";") {
			t.Fatalf("entry %d does not end a statement: %q", i, j)
		}
	}
}

func TestJunkTableGenerated(t *testing.T) {
	tests := []struct {
		idx  int
		want string
	}{
		{idx: 3, want: "();"},
		{idx: 14, want: "if let _=(){};"},
		{idx: 15, want: "*&*&();((),());"},
		{idx: 16, want: "((),());((),());"},
		{idx: 80, want: ir.JunkTable[40] + ir.JunkTable[40]},
	}
	for _, tt := range tests {
		if got := ir.JunkTable[tt.idx]; got != tt.want {
			t.Fatalf("JunkTable[%d] = %q, want %q", tt.idx, got, tt.want)
		}
	}
}

func TestJunkTableDistinct(t *testing.T) {
	seen := make(map[string]int, len(ir.JunkTable))
	for i, j := range ir.JunkTable {
		if prev, ok := seen[j]; ok {
			t.Fatalf("entries %d and %d are equal: %q", prev, i, j)
		}
		seen[j] = i
	}
}

func TestJunkTableSplitsIntoSeeds(t *testing.T) {
	seeds := ir.JunkSeeds()
	var split func(s string) bool
	split = func(s string) bool {
		if s == "" {
			return true
		}
		for _, seed := range seeds {
			if strings.HasPrefix(s, seed) && split(s[len(seed):]) {
				return true
			}
		}
		return false
	}
	for i, j := range ir.JunkTable {
		if !split(j) {
			t.Fatalf("entry %d %q is not a concatenation of seeds", i, j)
		}
	}
}
