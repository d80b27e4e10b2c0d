package ir_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"unfmt/internal/ir"
	"unfmt/internal/source"
	"unfmt/internal/syntax"
)

// shape renders a stream with placeholders made visible.
func shape(stream ir.IR) string {
	var b strings.Builder
	for _, rt := range stream {
		switch rt.Kind {
		case ir.Tok:
			b.WriteString(rt.Token.Text)
		case ir.Spacer:
			b.WriteString("_")
		case ir.Junk:
			b.WriteString("J")
		case ir.ExprOpen:
			b.WriteString("<")
		case ir.ExprClose:
			b.WriteString(">")
		case ir.Comment:
			b.WriteString("#")
		}
	}
	return b.String()
}

func TestMerge(t *testing.T) {
	toks := lexString(t, "let x=a+1;")
	events := []syntax.Event{
		{Kind: syntax.StatementStart, Pos: posOf(t, toks, "let", 0)},
		{Kind: syntax.ExprOpen, Pos: posOf(t, toks, "a", 0)},
		{Kind: syntax.ExprOpen, Pos: posOf(t, toks, "1", 0)},
		{Kind: syntax.ExprClose, Pos: posOf(t, toks, "1", 0)},
		{Kind: syntax.ExprClose, Pos: posOf(t, toks, "1", 0)},
		{Kind: syntax.StatementEnd, Pos: posOf(t, toks, ";", 0)},
	}
	got, err := ir.Merge(ir.Separate(toks), events)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if want := "Jlet_x=<a+<1>>;J"; shape(got) != want {
		t.Fatalf("shape = %q, want %q", shape(got), want)
	}

	// внутренняя пара закрывается первой
	var ids []int
	for _, rt := range got {
		if rt.Kind == ir.ExprOpen || rt.Kind == ir.ExprClose {
			ids = append(ids, rt.ID)
		}
	}
	if diff := cmp.Diff([]int{0, 1, 1, 0}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	// reps = 0: placeholders render as nothing
	if s := string(got.Bytes()); s != "let x=a+1;" {
		t.Fatalf("rendered %q", s)
	}
}

func TestMergeLeftoverEvents(t *testing.T) {
	toks := lexString(t, "a;b;")
	events := []syntax.Event{
		{Kind: syntax.StatementEnd, Pos: posOf(t, toks, ";", 1)},
		{Kind: syntax.StatementStart, Pos: posOf(t, toks, "a", 0)}, // уже позади
	}
	_, err := ir.Merge(ir.Separate(toks), events)
	if !errors.Is(err, ir.ErrUnaligned) {
		t.Fatalf("expected ErrUnaligned, got %v", err)
	}
}

func TestMergeCloseWithoutOpenPanics(t *testing.T) {
	toks := lexString(t, "1;")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	_, _ = ir.Merge(ir.Separate(toks), []syntax.Event{
		{Kind: syntax.ExprClose, Pos: posOf(t, toks, "1", 0)},
	})
}

func TestBuild(t *testing.T) {
	toks := lexString(t, "let x=1;")
	at := func(text string) source.LineCol { return posOf(t, toks, text, 0) }
	nowhere := source.LineCol{Line: 9, Col: 9}

	tests := []struct {
		name   string
		events []syntax.Event
		want   string
		degr   ir.Degradation
	}{
		{
			name: "aligned",
			events: []syntax.Event{
				{Kind: syntax.StatementStart, Pos: at("let")},
				{Kind: syntax.ExprOpen, Pos: at("1")},
				{Kind: syntax.ExprClose, Pos: at("1")},
				{Kind: syntax.StatementEnd, Pos: at(";")},
			},
			want: "Jlet_x=<1>;J",
			degr: ir.KeptAll,
		},
		{
			name: "unaligned expression drops expressions",
			events: []syntax.Event{
				{Kind: syntax.StatementStart, Pos: at("let")},
				{Kind: syntax.ExprOpen, Pos: nowhere},
				{Kind: syntax.ExprClose, Pos: at("1")},
				{Kind: syntax.StatementEnd, Pos: at(";")},
			},
			want: "Jlet_x=1;J",
			degr: ir.DroppedExprs,
		},
		{
			name: "unaligned statement drops everything",
			events: []syntax.Event{
				{Kind: syntax.StatementStart, Pos: nowhere},
				{Kind: syntax.StatementEnd, Pos: at(";")},
			},
			want: "let_x=1;",
			degr: ir.DroppedAll,
		},
		{
			name:   "no events",
			events: nil,
			want:   "let_x=1;",
			degr:   ir.KeptAll,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, degr := ir.Build(toks, tt.events, nil)
			if degr != tt.degr {
				t.Fatalf("degradation = %v, want %v", degr, tt.degr)
			}
			if shape(got) != tt.want {
				t.Fatalf("shape = %q, want %q", shape(got), tt.want)
			}
		})
	}
}

func TestRichTokenRendering(t *testing.T) {
	tests := []struct {
		rt    ir.RichToken
		text  string
		width int
	}{
		{rt: ir.NewSpacer(), text: " ", width: 1},
		{rt: ir.NewJunk(3), text: "();", width: 3},
		{rt: ir.NewComment(0), text: "//", width: 2},
		{rt: ir.NewComment(2), text: "//3;", width: 4},
		{rt: ir.RichToken{Kind: ir.ExprOpen, Reps: 3}, text: "(((", width: 3},
		{rt: ir.RichToken{Kind: ir.ExprClose, Reps: 2}, text: "))", width: 2},
	}
	for _, tt := range tests {
		if got := tt.rt.Text(); got != tt.text {
			t.Fatalf("%v: text %q, want %q", tt.rt, got, tt.text)
		}
		if got := string(tt.rt.AppendTo(nil)); got != tt.text {
			t.Fatalf("%v: AppendTo %q, want %q", tt.rt, got, tt.text)
		}
		if got := tt.rt.Width(); got != tt.width {
			t.Fatalf("%v: width %d, want %d", tt.rt, got, tt.width)
		}
	}
}

func TestTokWidthIsDisplayWidth(t *testing.T) {
	toks := lexString(t, `"日本"`)
	rt := ir.NewTok(toks[0])
	if got := rt.Width(); got != 6 {
		t.Fatalf("width of %q = %d, want 6", toks[0].Text, got)
	}
}
