package format_test

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"unfmt/internal/format"
	"unfmt/internal/ir"
	"unfmt/internal/observ"
	"unfmt/internal/syntax"
	"unfmt/internal/testkit"
)

func TestUnformatMain(t *testing.T) {
	res, err := format.Unformat(context.Background(), []byte("fn main(){let x=1;}"), format.Options{Width: 40})
	if err != nil {
		t.Fatalf("Unformat: %v", err)
	}
	want := "fn main(){let _=||();let x=1;if true{};}\n"
	if got := string(res.Output); got != want {
		t.Fatalf("output %q, want %q", got, want)
	}
	if res.Lines != 1 || res.Overlong != 0 || res.Widest != 40 {
		t.Fatalf("unexpected stats %+v", res)
	}
	if res.Degradation != ir.KeptAll {
		t.Fatalf("degradation %v", res.Degradation)
	}
}

func TestUnformatColonPath(t *testing.T) {
	res, err := format.Unformat(context.Background(), []byte("fn f(x: ::std::primitive::u8) {}\n"), format.Options{Width: 80})
	if err != nil {
		t.Fatalf("Unformat: %v", err)
	}
	if !bytes.Contains(res.Output, []byte("x: ::std")) {
		t.Fatalf("colon and path separator fused: %q", res.Output)
	}
	if bytes.Contains(res.Output, []byte(":::")) {
		t.Fatalf("output has ::: %q", res.Output)
	}
}

func TestUnformatOversizedIdent(t *testing.T) {
	long := strings.Repeat("v", 50)
	src := "fn f(){let " + long + "=1;}"
	res, err := format.Unformat(context.Background(), []byte(src), format.Options{Width: 10})
	if err != nil {
		t.Fatalf("Unformat: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(res.Output), "\n"), "\n")
	want := []string{"fn f(){let", long, "=1;{();};}"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("lines %q, want %q", lines, want)
	}
	if res.Overlong != 1 || res.Widest != 50 {
		t.Fatalf("unexpected stats %+v", res)
	}
}

func TestUnformatErrors(t *testing.T) {
	_, err := format.Unformat(context.Background(), []byte("fn main( {"), format.Options{Width: 80})
	if !errors.Is(err, syntax.ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}

	_, err = format.Unformat(context.Background(), []byte("fn main(){}"), format.Options{Width: -3})
	if !errors.Is(err, format.ErrBadWidth) {
		t.Fatalf("expected ErrBadWidth, got %v", err)
	}
}

func TestUnformatDefaultWidthAndTimer(t *testing.T) {
	timer := observ.NewTimer()
	res, err := format.Unformat(context.Background(), []byte("fn main(){let x=1;}"), format.Options{Timer: timer})
	if err != nil {
		t.Fatalf("Unformat: %v", err)
	}
	if res.Widest != format.DefaultWidth {
		t.Fatalf("widest %d, want %d", res.Widest, format.DefaultWidth)
	}
	var names []string
	for _, p := range timer.Report().Phases {
		names = append(names, p.Name)
	}
	if got := strings.Join(names, ","); got != "strip,parse,lex,build,pack,render" {
		t.Fatalf("phases %s", got)
	}
}

func TestUnformatRoundTrip(t *testing.T) {
	names := make([]string, 0, len(testkit.Samples))
	for name := range testkit.Samples {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		src := []byte(testkit.Samples[name])
		for _, width := range []int{1, 7, 20, 40, 80, 120} {
			res, err := format.Unformat(context.Background(), src, format.Options{Width: width, Name: name})
			if err != nil {
				t.Fatalf("%s @%d: %v", name, width, err)
			}
			if err := format.CheckRoundTrip(context.Background(), src, res.Output); err != nil {
				t.Fatalf("%s @%d: %v\n%s", name, width, err, res.Output)
			}
			if err := testkit.CheckLineInvariants(res.Output, width); err != nil {
				t.Fatalf("%s @%d: %v\n%s", name, width, err, res.Output)
			}
			if res.Degradation == ir.DroppedAll {
				t.Fatalf("%s @%d: all events dropped", name, width)
			}
		}
	}
}

func TestUnformatDeterministic(t *testing.T) {
	src := []byte(testkit.Samples["control"])
	first, err := format.Unformat(context.Background(), src, format.Options{Width: 33})
	if err != nil {
		t.Fatalf("Unformat: %v", err)
	}
	for range 3 {
		again, err := format.Unformat(context.Background(), src, format.Options{Width: 33})
		if err != nil {
			t.Fatalf("Unformat: %v", err)
		}
		if !bytes.Equal(first.Output, again.Output) {
			t.Fatal("output differs between runs")
		}
	}
}

func TestUnformatOutputIsValidInput(t *testing.T) {
	src := []byte(testkit.Samples["structs"])
	once, err := format.Unformat(context.Background(), src, format.Options{Width: 50})
	if err != nil {
		t.Fatalf("Unformat: %v", err)
	}
	// повторный прогон не обязан дать те же байты: junk первого прогона
	// становится настоящими операторами
	twice, err := format.Unformat(context.Background(), once.Output, format.Options{Width: 50})
	if err != nil {
		t.Fatalf("second Unformat: %v\n%s", err, once.Output)
	}
	// во втором прогоне junk первого уже часть входа
	if err := format.CheckRoundTrip(context.Background(), once.Output, twice.Output); err != nil {
		t.Fatalf("second pass: %v", err)
	}
}

func TestCheckRoundTripDetectsChange(t *testing.T) {
	err := format.CheckRoundTrip(context.Background(), []byte("fn a(){}\nstruct S;"), []byte("fn a(){}\n"))
	if !errors.Is(err, format.ErrRoundTrip) {
		t.Fatalf("expected ErrRoundTrip, got %v", err)
	}
	err = format.CheckRoundTrip(context.Background(), []byte("fn a(){}"), []byte("fn a({}\n"))
	if !errors.Is(err, format.ErrRoundTrip) || !errors.Is(err, syntax.ErrInvalidSource) {
		t.Fatalf("expected wrapped ErrInvalidSource, got %v", err)
	}
}

func TestCheckRoundTripTokens(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		out     string
		wantErr bool
	}{
		{name: "junk and parens", src: "fn f(){let a=1;}", out: "fn f(){let _=||();let a=((1));if true{};}\n"},
		{name: "comments and breaks", src: "fn f(){let a=1;}", out: "fn f(){//\nlet a\n=1;}//3;\n"},
		{name: "concatenated junk", src: "fn f(){}", out: "fn f(){3;let _=();{;};}\n"},
		{name: "body replaced", src: "fn f(){let a=1;}", out: "fn f(){loop{}}\n", wantErr: true},
		{name: "token dropped", src: "fn f(){let a=1;}", out: "fn f(){let a=1}\n", wantErr: true},
		{name: "token changed", src: "fn f(){let a=1;}", out: "fn f(){let a=2;}\n", wantErr: true},
		{name: "foreign statement", src: "fn f(){}", out: "fn f(){loop{};}\n", wantErr: true},
		{name: "integer became float", src: "fn f(){let a=1.max(2);}", out: "fn f(){let a=1.//\nmax(2);}\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := format.CheckRoundTrip(context.Background(), []byte(tt.src), []byte(tt.out))
			if tt.wantErr && !errors.Is(err, format.ErrRoundTrip) {
				t.Fatalf("expected ErrRoundTrip, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUnformatIntegerMethodCall(t *testing.T) {
	src := []byte("fn main(){let a=1.max(2);}")
	for width := 1; width <= 40; width++ {
		res, err := format.Unformat(context.Background(), src, format.Options{Width: width})
		if err != nil {
			t.Fatalf("@%d: %v", width, err)
		}
		for _, line := range strings.Split(string(res.Output), "\n") {
			if strings.HasSuffix(line, "1.") || strings.Contains(line, "1.//") {
				t.Fatalf("@%d: integer fused with the dot: %q", width, res.Output)
			}
		}
		if err := format.CheckRoundTrip(context.Background(), src, res.Output); err != nil {
			t.Fatalf("@%d: %v\n%s", width, err, res.Output)
		}
	}
}

func TestUnformatMacroRules(t *testing.T) {
	src := []byte("macro_rules! m {\n    ($value:expr, $t:ty) => { match $value { v => v as $t } };\n}\nfn main() { let _ = m!(1, u8); }\n")
	for width := 1; width <= 60; width++ {
		res, err := format.Unformat(context.Background(), src, format.Options{Width: width})
		if err != nil {
			t.Fatalf("@%d: %v", width, err)
		}
		if err := format.CheckRoundTrip(context.Background(), src, res.Output); err != nil {
			t.Fatalf("@%d: %v\n%s", width, err, res.Output)
		}
		if err := testkit.CheckLineInvariants(res.Output, width); err != nil {
			t.Fatalf("@%d: %v\n%s", width, err, res.Output)
		}
		// собственный вывод снова принимается на вход
		if _, err := format.Unformat(context.Background(), res.Output, format.Options{Width: width}); err != nil {
			t.Fatalf("@%d: rerun: %v\n%s", width, err, res.Output)
		}
	}
}

func TestRenderAndWriter(t *testing.T) {
	blocks := []format.Block{
		{ident("abc")},
		{ident("a"), ir.NewComment(0)},
	}
	var buf bytes.Buffer
	if err := format.Render(&buf, blocks); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.String(); got != "abc\na//\n" {
		t.Fatalf("Render = %q", got)
	}

	w := format.NewWriter(2, 0)
	for _, b := range blocks {
		w.WriteBlock(b)
	}
	if w.Lines() != 2 || w.Overlong() != 2 || w.Widest() != 3 {
		t.Fatalf("lines %d overlong %d widest %d", w.Lines(), w.Overlong(), w.Widest())
	}
}
