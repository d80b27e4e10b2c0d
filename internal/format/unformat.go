package format

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"

	"unfmt/internal/ir"
	"unfmt/internal/lexer"
	"unfmt/internal/observ"
	"unfmt/internal/source"
	"unfmt/internal/syntax"
)

// ErrBadWidth is returned for a target width below one column.
var ErrBadWidth = errors.New("width must be at least 1")

// ErrRoundTrip is returned when the output no longer parses, or no longer
// carries the same items and tokens as the input.
var ErrRoundTrip = errors.New("round-trip check failed")

// DefaultWidth is the width used when Options.Width is zero.
const DefaultWidth = 80

// Options controls a single Unformat call.
type Options struct {
	Width  int
	Logger *log.Logger   // nil: без логов
	Timer  *observ.Timer // nil: без замеров
	Name   string        // имя файла для логов и позиций
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Name == "" {
		o.Name = "<input>"
	}
	return o
}

// Result is the output of one Unformat call.
type Result struct {
	Output      []byte
	Lines       int
	Overlong    int // строки шире Width (неделимые токены)
	Widest      int
	Tokens      int
	Events      int
	Degradation ir.Degradation
}

// Stream is the rich token stream of a source, before packing.
type Stream struct {
	IR          ir.IR
	Tokens      int
	Events      int
	Degradation ir.Degradation
}

// BuildStream runs the front half of the pipeline: doc comment stripping,
// validation, event discovery, lexing and IR construction.
func BuildStream(ctx context.Context, src []byte, opts Options) (*Stream, error) {
	opts = opts.withDefaults()

	done := opts.Timer.Track("strip")
	content, stripped := lexer.StripDocComments(src)
	done(strconv.FormatBool(stripped))

	done = opts.Timer.Track("parse")
	tree, err := syntax.Parse(ctx, content)
	if err != nil {
		done("invalid")
		return nil, err
	}
	events := syntax.FindEvents(tree)
	tree.Close()
	done(fmt.Sprintf("%d events", len(events)))

	done = opts.Timer.Track("lex")
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(opts.Name, content))
	tokens, err := lexer.Lex(file)
	if err != nil {
		done("failed")
		// парсер принял файл, значит расходятся лексер и грамматика
		return nil, fmt.Errorf("lex: %w", err)
	}
	done(fmt.Sprintf("%d tokens", len(tokens)))

	done = opts.Timer.Track("build")
	stream, degr := ir.Build(tokens, events, opts.Logger)
	done(degr.String())
	if degr != ir.KeptAll && opts.Logger != nil {
		opts.Logger.Debug("event alignment degraded", "file", opts.Name, "result", degr)
	}

	return &Stream{IR: stream, Tokens: len(tokens), Events: len(events), Degradation: degr}, nil
}

// Layout packs and justifies a stream into lines of the given width.
func Layout(stream ir.IR, width int) []Block {
	blocks := Pack(stream, width)
	for i := range blocks {
		blocks[i] = Justify(blocks[i], width)
	}
	return blocks
}

// Unformat rewrites a valid Rust source into lines of exactly opts.Width
// columns where possible. Invalid input fails with an error wrapping
// syntax.ErrInvalidSource; nothing else about the input is an error.
func Unformat(ctx context.Context, src []byte, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if opts.Width < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWidth, opts.Width)
	}

	st, err := BuildStream(ctx, src, opts)
	if err != nil {
		return nil, err
	}

	done := opts.Timer.Track("pack")
	blocks := Layout(st.IR, opts.Width)
	done(fmt.Sprintf("%d lines", len(blocks)))

	done = opts.Timer.Track("render")
	w := NewWriter(opts.Width, len(src)+len(blocks))
	for _, b := range blocks {
		w.WriteBlock(b)
	}
	done("")

	return &Result{
		Output:      w.Bytes(),
		Lines:       w.Lines(),
		Overlong:    w.Overlong(),
		Widest:      w.Widest(),
		Tokens:      st.Tokens,
		Events:      st.Events,
		Degradation: st.Degradation,
	}, nil
}

// CheckRoundTrip re-parses out and compares it with src: both must parse,
// the top-level item kinds must agree, and the tokens of src must appear in
// out in order with nothing in between but parentheses and junk statements.
func CheckRoundTrip(ctx context.Context, src, out []byte) error {
	content, _ := lexer.StripDocComments(src)
	before, err := itemKinds(ctx, content)
	if err != nil {
		return fmt.Errorf("%w: initial parse: %w", ErrRoundTrip, err)
	}
	after, err := itemKinds(ctx, out)
	if err != nil {
		return fmt.Errorf("%w: reparse: %w", ErrRoundTrip, err)
	}
	if !slices.Equal(before, after) {
		return fmt.Errorf("%w: top-level items differ (%d before, %d after)", ErrRoundTrip, len(before), len(after))
	}
	if err := sameTokens(content, out); err != nil {
		return fmt.Errorf("%w: %w", ErrRoundTrip, err)
	}
	return nil
}

func itemKinds(ctx context.Context, src []byte) ([]string, error) {
	tree, err := syntax.Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	return tree.ItemKinds(), nil
}
