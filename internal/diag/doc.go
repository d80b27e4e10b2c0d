// Package diag defines the diagnostic model shared by the unformatting pipeline.
//
// Producers (lexer, syntax validation, driver) emit findings through a Reporter
// and never format them; rendering lives in internal/diagfmt.
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier (see codes.go) with a stable string form
//     such as LEX1001 or SYN2001.
//   - Message – short, human oriented text.
//   - Primary – the source.Span the finding points at.
//   - Notes – optional secondary spans with extra context.
//
// BagReporter collects diagnostics into a Bag, which supports deterministic
// sorting and deduplication before the CLI prints them.
package diag
