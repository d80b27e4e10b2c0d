// Package token defines lexical token kinds, trivia and fusion affinity for Rust sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Token.Pos is the 1-based line and byte column of Span.Start.
//   - Keywords, '_', literals and lifetimes repel their neighbours; every
//     punctuation kind is tight (see Affinity).
//   - Comments and doc comments never appear in the main token stream, only as
//     leading Trivia.
package token
