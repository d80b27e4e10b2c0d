// Package syntax wraps the tree-sitter Rust grammar.
//
// It does two jobs for the unformatter:
//
//   - validation: Parse rejects sources whose tree contains ERROR or MISSING
//     nodes (ErrInvalidSource);
//   - insertion points: FindEvents walks the tree and reports where a junk
//     statement may be inserted (StatementStart/StatementEnd) and which
//     expressions may be wrapped in redundant parentheses (ExprOpen/ExprClose).
//
// Event positions are 1-based line and byte column, the same coordinates the
// lexer assigns to tokens, so the IR builder can match events to tokens.
package syntax
