package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ExprKind is the closed set of expression categories the finder knows about.
type ExprKind uint8

const (
	ExprNone ExprKind = iota // не выражение

	// оборачиваемые
	ExprArray
	ExprAssign
	ExprAwait
	ExprBinary
	ExprBreak
	ExprCall
	ExprCast
	ExprClosure
	ExprContinue
	ExprIndex
	ExprInfer
	ExprMacro
	ExprParen
	ExprReference
	ExprReturn
	ExprStruct
	ExprTry
	ExprTuple
	ExprUnary
	ExprYield
	ExprLit

	// не оборачиваемые
	ExprPath
	ExprBlock
	ExprRange
	ExprField
	ExprMatch
	ExprLet
	ExprAsync
	ExprConst
	ExprFor
	ExprIf
	ExprLoop
	ExprTryBlock
	ExprUnsafe
	ExprWhile
	ExprUnit

	exprKindCount
)

// wrappable: можно ли обернуть выражение этого вида в лишние скобки.
var wrappable = [exprKindCount]bool{
	ExprArray:     true,
	ExprAssign:    true,
	ExprAwait:     true,
	ExprBinary:    true,
	ExprBreak:     true,
	ExprCall:      true,
	ExprCast:      true,
	ExprClosure:   true,
	ExprContinue:  true,
	ExprIndex:     true,
	ExprInfer:     true,
	ExprMacro:     true,
	ExprParen:     true,
	ExprReference: true,
	ExprReturn:    true,
	ExprStruct:    true,
	ExprTry:       true,
	ExprTuple:     true,
	ExprUnary:     true,
	ExprYield:     true,
	ExprLit:       true,
}

// Wrappable reports whether redundant parentheses around this kind keep the program meaning.
func (k ExprKind) Wrappable() bool {
	return k < exprKindCount && wrappable[k]
}

var exprKinds = map[string]ExprKind{
	"array_expression":         ExprArray,
	"assignment_expression":    ExprAssign,
	"compound_assignment_expr": ExprAssign,
	"await_expression":         ExprAwait,
	"binary_expression":        ExprBinary,
	"break_expression":         ExprBreak,
	"call_expression":          ExprCall,
	"type_cast_expression":     ExprCast,
	"closure_expression":       ExprClosure,
	"continue_expression":      ExprContinue,
	"index_expression":         ExprIndex,
	"macro_invocation":         ExprMacro,
	"parenthesized_expression": ExprParen,
	"reference_expression":     ExprReference,
	"return_expression":        ExprReturn,
	"struct_expression":        ExprStruct,
	"try_expression":           ExprTry,
	"tuple_expression":         ExprTuple,
	"unary_expression":         ExprUnary,
	"yield_expression":         ExprYield,
	"integer_literal":          ExprLit,
	"float_literal":            ExprLit,
	"string_literal":           ExprLit,
	"raw_string_literal":       ExprLit,
	"char_literal":             ExprLit,
	"boolean_literal":          ExprLit,
	"identifier":               ExprPath,
	"scoped_identifier":        ExprPath,
	"generic_function":         ExprPath,
	"self":                     ExprPath,
	"metavariable":             ExprPath,
	"block":                    ExprBlock,
	"range_expression":         ExprRange,
	"field_expression":         ExprField,
	"match_expression":         ExprMatch,
	"let_condition":            ExprLet,
	"let_chain":                ExprLet,
	"async_block":              ExprAsync,
	"const_block":              ExprConst,
	"for_expression":           ExprFor,
	"if_expression":            ExprIf,
	"loop_expression":          ExprLoop,
	"try_block":                ExprTryBlock,
	"unsafe_block":             ExprUnsafe,
	"while_expression":         ExprWhile,
	"unit_expression":          ExprUnit,
}

// classify maps a node to its ExprKind. parent may be nil.
func classify(n, parent *sitter.Node) ExprKind {
	typ := n.Type()
	if typ == "_" {
		// `_ = f();` — destructuring assignment to a wildcard
		if parent != nil && parent.Type() == "assignment_expression" {
			return ExprInfer
		}
		return ExprNone
	}
	if !n.IsNamed() {
		return ExprNone
	}
	k, ok := exprKinds[typ]
	if !ok {
		return ExprNone
	}
	if k == ExprMacro && parent != nil {
		// макрос в позиции оператора/элемента — не выражение
		switch parent.Type() {
		case "block", "expression_statement", "source_file", "declaration_list":
			return ExprNone
		}
	}
	return k
}

// opaque: поддеревья, в которые обход не заходит (нет оборачиваемых выражений
// или обёртка сломала бы синтаксис).
var opaque = map[string]bool{
	"attribute_item":           true,
	"inner_attribute_item":     true,
	"token_tree":               true,
	"macro_definition":         true,
	"type_arguments":           true,
	"type_parameters":          true,
	"type_identifier":          true,
	"scoped_type_identifier":   true,
	"parameters":               true,
	"closure_parameters":       true,
	"visibility_modifier":      true,
	"extern_modifier":          true,
	"use_declaration":          true,
	"extern_crate_declaration": true,
	"where_clause":             true,
	"match_pattern":            true,
	"lifetime":                 true,
	"label":                    true,
	"line_comment":             true,
	"block_comment":            true,
	"trait_bounds":             true,
	"function_signature_item":  true,
}

func isOpaque(n *sitter.Node) bool {
	typ := n.Type()
	return opaque[typ] || strings.HasSuffix(typ, "_type") || strings.HasSuffix(typ, "_pattern")
}

// skippedFields: дочерние поля, которые не обходятся (паттерны, имена полей).
var skippedFields = map[string]map[string]bool{
	"let_declaration":    {"pattern": true},
	"let_condition":      {"pattern": true},
	"for_expression":     {"pattern": true},
	"match_arm":          {"pattern": true},
	"field_expression":   {"field": true},
	"field_initializer":  {"field": true, "name": true},
	"struct_expression":  {"name": true},
	"function_item":      {"name": true},
	"closure_expression": {"parameters": true},
}

// atomic: узлы, чьи дети не отдельные токены для лексера ("...", 'a, r#"..."#).
var atomic = map[string]bool{
	"string_literal":     true,
	"raw_string_literal": true,
	"char_literal":       true,
	"lifetime":           true,
	"label":              true,
	"metavariable":       true,
	"boolean_literal":    true,
	"integer_literal":    true,
	"float_literal":      true,
	"identifier":         true,
	"shebang":            true,
}

func isComment(n *sitter.Node) bool {
	typ := n.Type()
	return typ == "line_comment" || typ == "block_comment"
}
