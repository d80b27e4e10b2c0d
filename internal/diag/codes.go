package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexUnterminatedChar         Code = 1006

	// Синтаксис (tree-sitter)
	SynInfo          Code = 2000
	SynInvalidSource Code = 2001
	SynMissingNode   Code = 2002

	// IO
	IOReadFailed  Code = 4001
	IOWriteFailed Code = 4002

	// Форматирование
	FmtInfo            Code = 6000
	FmtOverlongLine    Code = 6001
	FmtEventsDropped   Code = 6002
	FmtRoundTripFailed Code = 6003
	FmtNotFormatted    Code = 6004
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	LexTokenTooLong:             "Token exceeds maximum length",
	LexUnterminatedChar:         "Unterminated character literal",
	SynInfo:                     "Syntax information",
	SynInvalidSource:            "Source is not valid Rust",
	SynMissingNode:              "Parser inserted a missing token",
	IOReadFailed:                "Failed to read file",
	IOWriteFailed:               "Failed to write file",
	FmtInfo:                     "Formatting information",
	FmtOverlongLine:             "Line exceeds the target width",
	FmtEventsDropped:            "Expression padding disabled for this file",
	FmtRoundTripFailed:          "Output does not reparse to the same items",
	FmtNotFormatted:             "File is not unformatted",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("FMT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
