package token

import "unicode"

// Type classifies a lexical token of a jasm listing.
type Type int

const (
	Word      Type = iota // mnemonic, label reference, symbol operand
	Number                // decimal integer, possibly negative
	Directive             // word starting with '.', e.g. ".method"
	LabelDef              // word ending with ':', e.g. "L0:"
	Newline               // statement separator
)

// String returns a human-readable token type name for error messages.
func (t Type) String() string {
	switch t {
	case Word:
		return "word"
	case Number:
		return "number"
	case Directive:
		return "directive"
	case LabelDef:
		return "label definition"
	case Newline:
		return "end of line"
	}
	return "unknown"
}

// Token is one lexical element with its source line for diagnostics.
type Token struct {
	Value string
	Type  Type
	Line  int
}

// Tokenize splits a listing into tokens. The format is line-oriented:
// every physical line is one statement, ';' starts a comment running to
// the end of the line, and blank lines produce no tokens. A Newline token
// terminates each non-empty statement.
func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	emitted := false
	runes := []rune(input)

	flushLine := func() {
		if emitted {
			tokens = append(tokens, Token{Type: Newline, Line: line})
			emitted = false
		}
		line++
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			flushLine()
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}
		if r == ';' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			flushLine()
			continue
		}

		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) && runes[i] != ';' {
			i++
		}
		word := string(runes[start:i])
		i--

		tokens = append(tokens, Token{Value: word, Type: classify(word), Line: line})
		emitted = true
	}
	if emitted {
		tokens = append(tokens, Token{Type: Newline, Line: line})
	}

	return tokens
}

func classify(word string) Type {
	if word[0] == '.' && len(word) > 1 {
		return Directive
	}
	if word[len(word)-1] == ':' && len(word) > 1 && !containsMidColon(word[:len(word)-1]) {
		return LabelDef
	}
	if isNumber(word) {
		return Number
	}
	return Word
}

// containsMidColon distinguishes a label definition "L2:" from a
// lookupswitch pair "5:L2".
func containsMidColon(s string) bool {
	for _, r := range s {
		if r == ':' {
			return true
		}
	}
	return false
}

func isNumber(s string) bool {
	if s == "" || s == "-" {
		return false
	}
	for i, r := range s {
		if i == 0 && r == '-' {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
