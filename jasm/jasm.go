package jasm

import (
	"github.com/probekit/jvm-flow/bytecode"
	"github.com/probekit/jvm-flow/jasm/internal/parser"
	"github.com/probekit/jvm-flow/jasm/internal/token"
)

// Assemble parses a jasm listing and returns the method body it describes.
// Label references are resolved by name within the listing; a reference to
// a label that is never defined is an error.
func Assemble(source string) (*bytecode.MethodBody, error) {
	return parser.New(token.Tokenize(source)).Parse()
}
