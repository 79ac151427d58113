package compiler

import (
	"log"

	"github.com/younwookim/framepad/internal/application/mapper"
	"github.com/younwookim/framepad/internal/application/parser"
)

// Compiler converts between a source format and a target format
type Compiler[S, T any] interface {
	Name() string
	Compile(source S) T
	Decompile(target T) S
}

// NESCompiler converts text scripts to NES controller data and back
type NESCompiler struct {
	parser *parser.TextParser
	mapper *mapper.NESMapper
}

var _ Compiler[string, mapper.NESInputData] = (*NESCompiler)(nil)

// NewNESCompiler creates a compiler. Skipped script lines are reported to logger.
func NewNESCompiler(logger *log.Logger) *NESCompiler {
	return &NESCompiler{
		parser: parser.NewTextParser(logger),
		mapper: mapper.NewNESMapper(),
	}
}

// Name returns the compiler name
func (c *NESCompiler) Name() string {
	return c.mapper.Name() + " compiler"
}

// Compile parses a text script into per-frame controller data
func (c *NESCompiler) Compile(source string) mapper.NESInputData {
	return c.mapper.MapFromFormat(c.parser.Parse(source))
}

// Decompile renders per-frame controller data as a text script
func (c *NESCompiler) Decompile(target mapper.NESInputData) string {
	return c.parser.Stringify(c.mapper.MapToFormat(target))
}
