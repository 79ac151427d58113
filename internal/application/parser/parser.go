package parser

import (
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/younwookim/framepad/internal/domain/input"
)

// linePattern matches "<start>[-<end>]: <buttons>"
var linePattern = regexp.MustCompile(`^(\d+)(?:-(\d+))?:\s*(.*)$`)

// ErrSyntax is returned for lines that do not follow the grammar
var ErrSyntax = errors.New("line does not match <start>[-<end>]: <buttons>")

// ErrFrameRange is returned for frame numbers the binary format cannot store
var ErrFrameRange = fmt.Errorf("frame number exceeds %d", uint64(math.MaxUint32))

// LineError describes a line that was skipped during parsing
type LineError struct {
	Line int // 1-based line number
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// TextParser converts the text script format to a timeline and back
type TextParser struct {
	logger *log.Logger
}

// NewTextParser creates a parser that reports skipped lines to logger.
// A nil logger uses the standard logger.
func NewTextParser(logger *log.Logger) *TextParser {
	if logger == nil {
		logger = log.Default()
	}
	return &TextParser{logger: logger}
}

// Parse converts text to a timeline. Malformed lines are logged and skipped.
func (p *TextParser) Parse(text string) *input.Timeline {
	tl, _ := p.ParseLines(text)
	return tl
}

// ParseLines converts text to a timeline and also returns the skipped lines
func (p *TextParser) ParseLines(text string) (*input.Timeline, []*LineError) {
	tl := input.NewTimeline()
	var lineErrs []*LineError

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		// Blank lines and comments
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		r, err := parseLine(trimmed)
		if err != nil {
			lineErr := &LineError{Line: i + 1, Text: trimmed, Err: err}
			p.logger.Printf("Skipping line: %v", lineErr)
			lineErrs = append(lineErrs, lineErr)
			continue
		}
		tl.Add(r)
	}

	return tl, lineErrs
}

// Stringify renders the timeline back to text. Comments are not preserved.
func (p *TextParser) Stringify(tl *input.Timeline) string {
	return tl.String()
}

func parseLine(line string) (input.FrameRange, error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return input.FrameRange{}, ErrSyntax
	}

	start, err := strconv.Atoi(m[1])
	if err != nil {
		return input.FrameRange{}, fmt.Errorf("invalid start frame: %w", err)
	}

	end := start
	if m[2] != "" {
		end, err = strconv.Atoi(m[2])
		if err != nil {
			return input.FrameRange{}, fmt.Errorf("invalid end frame: %w", err)
		}
	}

	var buttons input.Combination
	if s := strings.TrimSpace(m[3]); s != "" && s != input.NoInput {
		buttons = input.ParseCombination(s)
	}

	if uint64(start) > math.MaxUint32 || uint64(end) > math.MaxUint32 {
		return input.FrameRange{}, ErrFrameRange
	}

	return input.NewFrameRange(start, end, buttons), nil
}
