package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/younwookim/framepad/internal/application/compiler"
	"github.com/younwookim/framepad/internal/application/format"
	"github.com/younwookim/framepad/internal/application/mapper"
	"github.com/younwookim/framepad/internal/application/parser"
	"github.com/younwookim/framepad/internal/application/validation"
	"github.com/younwookim/framepad/internal/domain/input"
	"github.com/younwookim/framepad/internal/infrastructure/config"
)

// BinaryExt is the extension used for NES binary input files
const BinaryExt = ".nesin"

var errInvalid = errors.New("timeline is invalid")

type env struct {
	stdin  io.Reader
	stdout io.Writer
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"compile":   compileCmd,
	"decompile": decompileCmd,
	"validate":  validateCmd,
	"csv":       csvCmd,
	"json":      jsonCmd,
	"visualize": visualizeCmd,
	"demo":      demoCmd,
	"record":    recordCmd,
	"play":      playCmd,
}

// flags shared by every command
type commonFlags struct {
	fs         *flag.FlagSet
	configPath *string
}

func newFlags(name string) *commonFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &commonFlags{
		fs:         fs,
		configPath: fs.String("config", config.DefaultFilename, "Config file"),
	}
}

// parse parses args and loads the config file
func (f *commonFlags) parse(args []string) (*config.Config, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	cfg, err := config.LoadFile(*f.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// readInput reads a file, or stdin for "" and "-"
func (e *env) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(e.stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes to a file, or stdout for "" and "-"
func (e *env) writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := e.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (e *env) parseScript(path string) (*input.Timeline, error) {
	text, err := e.readInput(path)
	if err != nil {
		return nil, err
	}
	return parser.NewTextParser(nil).Parse(string(text)), nil
}

func compileCmd(e *env, args []string) error {
	f := newFlags("compile")
	out := f.fs.String("o", "", "Output file (default: input name with "+BinaryExt+")")
	if _, err := f.parse(args); err != nil {
		return err
	}

	in := f.fs.Arg(0)
	if in == "" || in == "-" {
		if *out == "" {
			*out = "-"
		}
	} else if *out == "" {
		*out = strings.TrimSuffix(in, filepath.Ext(in)) + BinaryExt
	}

	text, err := e.readInput(in)
	if err != nil {
		return err
	}

	c := compiler.NewNESCompiler(nil)
	data := c.Compile(string(text))
	if err := e.writeOutput(*out, c.ToBinary(data)); err != nil {
		return err
	}

	if *out != "-" {
		log.Printf("Compiled %d frames to %s", len(data.Frames), *out)
	}
	return nil
}

func decompileCmd(e *env, args []string) error {
	f := newFlags("decompile")
	out := f.fs.String("o", "", "Output file (default: stdout)")
	if _, err := f.parse(args); err != nil {
		return err
	}

	buf, err := e.readInput(f.fs.Arg(0))
	if err != nil {
		return err
	}

	c := compiler.NewNESCompiler(nil)
	data, err := c.FromBinary(buf)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", f.fs.Arg(0), err)
	}

	return e.writeOutput(*out, []byte(c.Decompile(data)+"\n"))
}

func validateCmd(e *env, args []string) error {
	f := newFlags("validate")
	if _, err := f.parse(args); err != nil {
		return err
	}

	tl, err := e.parseScript(f.fs.Arg(0))
	if err != nil {
		return err
	}

	result := validation.Validate(tl)
	printValidation(e.stdout, result)
	if !result.Valid {
		return errInvalid
	}
	return nil
}

func printValidation(w io.Writer, result validation.Result) {
	fmt.Fprintf(w, "valid: %t\n", result.Valid)
	if len(result.Errors) > 0 {
		fmt.Fprintln(w, "errors:")
		for _, issue := range result.Errors {
			fmt.Fprintf(w, "- %s\n", issue)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "warnings:")
		for _, issue := range result.Warnings {
			fmt.Fprintf(w, "- %s\n", issue)
		}
	}
}

func csvCmd(e *env, args []string) error {
	f := newFlags("csv")
	cfg, err := f.parse(args)
	if err != nil {
		return err
	}

	tl, err := e.parseScript(f.fs.Arg(0))
	if err != nil {
		return err
	}

	out, err := format.CSV(tl, cfg.Output.CSVHeader)
	if err != nil {
		return err
	}
	return e.writeOutput("", []byte(out+"\n"))
}

func jsonCmd(e *env, args []string) error {
	f := newFlags("json")
	cfg, err := f.parse(args)
	if err != nil {
		return err
	}

	tl, err := e.parseScript(f.fs.Arg(0))
	if err != nil {
		return err
	}

	out, err := format.JSON(tl, cfg.Output.JSONPretty)
	if err != nil {
		return err
	}
	return e.writeOutput("", []byte(out+"\n"))
}

func visualizeCmd(e *env, args []string) error {
	f := newFlags("visualize")
	frames := f.fs.Int("frames", 0, "Last frame to show (default from config, negative for all)")
	cfg, err := f.parse(args)
	if err != nil {
		return err
	}

	maxFrame := cfg.Output.VisualizeFrames
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "frames" {
			maxFrame = *frames
		}
	})

	tl, err := e.parseScript(f.fs.Arg(0))
	if err != nil {
		return err
	}

	return e.writeOutput("", []byte(format.Visualize(tl, maxFrame)+"\n"))
}

const sampleScript = `# dash right from the start
0-59: →B

# jump on frame 60
60: →BA

# keep running
61-100: →B

# land and stand still
101-120: -`

// demoCmd walks the sample script through every stage of the pipeline
func demoCmd(e *env, args []string) error {
	f := newFlags("demo")
	cfg, err := f.parse(args)
	if err != nil {
		return err
	}

	w := e.stdout
	p := parser.NewTextParser(nil)
	m := mapper.NewNESMapper()
	c := compiler.NewNESCompiler(nil)

	fmt.Fprintln(w, "== parse ==")
	tl := p.Parse(sampleScript)
	fmt.Fprintln(w, format.Text(tl, cfg.Output.TextHeader))

	fmt.Fprintln(w, "\n== validate ==")
	printValidation(w, validation.Validate(tl))

	fmt.Fprintf(w, "\n== %s mapping ==\n", m.Name())
	data := m.MapFromFormat(tl)
	fmt.Fprintf(w, "%d frames, frame 60 = %#02x\n", len(data.Frames), data.Frames[60].Buttons)
	fmt.Fprintln(w, p.Stringify(m.MapToFormat(data)))

	fmt.Fprintln(w, "\n== binary ==")
	buf := c.ToBinary(c.Compile(sampleScript))
	fmt.Fprintf(w, "size: %d bytes\nheader: % x\n", len(buf), buf[:compiler.HeaderSize])
	decoded, err := c.FromBinary(buf)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, c.Decompile(decoded))

	fmt.Fprintln(w, "\n== csv ==")
	csvOut, err := format.CSV(tl, cfg.Output.CSVHeader)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, csvOut)

	fmt.Fprintln(w, "\n== json ==")
	jsonOut, err := format.JSON(tl, cfg.Output.JSONPretty)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, jsonOut)

	fmt.Fprintln(w, "\n== visualize ==")
	fmt.Fprintln(w, format.Visualize(tl, 10))

	return nil
}
