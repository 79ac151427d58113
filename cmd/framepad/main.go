package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

const usage = `usage: framepad <command> [flags] [file]

commands:
  compile    text script -> NES binary
  decompile  NES binary -> text script
  validate   report overlaps, gaps and opposite directions
  csv        text script -> CSV
  json       text script -> JSON
  visualize  text script -> per-frame grid
  demo       run the sample script through every stage
  record     capture keyboard input in a window and save it as NES binary
  play       replay an NES binary in a window`

var errUsage = errors.New(usage)

func main() {
	log.SetFlags(0)
	log.SetPrefix("framepad: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}

	return cmd(&env{stdin: stdin, stdout: stdout}, args[1:])
}
