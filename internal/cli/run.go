// Package cli is the terminal rendition of the workout form: a line-oriented
// REPL over a local or remote Form.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ParseFormat checks a plan output format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "text", "json", "yaml":
		return f, nil
	default:
		return "", fmt.Errorf("unknown plan format %q (want text, json or yaml)", s)
	}
}

// Run reads commands from in until EOF or exit. The prompt and greeting are
// only printed when in is a terminal, so piped scripts produce clean output.
func Run(ctx context.Context, f Form, format string, in *os.File) {
	prompt := term.IsTerminal(int(in.Fd()))
	if prompt {
		printlnFn("swolecrew: plan a session for the whole group. Type help for commands.")
	}
	runREPL(ctx, f, format, prompt, bufio.NewScanner(in))
}
