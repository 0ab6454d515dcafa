// Package prompt provides the interactive y/n prompts the installer
// asks before optional steps. Non-interactive runs (no TTY, --yes,
// or assume_yes in config) fall back to defaults without blocking.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter asks yes/no questions
type Prompter interface {
	// Confirm asks a question and returns the answer, using def when
	// the user just presses enter.
	Confirm(question string, def bool) (bool, error)
}

// ConsolePrompter reads answers from an input stream, stdin by default
type ConsolePrompter struct {
	in  io.Reader
	out io.Writer
}

// NewConsolePrompter creates a prompter on stdin/stdout
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{in: os.Stdin, out: os.Stdout}
}

// NewConsolePrompterWithStreams creates a prompter on explicit streams
func NewConsolePrompterWithStreams(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: in, out: out}
}

// Confirm implements Prompter
func (p *ConsolePrompter) Confirm(question string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", question, marker)

	reader := bufio.NewReader(p.in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	return ParseAnswer(line, def), nil
}

// ParseAnswer interprets a y/n answer, returning def for empty input
func ParseAnswer(answer string, def bool) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return def
	}
	return answer == "y" || answer == "yes"
}

// StaticPrompter always answers the same; used for --yes runs and tests
type StaticPrompter struct {
	Answer bool
}

// Confirm implements Prompter
func (p *StaticPrompter) Confirm(question string, def bool) (bool, error) {
	return p.Answer, nil
}

// IsInteractive reports whether stdin is a terminal. Prompts are only
// shown on interactive runs; otherwise defaults apply.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
