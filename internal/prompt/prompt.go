// Package prompt asks questions on an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input reaches EOF before an answer was given.
var ErrInputClosed = errors.New("input closed before an answer was given")

const defaultNote = "(first answer is always default)"

// Engine reads answers line by line from in and writes questions to out.
type Engine struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Engine {
	return &Engine{in: bufio.NewReader(in), out: out}
}

// Say writes text as is.
func (e *Engine) Say(text string) error {
	_, err := io.WriteString(e.out, text)
	return err
}

// AskText prints the prompt on its own line and returns the trimmed answer.
// Any answer, including an empty one, is accepted.
func (e *Engine) AskText(prompt string) (string, error) {
	if _, err := fmt.Fprintln(e.out, prompt); err != nil {
		return "", err
	}
	return e.readLine()
}

// AskChoice lists the options with their 0-based index and repeats until the
// answer is a valid index. An empty answer picks option 0.
func (e *Engine) AskChoice(prompt string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("question %q has no options", prompt)
	}

	for {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", prompt, defaultNote)
		for i, c := range choices {
			fmt.Fprintf(&b, "[%d] %s\n", i, c)
		}
		if _, err := io.WriteString(e.out, b.String()); err != nil {
			return 0, err
		}

		line, err := e.readLine()
		if err != nil {
			return 0, err
		}
		if i, ok := parseIndex(line, len(choices)); ok {
			return i, nil
		}
	}
}

// AskChoiceLabel is AskChoice returning the chosen label instead of its index.
func (e *Engine) AskChoiceLabel(prompt string, choices []string) (string, error) {
	i, err := e.AskChoice(prompt, choices)
	if err != nil {
		return "", err
	}
	return choices[i], nil
}

func (e *Engine) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		// last line without a trailing newline still counts
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

func parseIndex(s string, n int) (int, bool) {
	// empty is an answer: it picks option 0, not a parse failure
	if s == "" {
		return 0, true
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// Caption upper-cases name and underlines it with '=' of the same length.
func Caption(name string) string {
	return strings.ToUpper(name) + "\n" + strings.Repeat("=", len(name)) + "\n"
}
