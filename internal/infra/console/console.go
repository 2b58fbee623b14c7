// Package console implements domain.Console over a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/glissue/internal/domain"
	"golang.org/x/term"
)

// Ensure Console implements domain.Console.
var _ domain.Console = (*Console)(nil)

type line struct {
	err  error
	text string
}

// Console reads operator input line by line and writes prompts and reports.
// A single reader goroutine feeds ReadLine so that a pending read can be
// abandoned when the context is cancelled.
type Console struct {
	in     io.Reader
	out    io.Writer
	lines  chan line
	styles Styles
	start  sync.Once
	mu     sync.Mutex
}

// New creates a Console reading from in and writing to out.
// Colors are enabled only when out is a terminal.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     in,
		out:    out,
		lines:  make(chan line),
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// NewStdio creates a Console bound to the process stdin and stdout.
func NewStdio() *Console {
	return New(os.Stdin, os.Stdout)
}

func (c *Console) readLoop() {
	r := bufio.NewReader(c.in)
	for {
		text, err := r.ReadString('\n')
		if text != "" {
			c.lines <- line{text: strings.TrimRight(text, "\r\n")}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = domain.ErrInputClosed
			}
			// Keep reporting the terminal error to every later reader.
			for {
				c.lines <- line{err: err}
			}
		}
	}
}

// ReadLine prints prompt and waits for the next line.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.start.Do(func() { go c.readLoop() })

	c.Print(prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-c.lines:
		if l.err != nil {
			return "", l.err
		}
		return l.text, nil
	}
}

// Interactive reports whether input comes from a terminal.
func (c *Console) Interactive() bool {
	f, ok := c.in.(*os.File)
	return ok && IsTerminal(f)
}

// ReadSecret reads a line without echo when input is a terminal.
// Piped input is read like any other line.
func (c *Console) ReadSecret(ctx context.Context, prompt string) (string, error) {
	if !c.Interactive() {
		return c.ReadLine(ctx, prompt)
	}
	f := c.in.(*os.File)
	c.Print(prompt)
	b, err := term.ReadPassword(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
	c.Print("\n")
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(b), nil
}

// Print writes text as-is.
func (c *Console) Print(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, text)
}

// Success writes text as a success line.
func (c *Console) Success(text string) {
	c.Print(c.styles.Success.Render(text) + "\n")
}

// Warn writes text as a warning line.
func (c *Console) Warn(text string) {
	c.Print(c.styles.Warn.Render(text) + "\n")
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}
