// Package clipboard provides the sinks that receive copied coordinates.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnsupported is returned by a sink that cannot work on this system.
var ErrUnsupported = errors.New("clipboard unsupported")

// Sink accepts text for the clipboard.
type Sink interface {
	Copy(text string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(string) error

func (f SinkFunc) Copy(text string) error { return f(text) }

// System writes through the platform clipboard utility (pbcopy, xclip,
// xsel, wl-copy or the Windows API).
type System struct{}

func (System) Copy(text string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal to set the clipboard with an OSC 52 escape
// sequence. It works over SSH where no system clipboard is reachable.
type OSC52 struct {
	Out io.Writer
}

func (o OSC52) Copy(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// Fallback tries each sink in order and stops at the first success.
type Fallback []Sink

func (f Fallback) Copy(text string) error {
	var errs []error
	for _, s := range f {
		err := s.Copy(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrUnsupported
	}
	return errors.Join(errs...)
}

// New returns the sink for a configured mode: "system", "osc52" or "auto".
func New(mode string, out io.Writer) (Sink, error) {
	switch strings.ToLower(mode) {
	case "system":
		return System{}, nil
	case "osc52":
		return OSC52{Out: out}, nil
	case "", "auto":
		return Fallback{System{}, OSC52{Out: out}}, nil
	}
	return nil, fmt.Errorf("unknown clipboard mode %q", mode)
}
