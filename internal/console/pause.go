// Package console provides terminal helpers for the CLI.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PausePrompt is printed before waiting for a key press.
const PausePrompt = "Done. Press any key to exit..."

// WaitForKey prints prompt and blocks until one key is read from in.
// A terminal is switched to raw mode so no Enter is needed. End of input
// counts as a key press.
func WaitForKey(in io.Reader, out io.Writer, prompt string) error {
	if _, err := fmt.Fprintln(out, prompt); err != nil {
		return err
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() {
			if rerr := term.Restore(int(f.Fd()), state); rerr != nil {
				// Best-effort terminal restore.
				_ = rerr
			}
		}()
	}
	buf := make([]byte, 1)
	if _, err := in.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read key: %w", err)
	}
	return nil
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
