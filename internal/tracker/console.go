package tracker

import (
	"io"

	"github.com/muesli/termenv"
)

// Display is the surface a frame is drawn on.
type Display interface {
	io.Writer

	// Clear wipes the previous frame.
	Clear() error
}

// Console draws frames on a terminal.
type Console struct {
	out *termenv.Output
}

// NewConsole creates a console display writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{out: termenv.NewOutput(w)}
}

func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Clear erases the screen and moves the cursor home.
func (c *Console) Clear() error {
	c.out.ClearScreen()
	return nil
}
