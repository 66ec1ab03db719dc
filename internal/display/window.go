// Package display shows annotated frames and polls the keyboard.
package display

import (
	"sync"

	"gocv.io/x/gocv"
)

// NoKey is returned by PollKey when no key was pressed.
const NoKey = -1

// Sink renders frames and reports key presses.
type Sink interface {
	// Show renders the frame. The sink does not take ownership of it.
	Show(frame *gocv.Mat)
	// PollKey waits up to delayMs milliseconds for a key press and returns
	// its code, or NoKey.
	PollKey(delayMs int) int
	Close() error
}

// Window is a Sink backed by an OpenCV highgui window.
type Window struct {
	title  string
	window *gocv.Window
	mu     sync.Mutex
}

// NewWindow creates a Window with the given title.
// The native window is created on the first Show.
func NewWindow(title string) *Window {
	return &Window{title: title}
}

// Show renders the frame in the window.
func (w *Window) Show(frame *gocv.Mat) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.window == nil {
		w.window = gocv.NewWindow(w.title)
	}
	w.window.IMShow(*frame)
}

// PollKey waits for a key press. It returns NoKey before the first Show.
func (w *Window) PollKey(delayMs int) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.window == nil {
		return NoKey
	}
	return w.window.WaitKey(delayMs)
}

// Close destroys the native window if it was created.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.window == nil {
		return nil
	}
	err := w.window.Close()
	w.window = nil
	return err
}

// IsExitKey reports whether a polled key code matches the exit key.
// Only the low byte is compared.
func IsExitKey(key int, exit byte) bool {
	return key != NoKey && key&0xFF == int(exit)
}
