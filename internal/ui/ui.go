// Package ui defines the shared contracts implemented by terminal interface
// elements across the widget kit.
package ui

// Renderable is any element that can render itself to a string for display.
type Renderable interface {
	View() string
}
