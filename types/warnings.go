package types

import "fmt"

// Warnings is an ordered accumulator of degradation notices. It is passed
// explicitly into each pipeline stage rather than held as process state,
// so concurrent pipeline runs never share it.
type Warnings struct {
	items []string
}

// Addf appends one formatted warning.
func (w *Warnings) Addf(format string, args ...interface{}) {
	w.items = append(w.items, fmt.Sprintf(format, args...))
}

// Add appends one warning verbatim.
func (w *Warnings) Add(msg string) {
	w.items = append(w.items, msg)
}

// Merge appends another stage's warnings, preserving order.
func (w *Warnings) Merge(other []string) {
	w.items = append(w.items, other...)
}

// List returns the accumulated warnings. The returned slice is never nil
// so JSON consumers always see an array.
func (w *Warnings) List() []string {
	if w.items == nil {
		return []string{}
	}
	return w.items
}

// Len reports how many warnings have accumulated.
func (w *Warnings) Len() int { return len(w.items) }
