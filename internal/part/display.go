package part

import "context"

// Display renders a part's message read-only.
type Display struct {
	store Store

	// Text is the rendered label.
	Text string
}

// NewDisplay creates a display backed by store.
func NewDisplay(store Store) *Display {
	return &Display{store: store}
}

// Render loads the stored message into Text on a fresh entry.
// Postbacks skip the load; the label keeps whatever the page carried.
// A part that was never saved renders as an empty label.
func (d *Display) Render(ctx context.Context, fresh bool) error {
	if !fresh {
		return nil
	}

	rec, err := d.store.Load(ctx)
	if err != nil {
		return storageFault("loading", err)
	}

	if rec == nil {
		d.Text = ""
		return nil
	}

	d.Text = rec.Message
	return nil
}
