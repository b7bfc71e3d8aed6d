package part

import "context"

// Editor is the form surface used to change a part's message.
// Build a new Editor per request; it holds no state between requests.
type Editor struct {
	store Store

	// Field is the value shown in, and submitted from, the message input.
	Field string
}

// NewEditor creates an editor backed by store.
func NewEditor(store Store) *Editor {
	return &Editor{store: store}
}

// Open pre-fills Field from the stored record.
// It only loads on a fresh entry; on a submission echo the in-progress
// value must win over persisted state, so nothing is read.
func (e *Editor) Open(ctx context.Context, fresh bool) error {
	if !fresh {
		return nil
	}

	rec, err := e.store.Load(ctx)
	if err != nil {
		return storageFault("loading", err)
	}

	// nil means a brand new part: keep the default value
	if rec != nil {
		e.Field = rec.Message
	}

	return nil
}

// Save persists Field as a new record, replacing whatever was stored.
// The boolean tells the host whether it may proceed to close or refresh
// the editor. There is no validation gate, so it is true whenever the
// store accepts the record.
func (e *Editor) Save(ctx context.Context, closing bool) (bool, error) {
	rec := &Record{Message: e.Field}

	if err := e.store.Save(ctx, rec); err != nil {
		return false, storageFault("saving", err)
	}

	return true, nil
}
