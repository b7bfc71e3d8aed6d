// Package part implements the editor and display surfaces of a message
// content part and the store contract they share with the host.
package part

import (
	"context"
	"errors"
	"fmt"
)

// Record is the persisted state of one content part.
// A nil *Record means the part has never been saved.
type Record struct {
	Message string `json:"message"`
}

// Store is the host-owned persistence for a single content part.
// Load returns a nil record, and no error, when nothing was ever saved.
type Store interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, rec *Record) error
}

// ErrStorage matches every storage fault via errors.Is.
var ErrStorage = errors.New("storage fault")

// StorageError is a failure surfaced by a Store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s record: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is reports ErrStorage as a match so callers need not know the concrete type.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// storageFault classifies err as a storage fault, keeping an existing classification.
func storageFault(op string, err error) error {
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
