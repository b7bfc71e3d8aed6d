package content

import (
	"context"
	"encoding/json"

	"github.com/evcraddock/message-part/internal/part"
)

var _ part.Store = (*Store)(nil)

// Store persists a part.Record as the JSON property bag of one part.
type Store struct {
	repo   *Repository
	partID string
}

// PartID returns the ID of the part this store is bound to.
func (s *Store) PartID() string {
	return s.partID
}

// Load decodes the part's bag. A never-saved part yields a nil record.
func (s *Store) Load(ctx context.Context) (*part.Record, error) {
	bag, err := s.repo.LoadBag(ctx, s.partID)
	if err != nil {
		return nil, &part.StorageError{Op: "loading", Err: err}
	}
	if bag == nil {
		return nil, nil
	}

	var rec part.Record
	if err := json.Unmarshal(bag, &rec); err != nil {
		return nil, &part.StorageError{Op: "decoding", Err: err}
	}

	return &rec, nil
}

// Save encodes rec and replaces the part's bag.
func (s *Store) Save(ctx context.Context, rec *part.Record) error {
	bag, err := json.Marshal(rec)
	if err != nil {
		return &part.StorageError{Op: "encoding", Err: err}
	}

	if err := s.repo.SaveBag(ctx, s.partID, bag); err != nil {
		return &part.StorageError{Op: "saving", Err: err}
	}

	return nil
}
