// Package content provides the host side of a content part: the parts
// table, its property bags, and a part.Store bound to a single part.
package content

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// ErrPartNotFound is returned when no part has the requested ID.
var ErrPartNotFound = errors.New("part not found")

// Part is one placeable instance of the message plugin.
type Part struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Bag       json.RawMessage `json:"bag,omitempty"` // nil until first saved
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Saved reports whether the part's editor has ever saved a record.
func (p *Part) Saved() bool {
	return p.Bag != nil
}

var partColumns = []string{"id", "title", "bag", "created_at", "updated_at"}

// scanPart scans a part from a database row.
func scanPart(row interface{ Scan(...interface{}) error }) (*Part, error) {
	var p Part
	var bag sql.NullString

	if err := row.Scan(&p.ID, &p.Title, &bag, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	if bag.Valid {
		p.Bag = json.RawMessage(bag.String)
	}

	return &p, nil
}
