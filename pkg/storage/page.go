package storage

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// cursorSeparator joins the two parts of an encoded cursor. It appears in
// neither RFC3339 timestamps nor uuids.
const cursorSeparator = "_"

// Cursor is the position of a row in a listing ordered by created_at DESC,
// id DESC. A cursor without an ID only compares creation times.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// ParseCursor decodes a cursor produced by Cursor.String. A bare RFC3339
// timestamp is accepted too.
func ParseCursor(s string) (Cursor, error) {
	ts, id, hasID := strings.Cut(s, cursorSeparator)
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return Cursor{}, err
	}

	c := Cursor{CreatedAt: createdAt}
	if hasID {
		if c.ID, err = uuid.Parse(id); err != nil {
			return Cursor{}, err
		}
	}

	return c, nil
}

func (c Cursor) IsZero() bool {
	return c.CreatedAt.IsZero()
}

func (c Cursor) String() string {
	s := c.CreatedAt.UTC().Format(time.RFC3339Nano)
	if c.ID != uuid.Nil {
		s += cursorSeparator + c.ID.String()
	}

	return s
}

// PageQuery selects a page of a listing ordered newest first.
type PageQuery struct {
	// Cursor restricts results to rows after it in listing order. Zero means the first page.
	Cursor Cursor
	Limit  uint
}

// Page is a page of a listing together with the cursor of the next page.
type Page[T any] struct {
	Items []T
	// NextCursor is nil when there is no next page.
	NextCursor *Cursor
}
