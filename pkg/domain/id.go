package domain

import "github.com/google/uuid"

// ParseID parses the canonical text form of any of the uuid based ids.
func ParseID[T ~[16]byte](s string) (T, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return T{}, err
	}

	return T(u), nil
}

// NewID returns a random id.
func NewID[T ~[16]byte]() T {
	return T(uuid.New())
}
