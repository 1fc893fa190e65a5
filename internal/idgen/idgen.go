// Package idgen provides the generators used to mint post identifiers.
package idgen

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"github.com/oklog/ulid"
)

// Generator returns a new universally-unique opaque token on every call.
// Implementations must be safe for concurrent use.
type Generator func() string

// Supported id formats for ByName.
const (
	FormatUUID      = "uuid"
	FormatULID      = "ulid"
	FormatShortUUID = "shortuuid"
)

// NewUUID returns a new UUID Version 4.
func NewUUID() string {
	return uuid.New().String()
}

// NewShortUUID returns a new short UUID.
func NewShortUUID() string {
	return shortuuid.New()
}

// NewULID returns a new ULID. ULIDs sort by creation time.
func NewULID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// ByName resolves a configured id format. An empty name means uuid.
func ByName(name string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatUUID:
		return NewUUID, nil
	case FormatULID:
		return NewULID, nil
	case FormatShortUUID:
		return NewShortUUID, nil
	default:
		return nil, fmt.Errorf("unknown id format %q", name)
	}
}

// Sequence returns a deterministic generator yielding prefix-1, prefix-2, ...
func Sequence(prefix string) Generator {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
