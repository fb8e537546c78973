package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator issues identifiers for lessons, resources, assessments and
// products. Identifiers are never reused.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceIDs issues "<prefix>-1", "<prefix>-2", ... and is safe for
// concurrent use. Useful wherever output must be reproducible.
type SequenceIDs struct {
	prefix string
	n      atomic.Int64
}

func NewSequenceIDs(prefix string) *SequenceIDs {
	return &SequenceIDs{prefix: prefix}
}

func (s *SequenceIDs) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

func idsOrDefault(ids IDGenerator) IDGenerator {
	if ids == nil {
		return UUIDGenerator{}
	}
	return ids
}
