// Package uuid wraps id generation so battle records can be given
// deterministic ids in tests
package uuid

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating unique ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with google/uuid v4 values
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator hands out ids from a fixed list, then repeats the last one
type SequenceGenerator struct {
	ids  []string
	next int
}

// NewSequenceGenerator creates a generator for tests
func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

// New returns the next id in the sequence
func (g *SequenceGenerator) New() string {
	if len(g.ids) == 0 {
		return ""
	}
	if g.next >= len(g.ids) {
		return g.ids[len(g.ids)-1]
	}
	id := g.ids[g.next]
	g.next++
	return id
}
