package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGoogleUUIDGenerator_Unique(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()
	first := gen.New()
	second := gen.New()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("a", "b")
	assert.Equal(t, "a", gen.New())
	assert.Equal(t, "b", gen.New())
	assert.Equal(t, "b", gen.New())

	assert.Equal(t, "", uuid.NewSequenceGenerator().New())
}
