package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.FixedZone("X", 7200))
	c := NewFixed(start)
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, start.Equal(c.Now()))

	c.Advance(time.Hour)
	assert.Equal(t, 8, c.Now().Hour())

	c.Set(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, c.Now().Year())
}

func TestSystemIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, System.Now().Location())
}
