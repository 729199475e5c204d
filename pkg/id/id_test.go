package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsUniqueAndOrdered(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 1000; i++ {
		got := New()
		assert.Len(t, got, 26)
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true

		// Monotonic entropy keeps same-millisecond IDs increasing.
		assert.Greater(t, got, prev)
		prev = got
	}
}
