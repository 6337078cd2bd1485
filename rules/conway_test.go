package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurvives(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 2 || n == 3, Survives(n, true), "live cell with %d neighbors", n)
		assert.Equal(t, n == 3, Survives(n, false), "dead cell with %d neighbors", n)
	}
}
