package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Pattern names understood by PatternByName
const (
	PatternBlinker = "blinker"
	PatternGlider  = "glider"
	PatternBlock   = "block"
)

// Blinker is a horizontal three-cell oscillator with period 2
func Blinker() [][]bool {
	return [][]bool{
		{true, true, true},
	}
}

// Glider moves one cell down and right every four generations
func Glider() [][]bool {
	return [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
}

// Block is the 2x2 still life
func Block() [][]bool {
	return [][]bool{
		{true, true},
		{true, true},
	}
}

// PatternByName looks up a pattern, case-insensitively
func PatternByName(name string) ([][]bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PatternBlinker:
		return Blinker(), nil
	case PatternGlider:
		return Glider(), nil
	case PatternBlock:
		return Block(), nil
	}
	return nil, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
}

// Place copies the live cells of pattern into dst with its top-left corner at (row, col).
// Cells falling outside dst are dropped.
func Place(dst, pattern [][]bool, row, col int) {
	for y, line := range pattern {
		r := row + y
		if r < 0 || r >= len(dst) {
			continue
		}
		for x, alive := range line {
			c := col + x
			if alive && c >= 0 && c < len(dst[r]) {
				dst[r][c] = true
			}
		}
	}
}
