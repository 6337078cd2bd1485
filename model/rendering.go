package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	cellAlive   = '*'
	cellDead    = 'O'
	cellDeadAlt = '.'

	generationLabel = "NumGeneration: "
)

// TextRenderer writes boards in the plain text dump format:
// a blank line, "NumGeneration: <n>", then one line per row of '*' (alive) and 'O' (dead).
type TextRenderer struct {
	W io.Writer
}

// Render writes one generation dump
func (r *TextRenderer) Render(generation int, cells [][]bool) error {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(generationLabel)
	fmt.Fprintf(&sb, "%d\n", generation)
	for _, row := range cells {
		for _, alive := range row {
			if alive {
				sb.WriteByte(cellAlive)
			} else {
				sb.WriteByte(cellDead)
			}
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(r.W, sb.String()); err != nil {
		return errors.Wrapf(err, "[Render] failed to write generation %d", generation)
	}
	return nil
}

// Title writes a run heading: two blank lines, then name
func (r *TextRenderer) Title(name string) error {
	if _, err := io.WriteString(r.W, "\n\n"+name+"\n"); err != nil {
		return errors.Wrapf(err, "[Title] failed to write %q", name)
	}
	return nil
}

// maxLineSize bounds a single row of a text grid
const maxLineSize = 16 << 20

// ParseGrid reads a text grid, one row per line, '*' alive and 'O' or '.' dead.
// Blank lines are skipped. A single "NumGeneration:" label may precede the rows;
// a dump holding more than one generation is rejected with ErrMultipleGenerations.
// Row lengths are not checked here; New does that.
func ParseGrid(r io.Reader) ([][]bool, error) {
	var (
		grid     [][]bool
		lineNo   int
		labelled bool
		scanner  = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, generationLabel) {
			if labelled || len(grid) > 0 {
				return nil, errors.Wrapf(ErrMultipleGenerations, "[ParseGrid] second generation starts at line %d", lineNo)
			}
			labelled = true
			continue
		}

		row := make([]bool, 0, len(line))
		column := 0
		for _, ch := range line {
			column++
			switch ch {
			case cellAlive:
				row = append(row, true)
			case cellDead, cellDeadAlt:
				row = append(row, false)
			default:
				return nil, errors.Wrapf(ErrInvalidCell, "[ParseGrid] line %d, column %d: %q", lineNo, column, ch)
			}
		}
		grid = append(grid, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "[ParseGrid] failed to read grid at line %d", lineNo+1)
	}
	return grid, nil
}
