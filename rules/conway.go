package rules

const (
	// BirthNeighbors is the exact number of live neighbors that brings a cell to life.
	BirthNeighbors = 3
	// SurvivalNeighbors is the extra count, besides BirthNeighbors, that keeps a live cell alive.
	SurvivalNeighbors = 2
)

/*
Survives reports whether a cell is alive in the next generation.

Conway's Game of Life rules collapse to: neighbors == 3 || (alive && neighbors == 2).
Under-population (<2) and overcrowding (>3) both yield a dead cell.
*/
func Survives(aliveNeighbors int, alive bool) bool {
	return aliveNeighbors == BirthNeighbors || (alive && aliveNeighbors == SurvivalNeighbors)
}
