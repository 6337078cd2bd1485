package utils

import "time"

// Stats tracks population over a run
type Stats struct {
	TotalGenerations  int
	Population        int
	PeakPopulation    int
	AveragePopulation float64
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the population of a generation
func (s *Stats) Update(generation int, population int) {
	s.TotalGenerations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Running mean over generations 0..generation
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(generation+1)
}

// Elapsed returns the time since the run started
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
