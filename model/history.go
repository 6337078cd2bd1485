package model

// History keeps the most recent board hashes to spot still lifes and short oscillators
type History struct {
	size   int
	hashes []string
}

// NewHistory remembers up to size hashes; size below 1 is treated as 1
func NewHistory(size int) *History {
	return &History{size: max(1, size)}
}

// Record appends hash and drops the oldest entry once full
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Period returns how many generations ago hash was last seen, or 0 if it is not in the history.
// A still life has period 1, a blinker period 2.
func (h *History) Period(hash string) int {
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			return len(h.hashes) - i
		}
	}
	return 0
}

// IsStagnant reports whether hash repeats a recorded state
func (h *History) IsStagnant(hash string) bool {
	return h.Period(hash) > 0
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}
