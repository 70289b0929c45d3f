package solution

// Part identifies one half of a puzzle. The zero value is not a valid part.
type Part int

const (
	// Part1 is the first half of a puzzle.
	Part1 Part = iota + 1
	// Part2 is the second half, unlocked by solving the first.
	Part2
)

// String returns the label shown to users, "Part 1" or "Part 2".
func (p Part) String() string {
	switch p {
	case Part1:
		return "Part 1"
	case Part2:
		return "Part 2"
	default:
		return "unknown"
	}
}

// MarshalText encodes the part as its label.
func (p Part) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
