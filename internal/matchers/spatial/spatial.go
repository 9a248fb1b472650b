package spatial

import (
	"github.com/go-passcheck/passcheck/internal/matching"
	"github.com/go-passcheck/passcheck/internal/numerics"
)

// Matcher runs the keyboard-walk matcher over a fixed set of graphs.
type Matcher struct {
	Graphs map[string]*Graph
}

// NewMatcher builds a Matcher scanning every layout in [Graphs].
func NewMatcher() *Matcher {
	return &Matcher{Graphs: Graphs}
}

// minRunLength is the shortest run emitted as a match: two adjacent keys
// say nothing about keyboard-walk behavior on their own.
const minRunLength = 3

// Match finds every maximal run of adjacent keys in password, for every
// graph in m.Graphs, and scores each with [runEntropy].
func (m *Matcher) Match(password string) []matching.Match {
	if m == nil {
		return nil
	}
	runes := []rune(password)
	var out []matching.Match
	for _, g := range m.Graphs {
		out = append(out, scanGraph(g, runes)...)
	}
	return out
}

// scanGraph walks runes once, extending a run while each successive pair
// of characters is adjacent on g, and emits a match each time the run
// breaks (or the password ends) if the run reached minRunLength.
func scanGraph(g *Graph, runes []rune) []matching.Match {
	n := len(runes)
	if n < minRunLength {
		return nil
	}

	var out []matching.Match
	i := 0
	for i < n-1 {
		j := i
		lastDir := -1
		turns := 0
		shifted := 0
		if g.isShiftedGlyph(runes[i]) {
			shifted++
		}

		for j < n-1 {
			dir, isShift, ok := g.direction(runes[j], runes[j+1])
			if !ok {
				break
			}
			if isShift {
				shifted++
			}
			if dir != lastDir {
				turns++
				lastDir = dir
			}
			j++
		}

		if j-i+1 >= minRunLength {
			token := string(runes[i : j+1])
			out = append(out, matching.Match{
				Pattern:      matching.KindSpatial,
				I:            i,
				J:            j,
				Token:        token,
				Graph:        g.Name,
				Turns:        turns,
				ShiftedCount: shifted,
				Entropy:      runEntropy(g, len(runes[i:j+1]), turns, shifted),
			})
		}

		if j == i {
			i++
		} else {
			i = j
		}
	}
	return out
}

// runEntropy implements the keyboard-walk entropy formula: sum, over
// every possible turn count from 1 to turns, the number of distinct runs
// of this length with that many turns, then add the entropy contributed
// by which of the run's characters were typed with the shift key.
func runEntropy(g *Graph, length, turns, shiftedCount int) float64 {
	possibilities := 0.0
	for i := 2; i <= length; i++ {
		maxTurns := turns
		if i-1 < maxTurns {
			maxTurns = i - 1
		}
		for t := 1; t <= maxTurns; t++ {
			possibilities += numerics.Binomial(i-1, t-1) * float64(g.StartingPositions) * pow(g.AverageDegree, t)
		}
	}

	entropy := 1.0
	if possibilities > 0 {
		entropy = numerics.Log2(possibilities)
	}

	if shiftedCount > 0 {
		unshiftedCount := length - shiftedCount
		shiftedPossibilities := 0.0
		limit := shiftedCount
		if unshiftedCount < limit {
			limit = unshiftedCount
		}
		for i := 0; i <= limit+1; i++ {
			shiftedPossibilities += numerics.Binomial(shiftedCount+unshiftedCount, i)
		}
		entropy += numerics.Log2(shiftedPossibilities)
	}
	return entropy
}

// pow is integer-exponent float64 power; turn counts are small so a plain
// loop is clearer here than importing math for a single call site.
func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
