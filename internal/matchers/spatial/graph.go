// Package spatial implements the keyboard-walk matcher: it builds
// adjacency graphs from keyboard layouts and finds runs of
// adjacent keys in a password, scoring them by how many keys could
// start such a run, how connected the keyboard is, and how many turns
// and shift-key presses the run required.
package spatial

// Graph is the adjacency structure for one keyboard layout. Neighbors is
// keyed by a key's unshifted character; each entry holds exactly
// NumDirections ordered slots (empty string for "no neighbor in that
// direction" — the slot still occupies its index so direction numbers
// stay consistent across keys). A non-empty slot's first byte is the
// unshifted neighbor reached in that direction; an optional second byte
// is that neighbor's shifted form.
type Graph struct {
	Name              string
	NumDirections     int
	Neighbors         map[rune][]string
	aliasBase         map[rune]rune // shifted glyph -> physical (unshifted) key
	StartingPositions int
	AverageDegree     float64
}

// baseOf returns the physical key for r: r itself if r is already an
// unshifted key, or the key r is the shifted form of.
func (g *Graph) baseOf(r rune) rune {
	if b, ok := g.aliasBase[r]; ok {
		return b
	}
	return r
}

// direction returns the adjacency-slot index connecting a to b, and
// whether reaching b from a required the shift key, or ok=false if a and
// b are not adjacent on this graph.
func (g *Graph) direction(a, b rune) (idx int, shifted bool, ok bool) {
	slots := g.Neighbors[g.baseOf(a)]
	for i, slot := range slots {
		if slot == "" {
			continue
		}
		if rune(slot[0]) == b {
			return i, false, true
		}
		if len(slot) > 1 && rune(slot[1]) == b {
			return i, true, true
		}
	}
	return -1, false, false
}

// isShiftedGlyph reports whether r is reachable only via a shifted slot
// somewhere in the graph (used to seed a run's initial shift count when
// the run's first character is itself a shift-glyph, e.g. '!').
func (g *Graph) isShiftedGlyph(r rune) bool {
	_, isAlias := g.aliasBase[r]
	return isAlias
}

// slantedDirOrder documents the fixed direction order used by
// buildSlanted: W, NW, NE, E, SE, SW.
const slantedDirOrder = 6

// alignedDirOrder documents the fixed direction order used by
// buildAligned: N, NE, E, SE, S, SW, W, NW.
const alignedDirOrder = 8

// buildSlanted builds a 6-direction hex graph from rows, where rows[r][c]
// is the 1-2 character cell for row r, column c (first character
// unshifted, optional second character shifted). Rows stagger
// rightwards going down, each column occupying two half-key position
// units, matching a typewriter-style keyboard.
func buildSlanted(name string, rows [][]string) *Graph {
	g := &Graph{Name: name, NumDirections: slantedDirOrder, Neighbors: map[rune][]string{}, aliasBase: map[rune]rune{}}

	rowOffset := make([]int, len(rows))
	for r := range rows {
		rowOffset[r] = r
	}

	posIndex := make([]map[int]int, len(rows))
	for r, row := range rows {
		posIndex[r] = make(map[int]int, len(row))
		for c := range row {
			posIndex[r][2*c+rowOffset[r]] = c
		}
	}

	cellAt := func(r, c int) (string, bool) {
		if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
			return "", false
		}
		return rows[r][c], true
	}

	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			base := rune(cell[0])
			if len(cell) > 1 {
				g.aliasBase[rune(cell[1])] = base
			}

			pos := 2*c + rowOffset[r]
			slots := make([]string, slantedDirOrder)

			// W, E: same row.
			if neighbor, ok := cellAt(r, c-1); ok {
				slots[0] = neighbor
			}
			if neighbor, ok := cellAt(r, c+1); ok {
				slots[3] = neighbor
			}
			// NW, NE: row above, at pos-1 and pos+1.
			if cc, ok := posIndex[rowSafe(r-1, len(rows))][pos-1]; ok && r-1 >= 0 {
				slots[1] = rows[r-1][cc]
			}
			if cc, ok := posIndex[rowSafe(r-1, len(rows))][pos+1]; ok && r-1 >= 0 {
				slots[2] = rows[r-1][cc]
			}
			// SE, SW: row below, at pos+1 and pos-1.
			if cc, ok := posIndex[rowSafe(r+1, len(rows))][pos+1]; ok && r+1 < len(rows) {
				slots[4] = rows[r+1][cc]
			}
			if cc, ok := posIndex[rowSafe(r+1, len(rows))][pos-1]; ok && r+1 < len(rows) {
				slots[5] = rows[r+1][cc]
			}

			g.Neighbors[base] = slots
		}
	}

	g.finalize()
	return g
}

// rowSafe clamps r into a valid index for looking up posIndex without a
// separate bounds check at every call site; callers still gate the
// lookup on the original bounds condition before using the result.
func rowSafe(r, n int) int {
	if r < 0 {
		return 0
	}
	if r >= n {
		return n - 1
	}
	return r
}

// buildAligned builds an 8-direction grid graph (N, NE, E, SE, S, SW, W,
// NW) from rows, where rows[r][c] is a single-character cell (numeric
// keypads have no shifted state).
func buildAligned(name string, rows [][]string) *Graph {
	g := &Graph{Name: name, NumDirections: alignedDirOrder, Neighbors: map[rune][]string{}, aliasBase: map[rune]rune{}}

	cellAt := func(r, c int) (string, bool) {
		if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
			return "", false
		}
		return rows[r][c], true
	}

	deltas := [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			base := rune(cell[0])
			slots := make([]string, alignedDirOrder)
			for i, d := range deltas {
				if neighbor, ok := cellAt(r+d[0], c+d[1]); ok {
					slots[i] = neighbor
				}
			}
			g.Neighbors[base] = slots
		}
	}

	g.finalize()
	return g
}

// finalize computes StartingPositions and AverageDegree from Neighbors.
func (g *Graph) finalize() {
	starting := 0
	total := 0
	for _, slots := range g.Neighbors {
		degree := 0
		for _, s := range slots {
			if s != "" {
				degree++
			}
		}
		if degree > 0 {
			starting++
			total += degree
		}
	}
	g.StartingPositions = starting
	if starting > 0 {
		g.AverageDegree = float64(total) / float64(starting)
	}
}
