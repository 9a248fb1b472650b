package spatial

// qwertyRows is the standard US qwerty layout, row by row, each cell
// holding its unshifted character and (if any) shifted character.
var qwertyRows = [][]string{
	{"`~", "1!", "2@", "3#", "4$", "5%", "6^", "7&", "8*", "9(", "0)", "-_", "=+"},
	{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[{", "]}", `\|`},
	{"a", "s", "d", "f", "g", "h", "j", "k", "l", ";:", "'\""},
	{"z", "x", "c", "v", "b", "n", "m", ",<", ".>", "/?"},
}

// dvorakRows is the Dvorak layout.
var dvorakRows = [][]string{
	{"`~", "1!", "2@", "3#", "4$", "5%", "6^", "7&", "8*", "9(", "0)", "[{", "]}"},
	{"'\"", ",<", ".>", "p", "y", "f", "g", "c", "r", "l", "/?", "=+", `\|`},
	{"a", "o", "e", "u", "i", "d", "h", "t", "n", "s", "-_"},
	{";:", "q", "j", "k", "x", "b", "m", "w", "v", "z"},
}

// keypadRows is a standard numeric keypad (no shift state).
var keypadRows = [][]string{
	{"/", "*", "-"},
	{"7", "8", "9", "+"},
	{"4", "5", "6"},
	{"1", "2", "3"},
	{"0", ".", "="},
}

// macKeypadRows is the macOS numeric keypad (same keys, slightly
// different plus-key placement from the PC layout above).
var macKeypadRows = [][]string{
	{"=", "/", "*"},
	{"7", "8", "9", "-"},
	{"4", "5", "6", "+"},
	{"1", "2", "3"},
	{"0", "."},
}

// Graphs is the fixed set of keyboard layouts the matcher scans a
// password against, matching the names used in Match.Graph.
var Graphs = map[string]*Graph{
	"qwerty":     buildSlanted("qwerty", qwertyRows),
	"dvorak":     buildSlanted("dvorak", dvorakRows),
	"keypad":     buildAligned("keypad", keypadRows),
	"mac_keypad": buildAligned("mac_keypad", macKeypadRows),
}
