package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Input is the held state of the controls during one simulation tick.
// It is a flat set of booleans so a replay can be stored as a plain slice.
type Input struct {
	Up        bool
	Down      bool
	Left      bool
	Right     bool
	Primary   bool // reserved for the platform (restart / confirm)
	Secondary bool // reserved for the platform (back / cancel)
}

// Held returns whether the given direction is held.
func (in Input) Held(d Dir) bool {
	switch d {
	case DirUp:
		return in.Up
	case DirLeft:
		return in.Left
	case DirDown:
		return in.Down
	case DirRight:
		return in.Right
	default:
		return false
	}
}

// Set marks a direction as held.
func (in *Input) Set(d Dir) {
	switch d {
	case DirUp:
		in.Up = true
	case DirLeft:
		in.Left = true
	case DirDown:
		in.Down = true
	case DirRight:
		in.Right = true
	}
}

// Empty returns true when no direction is held.
func (in Input) Empty() bool {
	return !in.Up && !in.Down && !in.Left && !in.Right
}

// String renders the held directions with the same letters ParseScript reads.
func (in Input) String() string {
	var sb strings.Builder
	for _, d := range Dirs {
		if in.Held(d) {
			sb.WriteByte(scriptLetter(d))
		}
	}
	if sb.Len() == 0 {
		return "."
	}
	return sb.String()
}

func scriptLetter(d Dir) byte {
	switch d {
	case DirUp:
		return 'U'
	case DirLeft:
		return 'L'
	case DirDown:
		return 'D'
	default:
		return 'R'
	}
}

// ParseScript turns a compact input script into one Input per tick.
//
// Each token is a letter U, D, L, R (one held direction) or '.' (nothing
// held), optionally followed by a repeat count: "R12 .3 U" is twelve ticks of
// Right, three idle ticks and one tick of Up. Letters inside brackets are
// held together for one tick: "[UR]4". Whitespace and commas are ignored.
func ParseScript(script string) ([]Input, error) {
	var out []Input
	rs := []rune(script)
	for i := 0; i < len(rs); {
		r := rs[i]
		if unicode.IsSpace(r) || r == ',' {
			i++
			continue
		}

		var in Input
		switch unicode.ToUpper(r) {
		case '.':
			i++
		case 'U', 'D', 'L', 'R':
			in.Set(letterDir(unicode.ToUpper(r)))
			i++
		case '[':
			end := i + 1
			for end < len(rs) && rs[end] != ']' {
				d := letterDir(unicode.ToUpper(rs[end]))
				if d == DirNone {
					return nil, fmt.Errorf("script: unexpected %q in group at %d", rs[end], end)
				}
				in.Set(d)
				end++
			}
			if end == len(rs) {
				return nil, fmt.Errorf("script: unterminated group at %d", i)
			}
			i = end + 1
		default:
			return nil, fmt.Errorf("script: unexpected %q at %d", r, i)
		}

		start := i
		for i < len(rs) && unicode.IsDigit(rs[i]) {
			i++
		}
		count := 1
		if i > start {
			n, err := strconv.Atoi(string(rs[start:i]))
			if err != nil {
				return nil, fmt.Errorf("script: bad repeat count: %w", err)
			}
			count = n
		}
		for ; count > 0; count-- {
			out = append(out, in)
		}
	}
	return out, nil
}

func letterDir(r rune) Dir {
	switch r {
	case 'U':
		return DirUp
	case 'L':
		return DirLeft
	case 'D':
		return DirDown
	case 'R':
		return DirRight
	default:
		return DirNone
	}
}
