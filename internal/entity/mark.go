package entity

// Mark is the state of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

const (
	// Human plays X and always moves first.
	Human = MarkX
	// Bot plays O.
	Bot = MarkO
)

func (m Mark) Valid() bool {
	return m <= MarkO
}

// Opponent returns the other player's mark. Empty has no opponent and is returned as is.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// symbol is the single byte used in board keys.
func (m Mark) symbol() byte {
	switch m {
	case MarkX:
		return 'X'
	case MarkO:
		return 'O'
	default:
		return '.'
	}
}
