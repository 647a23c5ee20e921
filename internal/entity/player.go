package entity

// Mark is the content of a single board cell.
type Mark string

const (
	Empty  Mark = ""
	Cross  Mark = "X"
	Nought Mark = "O"
)

// Opponent returns the mark that moves after that one.
func (that Mark) Opponent() Mark {
	if that == Cross {
		return Nought
	}
	return Cross
}

// IsPlayer - reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == Cross || that == Nought
}

func (that Mark) String() string {
	if that == Empty {
		return " "
	}
	return string(that)
}
