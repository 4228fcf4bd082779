package hex

// Player identifies one of the two Hex players.
type Player int8

const (
	// PlayerX aims to connect the top edge to the bottom edge
	PlayerX Player = 0
	// PlayerO aims to connect the left edge to the right edge
	PlayerO Player = 1
)

// Opponent returns the other player
func (p Player) Opponent() Player {
	return 1 - p
}

// CellValue returns the dataset encoding of the player's stones
func (p Player) CellValue() int8 {
	if p == PlayerX {
		return 1
	}
	return -1
}

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	}
	return "?"
}
