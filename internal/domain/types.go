package domain

// Player identifies the owner of a cell. Empty marks a blank cell.
type Player uint8

const (
	Empty Player = iota
	PlayerOne
	PlayerTwo
)

// Opponent returns the other side. Empty has no opponent and is returned unchanged.
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return Empty
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	}
	return "empty"
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	// MaxMoves is the number of placements that fills the grid.
	MaxMoves = Rows * Columns
)

// NoMove is the column reported when there is nothing left to play.
const NoMove = -1

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusDraw       GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnOutOfRange Error = "column out of range"
	ErrColumnFull       Error = "column is full"
	ErrGameOver         Error = "game is already over"
)
