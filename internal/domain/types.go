package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player slot. Empty maps to Empty.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Dimensions fixes the grid size for one game.
type Dimensions struct {
	Width  int
	Height int
}

var DefaultDimensions = Dimensions{Width: Columns, Height: Rows}

func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// Cells is the number of cells on the grid.
func (d Dimensions) Cells() int {
	return d.Width * d.Height
}

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusDraw       GameStatus = "draw"
)

// Outcome is a tagged variant: in progress, won by a player, or drawn.
// Winner is only meaningful when Status is StatusWon.
type Outcome struct {
	Status GameStatus
	Winner PlayerID
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Won(player PlayerID) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (o Outcome) IsTerminal() bool {
	return o.Status != StatusInProgress
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusWon:
		if o.Winner == Player1 {
			return "player1_won"
		}
		return "player2_won"
	case StatusDraw:
		return "draw"
	}
	return "in_progress"
}

// GameMode selects how player slots are assigned to controllers.
type GameMode int

const (
	Singleplayer GameMode = iota
	LocalMultiplayer
)

func (m GameMode) String() string {
	switch m {
	case Singleplayer:
		return "singleplayer"
	case LocalMultiplayer:
		return "local"
	}
	return "unknown"
}

// ParseGameMode accepts the names used on the command line and in the environment.
func ParseGameMode(s string) (GameMode, error) {
	switch s {
	case "singleplayer", "single", "sp":
		return Singleplayer, nil
	case "local", "multiplayer", "localmultiplayer", "mp":
		return LocalMultiplayer, nil
	}
	return GameMode(-1), ErrUnknownMode
}

// ControllerID tags the actor allowed to act for a player slot.
type ControllerID string

const (
	ControllerLocal ControllerID = "LOCAL"
	ControllerAI    ControllerID = "AI"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn     Error = "invalid column"
	ErrColumnFull        Error = "column is full"
	ErrGameOver          Error = "game is already decided"
	ErrInvalidDimensions Error = "board dimensions must be positive"
	ErrUnknownMode       Error = "unknown game mode"
)
