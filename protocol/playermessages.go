package protocol

// InboundMessage is a message from Player to GameEngine
type InboundMessage struct {
	PlayerID string `json:"playerID"`
	Command  Cmd    `json:"command"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// OutboundMessage is a message from GameEngine to Player.
// Board holds one row of render codes per board row:
// closed 0-9, flagged 10-19, open 20-29, where n%10 is the
// adjacent mine count and 9 is a mine.
type OutboundMessage struct {
	GameID         string  `json:"gameID"`
	PlayerID       string  `json:"playerID,omitempty"`
	Command        Cmd     `json:"command"`
	Message        string  `json:"message,omitempty"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Board          [][]int `json:"board"`
	FieldsOpened   int     `json:"fieldsOpened"`
	FlagsRemaining int     `json:"flagsRemaining"`
	Outcome        string  `json:"outcome"`
	Error          string  `json:"error,omitempty"`
}
