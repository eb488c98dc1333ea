package types

import "time"

// Client -> Server websocket messages. The room code and player identity are
// bound at connection time, so commands only carry their own payload.
//
// StartGame:   time_limit_minutes (optional; 0 = untimed round)
// EndGame:     {}
// OpenVoting:  {}
// CastVote:    accused_id
// ExitRoom:    {}
type ClientMessage struct {
	Type             string `json:"type"`
	TimeLimitMinutes int    `json:"time_limit_minutes,omitempty"`
	AccusedID        string `json:"accused_id,omitempty"`
}

type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Server -> Client websocket messages. GameStarted is personalized: Role is
// the recipient's own role and Location is omitted for the spy.
//
// Types: RoomJoined | MembershipChanged | GameStarted | VotingOpened |
// VoteCast | VotingResolved | GameEnded | Error
type ServerMessage struct {
	Type        string         `json:"type"`
	Code        string         `json:"code,omitempty"`
	PlayerID    string         `json:"player_id,omitempty"`
	Players     []PlayerInfo   `json:"players,omitempty"`
	Role        string         `json:"role,omitempty"`
	Location    string         `json:"location,omitempty"`
	GameEndTime *time.Time     `json:"game_end_time,omitempty"`
	VoterID     string         `json:"voter_id,omitempty"`
	AccusedID   string         `json:"accused_id,omitempty"`
	Tally       map[string]int `json:"tally,omitempty"`
	WasSpy      *bool          `json:"was_spy,omitempty"`
	Error       *ErrorInfo     `json:"error,omitempty"`
}
