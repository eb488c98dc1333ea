package room

// Msg is the sealed set of messages a Room actor accepts. All mutation of
// room state happens inside the actor loop, so concurrent commands for the
// same room apply one at a time in receipt order.
type Msg interface{ isRoomMsg() }

// Join adds a player by display name, or re-attaches to an existing member
// with that exact name (reconnect support).
type Join struct {
	Name  string
	Reply chan JoinReply
}

func (Join) isRoomMsg() {}

type JoinReply struct {
	PlayerID string
	Players  []Member
}

// Subscribe registers an outbox for this player's personalized event feed.
type Subscribe struct {
	PlayerID string
	Outbox   chan Event
}

func (Subscribe) isRoomMsg() {}

// Unsubscribe releases the feed without removing membership; the player can
// reconnect later under the same name.
type Unsubscribe struct{ PlayerID string }

func (Unsubscribe) isRoomMsg() {}

// Start begins a round (host only). A non-positive time limit means an
// untimed round; otherwise the limit is clamped to [1,30] minutes.
type Start struct {
	RequesterID      string
	TimeLimitMinutes int
	Reply            chan error
}

func (Start) isRoomMsg() {}

// End aborts the current round (host only).
type End struct {
	RequesterID string
	Reply       chan error
}

func (End) isRoomMsg() {}

// OpenVoting opens the vote without waiting for the timer (host only).
type OpenVoting struct {
	RequesterID string
	Reply       chan error
}

func (OpenVoting) isRoomMsg() {}

// Vote accuses a player of being the spy.
type Vote struct {
	VoterID   string
	AccusedID string
	Reply     chan error
}

func (Vote) isRoomMsg() {}

// Exit removes a player entirely. Emptying the room shuts the actor down.
type Exit struct {
	PlayerID string
	Reply    chan error
}

func (Exit) isRoomMsg() {}

// GetView reflects internal state without data races; used by the HTTP read
// path and tests.
type GetView struct{ Reply chan View }

func (GetView) isRoomMsg() {}

type Shutdown struct{}

func (Shutdown) isRoomMsg() {}
