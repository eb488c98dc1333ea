package room

import "time"

type EventType string

const (
	EvtMembershipChanged EventType = "MembershipChanged"
	EvtGameStarted       EventType = "GameStarted"
	EvtVotingOpened      EventType = "VotingOpened"
	EvtVoteCast          EventType = "VoteCast"
	EvtVotingResolved    EventType = "VotingResolved"
	EvtGameEnded         EventType = "GameEnded"
)

// Event is what subscribers receive. GameStarted events are personalized per
// recipient: Role is the recipient's own role and Location is empty for the
// spy, so the secret never crosses the transport to the spy's client.
type Event struct {
	Type        EventType
	Players     []Member
	Role        string
	Location    string
	GameEndTime time.Time
	VoterID     string
	AccusedID   string
	Tally       map[string]int
	WasSpy      bool
}
