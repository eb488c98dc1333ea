package engine

// BallotStatus tracks the voting phase of a round.
type BallotStatus string

const (
	BallotClosed   BallotStatus = "closed"
	BallotOpen     BallotStatus = "open"
	BallotResolved BallotStatus = "resolved"
)

// Result is the terminal artifact of a resolved vote.
type Result struct {
	AccusedID string
	Tally     map[string]int
	WasSpy    bool
}

// Ballot collects one vote per eligible voter and resolves once every
// eligible voter has cast. Re-votes before resolution overwrite the earlier
// vote. Ties break to the first accused player to reach the winning count,
// in cast order.
type Ballot struct {
	status BallotStatus
	votes  map[string]string
	order  []string // voter IDs in first-cast order
	result *Result
}

func NewBallot() *Ballot {
	return &Ballot{
		status: BallotClosed,
		votes:  make(map[string]string),
	}
}

func (b *Ballot) Status() BallotStatus { return b.status }

// Open starts accepting votes. Opening an already-open ballot is a no-op;
// a resolved ballot stays resolved.
func (b *Ballot) Open() {
	if b.status == BallotClosed {
		b.status = BallotOpen
	}
}

// Cast records voterID's accusation. The caller vouches that both IDs are
// eligible; the ballot only enforces phase rules and the overwrite policy.
func (b *Ballot) Cast(voterID, accusedID string) error {
	switch b.status {
	case BallotResolved:
		return ErrVotingClosed
	case BallotClosed:
		return ErrVotingNotOpen
	}
	if _, voted := b.votes[voterID]; !voted {
		b.order = append(b.order, voterID)
	}
	b.votes[voterID] = accusedID
	return nil
}

// Withdraw discards a voter's pending vote, e.g. when they leave the room
// before resolution.
func (b *Ballot) Withdraw(voterID string) {
	if b.status == BallotResolved {
		return
	}
	if _, voted := b.votes[voterID]; !voted {
		return
	}
	delete(b.votes, voterID)
	for i, id := range b.order {
		if id == voterID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *Ballot) VoterCount() int { return len(b.votes) }

// TryResolve tallies and freezes the result once the number of distinct
// voters reaches eligible. The accused with the highest count wins; on a tie
// the first accused to have reached that count in cast order wins.
func (b *Ballot) TryResolve(eligible int, spyID string) (*Result, bool) {
	if b.status != BallotOpen || eligible == 0 || len(b.votes) < eligible {
		return nil, false
	}

	tally := make(map[string]int, len(b.votes))
	for _, accused := range b.votes {
		tally[accused]++
	}

	accusedID := ""
	best := 0
	for _, voterID := range b.order {
		accused := b.votes[voterID]
		if tally[accused] > best {
			best = tally[accused]
			accusedID = accused
		}
	}

	b.result = &Result{
		AccusedID: accusedID,
		Tally:     tally,
		WasSpy:    accusedID == spyID,
	}
	b.status = BallotResolved
	return b.result, true
}

// Result returns the frozen outcome, or nil before resolution.
func (b *Ballot) Result() *Result { return b.result }
