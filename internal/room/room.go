package room

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spyfallhq/backend/internal/engine"
)

var ErrNotHost = errors.New("only the host may do that")
var ErrGameNotStarted = errors.New("game is not in progress")
var ErrGameInProgress = errors.New("game already in progress")

// Status is the room lifecycle phase. Legal transitions are
// waiting→started, started→ended and ended→started (restart).
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusStarted Status = "started"
	StatusEnded   Status = "ended"
)

// Member is one seat in the room. Membership is an ordered sequence, not a
// map: the host is always the first member, so host identity is derived and
// promotes automatically when the current host leaves.
type Member struct {
	ID   string
	Name string
}

// View is a race-free copy of room state for the read path and tests. It
// includes the secret fields; HTTP handlers expose only the public subset.
type View struct {
	Code        string
	Status      Status
	Players     []Member
	HostID      string
	VotingOpen  bool
	GameEndTime time.Time
	Location    string
	SpyID       string
	Roles       map[string]string
	PlayerNames map[string]string
	Result      *engine.Result
	NumClients  int
}

const (
	minTimeLimit = 1 * time.Minute
	maxTimeLimit = 30 * time.Minute
)

// Room owns all mutable state of one game session and processes messages
// from a single goroutine.
type Room struct {
	code   string
	inbox  chan Msg
	table  engine.Table
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc

	now     func() time.Time
	tickDur time.Duration
	onEmpty func()

	status      Status
	members     []Member
	assignment  *engine.Assignment
	ballot      *engine.Ballot
	gameEndTime time.Time
	subs        map[string]chan Event
}

type Option func(*Room)

// WithClock substitutes the wall clock, for timer tests.
func WithClock(now func() time.Time) Option {
	return func(r *Room) { r.now = now }
}

// WithTickInterval shortens the voting-timer poll, for tests. The default
// one-second tick bounds timer drift per the coarse-timing contract.
func WithTickInterval(d time.Duration) Option {
	return func(r *Room) { r.tickDur = d }
}

// New spins up a room actor. onEmpty runs once, from the actor goroutine,
// when the last member exits; the registry uses it to drop the room.
func New(parent context.Context, code string, table engine.Table, log *zap.Logger, onEmpty func(), opts ...Option) *Room {
	ctx, cancel := context.WithCancel(parent)

	r := &Room{
		code:    code,
		inbox:   make(chan Msg, 64),
		table:   table,
		log:     log.With(zap.String("room", code)),
		ctx:     ctx,
		cancel:  cancel,
		now:     time.Now,
		tickDur: time.Second,
		onEmpty: onEmpty,
		status:  StatusWaiting,
		ballot:  engine.NewBallot(),
		subs:    make(map[string]chan Event),
	}
	for _, opt := range opts {
		opt(r)
	}

	go r.loop()
	return r
}

func (r *Room) Code() string      { return r.code }
func (r *Room) Inbox() chan<- Msg { return r.inbox }

func (r *Room) loop() {
	ticker := time.NewTicker(r.tickDur)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case <-ticker.C:
			r.checkTimer()

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Join:
				msg.Reply <- r.handleJoin(msg.Name)
			case Subscribe:
				r.handleSubscribe(msg.PlayerID, msg.Outbox)
			case Unsubscribe:
				r.dropSubscriber(msg.PlayerID)
			case Start:
				msg.Reply <- r.handleStart(msg.RequesterID, msg.TimeLimitMinutes)
			case End:
				msg.Reply <- r.handleEnd(msg.RequesterID)
			case OpenVoting:
				msg.Reply <- r.handleOpenVoting(msg.RequesterID)
			case Vote:
				msg.Reply <- r.handleVote(msg.VoterID, msg.AccusedID)
			case Exit:
				empty := r.handleExit(msg.PlayerID)
				msg.Reply <- nil
				if empty {
					r.shutdown()
					if r.onEmpty != nil {
						r.onEmpty()
					}
					return
				}
			case GetView:
				msg.Reply <- r.view()
			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) shutdown() {
	for id, ch := range r.subs {
		close(ch)
		delete(r.subs, id)
	}
	r.cancel()
}

func (r *Room) hostID() string {
	if len(r.members) == 0 {
		return ""
	}
	return r.members[0].ID
}

// eligibleVoters are current members who were dealt a role this round.
// Mid-game joiners are spectators until the next deal.
func (r *Room) eligibleVoters() map[string]bool {
	eligible := make(map[string]bool, len(r.members))
	if r.assignment == nil {
		return eligible
	}
	for _, m := range r.members {
		if _, ok := r.assignment.Roles[m.ID]; ok {
			eligible[m.ID] = true
		}
	}
	return eligible
}

func (r *Room) handleJoin(name string) JoinReply {
	for _, m := range r.members {
		if m.Name == name {
			// Same display name means the same player re-attaching.
			return JoinReply{PlayerID: m.ID, Players: r.memberSnapshot()}
		}
	}

	m := Member{ID: uuid.NewString(), Name: name}
	r.members = append(r.members, m)
	r.log.Info("player joined", zap.String("player", m.ID), zap.String("name", name))
	r.broadcast(Event{Type: EvtMembershipChanged, Players: r.memberSnapshot()})
	return JoinReply{PlayerID: m.ID, Players: r.memberSnapshot()}
}

func (r *Room) handleSubscribe(playerID string, outbox chan Event) {
	if old, ok := r.subs[playerID]; ok {
		close(old)
	}
	r.subs[playerID] = outbox

	// Catch the subscriber up with the current state of the round.
	r.send(playerID, Event{Type: EvtMembershipChanged, Players: r.memberSnapshot()})
	if r.status == StatusStarted && r.assignment != nil {
		if ev, ok := r.startedEventFor(playerID); ok {
			r.send(playerID, ev)
		}
		switch r.ballot.Status() {
		case engine.BallotOpen:
			r.send(playerID, Event{Type: EvtVotingOpened})
		case engine.BallotResolved:
			if res := r.ballot.Result(); res != nil {
				r.send(playerID, Event{
					Type:      EvtVotingResolved,
					AccusedID: res.AccusedID,
					Tally:     res.Tally,
					WasSpy:    res.WasSpy,
				})
			}
		}
	}
}

func (r *Room) handleStart(requesterID string, timeLimitMinutes int) error {
	if requesterID != r.hostID() {
		return ErrNotHost
	}
	if r.status == StatusStarted {
		return ErrGameInProgress
	}

	players := make([]engine.Player, len(r.members))
	for i, m := range r.members {
		players[i] = engine.Player{ID: m.ID, Name: m.Name}
	}
	assignment, err := engine.Assign(players, r.table)
	if err != nil {
		return err
	}

	r.assignment = assignment
	r.status = StatusStarted
	r.ballot = engine.NewBallot()
	r.gameEndTime = time.Time{}
	if timeLimitMinutes > 0 {
		r.gameEndTime = r.now().Add(clampTimeLimit(timeLimitMinutes))
	}

	r.log.Info("game started",
		zap.String("location", assignment.Location),
		zap.Int("players", len(players)),
		zap.Time("deadline", r.gameEndTime))

	for _, m := range r.members {
		if ev, ok := r.startedEventFor(m.ID); ok {
			r.send(m.ID, ev)
		}
	}
	return nil
}

// startedEventFor builds the personalized round-start payload. The spy's
// payload carries no location.
func (r *Room) startedEventFor(playerID string) (Event, bool) {
	role, ok := r.assignment.Roles[playerID]
	if !ok {
		return Event{}, false
	}
	ev := Event{
		Type:        EvtGameStarted,
		Role:        role,
		Players:     r.roundRoster(),
		GameEndTime: r.gameEndTime,
	}
	if playerID != r.assignment.SpyID {
		ev.Location = r.assignment.Location
	}
	return ev, true
}

// roundRoster lists the players dealt into the current round, in join order,
// using the names snapshotted at start.
func (r *Room) roundRoster() []Member {
	roster := make([]Member, 0, len(r.assignment.PlayerNames))
	for _, m := range r.members {
		if name, ok := r.assignment.PlayerNames[m.ID]; ok {
			roster = append(roster, Member{ID: m.ID, Name: name})
		}
	}
	return roster
}

func (r *Room) handleEnd(requesterID string) error {
	if requesterID != r.hostID() {
		return ErrNotHost
	}
	if r.status != StatusStarted {
		return ErrGameNotStarted
	}

	r.assignment = nil
	r.ballot = engine.NewBallot()
	r.gameEndTime = time.Time{}
	r.status = StatusEnded

	r.log.Info("game ended by host", zap.String("host", requesterID))
	r.broadcast(Event{Type: EvtGameEnded})
	return nil
}

func (r *Room) handleOpenVoting(requesterID string) error {
	if requesterID != r.hostID() {
		return ErrNotHost
	}
	if r.status != StatusStarted {
		return ErrGameNotStarted
	}
	switch r.ballot.Status() {
	case engine.BallotResolved:
		return engine.ErrVotingClosed
	case engine.BallotOpen:
		return nil
	}
	r.openVoting()
	return nil
}

func (r *Room) openVoting() {
	r.ballot.Open()
	r.log.Info("voting opened")
	r.broadcast(Event{Type: EvtVotingOpened})
}

func (r *Room) checkTimer() {
	if r.status != StatusStarted || r.gameEndTime.IsZero() {
		return
	}
	if r.ballot.Status() != engine.BallotClosed {
		return
	}
	if r.now().Before(r.gameEndTime) {
		return
	}
	r.openVoting()
}

func (r *Room) handleVote(voterID, accusedID string) error {
	if r.status != StatusStarted {
		return engine.ErrVotingNotOpen
	}
	switch r.ballot.Status() {
	case engine.BallotResolved:
		return engine.ErrVotingClosed
	case engine.BallotClosed:
		return engine.ErrVotingNotOpen
	}

	eligible := r.eligibleVoters()
	if !eligible[voterID] {
		return engine.ErrUnknownVoter
	}
	if !eligible[accusedID] {
		return engine.ErrUnknownAccused
	}

	if err := r.ballot.Cast(voterID, accusedID); err != nil {
		return err
	}
	r.broadcast(Event{Type: EvtVoteCast, VoterID: voterID})
	r.tryResolve()
	return nil
}

func (r *Room) tryResolve() {
	eligible := r.eligibleVoters()
	res, ok := r.ballot.TryResolve(len(eligible), r.assignment.SpyID)
	if !ok {
		return
	}
	r.log.Info("voting resolved",
		zap.String("accused", res.AccusedID),
		zap.Bool("was_spy", res.WasSpy))
	r.broadcast(Event{
		Type:      EvtVotingResolved,
		AccusedID: res.AccusedID,
		Tally:     res.Tally,
		WasSpy:    res.WasSpy,
	})
}

// handleExit removes the player everywhere and reports whether the room is
// now empty. Host promotion is implicit: the next member in join order is
// simply first now.
func (r *Room) handleExit(playerID string) bool {
	found := false
	for i, m := range r.members {
		if m.ID == playerID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}

	if r.assignment != nil {
		delete(r.assignment.Roles, playerID)
		delete(r.assignment.PlayerNames, playerID)
	}
	r.ballot.Withdraw(playerID)
	r.dropSubscriber(playerID)

	r.log.Info("player exited", zap.String("player", playerID))
	if len(r.members) == 0 {
		return true
	}

	r.broadcast(Event{Type: EvtMembershipChanged, Players: r.memberSnapshot()})
	if r.status == StatusStarted && r.ballot.Status() == engine.BallotOpen {
		// The eligible set shrank; everyone left may already have voted.
		r.tryResolve()
	}
	return false
}

func (r *Room) dropSubscriber(playerID string) {
	if ch, ok := r.subs[playerID]; ok {
		close(ch)
		delete(r.subs, playerID)
	}
}

func (r *Room) memberSnapshot() []Member {
	return append([]Member(nil), r.members...)
}

func (r *Room) send(playerID string, ev Event) {
	ch, ok := r.subs[playerID]
	if !ok {
		return
	}
	select {
	case ch <- ev:
	default:
		// Slow or stuck client: drop the subscription, keep the member.
		close(ch)
		delete(r.subs, playerID)
	}
}

func (r *Room) broadcast(ev Event) {
	for id := range r.subs {
		r.send(id, ev)
	}
}

func (r *Room) view() View {
	v := View{
		Code:        r.code,
		Status:      r.status,
		Players:     r.memberSnapshot(),
		HostID:      r.hostID(),
		VotingOpen:  r.ballot.Status() == engine.BallotOpen,
		GameEndTime: r.gameEndTime,
		Result:      r.ballot.Result(),
		NumClients:  len(r.subs),
	}
	if r.assignment != nil {
		v.Location = r.assignment.Location
		v.SpyID = r.assignment.SpyID
		v.Roles = copyMap(r.assignment.Roles)
		v.PlayerNames = copyMap(r.assignment.PlayerNames)
	}
	return v
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func clampTimeLimit(minutes int) time.Duration {
	d := time.Duration(minutes) * time.Minute
	if d < minTimeLimit {
		return minTimeLimit
	}
	if d > maxTimeLimit {
		return maxTimeLimit
	}
	return d
}
