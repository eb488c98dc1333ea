package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/spyfallhq/backend/internal/engine"
	"github.com/spyfallhq/backend/internal/hub"
	"github.com/spyfallhq/backend/internal/monitor"
	"github.com/spyfallhq/backend/internal/room"
	"github.com/spyfallhq/backend/pkg/types"
)

const (
	writeTimeout = 3 * time.Second
	replyTimeout = 5 * time.Second
	outboxSize   = 16
)

// Handler upgrades GET /ws?code=X&name=Y, joins (or re-attaches) the named
// player and bridges the room's event feed onto the socket. A dropped socket
// only unsubscribes; membership is removed by an explicit ExitRoom command,
// so reconnecting under the same name restores the same player id.
func Handler(h *hub.Hub, log *zap.Logger, metrics *monitor.Metrics) http.HandlerFunc {
	log = log.Named("ws")

	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		name := r.URL.Query().Get("name")
		if code == "" || name == "" {
			http.Error(w, "missing code or name", http.StatusBadRequest)
			return
		}

		reply := make(chan *room.Room, 1)
		h.Inbox() <- hub.GetRoom{Code: code, Reply: reply}
		rm := <-reply
		if rm == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		joinReply := make(chan room.JoinReply, 1)
		rm.Inbox() <- room.Join{Name: name, Reply: joinReply}
		var joined room.JoinReply
		select {
		case joined = <-joinReply:
		case <-time.After(replyTimeout):
			http.Error(w, "room unavailable", http.StatusServiceUnavailable)
			return
		}
		playerID := joined.PlayerID

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan room.Event, outboxSize)
		rm.Inbox() <- room.Subscribe{PlayerID: playerID, Outbox: out}
		defer func() { rm.Inbox() <- room.Unsubscribe{PlayerID: playerID} }()

		metrics.IncConnectedClients()
		defer metrics.DecConnectedClients()
		log.Info("client connected",
			zap.String("room", rm.Code()), zap.String("player", playerID))

		write := func(msg types.ServerMessage) {
			payload, err := json.Marshal(msg)
			if err != nil {
				return
			}
			ctx, cancel := context.WithTimeout(r.Context(), writeTimeout)
			_ = conn.Write(ctx, websocket.MessageText, payload)
			cancel()
		}

		write(types.ServerMessage{Type: "RoomJoined", Code: rm.Code(), PlayerID: playerID})

		// Writer goroutine: the room closes the outbox when it shuts down or
		// drops a slow client, which ends this loop and the connection.
		go func() {
			for ev := range out {
				write(toServerMessage(ev))
			}
			conn.Close(websocket.StatusGoingAway, "room closed")
		}()

		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				write(errorMessage("BadRequest", "malformed message"))
				continue
			}

			metrics.IncCommandsReceived()
			start := time.Now()
			if err := dispatch(rm, playerID, cm); err != nil {
				write(errorMessage(errKind(err), err.Error()))
			}
			metrics.ObserveCommandLatency(time.Since(start))

			if cm.Type == "ExitRoom" {
				return
			}
		}
	}
}

// dispatch maps a wire command onto a room message and waits for the
// command-boundary verdict.
func dispatch(rm *room.Room, playerID string, cm types.ClientMessage) error {
	reply := make(chan error, 1)

	switch cm.Type {
	case "StartGame":
		rm.Inbox() <- room.Start{RequesterID: playerID, TimeLimitMinutes: cm.TimeLimitMinutes, Reply: reply}
	case "EndGame":
		rm.Inbox() <- room.End{RequesterID: playerID, Reply: reply}
	case "OpenVoting":
		rm.Inbox() <- room.OpenVoting{RequesterID: playerID, Reply: reply}
	case "CastVote":
		rm.Inbox() <- room.Vote{VoterID: playerID, AccusedID: cm.AccusedID, Reply: reply}
	case "ExitRoom":
		rm.Inbox() <- room.Exit{PlayerID: playerID, Reply: reply}
	default:
		return errUnknownCommand
	}

	select {
	case err := <-reply:
		return err
	case <-time.After(replyTimeout):
		return errRoomUnavailable
	}
}

var errUnknownCommand = errors.New("unknown command type")
var errRoomUnavailable = errors.New("room unavailable")

func errKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrInsufficientPlayers):
		return "InsufficientPlayers"
	case errors.Is(err, engine.ErrTooManyPlayers):
		return "TooManyPlayers"
	case errors.Is(err, engine.ErrVotingNotOpen):
		return "VotingNotOpen"
	case errors.Is(err, engine.ErrVotingClosed):
		return "VotingClosed"
	case errors.Is(err, engine.ErrUnknownVoter):
		return "UnknownVoter"
	case errors.Is(err, engine.ErrUnknownAccused):
		return "UnknownAccused"
	case errors.Is(err, room.ErrNotHost):
		return "NotHost"
	case errors.Is(err, room.ErrGameNotStarted):
		return "GameNotStarted"
	case errors.Is(err, room.ErrGameInProgress):
		return "GameInProgress"
	case errors.Is(err, errUnknownCommand):
		return "BadRequest"
	default:
		return "Internal"
	}
}

func errorMessage(kind, message string) types.ServerMessage {
	return types.ServerMessage{Type: "Error", Error: &types.ErrorInfo{Kind: kind, Message: message}}
}

func toServerMessage(ev room.Event) types.ServerMessage {
	msg := types.ServerMessage{Type: string(ev.Type)}

	switch ev.Type {
	case room.EvtMembershipChanged:
		msg.Players = playerInfos(ev.Players)
	case room.EvtGameStarted:
		msg.Players = playerInfos(ev.Players)
		msg.Role = ev.Role
		msg.Location = ev.Location
		if !ev.GameEndTime.IsZero() {
			t := ev.GameEndTime
			msg.GameEndTime = &t
		}
	case room.EvtVoteCast:
		msg.VoterID = ev.VoterID
	case room.EvtVotingResolved:
		msg.AccusedID = ev.AccusedID
		msg.Tally = ev.Tally
		wasSpy := ev.WasSpy
		msg.WasSpy = &wasSpy
	}
	return msg
}

func playerInfos(members []room.Member) []types.PlayerInfo {
	infos := make([]types.PlayerInfo, len(members))
	for i, m := range members {
		infos[i] = types.PlayerInfo{ID: m.ID, Name: m.Name}
	}
	return infos
}
