package hub

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"

	"go.uber.org/zap"

	"github.com/spyfallhq/backend/internal/engine"
	"github.com/spyfallhq/backend/internal/monitor"
	"github.com/spyfallhq/backend/internal/room"
)

type HubMsg interface{ isHubMsg() }

// CreateRoom allocates a fresh room under a new unique code.
type CreateRoom struct {
	Reply chan *room.Room
}

// GetRoom looks a room up by code. Codes are case-insensitive. Reply
// receives nil when the code is unknown.
type GetRoom struct {
	Code  string
	Reply chan *room.Room
}

// RemoveRoom drops a room from the registry. Rooms send this about
// themselves when their last member exits.
type RemoveRoom struct {
	Code string
}

type ShutdownHub struct{}

func (CreateRoom) isHubMsg()  {}
func (GetRoom) isHubMsg()     {}
func (RemoveRoom) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}

// Hub is the registry of live rooms. Like the rooms themselves it is an
// actor: create/lookup/remove serialize through its inbox, so independent
// rooms stay safe to address concurrently.
type Hub struct {
	inbox   chan HubMsg
	rooms   map[string]*room.Room
	table   engine.Table
	log     *zap.Logger
	metrics *monitor.Metrics
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(parent context.Context, table engine.Table, log *zap.Logger, metrics *monitor.Metrics) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:   make(chan HubMsg, 64),
		rooms:   make(map[string]*room.Room),
		table:   table,
		log:     log.Named("hub"),
		metrics: metrics,
		ctx:     ctx,
		cancel:  cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateRoom:
				msg.Reply <- h.create()

			case GetRoom:
				msg.Reply <- h.rooms[normalize(msg.Code)]

			case RemoveRoom:
				if rm, ok := h.rooms[msg.Code]; ok {
					delete(h.rooms, msg.Code)
					h.metrics.SetActiveRooms(len(h.rooms))
					h.log.Info("room removed", zap.String("room", rm.Code()))
				}

			case ShutdownHub:
				for _, rm := range h.rooms {
					rm.Inbox() <- room.Shutdown{}
				}
				clear(h.rooms)
				h.metrics.SetActiveRooms(0)
				h.cancel()
			}
		}
	}
}

func (h *Hub) create() *room.Room {
	var code string
	for {
		c, err := generateCode()
		if err != nil {
			h.log.Error("code generation failed", zap.Error(err))
			return nil
		}
		if _, taken := h.rooms[c]; !taken {
			code = c
			break
		}
	}

	rm := room.New(h.ctx, code, h.table, h.log, func() {
		// Runs on the room goroutine once membership empties.
		h.inbox <- RemoveRoom{Code: code}
	})
	h.rooms[code] = rm
	h.metrics.SetActiveRooms(len(h.rooms))
	h.log.Info("room created", zap.String("room", code))
	return rm
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func generateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}
