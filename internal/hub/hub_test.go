package hub

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spyfallhq/backend/internal/locations"
	"github.com/spyfallhq/backend/internal/room"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return New(ctx, locations.Static{}, zap.NewNop(), nil)
}

func createRoom(t *testing.T, h *Hub) *room.Room {
	t.Helper()
	reply := make(chan *room.Room, 1)
	h.Inbox() <- CreateRoom{Reply: reply}
	select {
	case rm := <-reply:
		if rm == nil {
			t.Fatalf("CreateRoom returned nil")
		}
		return rm
	case <-time.After(time.Second):
		t.Fatalf("timed out creating room")
		return nil
	}
}

func getRoom(t *testing.T, h *Hub, code string) *room.Room {
	t.Helper()
	reply := make(chan *room.Room, 1)
	h.Inbox() <- GetRoom{Code: code, Reply: reply}
	select {
	case rm := <-reply:
		return rm
	case <-time.After(time.Second):
		t.Fatalf("timed out looking up room")
		return nil
	}
}

func TestHub_CreateAndLookupSamePointer(t *testing.T) {
	h := newTestHub(t)
	rm := createRoom(t, h)

	if got := getRoom(t, h, rm.Code()); got != rm {
		t.Fatalf("expected same room pointer back")
	}
}

func TestHub_LookupIsCaseInsensitive(t *testing.T) {
	h := newTestHub(t)
	rm := createRoom(t, h)

	lower := " " + strings.ToLower(rm.Code()) + " "
	if got := getRoom(t, h, lower); got != rm {
		t.Fatalf("lowercased, padded code should still resolve")
	}
}

func TestHub_UnknownCode(t *testing.T) {
	h := newTestHub(t)
	if got := getRoom(t, h, "NOSUCH"); got != nil {
		t.Fatalf("unknown code should resolve to nil")
	}
}

func TestHub_EmptyRoomIsRemoved(t *testing.T) {
	h := newTestHub(t)
	rm := createRoom(t, h)

	joinReply := make(chan room.JoinReply, 1)
	rm.Inbox() <- room.Join{Name: "Alice", Reply: joinReply}
	joined := <-joinReply

	errReply := make(chan error, 1)
	rm.Inbox() <- room.Exit{PlayerID: joined.PlayerID, Reply: errReply}
	<-errReply

	// Removal flows room → hub asynchronously; poll briefly.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if getRoom(t, h, rm.Code()) == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("empty room should disappear from the registry")
}
