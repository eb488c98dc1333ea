package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/spyfallhq/backend/internal/hub"
	"github.com/spyfallhq/backend/internal/room"
	"github.com/spyfallhq/backend/pkg/types"
)

type createRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type createRoomResponse struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
}

// roomResponse is the public subset of a room view. Secret round state
// (location, spy, roles) never leaves through the read path.
type roomResponse struct {
	Code         string             `json:"code"`
	Status       string             `json:"status"`
	Players      []types.PlayerInfo `json:"players"`
	HostID       string             `json:"hostId"`
	VotingOpen   bool               `json:"votingOpen"`
	GameEndTime  *time.Time         `json:"gameEndTime,omitempty"`
	VotingResult *votingResult      `json:"votingResult,omitempty"`
}

type votingResult struct {
	AccusedID string         `json:"accusedId"`
	Tally     map[string]int `json:"tally"`
	WasSpy    bool           `json:"wasSpy"`
}

// CreateRoom handles POST /rooms: a new room with the requester joined as
// its first (and therefore host) member.
func CreateRoom(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "malformed body", http.StatusBadRequest)
			return
		}
		name := strings.TrimSpace(req.PlayerName)
		if name == "" {
			http.Error(w, "playerName is required", http.StatusBadRequest)
			return
		}

		reply := make(chan *room.Room, 1)
		h.Inbox() <- hub.CreateRoom{Reply: reply}
		rm := <-reply
		if rm == nil {
			http.Error(w, "failed to create room", http.StatusInternalServerError)
			return
		}

		joinReply := make(chan room.JoinReply, 1)
		rm.Inbox() <- room.Join{Name: name, Reply: joinReply}
		joined := <-joinReply

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(createRoomResponse{
			Code:     rm.Code(),
			PlayerID: joined.PlayerID,
		})
	}
}

// GetRoom handles GET /rooms/{code}.
func GetRoom(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := lookup(h, chi.URLParam(r, "code"))
		if rm == nil {
			writeError(w, http.StatusNotFound, "RoomNotFound", "no room with that code")
			return
		}

		viewReply := make(chan room.View, 1)
		rm.Inbox() <- room.GetView{Reply: viewReply}
		v := <-viewReply

		resp := roomResponse{
			Code:       v.Code,
			Status:     string(v.Status),
			Players:    playerInfos(v.Players),
			HostID:     v.HostID,
			VotingOpen: v.VotingOpen,
		}
		if !v.GameEndTime.IsZero() {
			t := v.GameEndTime
			resp.GameEndTime = &t
		}
		if v.Result != nil {
			resp.VotingResult = &votingResult{
				AccusedID: v.Result.AccusedID,
				Tally:     v.Result.Tally,
				WasSpy:    v.Result.WasSpy,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// RoomQR handles GET /rooms/{code}/qr, rendering the join URL as a PNG so
// players at the same table can scan in instead of typing the code.
func RoomQR(h *hub.Hub, publicURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := lookup(h, chi.URLParam(r, "code"))
		if rm == nil {
			writeError(w, http.StatusNotFound, "RoomNotFound", "no room with that code")
			return
		}

		joinURL := strings.TrimRight(publicURL, "/") + "/?code=" + rm.Code()
		png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to render code", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func lookup(h *hub.Hub, code string) *room.Room {
	reply := make(chan *room.Room, 1)
	h.Inbox() <- hub.GetRoom{Code: code, Reply: reply}
	return <-reply
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error types.ErrorInfo `json:"error"`
	}{Error: types.ErrorInfo{Kind: kind, Message: message}})
}

func playerInfos(members []room.Member) []types.PlayerInfo {
	infos := make([]types.PlayerInfo, len(members))
	for i, m := range members {
		infos[i] = types.PlayerInfo{ID: m.ID, Name: m.Name}
	}
	return infos
}
