package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spyfallhq/backend/internal/hub"
	"github.com/spyfallhq/backend/internal/locations"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := hub.New(ctx, locations.Static{}, zap.NewNop(), nil)
	srv := httptest.NewServer(SetupRoutes(h, "http://example.test", zap.NewNop(), nil))
	t.Cleanup(srv.Close)
	return srv
}

func createTestRoom(t *testing.T, srv *httptest.Server) createRoomResponse {
	t.Helper()
	body := bytes.NewBufferString(`{"playerName":"Alice"}`)
	resp, err := http.Post(srv.URL+"/rooms", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created createRoomResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func TestCreateRoom(t *testing.T) {
	srv := newTestServer(t)
	created := createTestRoom(t, srv)

	assert.Len(t, created.Code, 6)
	assert.NotEmpty(t, created.PlayerID)
}

func TestCreateRoom_RequiresName(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/rooms", "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetRoom_CreatorIsHost(t *testing.T) {
	srv := newTestServer(t)
	created := createTestRoom(t, srv)

	resp, err := http.Get(srv.URL + "/rooms/" + created.Code)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view roomResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, created.Code, view.Code)
	assert.Equal(t, "waiting", view.Status)
	assert.Equal(t, created.PlayerID, view.HostID)
	require.Len(t, view.Players, 1)
	assert.Equal(t, "Alice", view.Players[0].Name)
	assert.False(t, view.VotingOpen)
}

func TestGetRoom_Unknown(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/rooms/NOSUCH")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoomQR(t *testing.T) {
	srv := newTestServer(t)
	created := createTestRoom(t, srv)

	resp, err := http.Get(srv.URL + "/rooms/" + created.Code + "/qr")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
