package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/spyfallhq/backend/internal/hub"
	"github.com/spyfallhq/backend/internal/monitor"
	"github.com/spyfallhq/backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, publicURL string, log *zap.Logger, metrics *monitor.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Post("/rooms", CreateRoom(h))
	r.Get("/rooms/{code}", GetRoom(h))
	r.Get("/rooms/{code}/qr", RoomQR(h, publicURL))
	r.Get("/ws", ws.Handler(h, log, metrics))
	r.Get("/healthz", Healthz)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
