package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Routes builds the router for the polling REST surface
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(h.requestLogger)
	r.Use(enableCors)

	r.Get("/", h.Index)
	r.Get("/healthz", Healthz)

	r.Post("/rooms", h.CreateRoom)
	r.Post("/rooms/{code}/join", h.JoinRoom)
	r.Post("/rooms/{code}/rejoin", h.RejoinRoom)
	r.Post("/rooms/{roomID}/leave", h.LeaveRoom)
	r.Post("/rooms/{roomID}/disconnect", h.DisconnectPlayer)
	r.Post("/rooms/{roomID}/start", h.StartGame)
	r.Post("/rooms/{roomID}/advance", h.AdvanceStage)
	r.Post("/rooms/{roomID}/action", h.SubmitAction)
	r.Post("/rooms/{roomID}/votes", h.SubmitVotes)
	r.Get("/rooms/{roomID}", h.GetRoomState)

	return r
}

// Healthz reports liveness
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// Index serves a small decorative landing page
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var body strings.Builder

	body.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	body.WriteString(`<title>Big Picture</title></head>`)
	body.WriteString(`<body><h1>Big Picture</h1>`)
	body.WriteString(`<p>Party game server is up. Grab the client and join a room.</p>`)
	body.WriteString(`</body></html>`)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, body.String())
}

// requestLogger logs each request with its duration
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// enableCors allows the engine-hosted client to call from any origin
func enableCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
