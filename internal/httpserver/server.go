// internal/httpserver/server.go
//
// HTTP server wiring for the Gaming Hub backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/kinds", "/debug/words".
//   - Game session endpoints (current user or anonymous cookie):
//       POST   /games                 create {kind, config, seed?, delayMs?}
//       GET    /games/{id}            snapshot (terminal state included)
//       POST   /games/{id}/actions    apply one action -> {result, snapshot}
//       POST   /games/{id}/reset      restart
//       DELETE /games/{id}            discard
//       GET    /games/{id}/live       websocket feed (see live.go)
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - A session is visible only to its owner; others get 404.
//   - Engine outcomes (accepted/ignored/rejected) are always 200; only
//     malformed requests and bad configs are 4xx.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/akj2003/GamingHub/internal/config"
	"github.com/akj2003/GamingHub/internal/game"
	"github.com/akj2003/GamingHub/internal/hub"
	"github.com/akj2003/GamingHub/internal/store"
	"github.com/akj2003/GamingHub/internal/words"
)

// Server bundles router, session store and engine registry.
type Server struct {
	r        *chi.Mux
	cfg      *config.Config
	store    store.Store
	reg      hub.Registry
	upgrader websocket.Upgrader
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, st store.Store, reg hub.Registry) *Server {
	s := &Server{r: chi.NewRouter(), cfg: cfg, store: st, reg: reg}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID) // add X-Request-ID
	s.r.Use(chimw.RealIP)    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer) // recover from panics
	s.r.Use(s.cors)          // credentials-friendly CORS

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
		r.Use(jsonContentType)                 // default JSON responses

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"service":"gaming-hub","endpoints":["/health","/kinds","POST /games","/games/{id}"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/kinds", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string][]game.Kind{"kinds": game.Kinds})
		})
		r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]int{"words": words.Stats(), "sessions": s.store.Len()})
		})
	})

	// Game sessions: signed-in users and guests alike
	s.r.Route("/games", func(r chi.Router) {
		r.Use(s.withCurrentUser)

		// websocket upgrades outlive the request timeout
		r.Get("/{id}/live", s.handleLive)

		r.Group(func(r chi.Router) {
			r.Use(chimw.Timeout(10 * time.Second))
			r.Use(jsonContentType)
			r.Post("/", s.handleNewGame)
			r.Get("/{id}", s.handleGetGame)
			r.Post("/{id}/actions", s.handleAction)
			r.Post("/{id}/reset", s.handleReset)
			r.Delete("/{id}", s.handleDelete)
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler { return s.r }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAMES --------------------------------------

// newGameReq is the POST /games payload. Seed 0 seeds from the clock; a
// client seed is only honored outside production.
// DelayMs overrides the game's timer in milliseconds; negative disables it.
type newGameReq struct {
	Kind    game.Kind   `json:"kind"`
	Config  game.Config `json:"config"`
	Seed    uint64      `json:"seed,omitempty"`
	DelayMs int         `json:"delayMs,omitempty"`
}

// actionRes is the POST /games/{id}/actions response.
type actionRes struct {
	Result   game.Result  `json:"result"`
	Snapshot hub.Snapshot `json:"snapshot"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	cfg := req.Config
	if req.DelayMs != 0 {
		cfg.Delay = time.Duration(req.DelayMs) * time.Millisecond
	}

	e, err := s.reg.Construct(req.Kind, cfg, s.randFor(req.Seed))
	switch {
	case errors.Is(err, game.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, "unknown_kind", err.Error())
		return
	case errors.Is(err, game.ErrInvalidConfig):
		log.Info().Str("kind", string(req.Kind)).Err(err).Msg("rejected game config")
		writeError(w, http.StatusBadRequest, "invalid_config", err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "construct_failed", "")
		return
	}

	sess := hub.NewSession(ownerFrom(r), e)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	ev := log.Info().Str("session", sess.ID).Str("kind", string(req.Kind))
	if u := currentUser(r); u != nil {
		ev = ev.Str("user", u.ID)
	}
	ev.Msg("game created")
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

// randFor picks the randomness for a new game. Fixed seeds make boards
// reproducible, so production always seeds from the clock.
func (s *Server) randFor(seed uint64) game.Rand {
	if s.cfg.Production {
		return game.NewRand(0)
	}
	return game.NewRand(seed)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var a game.Action
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	res, snap := sess.Apply(a)
	writeJSON(w, http.StatusOK, actionRes{Result: res, Snapshot: snap})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Reset())
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(r.Context(), sess.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "delete_failed", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// session loads {id} and checks ownership, writing a 404 on failure.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*hub.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil || sess.Owner != ownerFrom(r) {
		writeError(w, http.StatusNotFound, "not_found", "")
		return nil, false
	}
	return sess, true
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	body := map[string]string{"error": code}
	if msg != "" {
		body["message"] = msg
	}
	writeJSON(w, status, body)
}
