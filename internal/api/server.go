package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kaidian/internal/auth"
	"kaidian/internal/config"
	"kaidian/internal/game"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	cfg  config.APIConfig
	log  *slog.Logger
	auth *auth.Verifier
	game *game.Service
	mux  *chi.Mux
}

func New(cfg config.APIConfig, logger *slog.Logger, verifier *auth.Verifier, gameSvc *game.Service) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if verifier == nil {
		verifier = auth.NewVerifier(nil)
	}
	s := &Server{
		cfg:  cfg,
		log:  logger,
		auth: verifier,
		game: gameSvc,
		mux:  chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Post("/games", s.handleCreateGame)
			r.Route("/games/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetGame)
				r.Post("/start", s.handleStartMonth)
				r.Get("/event", s.handleCurrentEvent)
				r.Post("/choose", s.handleChoose)
				r.Post("/skip", s.handleSkip)
				r.Get("/summary", s.handleSummary)
				r.Get("/world", s.handleWorld)
				r.Get("/achievements", s.handleAchievements)
				r.Post("/loans", s.handleBorrow)
				r.Post("/loans/{loan_id}/repay", s.handleRepayLoan)
			})
		})
	})
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.auth.VerifyRequest(r); err != nil {
			writeDomainError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, game.NewCatalogView(s.game.Data()))
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var in game.CreateGameInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.game.CreateGame(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStartMonth(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.StartMonth(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCurrentEvent(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.CurrentEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleChoose(w http.ResponseWriter, r *http.Request) {
	var in game.ChooseInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.game.Choose(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	var in game.SkipInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.game.Skip(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.LastSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleWorld(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.WorldStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"active": out})
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.Achievements(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"achievements": out})
}

func (s *Server) handleBorrow(w http.ResponseWriter, r *http.Request) {
	var in game.BorrowInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.game.Borrow(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRepayLoan(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.RepayLoan(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "loan_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidInput), errors.Is(err, game.ErrUnknownChoice):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, game.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrPendingChoice), errors.Is(err, game.ErrNoPendingChoice), errors.Is(err, game.ErrNoSkipTickets):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusGone, err.Error())
	case errors.Is(err, auth.ErrUnauthorized):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
