// internal/httpserver/routes_puzzle.go
//
// HTTP routes for the daily puzzle:
//   - GET  /puzzle         → current session snapshot
//   - POST /puzzle/guess   → submit a guess
//   - GET  /stats          → cumulative stats
//   - GET  /share          → share text + signed receipt (finished sessions only)
//   - POST /share/verify   → check a receipt

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/bossdle/internal/game"
	"github.com/robalobadob/bossdle/internal/receipt"
)

func (s *Server) mountPuzzle(r chi.Router) {
	r.Route("/puzzle", func(r chi.Router) {
		r.Get("/", s.handleSnapshot)
		r.Post("/guess", s.handleGuess)
	})
	r.Get("/stats", s.handleStats)
	r.Route("/share", func(r chi.Router) {
		r.Get("/", s.handleShare)
		r.Post("/verify", s.handleVerify)
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.engine.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_ready", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// guessReq is the request payload for /puzzle/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

// handleGuess applies a guess. Rejected input returns 400 with a message the
// client can show as-is; a guess after the game ended returns 200 with
// accepted=false.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	out, err := s.engine.Submit(r.Context(), req.Guess)
	switch {
	case errors.Is(err, game.ErrUnknownGuess):
		writeError(w, http.StatusBadRequest, "unknown_guess", game.Message(err))
		return
	case errors.Is(err, game.ErrDuplicateGuess):
		writeError(w, http.StatusBadRequest, "duplicate_guess", game.Message(err))
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("submit guess")
		writeError(w, http.StatusServiceUnavailable, "not_ready", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Stats())
}

// shareRes is returned by GET /share.
type shareRes struct {
	game.Result
	Receipt string `json:"receipt"`
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Share()
	if errors.Is(err, game.ErrInProgress) {
		writeError(w, http.StatusConflict, "in_progress", game.Message(err))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "share_failed", err.Error())
		return
	}
	tok, err := s.receipts.Sign(receipt.Claims{
		Day:      res.Day,
		Status:   string(res.Status),
		Attempts: res.Attempts,
		Grid:     res.Grid,
	})
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign receipt")
		writeError(w, http.StatusInternalServerError, "sign_failed", "")
		return
	}
	writeJSON(w, http.StatusOK, shareRes{Result: res, Receipt: tok})
}

// verifyReq is the request payload for /share/verify.
type verifyReq struct {
	Receipt string `json:"receipt"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Receipt == "" {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	c, err := s.receipts.Verify(req.Receipt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_receipt", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":    true,
		"day":      c.Day,
		"label":    game.Label(c.Day),
		"status":   c.Status,
		"attempts": c.Attempts,
		"grid":     c.Grid,
	})
}
