package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/skip2/go-qrcode"
	"github.com/user/drrm-simulator/internal/content"
	"github.com/user/drrm-simulator/internal/cue"
	"github.com/user/drrm-simulator/internal/game"
	"github.com/user/drrm-simulator/internal/interfaces"
	"github.com/user/drrm-simulator/internal/types"
	"go.uber.org/zap"
)

// AudioControl exposes the persisted mute flag
type AudioControl interface {
	Muted() bool
	SetMuted(muted bool)
	Toggle() bool
}

// CueFeed exposes recently signalled cues
type CueFeed interface {
	Since(seq uint64) []cue.Entry
}

// Server is the JSON presentation adapter over a game session
type Server struct {
	session   interfaces.GameSession
	audio     AudioControl
	feed      CueFeed
	publicURL string
	logger    *zap.Logger
}

// New creates a server. audio and feed may be nil.
func New(session interfaces.GameSession, audio AudioControl, feed CueFeed, publicURL string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		session:   session,
		audio:     audio,
		feed:      feed,
		publicURL: publicURL,
		logger:    logger,
	}
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// SessionView is the session record plus the derived values a screen needs
type SessionView struct {
	Record                  types.SessionRecord   `json:"record"`
	PreparednessScore       int                   `json:"preparedness_score"`
	CanCompletePreparedness bool                  `json:"can_complete_preparedness"`
	Budget                  *game.BudgetBreakdown `json:"budget,omitempty"`
	RecoveryScore           int                   `json:"recovery_score"`
	CanCompleteRecovery     bool                  `json:"can_complete_recovery"`
	EstimatedFinalScore     int                   `json:"estimated_final_score"`
}

// Routes builds the chi router
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	router.Route("/session", func(r chi.Router) {
		r.Get("/", s.getSession)
		r.Post("/tutorial", s.intent(s.session.StartTutorial))
		r.Post("/tutorial/exit", s.intent(s.session.ExitTutorial))
		r.Post("/start", s.startScenario)

		r.Post("/preparedness/items/{itemID}", func(w http.ResponseWriter, r *http.Request) {
			s.respond(w, r, s.session.ToggleGoBagItem(chi.URLParam(r, "itemID")))
		})
		r.Put("/preparedness", s.updatePreparedness)
		r.Post("/preparedness/complete", s.intent(s.session.CompletePreparedness))

		r.Post("/response/decisions", s.resolveEvent)
		r.Post("/response/evacuate", s.intent(s.session.OrderEvacuation))
		r.Post("/response/agencies/{agency}", func(w http.ResponseWriter, r *http.Request) {
			s.respond(w, r, s.session.ContactAgency(chi.URLParam(r, "agency")))
		})
		r.Post("/response/complete", s.intent(s.session.CompleteResponse))

		r.Put("/recovery", s.updateRecovery)
		r.Post("/recovery/tasks/{taskID}", func(w http.ResponseWriter, r *http.Request) {
			s.respond(w, r, s.session.ToggleInfrastructureTask(chi.URLParam(r, "taskID")))
		})
		r.Post("/recovery/complete", s.intent(s.session.CompleteRecovery))

		r.Get("/report", s.getReport)
		r.Get("/report/qr", s.getReportQR)
		r.Post("/play-again", s.intent(s.session.PlayAgain))
		r.Post("/reset", s.intent(s.session.BackToMenu))
	})

	router.Get("/history", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.session.History())
	})
	router.Delete("/history", func(w http.ResponseWriter, r *http.Request) {
		s.session.ClearHistory()
		w.WriteHeader(http.StatusNoContent)
	})

	router.Get("/content/{hazard}", s.getContent)

	router.Get("/audio", s.getAudio)
	router.Post("/audio/mute", s.toggleMute)

	return router
}

func (s *Server) view() SessionView {
	record := s.session.Record()
	v := SessionView{
		Record:                  record,
		PreparednessScore:       s.session.PreparednessScore(),
		CanCompletePreparedness: s.session.CanCompletePreparedness(),
		RecoveryScore:           s.session.RecoveryScore(),
		CanCompleteRecovery:     s.session.CanCompleteRecovery(),
		EstimatedFinalScore:     s.session.EstimatedFinalScore(),
	}
	if record.Preparedness != nil {
		budget := game.SplitBudget(record.Preparedness.BudgetAllocated)
		v.Budget = &budget
	}
	return v
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.view())
}

// intent adapts a parameterless session operation
func (s *Server) intent(op func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, op())
	}
}

// respond writes the session view, or the error mapped to a status code
func (s *Server) respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		s.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.view())
}

func (s *Server) startScenario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hazard     string `json:"hazard"`
		Difficulty string `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hazard, err := types.ParseHazard(req.Hazard)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var difficulty types.Difficulty
	if req.Difficulty != "" {
		if difficulty, err = types.ParseDifficulty(req.Difficulty); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	s.respond(w, r, s.session.StartScenario(hazard, difficulty))
}

// updatePreparedness applies the given fields as a single intent
func (s *Server) updatePreparedness(w http.ResponseWriter, r *http.Request) {
	var req types.PreparednessUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.respond(w, r, s.session.UpdatePreparedness(req))
}

func (s *Server) resolveEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Option *int `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Option == nil {
		writeError(w, http.StatusBadRequest, "option is required")
		return
	}

	outcome, err := s.session.ResolveEvent(*req.Option)
	if err != nil {
		s.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) updateRecovery(w http.ResponseWriter, r *http.Request) {
	var req types.RecoveryUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.respond(w, r, s.session.UpdateRecovery(req))
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.session.Report()
	if err != nil {
		s.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// getReportQR renders a PNG share code summarising the final result
func (s *Server) getReportQR(w http.ResponseWriter, r *http.Request) {
	report, err := s.session.Report()
	if err != nil {
		s.writeSessionError(w, r, err)
		return
	}

	text := fmt.Sprintf("DRRM Simulator: %s (%s) scored %d, grade %s %s. %s",
		report.Scenario.Hazard, report.Scenario.Difficulty,
		report.FinalScore, report.Grade.Letter, report.Grade.Label, s.publicURL)

	png, err := qrcode.Encode(text, qrcode.Medium, 256)
	if err != nil {
		s.logger.Error("Failed to generate QR code", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HazardContent is everything a screen shows for one hazard
type HazardContent struct {
	Hazard              types.Hazard                 `json:"hazard"`
	Alert               content.Alert                `json:"alert"`
	RiskProfile         content.RiskProfile          `json:"risk_profile"`
	Lesson              types.Lesson                 `json:"lesson"`
	GoBagItems          []content.GoBagItem          `json:"go_bag_items"`
	MaxGoBagItems       int                          `json:"max_go_bag_items"`
	EvacuationCenters   []content.EvacuationCenter   `json:"evacuation_centers"`
	Agencies            []content.Agency             `json:"agencies"`
	InfrastructureTasks []content.InfrastructureTask `json:"infrastructure_tasks"`
	DifficultySettings  game.DifficultySettings      `json:"difficulty_settings"`
	SelectedDifficulty  types.Difficulty             `json:"selected_difficulty"`
}

func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	hazard, err := types.ParseHazard(chi.URLParam(r, "hazard"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	difficulty := types.DifficultyMedium
	if d := r.URL.Query().Get("difficulty"); d != "" {
		if difficulty, err = types.ParseDifficulty(d); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, HazardContent{
		Hazard:              hazard,
		Alert:               content.AlertFor(hazard),
		RiskProfile:         content.RiskProfileFor(hazard),
		Lesson:              content.LessonFor(hazard),
		GoBagItems:          content.GoBagCatalog(),
		MaxGoBagItems:       content.MaxGoBagItems,
		EvacuationCenters:   content.EvacuationCenters(),
		Agencies:            content.Agencies(),
		InfrastructureTasks: content.InfrastructureTasks(),
		DifficultySettings:  game.SettingsFor(difficulty),
		SelectedDifficulty:  difficulty,
	})
}

type audioResponse struct {
	Muted bool        `json:"muted"`
	Cues  []cue.Entry `json:"cues"`
}

func (s *Server) getAudio(w http.ResponseWriter, r *http.Request) {
	resp := audioResponse{Cues: []cue.Entry{}}
	if s.audio != nil {
		resp.Muted = s.audio.Muted()
	}
	if s.feed != nil {
		var since uint64
		if v := r.URL.Query().Get("since"); v != "" {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "since must be a sequence number")
				return
			}
			since = n
		}
		resp.Cues = s.feed.Since(since)
	}
	writeJSON(w, http.StatusOK, resp)
}

// toggleMute flips the flag, or sets it when the body carries {"muted": bool}
func (s *Server) toggleMute(w http.ResponseWriter, r *http.Request) {
	if s.audio == nil {
		writeError(w, http.StatusNotFound, "Audio is not available")
		return
	}

	var req struct {
		Muted *bool `json:"muted"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	if req.Muted != nil {
		s.audio.SetMuted(*req.Muted)
	} else {
		s.audio.Toggle()
	}
	writeJSON(w, http.StatusOK, audioResponse{Muted: s.audio.Muted(), Cues: []cue.Entry{}})
}

// statusFor maps session errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrUnknownItem),
		errors.Is(err, game.ErrUnknownCenter),
		errors.Is(err, game.ErrUnknownAgency),
		errors.Is(err, game.ErrUnknownTask),
		errors.Is(err, game.ErrInvalidOption),
		errors.Is(err, game.ErrInvalidScenario):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrNoReport):
		return http.StatusNotFound
	case errors.Is(err, game.ErrWrongPhase),
		errors.Is(err, game.ErrGateNotSatisfied),
		errors.Is(err, game.ErrBagFull),
		errors.Is(err, game.ErrDecisionPending),
		errors.Is(err, game.ErrResponseNotComplete):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Session operation failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	} else {
		s.logger.Debug("Intent refused",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Status:  status,
		Message: message,
	})
}
