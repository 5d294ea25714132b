package judge

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/JaimeStill/penguin/internal/mediation"
	"github.com/JaimeStill/penguin/pkg/routes"
	"github.com/JaimeStill/penguin/pkg/session"
	"github.com/JaimeStill/penguin/pkg/web"
)

// Handler serves the judge pages.
type Handler struct {
	sys         mediation.System
	sessions    *session.Store[State]
	pages       *web.TemplateSet
	logger      *slog.Logger
	maxFormSize int64
	revealDelay time.Duration
}

// Options configures a Handler.
type Options struct {
	MaxFormSize int64
	RevealDelay time.Duration
}

// NewHandler creates a Handler.
func NewHandler(
	sys mediation.System,
	sessions *session.Store[State],
	pages *web.TemplateSet,
	logger *slog.Logger,
	opts Options,
) *Handler {
	return &Handler{
		sys:         sys,
		sessions:    sessions,
		pages:       pages,
		logger:      logger.With("handler", "judge"),
		maxFormSize: opts.MaxFormSize,
		revealDelay: opts.RevealDelay,
	}
}

// Routes returns the route group for the judge pages.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.Index},
			{Method: "POST", Pattern: "/submit", Handler: h.Submit},
			{Method: "GET", Pattern: "/verdict", Handler: h.Verdict},
			{Method: "POST", Pattern: "/back", Handler: h.Back},
		},
	}
}

// NotFound renders the not-found page.
func (h *Handler) NotFound() http.HandlerFunc {
	return h.pages.ErrorHandler(Layout, NotFoundView, http.StatusNotFound)
}

// Index shows the form, or sends a visitor with a pending verdict to it.
// It only reads the session; sessions start on the first submission.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	_, state := h.sessions.Load(r)
	if state.View == ViewVerdict {
		h.redirect(w, r, "/verdict")
		return
	}

	h.renderInput(w, http.StatusOK, state.Report, "")
}

// Submit hears the posted report. Failures re-render the form with a warning
// and leave the session untouched.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFormSize)
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("form parse failed", "error", err)
		status, warning := http.StatusBadRequest, WarningIncomplete
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status, warning = http.StatusRequestEntityTooLarge, WarningTooLarge
		}
		h.renderInput(w, status, mediation.Report{}, warning)
		return
	}

	report := reportFromForm(r)
	id, state := h.sessions.Load(r)

	if err := state.Submit(r.Context(), h.sys, report); err != nil {
		status, warning := submitFailure(err)
		h.logger.Warn("submission rejected", "status", status, "error", err)
		h.renderInput(w, status, report, warning)
		return
	}

	h.sessions.Save(w, id, state)
	h.redirect(w, r, "/verdict")
}

// Verdict shows the waiting page on the first visit after a submission and
// the verdict document afterwards.
func (h *Handler) Verdict(w http.ResponseWriter, r *http.Request) {
	id, state := h.sessions.Load(r)
	if state.View != ViewVerdict {
		h.redirect(w, r, "/")
		return
	}

	if state.Reveal() {
		h.sessions.Save(w, id, state)
		h.render(w, http.StatusOK, WaitingView, WaitingPage{
			DelaySeconds: int(math.Ceil(h.revealDelay.Seconds())),
			Target:       h.pages.BasePath() + "/verdict",
		})
		return
	}

	h.sessions.Save(w, id, state)
	h.render(w, http.StatusOK, VerdictView, VerdictPage{Display: state.Display()})
}

// Back returns to the form.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	id, state := h.sessions.Load(r)
	if state != (State{}) {
		state.Back()
		h.sessions.Save(w, id, state)
	}
	h.redirect(w, r, "/")
}

func (h *Handler) renderInput(w http.ResponseWriter, status int, report mediation.Report, warning string) {
	h.render(w, status, InputView, InputPage{
		Options: mediation.AllOptions(),
		Report:  withDefaults(report),
		Warning: warning,
	})
}

func (h *Handler) render(w http.ResponseWriter, status int, view web.ViewDef, data any) {
	if err := h.pages.Render(w, status, Layout, view, data); err != nil {
		h.logger.Error("render failed", "view", view.Template, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, h.pages.BasePath()+path, http.StatusSeeOther)
}

func submitFailure(err error) (int, string) {
	switch {
	case errors.Is(err, mediation.ErrIncompleteReport):
		return http.StatusUnprocessableEntity, WarningIncomplete
	case errors.Is(err, mediation.ErrInvalidOption):
		return http.StatusUnprocessableEntity, err.Error()
	}
	return http.StatusBadGateway, WarningService
}

func reportFromForm(r *http.Request) mediation.Report {
	return mediation.Report{
		Stage:    mediation.Stage(r.PostFormValue("stage")),
		Severity: mediation.Severity(r.PostFormValue("severity")),
		Tone:     mediation.Tone(r.PostFormValue("tone")),
		A: mediation.Partner{
			Name:      r.PostFormValue("name_a"),
			Mood:      mediation.Mood(r.PostFormValue("mood_a")),
			Event:     r.PostFormValue("event_a"),
			Grievance: r.PostFormValue("grievance_a"),
		},
		B: mediation.Partner{
			Name:      r.PostFormValue("name_b"),
			Mood:      mediation.Mood(r.PostFormValue("mood_b")),
			Event:     r.PostFormValue("event_b"),
			Grievance: r.PostFormValue("grievance_b"),
		},
	}
}

// withDefaults fills blank or unknown options so the form preselects a
// valid choice.
func withDefaults(r mediation.Report) mediation.Report {
	r.Stage = orDefault(mediation.ParseStage, r.Stage, mediation.DefaultStage)
	r.Severity = orDefault(mediation.ParseSeverity, r.Severity, mediation.DefaultSeverity)
	r.Tone = orDefault(mediation.ParseTone, r.Tone, mediation.DefaultTone)
	r.A.Mood = orDefault(mediation.ParseMood, r.A.Mood, mediation.DefaultMood)
	r.B.Mood = orDefault(mediation.ParseMood, r.B.Mood, mediation.DefaultMood)
	return r
}

func orDefault[T ~string](parse func(string) (T, error), v, def T) T {
	if parsed, err := parse(string(v)); err == nil {
		return parsed
	}
	return def
}
