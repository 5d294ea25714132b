package verdicts

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/penguin/internal/mediation"
	"github.com/JaimeStill/penguin/pkg/handlers"
	"github.com/JaimeStill/penguin/pkg/routes"
)

// ErrBodyTooLarge indicates a request body over the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

// Handler provides HTTP endpoints for verdict operations.
type Handler struct {
	sys         mediation.System
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a Handler with the given mediation system, logger, and
// request body limit.
func NewHandler(sys mediation.System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "verdicts"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for verdict endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:  "/verdicts",
		Schemas: schemas(),
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: createOp},
			{Method: "POST", Pattern: "/parse", Handler: h.Parse, OpenAPI: parseOp},
			{Method: "GET", Pattern: "/options", Handler: h.Options, OpenAPI: optionsOp},
		},
	}
}

// Create hears the report in the JSON body and returns the parsed verdict.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var report mediation.Report
	if err := h.decode(w, r, &report); err != nil {
		handlers.RespondError(w, h.logger, statusFor(err), err)
		return
	}

	raw, err := h.sys.Deliberate(r.Context(), report)
	if err != nil {
		handlers.RespondError(w, h.logger, mediation.MapHTTPStatus(err), err)
		return
	}

	labelA, labelB := report.Labels()
	v := newVerdict(raw, labelA, labelB)
	h.logger.Info("verdict created", "id", v.ID, "chars", len(raw))

	handlers.RespondJSON(w, http.StatusCreated, v)
}

// Parse sections saved verdict text without calling the completion service.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := h.decode(w, r, &req); err != nil {
		handlers.RespondError(w, h.logger, statusFor(err), err)
		return
	}

	labelA, labelB := mediation.Labels(req.NameA, req.NameB)
	handlers.RespondJSON(w, http.StatusOK, newVerdict(req.Text, labelA, labelB))
}

// Options returns the selectable relationship stages, severities, tones and
// moods with their defaults.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, mediation.AllOptions())
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func statusFor(err error) int {
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
