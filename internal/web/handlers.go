package web

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"dqcli/internal/dataset"
	apierrors "dqcli/internal/errors"
	"dqcli/internal/rules"
)

// Handler serves the validation API.
type Handler struct {
	logger         *slog.Logger
	engine         *rules.Engine
	defaultRules   []rules.Rule
	maxUploadBytes int64
}

// NewHandler creates the API handler. A nil logger falls back to
// slog.Default; the delivery ruleset is the default when an upload does not
// include its own.
func NewHandler(logger *slog.Logger, maxUploadBytes int64) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:         logger,
		engine:         rules.NewEngine(logger),
		defaultRules:   rules.DeliveryRules(),
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleValidate accepts a multipart upload with a "dataset" CSV part and an
// optional "ruleset" YAML part, runs a validation pass and returns the
// report as JSON.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		render.Render(w, r, apierrors.NewWithDetails(http.StatusBadRequest,
			"INVALID_REQUEST", "Request is not a valid multipart upload", err.Error()))
		return
	}

	file, _, err := r.FormFile("dataset")
	if err != nil {
		render.Render(w, r, apierrors.MissingPart("dataset"))
		return
	}
	defer file.Close()

	d, err := dataset.ReadCSV(file, dataset.DefaultLoadOptions())
	if err != nil {
		h.logger.WarnContext(ctx, "Rejected dataset upload", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.DatasetParseError(err))
		return
	}

	ruleset := h.defaultRules
	if rf, _, err := r.FormFile("ruleset"); err == nil {
		defer rf.Close()
		data, err := io.ReadAll(rf)
		if err != nil {
			render.Render(w, r, apierrors.RulesetError(err))
			return
		}
		ruleset, err = rules.ParseRuleset(data)
		if err != nil {
			h.logger.WarnContext(ctx, "Rejected ruleset upload", slog.String("error", err.Error()))
			render.Render(w, r, apierrors.RulesetError(err))
			return
		}
	}

	start := time.Now()
	report := h.engine.Run(d, ruleset)
	validationDuration.Observe(time.Since(start).Seconds())
	validationRunsTotal.Inc()
	violationsTotal.Add(float64(len(report.Violations)))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, report)
}

// HandleDeliveryRuleset returns the built-in delivery ruleset in its
// declarative form.
func (h *Handler) HandleDeliveryRuleset(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"name":  "delivery",
		"rules": rules.Describe(h.defaultRules),
	})
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
