package quotes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/meridian-trade/meridian/internal/observability"
	"github.com/meridian-trade/meridian/internal/pricing"
)

// Handler exposes the calculation engine over HTTP. It owns no state beyond
// the admin settings loaded at startup; every request is an independent
// calculation.
type Handler struct {
	logger   *slog.Logger
	validate *validator.Validate
	admin    pricing.AdminSettings
	metrics  *observability.Metrics
}

func NewHandler(logger *slog.Logger, admin pricing.AdminSettings, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		admin:    admin,
		metrics:  metrics,
	}
}

// Calculate runs the full pipeline and returns the per-product breakdown
// plus quote totals. Engine failures surface as 422 with the phase and
// product that aborted the run.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	products, defaults := EngineInputs(req)

	start := time.Now()
	result, err := pricing.Calculate(products, defaults, h.admin)
	if err != nil {
		var perr *pricing.PhaseError
		if errors.As(err, &perr) {
			h.metrics.CalculationFailed(string(perr.Phase))
			h.metrics.ObserveCalculation("error", time.Since(start).Seconds())
			h.logger.Warn("calculation aborted",
				slog.String("phase", string(perr.Phase)),
				slog.Int("product_index", perr.ProductIndex),
				slog.Any("error", perr.Err),
			)
			h.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": toCalculationError(perr)})
			return
		}
		h.logger.Error("calculation failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveCalculation("ok", time.Since(start).Seconds())
	h.logger.Info("calculation completed",
		slog.String("calculation_id", result.ID.String()),
		slog.Int("products", len(result.Products)),
		slog.String("sale_type", string(result.SaleType)),
	)
	h.writeJSON(w, http.StatusOK, CalculateResponse{Calculation: result})
}

// Validate is the advisory pre-flight: it reports every violation at once
// and always answers 200 for well-formed requests.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	products, defaults := EngineInputs(req)

	issues := []ValidationIssue{}
	for _, err := range pricing.Validate(products, &defaults) {
		issues = append(issues, toIssue(err))
	}
	h.writeJSON(w, http.StatusOK, ValidateResponse{Valid: len(issues) == 0, Errors: issues})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (CalculateRequest, bool) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "malformed request body"})
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return req, false
	}
	return req, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", slog.Any("error", err))
	}
}
