package handler

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"uhi-engine/internal/audit"
	"uhi-engine/internal/engine"
	"uhi-engine/internal/model"
	"uhi-engine/internal/montecarlo"
	"uhi-engine/internal/population"
)

type Handler struct {
	log      *zap.Logger
	defaults model.Assumptions
}

func New(log *zap.Logger, defaults model.Assumptions) *Handler {
	return &Handler{log: log, defaults: defaults}
}

// Route dispatches every request and logs its outcome.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case "/":
		if ctx.IsGet() {
			h.handleStatus(ctx)
		} else {
			h.writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		}
	case "/simulate":
		if ctx.IsPost() {
			h.handleSimulate(ctx)
		} else {
			h.writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		}
	case "/monte-carlo":
		if ctx.IsPost() {
			h.handleMonteCarlo(ctx)
		} else {
			h.writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		}
	default:
		h.writeError(ctx, fasthttp.StatusNotFound, "Unknown endpoint")
	}

	h.log.Info("request",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *Handler) handleStatus(ctx *fasthttp.RequestCtx) {
	h.writeJSON(ctx, fasthttp.StatusOK, model.StatusResponse{
		Status: "active",
		Engine: "UHI Actuarial Engine",
	})
}

func (h *Handler) handleSimulate(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	req, err := h.decodeRequest(ctx)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	pop, err := h.resolvePopulation(req)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	assumptions := h.assumptionsFrom(req)
	records := engine.Project(pop, assumptions, req.ProjectionYears)

	var annualMedicalCost float64
	if len(records) > 0 {
		annualMedicalCost = records[0].MedicalExpenditure
	}

	h.writeJSON(ctx, fasthttp.StatusOK, model.SimulationResponse{
		RunMetadata: runMetadata(start),
		Projections: records,
		Explanation: audit.ExplainProjection(records, assumptions),
		Audit:       audit.Compliance(records, assumptions),
		Reinsurance: audit.SuggestReinsurance(annualMedicalCost),
		Assumptions: assumptions,
	})
}

func (h *Handler) handleMonteCarlo(ctx *fasthttp.RequestCtx) {
	req, err := h.decodeRequest(ctx)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	pop, err := h.resolvePopulation(req)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	result := montecarlo.Simulate(pop, h.assumptionsFrom(req),
		montecarlo.DefaultOptions(req.ProjectionYears, req.Trials))
	h.writeJSON(ctx, fasthttp.StatusOK, result)
}

// decodeRequest pre-fills the request with the statutory defaults so
// absent JSON fields keep their default values, then overlays the body.
// An empty body is a pure-defaults run.
func (h *Handler) decodeRequest(ctx *fasthttp.RequestCtx) (model.SimulationRequest, error) {
	req := model.SimulationRequest{
		WageInflation:        h.defaults.WageInflation,
		MedicalInflation:     h.defaults.MedicalInflation,
		InvestmentReturnRate: h.defaults.InvestmentReturnRate,
		AdminExpensePct:      h.defaults.AdminExpensePct,
		ProjectionYears:      10,
		PopulationSize:       1000,
		Trials:               100,
	}
	body := ctx.PostBody()
	if len(body) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *Handler) assumptionsFrom(req model.SimulationRequest) model.Assumptions {
	a := h.defaults
	a.WageInflation = req.WageInflation
	a.MedicalInflation = req.MedicalInflation
	a.InvestmentReturnRate = req.InvestmentReturnRate
	a.AdminExpensePct = req.AdminExpensePct
	return a
}

func (h *Handler) resolvePopulation(req model.SimulationRequest) (model.Population, error) {
	if req.PopulationCSV != "" {
		return population.LoadCSV(strings.NewReader(req.PopulationCSV))
	}
	return population.Generate(req.PopulationSize, req.EliteMode), nil
}

func runMetadata(start time.Time) model.RunMetadata {
	completed := time.Now().UTC()
	return model.RunMetadata{
		RunID:          uuid.New().String(),
		RunStartedAt:   start.UTC().Format(time.RFC3339),
		RunCompletedAt: completed.Format(time.RFC3339),
		RunDurationMs:  completed.Sub(start.UTC()).Milliseconds(),
		RunOutcome:     model.OutcomeSuccess,
	}
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, payload interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(payload); err != nil {
		h.log.Error("response encoding failed", zap.Error(err))
	}
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	h.writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
