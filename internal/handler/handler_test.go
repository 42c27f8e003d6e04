package handler

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"uhi-engine/internal/config"
	"uhi-engine/internal/model"
)

func newTestHandler() *Handler {
	return New(zap.NewNop(), config.DefaultAssumptions())
}

func serve(t *testing.T, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI(path)
	ctx.Request.Header.SetMethod(method)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	newTestHandler().Route(ctx)
	return ctx
}

func TestStatusEndpoint(t *testing.T) {
	ctx := serve(t, fasthttp.MethodGet, "/", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var status model.StatusResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &status))
	require.Equal(t, "active", status.Status)
}

func TestUnknownEndpoint(t *testing.T) {
	ctx := serve(t, fasthttp.MethodGet, "/nope", "")
	require.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestMethodNotAllowed(t *testing.T) {
	ctx := serve(t, fasthttp.MethodGet, "/simulate", "")
	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSimulate(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/simulate",
		`{"population_size": 50, "projection_years": 5}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.SimulationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))

	require.Len(t, resp.Projections, 5)
	require.Equal(t, 1, resp.Projections[0].Year)
	require.NotEmpty(t, resp.RunMetadata.RunID)
	require.Equal(t, model.OutcomeSuccess, resp.RunMetadata.RunOutcome)
	require.Len(t, resp.Audit, 3)
	require.NotEmpty(t, resp.Explanation)
	// Absent overrides keep the statutory defaults.
	require.Equal(t, 0.12, resp.Assumptions.MedicalInflation)
}

func TestSimulateAppliesOverrides(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/simulate",
		`{"population_size": 50, "projection_years": 3, "medical_inflation": 0.2}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.SimulationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Equal(t, 0.2, resp.Assumptions.MedicalInflation)
	require.Equal(t, 0.07, resp.Assumptions.WageInflation)
}

func TestSimulateEmptyBodyUsesDefaults(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/simulate", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.SimulationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Len(t, resp.Projections, 10)
}

func TestSimulateWithInlineCSV(t *testing.T) {
	body := `{"projection_years": 2, "population_csv": "EmploymentStatus,MonthlyWage,EstimatedAnnualCost\nEmployee,10000,5000\nEmployee,8000,4000\n"}`
	ctx := serve(t, fasthttp.MethodPost, "/simulate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.SimulationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Len(t, resp.Projections, 2)
	require.Equal(t, 9000.0, resp.Projections[0].MedicalExpenditure)
}

func TestSimulateRejectsBadCSV(t *testing.T) {
	body := `{"population_csv": "Age,Gender\n30,Male\n"}`
	ctx := serve(t, fasthttp.MethodPost, "/simulate", body)
	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var errResp model.ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	require.Contains(t, errResp.Message, "no economic columns")
}

func TestSimulateRejectsBadBody(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/simulate", "{not json")
	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestMonteCarlo(t *testing.T) {
	ctx := serve(t, fasthttp.MethodPost, "/monte-carlo",
		`{"population_size": 30, "projection_years": 5, "trials": 20}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var result model.SimulationResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	require.Len(t, result.P5, 5)
	require.Len(t, result.P50, 5)
	require.Len(t, result.P95, 5)
	require.Equal(t, []int{1, 2, 3, 4, 5}, result.Years)
	require.GreaterOrEqual(t, result.ProbInsolvency, 0.0)
	require.LessOrEqual(t, result.ProbInsolvency, 100.0)
}
