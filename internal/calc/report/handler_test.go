package report_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"Strut/internal/calc/report"
)

func TestHandlerGenerate(t *testing.T) {
	h := &report.Handler{}

	body := `{
		"project": "Press frame",
		"author": "EN",
		"notes": "Preliminary sizing.",
		"column": {"length_m":2,"area_m2":0.002,"inertia_m4":8e-6,"load_n":100e3}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "report.pdf")
	require.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestHandlerGenerateBadColumn(t *testing.T) {
	h := &report.Handler{}

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", strings.NewReader(`{"column":{}}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
