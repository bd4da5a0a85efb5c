package cases

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kaushals1950/DhaaraAI/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() http.Handler {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(NewService(NewFixtureRepository(FixtureCases())), validation.New(), log).Routes(r)
	return r
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestListCases(t *testing.T) {
	rec := serve(newRouter(), http.MethodGet, "/cases", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Cases []Case `json:"cases"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Cases, 3)
	assert.Equal(t, "Employment Contract Review", body.Cases[0].Title)
	assert.Len(t, body.Cases[0].Updates, 3)
	assert.Equal(t, []string{"negotiation_points.pdf"}, body.Cases[0].Updates[1].Attachments)
}

func TestListCasesByStatus(t *testing.T) {
	rec := serve(newRouter(), http.MethodGet, "/cases?status=completed", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Cases []Case `json:"cases"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Cases, 1)
	assert.Equal(t, "case_3", body.Cases[0].ID)

	rec = serve(newRouter(), http.MethodGet, "/cases?status=closed", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCase(t *testing.T) {
	rec := serve(newRouter(), http.MethodGet, "/cases/case_2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Case Case `json:"case"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Jennifer Martinez", body.Case.LawyerName)
	assert.Equal(t, UpdateCourtDate, body.Case.Updates[0].Type)
}

func TestGetCaseNotFound(t *testing.T) {
	rec := serve(newRouter(), http.MethodGet, "/cases/case_9", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Case not found"}`, rec.Body.String())
}

func TestCreateCase(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/cases", `{"title":"Tenancy dispute","lawyerId":"4","caseType":"Real Estate","description":"Deposit withheld"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body CreateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, strings.HasPrefix(body.CaseID, "case_"))
	assert.Equal(t, "created", body.Status)
	assert.Equal(t, "Case created successfully", body.Message)
}

func TestCreateCaseIsNotPersisted(t *testing.T) {
	router := newRouter()
	rec := serve(router, http.MethodPost, "/cases", `{"title":"Tenancy dispute","caseType":"Real Estate"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created CreateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/cases/"+created.CaseID, "").Code)
}

func TestCreateCaseValidation(t *testing.T) {
	rec := serve(newRouter(), http.MethodPost, "/cases", `{"title":" ","lawyerId":"4"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation error","details":{"title":"notblank","caseType":"notblank"}}`, rec.Body.String())
}
