package documents

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kaushals1950/DhaaraAI/internal/cache"
	"github.com/kaushals1950/DhaaraAI/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() http.Handler {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := NewService(NewFixtureRepository(FixtureTemplates(), FixtureSchemas()), cache.NewMemory(), time.Minute, log)
	r := chi.NewRouter()
	NewHandler(svc, validation.New(), log).Routes(r)
	return r
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func completeWill() map[string]interface{} {
	return map[string]interface{}{
		"full-name":             "Asha Rao",
		"address":               "12 MG Road, Bengaluru",
		"date-of-birth":         "1980-04-02",
		"marital-status":        "Married",
		"primary-beneficiaries": "Kiran Rao, son, 100%",
		"executor-name":         "Meera Rao",
		"executor-address":      "14 MG Road, Bengaluru",
	}
}

func TestMissingFields(t *testing.T) {
	schema := FixtureSchemas()["1"]
	assert.Empty(t, schema.MissingFields(completeWill()))

	data := completeWill()
	data["full-name"] = "   "
	delete(data, "executor-name")
	assert.Equal(t, map[string]string{"full-name": "required", "executor-name": "required"}, schema.MissingFields(data))
}

func TestRequiredCheckboxMustBeChecked(t *testing.T) {
	schema := Schema{Sections: []Section{{Fields: []FormField{{ID: "agree", Type: FieldCheckbox, Required: true}}}}}
	assert.NotEmpty(t, schema.MissingFields(map[string]interface{}{"agree": false}))
	assert.Empty(t, schema.MissingFields(map[string]interface{}{"agree": true}))
}

func TestListTemplates(t *testing.T) {
	rec := do(t, newRouter(), http.MethodGet, "/documents/templates?category=Estate%20Planning&complexity=all", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body CatalogResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, "Last Will and Testament", body.Templates[0].Title)
}

func TestListTemplatesSearch(t *testing.T) {
	rec := do(t, newRouter(), http.MethodGet, "/documents/templates?q=lease", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body CatalogResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "5", body.Templates[0].ID)
}

func TestGetTemplate(t *testing.T) {
	rec := do(t, newRouter(), http.MethodGet, "/documents/templates/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body Schema
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Last Will and Testament", body.Title)
	require.Len(t, body.Sections, 4)
	assert.Equal(t, "personal-info", body.Sections[0].ID)
	assert.Equal(t, []string{"Single", "Married", "Divorced", "Widowed"}, body.Sections[0].Fields[3].Options)
}

func TestGetTemplateNotFound(t *testing.T) {
	rec := do(t, newRouter(), http.MethodGet, "/documents/templates/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Template not found"}`, rec.Body.String())
}

func TestSaveDraft(t *testing.T) {
	rec := do(t, newRouter(), http.MethodPost, "/documents/save", `{"templateId":"1","title":"My will","data":{"full-name":"Asha"},"status":"draft"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body SaveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body.DocumentID, "draft_"))
	assert.Equal(t, "saved", body.Status)
	assert.Equal(t, "Document saved successfully", body.Message)
}

func TestSaveDraftRequiresTemplate(t *testing.T) {
	rec := do(t, newRouter(), http.MethodPost, "/documents/save", `{"title":"My will"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"templateId":"notblank"`)
}

func TestGenerate(t *testing.T) {
	payload, err := json.Marshal(GenerateRequest{TemplateID: "1", Data: completeWill()})
	require.NoError(t, err)

	rec := do(t, newRouter(), http.MethodPost, "/documents/generate", string(payload))

	require.Equal(t, http.StatusOK, rec.Code)
	var body GenerateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body.DocumentID, "doc_"))
	assert.Equal(t, "generated", body.Status)
	assert.Equal(t, "/api/documents/download/"+body.DocumentID, body.DownloadURL)
}

func TestGenerateCatalogTemplateWithoutSchema(t *testing.T) {
	rec := do(t, newRouter(), http.MethodPost, "/documents/generate", `{"templateId":"4","data":{}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateRejectsMissingFields(t *testing.T) {
	rec := do(t, newRouter(), http.MethodPost, "/documents/generate", `{"templateId":"2","data":{"principal-name":"Asha"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing required fields","details":{"principal-address":"required"}}`, rec.Body.String())
}

func TestGenerateUnknownTemplate(t *testing.T) {
	rec := do(t, newRouter(), http.MethodPost, "/documents/generate", `{"templateId":"99","data":{}}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Template not found"}`, rec.Body.String())
}
