package articles

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
	svc := NewService(NewMemoryRepository(FixtureArticles()))
	r := chi.NewRouter()
	NewHandler(svc, validation.New(), slog.New(slog.NewJSONHandler(io.Discard, nil))).Routes(r)
	return r
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestListArticles(t *testing.T) {
	rec := serve(newRouter(), http.MethodGet, "/articles", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Articles []Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Articles, 3)
	assert.Equal(t, "10", body.Articles[0].Section)
	assert.Equal(t, "13", body.Articles[1].Section)
}

func TestGetBySection(t *testing.T) {
	router := newRouter()

	rec := serve(router, http.MethodGet, "/articles/138", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Negotiable Instruments Act, 1881", got.Act)

	rec = serve(router, http.MethodGet, "/articles/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Article not found"}`, rec.Body.String())
}

func TestCreateArticle(t *testing.T) {
	router := newRouter()
	payload := `{"section":"420","act":"Indian Penal Code, 1860","title":"Cheating","description":"Cheating and dishonestly inducing delivery of property."}`

	rec := serve(router, http.MethodPost, "/articles", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.ID, "art_"))
	assert.Equal(t, "420", created.Section)

	rec = serve(router, http.MethodGet, "/articles/420", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPost, "/articles", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateArticleValidation(t *testing.T) {
	router := newRouter()

	rec := serve(router, http.MethodPost, "/articles", `{"section":"1","act":" ","title":"T"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation error","details":{"act":"notblank","description":"notblank"}}`, rec.Body.String())

	rec = serve(router, http.MethodPost, "/articles", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid json"}`, rec.Body.String())
}

func TestMemoryRepositoryDuplicate(t *testing.T) {
	repo := NewMemoryRepository(nil)
	require.NoError(t, repo.Create(t.Context(), Article{ID: "a", Section: "5"}))
	assert.ErrorIs(t, repo.Create(t.Context(), Article{ID: "b", Section: "5"}), ErrDuplicateSection)
}
