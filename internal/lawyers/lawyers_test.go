package lawyers

import (
	"context"
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

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := NewService(NewFixtureRepository(FixtureLawyers(), FixtureReviews()), cache.NewMemory(), time.Minute, log)
	r := chi.NewRouter()
	NewHandler(svc, validation.New(), log).Routes(r)
	return r
}

func floatPtr(v float64) *float64 { return &v }

func ids(items []Lawyer) []string {
	out := make([]string, 0, len(items))
	for _, l := range items {
		out = append(out, l.ID)
	}
	return out
}

func TestSortDirectoryAvailableFirstThenRating(t *testing.T) {
	items := FixtureLawyers()
	SortDirectory(items)
	assert.Equal(t, []string{"1", "2", "5", "7", "4", "8", "3", "6"}, ids(items))
}

func TestFilterMatchesAllActiveFilters(t *testing.T) {
	repo := NewFixtureRepository(FixtureLawyers(), FixtureReviews())
	items, err := repo.List(context.Background(), Filter{
		Location:  "TX",
		MinRate:   floatPtr(300),
		MinRating: floatPtr(4.8),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, ids(items))
}

func TestFilterQueryIsCaseInsensitive(t *testing.T) {
	f := Filter{Query: "MEDIATION"}
	assert.True(t, f.Matches(FixtureLawyers()[3]))
	assert.False(t, f.Matches(FixtureLawyers()[0]))
}

func TestFilterSpecialtyIsExactMembership(t *testing.T) {
	f := Filter{Specialty: "Family"}
	for _, l := range FixtureLawyers() {
		assert.False(t, f.Matches(l), l.ID)
	}
	f.Specialty = "Family Law"
	assert.True(t, f.Matches(FixtureLawyers()[2]))
}

func TestListEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/lawyers?specialty=Criminal%20Defense&location=all", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body ListResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, []string{"5", "6"}, ids(body.Lawyers))
}

func TestListEndpointPaginates(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/lawyers?limit=3&offset=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body ListResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 8, body.Total)
	assert.Equal(t, []string{"5", "7", "4"}, ids(body.Lawyers))
}

func TestListEndpointRejectsBadNumbers(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/lawyers?minRate=cheap", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"minRate":"number"`)
}

func TestListEndpointRejectsNonFiniteNumbers(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/lawyers?minRating=NaN&maxRate=Inf", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid query","details":{"minRating":"number","maxRate":"number"}}`, rec.Body.String())
}

func TestGetEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/lawyers/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Sarah Johnson", body.Lawyer.Name)
	assert.Len(t, body.Reviews, 2)
}

func TestGetEndpointWithoutReviews(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/lawyers/8", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reviews":[]`)
}

func TestGetEndpointNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/lawyers/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Lawyer not found"}`, rec.Body.String())
}

func TestServiceServesFromCache(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := &countingRepo{FixtureRepository: NewFixtureRepository(FixtureLawyers(), FixtureReviews())}
	svc := NewService(repo, cache.NewMemory(), time.Minute, log)

	for i := 0; i < 3; i++ {
		_, err := svc.List(context.Background(), Filter{Location: "CA"})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, repo.lists)
}

type countingRepo struct {
	*FixtureRepository
	lists int
}

func (c *countingRepo) List(ctx context.Context, filter Filter) ([]Lawyer, error) {
	c.lists++
	return c.FixtureRepository.List(ctx, filter)
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func listTotal(t *testing.T, router http.Handler) int {
	t.Helper()
	rec := serve(router, http.MethodGet, "/lawyers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body ListResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Total
}

func TestCreateEndpoint(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, 8, listTotal(t, router))

	rec := serve(router, http.MethodPost, "/lawyers",
		`{"name":"Meera Pillai","specialty":[" Tax Law "],"rating":4.5,"experience":9,"hourlyRate":250,"location":"Kochi, KL"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created Lawyer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.ID, "lawyer_"))
	assert.Equal(t, []string{"Tax Law"}, created.Specialty)
	assert.Equal(t, AvailabilityAvailable, created.Availability)

	// The cached directory is dropped, so the new lawyer is listed right away.
	assert.Equal(t, 9, listTotal(t, router))
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/lawyers/"+created.ID, "").Code)
}

func TestCreateEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/lawyers", `{"name":" ","specialty":[],"rating":7,"location":"Pune","availability":"Away"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation error","details":{"name":"notblank","specialty":"min","rating":"max","availability":"oneof"}}`, rec.Body.String())

	rec = serve(router, http.MethodPost, "/lawyers", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid json"}`, rec.Body.String())
}

func TestDeleteEndpoint(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/lawyers/1", "").Code)
	require.Equal(t, 8, listTotal(t, router))

	rec := serve(router, http.MethodDelete, "/lawyers/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Both the cached profile and the cached list are invalidated.
	rec = serve(router, http.MethodGet, "/lawyers/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 7, listTotal(t, router))
}

func TestDeleteEndpointNotFound(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodDelete, "/lawyers/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Lawyer not found"}`, rec.Body.String())
}

func TestFixtureRepositoryDeleteDropsReviews(t *testing.T) {
	repo := NewFixtureRepository(FixtureLawyers(), FixtureReviews())
	require.NoError(t, repo.Delete(context.Background(), "1"))

	reviews, err := repo.ReviewsFor(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.ErrorIs(t, repo.Delete(context.Background(), "1"), ErrNotFound)
}
