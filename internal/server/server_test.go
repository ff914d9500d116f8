package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"dynamic/catalogs/internal/catalogpath"
	"dynamic/catalogs/internal/domain"
	"dynamic/catalogs/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	page      domain.CatalogPage
	err       error
	paths     []string
	genres    []domain.Genre
	genreType domain.ContentType
	listID    string
	listType  domain.ContentType
}

func (f *fakeService) Manifest() domain.Manifest {
	return domain.Manifest{ID: "com.dynamic.catalogs", Name: "Dynamic Catalogs"}
}

func (f *fakeService) Catalog(ctx context.Context, path string) (domain.CatalogPage, error) {
	f.paths = append(f.paths, path)
	return f.page, f.err
}

func (f *fakeService) Genres(ctx context.Context, contentType domain.ContentType) ([]domain.Genre, error) {
	f.genreType = contentType
	return f.genres, f.err
}

func (f *fakeService) ExtractListID(ctx context.Context, listURL string) (string, error) {
	if listURL == "" {
		return "", fmt.Errorf("%w: url is required", domain.ErrInvalidListURL)
	}
	return f.listID, f.err
}

func (f *fakeService) ListCatalog(ctx context.Context, listURL string, contentType domain.ContentType) (string, error) {
	f.listType = contentType
	return "token-trakt", f.err
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(t, NewRouter(&fakeService{}, nil, ""), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is up!", rec.Body.String())
}

func TestManifest(t *testing.T) {
	h := NewRouter(&fakeService{}, nil, "")

	for _, target := range []string{"/manifest.json", "/anything/manifest.json"} {
		rec := serve(t, h, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var m domain.Manifest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
		assert.Equal(t, "com.dynamic.catalogs", m.ID)
	}
}

func TestCatalog_PassesEscapedPath(t *testing.T) {
	svc := &fakeService{page: domain.EmptyCatalogPage()}
	h := NewRouter(svc, nil, "")

	token := url.PathEscape("ab/c+d==-trakt")
	rec := serve(t, h, "/cfg/catalog/movie/"+token+"/skip=100&genre=Short%20%26%20Sweet.json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"metas":[]}`, rec.Body.String())
	require.Len(t, svc.paths, 1)
	assert.Equal(t, "ab%2Fc+d==-trakt/skip=100&genre=Short%20%26%20Sweet.json", svc.paths[0])
}

func TestCatalog_DecodesGenreOnce(t *testing.T) {
	svc := &fakeService{page: domain.EmptyCatalogPage()}
	h := NewRouter(svc, nil, "")

	rec := serve(t, h, "/cfg/catalog/movie/abc-trakt/genre=100%2520.json")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.paths, 1)
	assert.Equal(t, "abc-trakt/genre=100%2520.json", svc.paths[0])

	req, err := catalogpath.Parse(svc.paths[0])
	require.NoError(t, err)
	require.NotNil(t, req.Genre)
	assert.Equal(t, "100%20", *req.Genre)
}

func TestCatalog_PlainPathIsReescaped(t *testing.T) {
	svc := &fakeService{page: domain.EmptyCatalogPage()}
	h := NewRouter(svc, nil, "")

	rec := serve(t, h, "/cfg/catalog/series/abc-trakt/genre=Top%20Rated.json")

	require.Equal(t, http.StatusOK, rec.Code)
	req, err := catalogpath.Parse(svc.paths[0])
	require.NoError(t, err)
	assert.Equal(t, "Top Rated", *req.Genre)
}

func TestCatalog_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrFormat, http.StatusBadRequest, "INVALID_PATH"},
		{domain.ErrUnsupportedSource, http.StatusBadRequest, "UNSUPPORTED_SOURCE"},
		{domain.ErrDecode, http.StatusBadRequest, "INVALID_TOKEN"},
		{domain.ErrEncoding, http.StatusBadRequest, "INVALID_TOKEN"},
		{fmt.Errorf("%w: %w: bad json", domain.ErrDecode, domain.ErrParse), http.StatusBadRequest, "INVALID_TOKEN"},
		{domain.ErrMissingListID, http.StatusBadRequest, "MISSING_LIST_ID"},
		{fmt.Errorf("%w: HTTP 503", domain.ErrUpstream), http.StatusBadGateway, "UPSTREAM_ERROR"},
		{fmt.Errorf("item 3: %w: no title", domain.ErrParse), http.StatusBadGateway, "UPSTREAM_PAYLOAD"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewRouter(&fakeService{err: tt.err}, nil, "")
			rec := serve(t, h, "/cfg/catalog/movie/abc-trakt.json")

			require.Equal(t, tt.status, rec.Code)
			var body httpError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.err.Error(), body.Error.Message)
		})
	}
}

func TestGenres(t *testing.T) {
	svc := &fakeService{genres: []domain.Genre{{Name: "Action", Slug: "action"}}}
	h := NewRouter(svc, nil, "")

	rec := serve(t, h, "/trakt-genres")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ContentTypeMovie, svc.genreType)
	assert.JSONEq(t, `[{"name":"Action","slug":"action"}]`, rec.Body.String())

	rec = serve(t, h, "/trakt-genres?type=series")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ContentTypeSeries, svc.genreType)

	rec = serve(t, h, "/trakt-genres?type=anime")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractListID(t *testing.T) {
	h := NewRouter(&fakeService{listID: "20764770"}, nil, "")

	rec := serve(t, h, "/trakt/extract-list-id?url="+url.QueryEscape("https://trakt.tv/users/x/lists/y"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"20764770"}`, rec.Body.String())

	rec = serve(t, h, "/trakt/extract-list-id")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCatalog(t *testing.T) {
	svc := &fakeService{}
	h := NewRouter(svc, nil, "")

	rec := serve(t, h, "/trakt/list-catalog?type=series&url="+url.QueryEscape("https://trakt.tv/lists/1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"token-trakt"}`, rec.Body.String())
	assert.Equal(t, domain.ContentTypeSeries, svc.listType)

	rec = serve(t, h, "/trakt/list-catalog?url=x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboard(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o600))

	h := NewRouter(&fakeService{}, nil, dir)

	rec := serve(t, h, "/cfg/configure/assets/app.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	for _, target := range []string{"/cfg/configure", "/cfg/configure/", "/cfg/configure/settings/lists", "/configure"} {
		rec = serve(t, h, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "dashboard", target)
	}
}

func TestDashboard_NotInstalled(t *testing.T) {
	h := NewRouter(&fakeService{}, nil, t.TempDir())

	rec := serve(t, h, "/cfg/configure")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := NewRouter(&fakeService{}, metrics.New(), "")

	rec := serve(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestCORS(t *testing.T) {
	h := NewRouter(&fakeService{}, nil, "")

	req := httptest.NewRequest(http.MethodGet, "/manifest.json", nil)
	req.Header.Set("Origin", "https://web.stremio.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
