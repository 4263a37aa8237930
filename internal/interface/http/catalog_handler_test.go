package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinelog/cinelog-api/internal/application"
	"github.com/cinelog/cinelog-api/internal/domain/entity"
)

func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newCatalogServer() *gin.Engine {
	gin.SetMode(gin.TestMode)

	media := newMemMediaRepo()
	svc := application.NewCatalogService(media, nil, nil)
	h := NewCatalogHandler(svc, entity.KindMovie, newNopLogger())

	r := gin.New()
	movies := r.Group("/movies")
	movies.GET("", h.All)
	movies.GET("/top-rated-movies", h.TopRated)
	movies.GET("/movie-pages", h.Page)
	movies.GET("/search", h.Search)
	movies.GET("/:id", h.Details)
	movies.GET("/:id/trailer", h.Trailer)
	return r
}

func TestSearchEndpoint(t *testing.T) {
	r := newCatalogServer()

	w, env := doJSON(r, http.MethodGet, "/movies/search?title=mat", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var data struct {
		Results []entity.Media `json:"results"`
	}
	_ = json.Unmarshal(env.Data, &data)
	if len(data.Results) != 1 || data.Results[0].Title != "The Matrix" {
		t.Fatalf("results = %v, want The Matrix", data.Results)
	}
}

func TestSearchEndpointMissingTitle(t *testing.T) {
	r := newCatalogServer()

	w, _ := doJSON(r, http.MethodGet, "/movies/search", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("search without title status = %d, want 400", w.Code)
	}
}

func TestSearchEndpointNoMatch(t *testing.T) {
	r := newCatalogServer()

	w, _ := doJSON(r, http.MethodGet, "/movies/search?title=zzz-no-match", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("search with no match status = %d, want 404", w.Code)
	}
}

func TestDetailsEndpoint(t *testing.T) {
	r := newCatalogServer()

	w, env := doJSON(r, http.MethodGet, "/movies/m1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("details status = %d, want 200", w.Code)
	}
	var m entity.Media
	_ = json.Unmarshal(env.Data, &m)
	if m.Title != "The Matrix" {
		t.Fatalf("details = %v, want The Matrix", m)
	}

	w, _ = doJSON(r, http.MethodGet, "/movies/unknown", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("details of unknown id status = %d, want 404", w.Code)
	}
}

func TestTrailerEndpoint(t *testing.T) {
	r := newCatalogServer()

	w, env := doJSON(r, http.MethodGet, "/movies/m1/trailer", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("trailer status = %d, want 200", w.Code)
	}
	var data struct {
		TrailerLink string `json:"trailerLink"`
	}
	_ = json.Unmarshal(env.Data, &data)
	if data.TrailerLink != "https://videos.cinelog.dev/matrix-trailer.mp4" {
		t.Fatalf("trailerLink = %q, want the fixture trailer URL", data.TrailerLink)
	}
}
