package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinelog/cinelog-api/internal/application"
	"github.com/cinelog/cinelog-api/internal/domain/entity"
	"github.com/cinelog/cinelog-api/pkg/response"
)

// CatalogHandler serves the read endpoints of one media kind. It is
// instantiated once per kind; everything kind-specific comes from the Kind
// field rather than per-route branching.
type CatalogHandler struct {
	Svc    *application.CatalogService
	Kind   entity.MediaKind
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, kind entity.MediaKind, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Kind: kind, Logger: logger}
}

func (h *CatalogHandler) All(c *gin.Context) {
	media, err := h.Svc.All(c.Request.Context(), h.Kind)
	if err != nil {
		h.serverError(c, err)
		return
	}
	response.OK(c, http.StatusOK, media, h.Kind.String()+" catalog")
}

func (h *CatalogHandler) TopRated(c *gin.Context) {
	media, err := h.Svc.TopRated(c.Request.Context(), h.Kind)
	if err != nil {
		h.serverError(c, err)
		return
	}
	response.OK(c, http.StatusOK, media, "top rated")
}

func (h *CatalogHandler) Page(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	perPage, _ := strconv.ParseInt(c.DefaultQuery("perPage", "10"), 10, 64)

	media, err := h.Svc.Page(c.Request.Context(), h.Kind, page, perPage)
	if err != nil {
		h.serverError(c, err)
		return
	}
	response.OK(c, http.StatusOK, media, "page "+strconv.FormatInt(page, 10))
}

func (h *CatalogHandler) Search(c *gin.Context) {
	title := c.Query("title")
	results, err := h.Svc.Search(c.Request.Context(), h.Kind, title)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmptyQuery):
			response.Fail(c, http.StatusBadRequest, "title parameter is missing", nil)
		case errors.Is(err, application.ErrNoMatch):
			response.Fail(c, http.StatusNotFound, "no "+h.Kind.Collection()+" found with the title \""+title+"\"", nil)
		default:
			h.serverError(c, err)
		}
		return
	}
	response.OK(c, http.StatusOK, gin.H{"results": results}, "search results")
}

func (h *CatalogHandler) Details(c *gin.Context) {
	m, err := h.lookup(c)
	if err != nil {
		return
	}
	response.OK(c, http.StatusOK, m, h.Kind.String()+" details")
}

func (h *CatalogHandler) Trailer(c *gin.Context) {
	m, err := h.lookup(c)
	if err != nil {
		return
	}
	response.OK(c, http.StatusOK, gin.H{"trailerLink": m.Trailer}, "trailer")
}

// lookup resolves the path identifier, writing the error response itself
// when the media cannot be served.
func (h *CatalogHandler) lookup(c *gin.Context) (*entity.Media, error) {
	m, err := h.Svc.Get(c.Request.Context(), h.Kind, c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrMediaNotFound) {
			response.Fail(c, http.StatusNotFound, h.Kind.String()+" not found", nil)
			return nil, err
		}
		h.serverError(c, err)
		return nil, err
	}
	return m, nil
}

func (h *CatalogHandler) serverError(c *gin.Context, err error) {
	h.Logger.WithError(err).WithField("kind", h.Kind.String()).Error("catalog query failed")
	response.Fail(c, http.StatusInternalServerError, "server error", nil)
}
