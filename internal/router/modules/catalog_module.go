package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-api/internal/container"
	"github.com/cinelog/cinelog-api/internal/domain/entity"
	handlers "github.com/cinelog/cinelog-api/internal/interface/http"
	"github.com/cinelog/cinelog-api/internal/interface/middleware"
	"github.com/cinelog/cinelog-api/pkg/helpers"
)

// CatalogModule registers the read routes of one media kind. All catalog
// reads are protected and softly rate-limited per IP.
type CatalogModule struct {
	Handler *handlers.CatalogHandler
	Tokens  *helpers.TokenManager
}

func NewCatalogModule(h *handlers.CatalogHandler, tokens *helpers.TokenManager) *CatalogModule {
	return &CatalogModule{Handler: h, Tokens: tokens}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	kind := m.Handler.Kind

	base := "/movies"
	topRated := "/top-rated-movies"
	pages := "/movie-pages"
	if kind == entity.KindSerie {
		base = "/series"
		topRated = "/top-rated-series"
		pages = "/serie-pages"
	}

	grp := rg.Group(base)
	grp.Use(middleware.Auth(m.Tokens))
	grp.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil))
	{
		grp.GET("", m.Handler.All)
		grp.GET(topRated, m.Handler.TopRated)
		grp.GET(pages, m.Handler.Page)
		grp.GET("/search", m.Handler.Search)
		grp.GET("/:id", m.Handler.Details)
		grp.GET("/:id/trailer", m.Handler.Trailer)
	}
}
