package router

import (
	"github.com/cinelog/cinelog-api/internal/application"
	"github.com/cinelog/cinelog-api/internal/container"
	"github.com/cinelog/cinelog-api/internal/domain/entity"
	"github.com/cinelog/cinelog-api/internal/infrastructure/mongodb"
	handlers "github.com/cinelog/cinelog-api/internal/interface/http"
	"github.com/cinelog/cinelog-api/internal/router/modules"
)

// InitModules constructs the repository/service/handler graph from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	userRepo := mongodb.NewUserRepository(container.GetMongo())
	mediaRepo := mongodb.NewMediaRepository(container.GetMongo())

	authSvc := application.NewAuthService(userRepo, container.GetTokens(), container.GetLogger())
	favoritesSvc := application.NewFavoritesService(userRepo, mediaRepo)
	catalogSvc := application.NewCatalogService(mediaRepo, container.GetRedis(), container.GetLogger())

	userHandler := handlers.NewUserHandler(authSvc, favoritesSvc, container.GetLogger())
	movieHandler := handlers.NewCatalogHandler(catalogSvc, entity.KindMovie, container.GetLogger())
	serieHandler := handlers.NewCatalogHandler(catalogSvc, entity.KindSerie, container.GetLogger())

	r.Add(modules.NewUserModule(userHandler, container.GetTokens()))
	r.Add(modules.NewCatalogModule(movieHandler, container.GetTokens()))
	r.Add(modules.NewCatalogModule(serieHandler, container.GetTokens()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
