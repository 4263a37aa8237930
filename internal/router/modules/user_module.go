package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-api/internal/container"
	handlers "github.com/cinelog/cinelog-api/internal/interface/http"
	"github.com/cinelog/cinelog-api/internal/interface/middleware"
	"github.com/cinelog/cinelog-api/pkg/helpers"
)

// UserModule wires account and favorites routes.
// Public: POST /api/user/register, POST /api/user/login (both rate-limited
// per IP). Everything else sits behind the bearer-token gate.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenManager) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	user := rg.Group("/user")
	user.POST("/register", registerLimiter, m.Handler.Register)
	user.POST("/login", loginLimiter, m.Handler.Login)

	auth := user.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/add-to-favorite", m.Handler.AddToFavorites)
		auth.DELETE("/delete-from-favorites", m.Handler.RemoveFromFavorites)
		auth.GET("/favorite", m.Handler.GetFavorites)
	}
}
