package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"github.com/cinelog/cinelog-api/internal/application"
	"github.com/cinelog/cinelog-api/internal/domain/entity"
	"github.com/cinelog/cinelog-api/internal/interface/middleware"
	"github.com/cinelog/cinelog-api/pkg/response"
	"github.com/cinelog/cinelog-api/pkg/validation"
)

type UserHandler struct {
	Auth      *application.AuthService
	Favorites *application.FavoritesService
	Logger    *logrus.Logger
}

func NewUserHandler(auth *application.AuthService, favorites *application.FavoritesService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Auth: auth, Favorites: favorites, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// normalize strips surrounding whitespace so padding cannot satisfy the
// minimum-length rules. Callers revalidate afterwards.
func (r *registerRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

type loginRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type favoriteRequest struct {
	MediaID string `json:"mediaId" binding:"required"`
	Type    string `json:"type" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	req.normalize()
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUserExists) {
			response.Fail(c, http.StatusConflict, "user already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Fail(c, http.StatusInternalServerError, "unable to register user", nil)
		return
	}
	response.OK(c, http.StatusCreated, u, "user registered")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, exp, err := h.Auth.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "invalid username or password", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Fail(c, http.StatusInternalServerError, "unable to log in", nil)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"token": token, "expires_at": exp}, "login successful")
}

func (h *UserHandler) AddToFavorites(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	kind, err := entity.ParseMediaKind(req.Type)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid media type", nil)
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	favorites, err := h.Favorites.Add(c.Request.Context(), uid, kind, req.MediaID)
	if err != nil {
		h.failFavorites(c, kind, err, "unable to add "+kind.String()+" to favorites")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"favorites": favorites},
		kind.String()+" added to favorites successfully")
}

func (h *UserHandler) RemoveFromFavorites(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	kind, err := entity.ParseMediaKind(req.Type)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid media type", nil)
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	favorites, err := h.Favorites.Remove(c.Request.Context(), uid, kind, req.MediaID)
	if err != nil {
		h.failFavorites(c, kind, err, "unable to remove "+kind.String()+" from favorites")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"favorites": favorites},
		kind.String()+" removed from favorites successfully")
}

func (h *UserHandler) GetFavorites(c *gin.Context) {
	kind, err := entity.ParseMediaKind(c.Query("type"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid media type", nil)
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	media, err := h.Favorites.List(c.Request.Context(), uid, kind)
	if err != nil {
		h.failFavorites(c, kind, err, "unable to fetch favorites")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"favorites": media}, "favorites")
}

func (h *UserHandler) failFavorites(c *gin.Context, kind entity.MediaKind, err error, fallback string) {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Fail(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrMediaNotFound):
		response.Fail(c, http.StatusNotFound, kind.String()+" not found", nil)
	case errors.Is(err, application.ErrAlreadyFavorited):
		response.Fail(c, http.StatusBadRequest, kind.String()+" is already in favorites", nil)
	case errors.Is(err, application.ErrNotFavorited):
		response.Fail(c, http.StatusBadRequest, kind.String()+" is not in favorites", nil)
	default:
		h.Logger.WithError(err).Error("favorites operation failed")
		response.Fail(c, http.StatusInternalServerError, fallback, nil)
	}
}
