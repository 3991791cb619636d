package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khushijha-kj/signvibe-api/internal/models"
	"github.com/khushijha-kj/signvibe-api/internal/service"
	"github.com/khushijha-kj/signvibe-api/pkg/config"
	appErrors "github.com/khushijha-kj/signvibe-api/pkg/errors"
	"github.com/khushijha-kj/signvibe-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service and owns the session
// cookie transport.
type AuthHandler struct {
	service *service.AuthService
	cookie  config.CookieConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{service: svc, cookie: cookie}
}

// Signup godoc
// @Summary Register a user
// @Description Register a student, teacher, parent, or admin
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SignupRequest true "Signup payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid signup payload."))
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{"user": user})
}

// Login godoc
// @Summary Authenticate a user
// @Description Authenticate by email, password, and role; sets the session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid login payload."))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookie.Name, res.Token, int(h.service.CredentialTTL().Seconds()), "/", "", h.cookie.Secure, true)

	response.JSON(c, http.StatusOK, gin.H{
		"message": "Login successful.",
		"user":    res.User,
	})
}

// Logout godoc
// @Summary Logout
// @Description Clears the session cookie; the credential itself is stateless
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)

	response.JSON(c, http.StatusOK, gin.H{"message": "Logged out successfully."})
}

// Me godoc
// @Summary Get current user
// @Description Returns the authenticated identity derived from the credential
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"user": models.UserInfo{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}})
}
