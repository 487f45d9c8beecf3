package controller

import (
	"time"

	"parade/app_error"
	"parade/auth"
	"parade/config"
	"parade/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		authService: service.NewAuthService(db),
	}
}

func setupAuthController(db *gorm.DB) []RouteInfo {
	e := NewAuthController(db)
	basePath := "/auth"
	routes := []RouteInfo{
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/judge", HandlerFunc: e.judgeLoginHandler()},
		{Method: "POST", Path: "/logout", HandlerFunc: e.logoutHandler()},
		{Method: "GET", Path: "/me", HandlerFunc: e.meHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

func setAuthCookie(c *gin.Context, token string, claims *auth.Claims) {
	maxAge := int(time.Until(time.Unix(claims.Exp, 0)).Seconds())
	c.SetCookie("auth", token, maxAge, "/", config.Env().CookieDomain, config.IsProduction(), true)
}

// @Description Logs in a coordinator or admin with the shared role password
// @Tags auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Role and password"
// @Success 200 {object} TokenResponse
// @Router /auth/login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var login LoginRequest
		if err := c.BindJSON(&login); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		role := auth.Role(login.Role)
		if role != auth.RoleAdmin && role != auth.RoleCoordinator {
			c.JSON(400, gin.H{"error": "role must be admin or coordinator"})
			return
		}
		token, claims, err := e.authService.Login(role, login.Password)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		setAuthCookie(c, token, claims)
		c.JSON(200, toTokenResponse(token, claims))
	}
}

// @Description Logs in a judge with the access code issued for an event
// @Tags auth
// @Accept json
// @Produce json
// @Param login body JudgeLoginRequest true "Event and access code"
// @Success 200 {object} TokenResponse
// @Router /auth/judge [post]
func (e *AuthController) judgeLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var login JudgeLoginRequest
		if err := c.BindJSON(&login); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		token, claims, err := e.authService.JudgeLogin(login.EventId, login.AccessCode)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		setAuthCookie(c, token, claims)
		c.JSON(200, toTokenResponse(token, claims))
	}
}

// @Description Clears the auth cookie
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (e *AuthController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth", "", -1, "/", config.Env().CookieDomain, config.IsProduction(), true)
		c.Status(204)
	}
}

// @Description Returns the claims of the current token
// @Tags auth
// @Produce json
// @Success 200 {object} ClaimsResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (e *AuthController) meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, toClaimsResponse(claimsFrom(c)))
	}
}

type LoginRequest struct {
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type JudgeLoginRequest struct {
	EventId    int    `json:"event_id" binding:"required"`
	AccessCode string `json:"access_code" binding:"required"`
}

type ClaimsResponse struct {
	Role      string    `json:"role"`
	JudgeId   int       `json:"judge_id,omitempty"`
	EventId   int       `json:"event_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

type TokenResponse struct {
	Token  string         `json:"token"`
	Claims ClaimsResponse `json:"claims"`
}

func toClaimsResponse(claims *auth.Claims) ClaimsResponse {
	return ClaimsResponse{
		Role:      string(claims.Role),
		JudgeId:   claims.JudgeId,
		EventId:   claims.EventId,
		ExpiresAt: time.Unix(claims.Exp, 0).UTC(),
	}
}

func toTokenResponse(token string, claims *auth.Claims) TokenResponse {
	return TokenResponse{Token: token, Claims: toClaimsResponse(claims)}
}
