package controller

import (
	"strconv"
	"strings"
	"time"

	"parade/auth"
	"parade/config"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []auth.Role
	// Cached responses are shared between callers, so only public routes set it.
	Cached bool
}

const claimsKey = "claims"

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupAuthController(db)...)
	routes = append(routes, setupEventController(db)...)
	routes = append(routes, setupCategoryController(db)...)
	routes = append(routes, setupEntryController(db)...)
	routes = append(routes, setupJudgeController(db)...)
	routes = append(routes, setupScoreController(db)...)
	routes = append(routes, setupWinnersController(db)...)

	cacheDuration := time.Duration(config.Env().CacheSeconds) * time.Second
	api := r.Group("/api")
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handler := route.HandlerFunc
		if route.Cached && !route.Authenticated && cacheStore != nil && cacheDuration > 0 {
			handler = cache.CachePage(cacheStore, cacheDuration, handler)
		}
		handlerfuncs = append(handlerfuncs, handler)
		api.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

func tokenFromRequest(c *gin.Context) string {
	if authCookie, err := c.Cookie("auth"); err == nil && authCookie != "" {
		return authCookie
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func AuthMiddleware(roles []auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		claims, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		if !claims.Allows(roles) {
			c.AbortWithStatusJSON(403, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *auth.Claims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}

// pathInt reads an integer path parameter, answering 400 when it is malformed.
func pathInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(400, gin.H{"error": name + " must be a number"})
		return 0, false
	}
	return value, true
}

// canAccessEvent keeps judges inside the event their token was issued for.
func canAccessEvent(c *gin.Context, eventId int) bool {
	claims := claimsFrom(c)
	if claims != nil && claims.Role == auth.RoleJudge && claims.EventId != eventId {
		c.JSON(403, gin.H{"error": "Unauthorized"})
		return false
	}
	return true
}
