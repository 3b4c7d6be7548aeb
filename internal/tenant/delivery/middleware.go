package delivery

import (
	"net/http"
	"strings"

	tenantdomain "mailpilot-backend/internal/tenant/domain"
	"mailpilot-backend/internal/tenant/usecase"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(oauthUsecase usecase.OAuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		tenant, err := oauthUsecase.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("tenant", tenant)
		c.Set("tenantEmail", tenant.Email)
		c.Next()
	}
}

// TenantFromContext returns the tenant resolved by AuthMiddleware.
func TenantFromContext(c *gin.Context) *tenantdomain.Tenant {
	if v, ok := c.Get("tenant"); ok {
		if tenant, ok := v.(*tenantdomain.Tenant); ok {
			return tenant
		}
	}
	return nil
}
