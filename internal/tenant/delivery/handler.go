package delivery

import (
	"errors"
	"net/http"

	tenantdto "mailpilot-backend/internal/tenant/dto"
	"mailpilot-backend/internal/tenant/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	oauthUsecase usecase.OAuthUsecase
}

func NewAuthHandler(oauthUsecase usecase.OAuthUsecase) *AuthHandler {
	return &AuthHandler{
		oauthUsecase: oauthUsecase,
	}
}

func (h *AuthHandler) GetAuthURL(c *gin.Context) {
	c.JSON(http.StatusOK, tenantdto.AuthURLResponse{URL: h.oauthUsecase.GetAuthURL()})
}

func (h *AuthHandler) HandleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	resp, err := h.oauthUsecase.HandleCallback(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) RemoveAccount(c *gin.Context) {
	tenant := TenantFromContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.oauthUsecase.RemoveAccount(c.Request.Context(), tenant.Email); err != nil {
		if errors.Is(err, usecase.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
