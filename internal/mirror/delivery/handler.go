package delivery

import (
	"errors"
	"net/http"

	mirrordto "mailpilot-backend/internal/mirror/dto"
	"mailpilot-backend/internal/mirror/usecase"
	tenantdelivery "mailpilot-backend/internal/tenant/delivery"

	"github.com/gin-gonic/gin"
)

type MirrorHandler struct {
	labelUsecase usecase.LabelUsecase
	ruleUsecase  usecase.RuleUsecase
}

func NewMirrorHandler(labelUsecase usecase.LabelUsecase, ruleUsecase usecase.RuleUsecase) *MirrorHandler {
	return &MirrorHandler{
		labelUsecase: labelUsecase,
		ruleUsecase:  ruleUsecase,
	}
}

func (h *MirrorHandler) ListLabels(c *gin.Context) {
	tenant := tenantdelivery.TenantFromContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	labels, err := h.labelUsecase.SyncLabels(c.Request.Context(), tenant)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mirrordto.LabelsResponse{Labels: labels})
}

func (h *MirrorHandler) CreateLabel(c *gin.Context) {
	tenant := tenantdelivery.TenantFromContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req mirrordto.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	label, err := h.labelUsecase.CreateLabel(c.Request.Context(), tenant, &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, label)
}

func (h *MirrorHandler) DeleteLabel(c *gin.Context) {
	tenant := tenantdelivery.TenantFromContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	err := h.labelUsecase.DeleteLabel(c.Request.Context(), tenant, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrLabelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "label not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MirrorHandler) ListRules(c *gin.Context) {
	tenant := tenantdelivery.TenantFromContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	rules, err := h.ruleUsecase.SyncRules(c.Request.Context(), tenant)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mirrordto.RulesResponse{Rules: rules})
}

func (h *MirrorHandler) CreateRule(c *gin.Context) {
	tenant := tenantdelivery.TenantFromContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req mirrordto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleUsecase.CreateRule(c.Request.Context(), tenant, &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

func (h *MirrorHandler) DeleteRule(c *gin.Context) {
	tenant := tenantdelivery.TenantFromContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	err := h.ruleUsecase.DeleteRule(c.Request.Context(), tenant, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
