package delivery

import (
	"net/http"

	statsdto "mailpilot-backend/internal/stats/dto"
	"mailpilot-backend/internal/stats/usecase"
	tenantdelivery "mailpilot-backend/internal/tenant/delivery"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{
		statsUsecase: statsUsecase,
	}
}

// GetRuleStats serves /stats/rules/:remoteId?window=total|daily|weekly|monthly
func (h *StatsHandler) GetRuleStats(c *gin.Context) {
	tenant := tenantdelivery.TenantFromContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	ruleRemoteID := c.Param("remoteId")
	window := c.DefaultQuery("window", "total")

	var (
		processed int64
		err       error
	)
	switch window {
	case "total":
		processed, err = h.statsUsecase.TotalProcessed(tenant.Email, ruleRemoteID)
	case "daily":
		processed, err = h.statsUsecase.DailyProcessed(tenant.Email, ruleRemoteID)
	case "weekly":
		processed, err = h.statsUsecase.WeeklyProcessed(tenant.Email, ruleRemoteID)
	case "monthly":
		processed, err = h.statsUsecase.MonthlyProcessed(tenant.Email, ruleRemoteID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown window: " + window})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, statsdto.RuleStatsResponse{
		RuleRemoteID: ruleRemoteID,
		Window:       window,
		Processed:    processed,
	})
}

// GetMessageCounts serves /stats/messages with live Gmail counters
func (h *StatsHandler) GetMessageCounts(c *gin.Context) {
	tenant := tenantdelivery.TenantFromContext(c)
	if tenant == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	counts, err := h.statsUsecase.MessageCounts(c.Request.Context(), tenant)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, counts)
}
