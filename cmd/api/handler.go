package api

import (
	mirrorDelivery "mailpilot-backend/internal/mirror/delivery"
	mirrorUsecase "mailpilot-backend/internal/mirror/usecase"
	statsDelivery "mailpilot-backend/internal/stats/delivery"
	statsUsecase "mailpilot-backend/internal/stats/usecase"
	tenantDelivery "mailpilot-backend/internal/tenant/delivery"
	tenantUsecase "mailpilot-backend/internal/tenant/usecase"
	"mailpilot-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	oauthUsecase  tenantUsecase.OAuthUsecase
	config        *config.Config
	authHandler   *tenantDelivery.AuthHandler
	mirrorHandler *mirrorDelivery.MirrorHandler
	statsHandler  *statsDelivery.StatsHandler
}

func NewHandler(oauthUc tenantUsecase.OAuthUsecase, labelUc mirrorUsecase.LabelUsecase, ruleUc mirrorUsecase.RuleUsecase, statsUc statsUsecase.StatsUsecase, cfg *config.Config) *Handler {
	return &Handler{
		oauthUsecase:  oauthUc,
		config:        cfg,
		authHandler:   tenantDelivery.NewAuthHandler(oauthUc),
		mirrorHandler: mirrorDelivery.NewMirrorHandler(labelUc, ruleUc),
		statsHandler:  statsDelivery.NewStatsHandler(statsUc),
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	SetupRoutes(r, h.oauthUsecase, h.authHandler, h.mirrorHandler, h.statsHandler)

	return r.Run(addr)
}
