package health

import (
	"github.com/nafhansa/JobTracker-sub000/store"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// @Summary Health check
// @Description Liveness endpoint, also reports whether the document-store mirror is active
// @Tags health
// @Produce json
// @Success 200 {object} utils.Response
// @Router /healthz [get]
func (h *Handler) HandleHealth(c *gin.Context) {
	mirror := store.Jobs != nil && store.Jobs.MirrorEnabled
	utils.SendSuccess(c, 200, "Service healthy", gin.H{
		"status":     "ok",
		"jobsMirror": mirror,
	})
}
