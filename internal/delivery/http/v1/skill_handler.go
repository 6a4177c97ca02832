package v1

import (
	"net/http"

	"go-careercoach-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(api *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{
		skillUC: skillUC,
	}

	api.GET("/skills", handler.Overview)
}

// Overview godoc
// @Summary      Skills Overview
// @Description  The user's skills alongside the market-demand skill list.
// @Tags         skills
// @Produce      json
// @Success      200  {object}  domain.SkillOverview
// @Failure      500  {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) Overview(c *gin.Context) {
	overview, err := h.skillUC.Overview(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
