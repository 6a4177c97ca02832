package v1

import (
	"net/http"

	"go-careercoach-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CareerPathHandler struct {
	pathUC domain.CareerPathUsecase
}

func NewCareerPathHandler(api *gin.RouterGroup, pathUC domain.CareerPathUsecase) {
	handler := &CareerPathHandler{
		pathUC: pathUC,
	}

	api.GET("/career-paths", handler.List)
}

// List godoc
// @Summary      Career Paths
// @Description  Career paths matched to the user's skills, with matching and missing skills per path.
// @Tags         career-paths
// @Produce      json
// @Success      200  {array}  domain.CareerPath
// @Router       /career-paths [get]
func (h *CareerPathHandler) List(c *gin.Context) {
	paths, err := h.pathUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, paths)
}
