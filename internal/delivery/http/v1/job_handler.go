package v1

import (
	"net/http"

	"go-careercoach-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{
		jobUC: jobUC,
	}

	api.GET("/jobs", handler.List)
}

// List godoc
// @Summary      Job Recommendations
// @Description  Job listings matched to the user's skills. Served from static data when the recommendation service is unavailable.
// @Tags         jobs
// @Produce      json
// @Param        location    query     string  false  "Location filter"
// @Param        experience  query     string  false  "Experience filter"
// @Success      200         {object}  domain.JobListing
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Location:   c.Query("location"),
		Experience: c.Query("experience"),
	}

	listing, err := h.jobUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, listing)
}
