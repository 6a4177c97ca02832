package v1

import (
	"net/http"

	"go-careercoach-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
}

func NewCourseHandler(api *gin.RouterGroup, courseUC domain.CourseUsecase) {
	handler := &CourseHandler{
		courseUC: courseUC,
	}

	api.GET("/courses", handler.List)
}

// List godoc
// @Summary      Course Catalog
// @Description  Recommended courses, optionally filtered by category.
// @Tags         courses
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {array}   domain.Course
// @Failure      500       {object}  response.Response
// @Router       /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseUC.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, courses)
}
