package v1

import (
	"net/http"

	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityUC domain.ActivityUsecase
}

func NewActivityHandler(api *gin.RouterGroup, activityUC domain.ActivityUsecase) {
	handler := &ActivityHandler{
		activityUC: activityUC,
	}

	api.GET("/activities", handler.List)
	api.POST("/activities", handler.Create)
}

// List godoc
// @Summary      List Activities
// @Description  Recent activities, newest first.
// @Tags         activities
// @Produce      json
// @Success      200  {array}   domain.Activity
// @Failure      500  {object}  response.Response
// @Router       /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activityUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// Create godoc
// @Summary      Record Activity
// @Description  Records an activity entry (type, description, status).
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activity  body      domain.Activity  true  "Activity"
// @Success      201       {object}  domain.Activity
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var activity domain.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.Error(apperror.BadRequest("Invalid activity data"))
		return
	}

	if err := h.activityUC.Create(c.Request.Context(), &activity); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}
