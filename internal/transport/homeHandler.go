package transport

import (
	"net/http"

	"github.com/ds124wfegd/travelbooker/internal/service"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	homeService service.HomeService
}

func NewHomeHandler(homeService service.HomeService) *HomeHandler {
	return &HomeHandler{homeService: homeService}
}

// GetSummary отдает сводку главной страницы
func (h *HomeHandler) GetSummary(c *gin.Context) {
	summary, err := h.homeService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Summary retrieved successfully",
		Data:    summary,
	})
}
