package transport

import (
	"net/http"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/service"

	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	destinationService service.DestinationService
}

func NewDestinationHandler(destinationService service.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

func (h *DestinationHandler) CreateDestination(c *gin.Context) {
	var req service.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	destination, err := h.destinationService.CreateDestination(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Destination created successfully",
		Data:    destination,
	})
}

func (h *DestinationHandler) GetDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	destination, err := h.destinationService.GetDestination(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Destination retrieved successfully",
		Data:    destination,
	})
}

func (h *DestinationHandler) ListDestinations(c *gin.Context) {
	filter := &repository.DestinationFilter{
		Search:  c.Query("search"),
		Country: c.Query("country"),
	}

	destinations, pagination, err := h.destinationService.ListDestinations(c.Request.Context(), filter, pageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Destinations retrieved successfully",
		Data:    destinations,
		Meta:    pagination,
	})
}

func (h *DestinationHandler) ListCountries(c *gin.Context) {
	countries, err := h.destinationService.ListCountries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Countries retrieved successfully",
		Data:    countries,
	})
}

func (h *DestinationHandler) UpdateDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	destination, err := h.destinationService.UpdateDestination(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Destination updated successfully",
		Data:    destination,
	})
}

func (h *DestinationHandler) DeleteDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.destinationService.DeleteDestination(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Destination deleted successfully",
		Meta:    map[string]interface{}{"destination_id": id},
	})
}
