package transport

import (
	"net/http"
	"strconv"

	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/service"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	packageService service.PackageService
}

func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req service.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pkg, err := h.packageService.CreatePackage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Package created successfully",
		Data:    pkg,
	})
}

func (h *PackageHandler) GetPackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pkg, err := h.packageService.GetPackage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Package retrieved successfully",
		Data:    pkg,
	})
}

// ListPackages поддерживает фильтры search, destination_id,
// min_price, max_price и available
func (h *PackageHandler) ListPackages(c *gin.Context) {
	filter := &repository.PackageFilter{
		Search: c.Query("search"),
	}

	if raw := c.Query("destination_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondBadRequest(c, "invalid destination_id")
			return
		}
		filter.DestinationID = id
	}

	if raw := c.Query("min_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondBadRequest(c, "invalid min_price")
			return
		}
		filter.MinPrice = &price
	}

	if raw := c.Query("max_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondBadRequest(c, "invalid max_price")
			return
		}
		filter.MaxPrice = &price
	}

	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			respondBadRequest(c, "invalid available flag")
			return
		}
		filter.AvailableOnly = available
	}

	packages, pagination, err := h.packageService.ListPackages(c.Request.Context(), filter, pageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Packages retrieved successfully",
		Data:    packages,
		Meta:    pagination,
	})
}

func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pkg, err := h.packageService.UpdatePackage(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Package updated successfully",
		Data:    pkg,
	})
}

func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.packageService.DeletePackage(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Package deleted successfully",
		Meta:    map[string]interface{}{"package_id": id},
	})
}
