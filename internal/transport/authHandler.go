package transport

import (
	"net/http"

	"github.com/ds124wfegd/travelbooker/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	seedService service.SeedService
}

func NewAuthHandler(authService service.AuthService, seedService service.SeedService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		seedService: seedService,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Login successful",
		Data:    resp,
	})
}

// Seed наполняет базу демонстрационными данными, запуск идемпотентен
func (h *AuthHandler) Seed(c *gin.Context) {
	report, err := h.seedService.Seed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Database seeded successfully",
		Data:    report,
	})
}
