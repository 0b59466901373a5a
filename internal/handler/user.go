package handler

import (
	"net/http"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid request body")
		return
	}

	token, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid request body")
		return
	}

	token, err := h.userService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}

func (h *Handler) GetUserData(c *ginext.Context) {
	user, found := h.currentUser(c)
	if !found {
		return
	}

	c.JSON(http.StatusOK, dto.UserDataResponse{Success: true, User: dto.ToUserResponse(user)})
}

// GetCars lists every listed car for the public catalogue.
func (h *Handler) GetCars(c *ginext.Context) {
	cars, err := h.carService.ListAvailable(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CarsResponse{Success: true, Cars: dto.ToCarsResponse(cars)})
}
