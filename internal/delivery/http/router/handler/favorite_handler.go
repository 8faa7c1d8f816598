package handler

import (
	"log/slog"
	"net/http"

	"farha/internal/delivery/http/response"
	"farha/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FavoriteHandler mutates customer bookmarks.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

type favoriteInput struct {
	CustomerID uuid.UUID `json:"customerId" validate:"required"`
	ServiceID  uint      `json:"serviceId" validate:"required"`
}

// Add bookmarks a service for a customer.
func (h *FavoriteHandler) Add(c echo.Context) error {
	var input favoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "invalid favorite input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	resp := h.uc.Add(c.Request().Context(), input.CustomerID, input.ServiceID)

	status := http.StatusOK
	if resp.Succeeded {
		status = http.StatusCreated
	}

	return response.Envelope(c, status, resp)
}

// Remove deletes the bookmark for the given pair.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	customerID, err := uuid.Parse(c.QueryParam("customerId"))
	if err != nil {
		return response.BindingError(c, "invalid customer id")
	}
	serviceID, err := uintPathParam(c, "serviceId")
	if err != nil {
		return response.BindingError(c, "invalid service id")
	}

	resp := h.uc.Remove(c.Request().Context(), customerID, serviceID)

	return response.Envelope(c, http.StatusOK, resp)
}
