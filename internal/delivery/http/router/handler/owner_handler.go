package handler

import (
	"log/slog"
	"net/http"

	"farha/internal/delivery/http/response"
	"farha/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OwnerHandler registers vendor accounts.
type OwnerHandler struct {
	uc     usecase.OwnerUsecase
	logger *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(uc usecase.OwnerUsecase, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles owner sign-up from a multipart form carrying the profile
// fields plus both identity-document images.
func (h *OwnerHandler) Register(c echo.Context) error {
	input := &usecase.RegisterOwnerInput{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
		Phone: c.FormValue("phone"),
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	front, err := formUploads(c, "idFrontImage")
	if err != nil {
		return response.BindingError(c, "invalid identity document upload")
	}
	back, err := formUploads(c, "idBackImage")
	if err != nil {
		return response.BindingError(c, "invalid identity document upload")
	}
	if len(front) > 0 {
		input.IDFrontImage = front[0]
	}
	if len(back) > 0 {
		input.IDBackImage = back[0]
	}

	resp := h.uc.Register(c.Request().Context(), input)

	status := http.StatusOK
	if resp.Succeeded {
		status = http.StatusCreated
	}

	return response.Envelope(c, status, resp)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
