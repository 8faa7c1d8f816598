package handler

import (
	"log/slog"
	"net/http"

	"farha/config"
	"farha/internal/delivery/http/response"
	"farha/internal/domain/entity"
	"farha/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves cross-kind discovery over the shared service root.
type CatalogHandler struct {
	cfg    *config.Config
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(cfg *config.Config, uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		cfg:    cfg,
		uc:     uc,
		logger: logger,
	}
}

// ListByKind handles kind-scoped discovery; the kind arrives as a path segment.
func (h *CatalogHandler) ListByKind(c echo.Context) error {
	kind := entity.ServiceKind(c.Param("kind"))
	page := intQueryParam(c, "page", 1)
	pageSize := intQueryParam(c, "pageSize", h.cfg.Pagination.DefaultPageSize)

	resp := h.uc.ListByKind(c.Request().Context(), kind, page, pageSize)

	return response.Envelope(c, http.StatusOK, resp)
}

// GetByID handles the root-level detail view for any kind.
func (h *CatalogHandler) GetByID(c echo.Context) error {
	kind := entity.ServiceKind(c.Param("kind"))
	id, err := uintPathParam(c, "id")
	if err != nil {
		return response.BindingError(c, "invalid service id")
	}

	resp := h.uc.GetByID(c.Request().Context(), kind, id)

	return response.Envelope(c, http.StatusOK, resp)
}
