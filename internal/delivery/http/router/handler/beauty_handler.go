// Package handler contains the HTTP handlers for the catalog.
package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"farha/config"
	"farha/internal/delivery/http/response"
	"farha/internal/domain/service"
	"farha/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BeautyHandler holds dependencies for beauty-center handlers.
type BeautyHandler struct {
	cfg    *config.Config
	uc     usecase.BeautyUsecase
	logger *slog.Logger
}

// NewBeautyHandler is the constructor for BeautyHandler, injected by Fx.
func NewBeautyHandler(cfg *config.Config, uc usecase.BeautyUsecase, logger *slog.Logger) *BeautyHandler {
	return &BeautyHandler{
		cfg:    cfg,
		uc:     uc,
		logger: logger,
	}
}

// List handles paginated discovery with optional location filters.
func (h *BeautyHandler) List(c echo.Context) error {
	customerID, err := optionalUUIDParam(c, "customerId")
	if err != nil {
		return response.BindingError(c, "invalid customer id")
	}

	page := intQueryParam(c, "page", 1)
	pageSize := intQueryParam(c, "pageSize", h.cfg.Pagination.DefaultPageSize)
	governorateID := intQueryParam(c, "governorateId", 0)
	cityID := intQueryParam(c, "cityId", 0)

	resp := h.uc.List(c.Request().Context(), customerID, page, pageSize, governorateID, cityID)

	return response.Envelope(c, http.StatusOK, resp)
}

// GetByName handles name-fragment search.
func (h *BeautyHandler) GetByName(c echo.Context) error {
	name := c.QueryParam("name")

	resp := h.uc.GetByName(c.Request().Context(), name)

	return response.Envelope(c, http.StatusOK, resp)
}

// GetByID handles the detail view.
func (h *BeautyHandler) GetByID(c echo.Context) error {
	id, err := uintPathParam(c, "id")
	if err != nil {
		return response.BindingError(c, "invalid beauty center id")
	}

	resp := h.uc.GetByID(c.Request().Context(), id)

	return response.Envelope(c, http.StatusOK, resp)
}

// Add handles creation from a multipart form carrying scalar fields plus
// image uploads.
func (h *BeautyHandler) Add(c echo.Context) error {
	input, err := bindBeautyCenterForm(c)
	if err != nil {
		return response.BindingError(c, "invalid beauty center input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	resp := h.uc.Add(c.Request().Context(), input)

	status := http.StatusOK
	if resp.Succeeded {
		status = http.StatusCreated
	}

	return response.Envelope(c, status, resp)
}

// Update handles scalar overwrite plus image appends from a multipart form.
func (h *BeautyHandler) Update(c echo.Context) error {
	id, err := uintPathParam(c, "id")
	if err != nil {
		return response.BindingError(c, "invalid beauty center id")
	}

	input, err := bindBeautyCenterForm(c)
	if err != nil {
		return response.BindingError(c, "invalid beauty center input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	resp := h.uc.Update(c.Request().Context(), input, id)

	return response.Envelope(c, http.StatusOK, resp)
}

// DeleteByID handles removal of a center and its dependent rows.
func (h *BeautyHandler) DeleteByID(c echo.Context) error {
	id, err := uintPathParam(c, "id")
	if err != nil {
		return response.BindingError(c, "invalid beauty center id")
	}

	resp := h.uc.DeleteByID(c.Request().Context(), id)

	return response.Envelope(c, http.StatusOK, resp)
}

// AddSubServices handles batch attachment of sub-offerings.
func (h *BeautyHandler) AddSubServices(c echo.Context) error {
	var inputs []usecase.SubServiceInput
	if err := c.Bind(&inputs); err != nil {
		return response.BindingError(c, "invalid sub-service input")
	}
	for i := range inputs {
		if err := c.Validate(&inputs[i]); err != nil {
			return err
		}
	}

	resp := h.uc.AddSubServices(c.Request().Context(), inputs)

	status := http.StatusOK
	if resp.Succeeded {
		status = http.StatusCreated
	}

	return response.Envelope(c, status, resp)
}

// RemoveSubService handles detachment of one sub-offering.
func (h *BeautyHandler) RemoveSubService(c echo.Context) error {
	beautyCenterID, err := uintPathParam(c, "id")
	if err != nil {
		return response.BindingError(c, "invalid beauty center id")
	}
	subServiceID, err := uintPathParam(c, "subServiceId")
	if err != nil {
		return response.BindingError(c, "invalid sub-service id")
	}

	resp := h.uc.RemoveSubService(c.Request().Context(), beautyCenterID, subServiceID)

	return response.Envelope(c, http.StatusOK, resp)
}

// --- Form helpers shared by the catalog handlers ---

func bindBeautyCenterForm(c echo.Context) (*usecase.AddBeautyCenterInput, error) {
	ownerID, err := uuid.Parse(c.FormValue("ownerId"))
	if err != nil {
		return nil, err
	}

	input := &usecase.AddBeautyCenterInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		OwnerID:     ownerID,
	}
	if v := c.FormValue("governorateId"); v != "" {
		if input.GovernorateID, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}
	if v := c.FormValue("cityId"); v != "" {
		if input.CityID, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}

	input.Images, err = formUploads(c, "images")
	if err != nil {
		return nil, err
	}

	return input, nil
}

func formUploads(c echo.Context, field string) ([]service.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if err == http.ErrNotMultipart || err == http.ErrMissingBoundary {
			return nil, nil
		}

		return nil, err
	}

	files := form.File[field]
	uploads := make([]service.Upload, 0, len(files))
	for _, fh := range files {
		upload, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, nil
}

func readUpload(fh *multipart.FileHeader) (service.Upload, error) {
	src, err := fh.Open()
	if err != nil {
		return service.Upload{}, err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return service.Upload{}, err
	}

	return service.Upload{
		Filename: fh.Filename,
		Content:  content,
	}, nil
}

func uintPathParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(v), nil
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func optionalUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, nil
	}

	return uuid.Parse(raw)
}
