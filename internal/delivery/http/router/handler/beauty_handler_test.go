package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"farha/config"
	"farha/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// beautyListRecorder records the paging arguments List receives. The embedded
// interface panics for anything else, which keeps the stub honest.
type beautyListRecorder struct {
	usecase.BeautyUsecase

	page     int
	pageSize int
}

func (r *beautyListRecorder) List(ctx context.Context, customerID uuid.UUID, page, pageSize, governorateID, cityID int) *usecase.Response[[]usecase.BeautyCenterDTO] {
	r.page = page
	r.pageSize = pageSize

	return usecase.Ok([]usecase.BeautyCenterDTO{}, "ok")
}

func handlerTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func handlerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pagination.DefaultPageSize = 10

	return cfg
}

func getContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBeautyList_MissingPageSizeUsesConfiguredDefault(t *testing.T) {
	uc := &beautyListRecorder{}
	h := NewBeautyHandler(handlerTestConfig(), uc, handlerTestLogger())

	c, rec := getContext("/beauty-centers")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.page)
	assert.Equal(t, 10, uc.pageSize)
}

func TestBeautyList_ExplicitPageSizeWins(t *testing.T) {
	uc := &beautyListRecorder{}
	h := NewBeautyHandler(handlerTestConfig(), uc, handlerTestLogger())

	c, _ := getContext("/beauty-centers?page=2&pageSize=25")

	require.NoError(t, h.List(c))
	assert.Equal(t, 2, uc.page)
	assert.Equal(t, 25, uc.pageSize)
}
