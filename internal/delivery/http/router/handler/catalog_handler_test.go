package handler

import (
	"context"
	"testing"

	"farha/internal/domain/entity"
	"farha/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogListRecorder struct {
	usecase.CatalogUsecase

	kind     entity.ServiceKind
	page     int
	pageSize int
}

func (r *catalogListRecorder) ListByKind(ctx context.Context, kind entity.ServiceKind, page, pageSize int) *usecase.Response[[]usecase.ServiceSummaryDTO] {
	r.kind = kind
	r.page = page
	r.pageSize = pageSize

	return usecase.Ok([]usecase.ServiceSummaryDTO{}, "ok")
}

func TestCatalogListByKind_MissingPageSizeUsesConfiguredDefault(t *testing.T) {
	uc := &catalogListRecorder{}
	h := NewCatalogHandler(handlerTestConfig(), uc, handlerTestLogger())

	c, _ := getContext("/services/hall")
	c.SetParamNames("kind")
	c.SetParamValues("hall")

	require.NoError(t, h.ListByKind(c))
	assert.Equal(t, entity.KindHall, uc.kind)
	assert.Equal(t, 1, uc.page)
	assert.Equal(t, 10, uc.pageSize)
}
