package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gormTag(t *testing.T, m any, field string) string {
	t.Helper()

	f, ok := reflect.TypeOf(m).FieldByName(field)
	require.True(t, ok, "%T has no field %s", m, field)

	return f.Tag.Get("gorm")
}

func TestReferentialActions(t *testing.T) {
	cases := []struct {
		model  any
		field  string
		action string
	}{
		{ServiceModel{}, "Owner", "RESTRICT"},
		{ServiceModel{}, "Favorites", "CASCADE"},
		{BeautyCenterModel{}, "Service", "CASCADE"},
		{BeautyCenterModel{}, "Images", "CASCADE"},
		{BeautyCenterModel{}, "SubServices", "CASCADE"},
		{BeautyCenterModel{}, "Reviews", "CASCADE"},
		{ReviewModel{}, "Customer", "RESTRICT"},
		{FavoriteServiceModel{}, "Customer", "RESTRICT"},
		{HallModel{}, "Service", "CASCADE"},
		{HallModel{}, "Pictures", "CASCADE"},
		{PhotographyModel{}, "Service", "CASCADE"},
		{PhotographyModel{}, "Portfolio", "CASCADE"},
		{CarModel{}, "Service", "CASCADE"},
		{CarModel{}, "Pictures", "CASCADE"},
		{ShopDressesModel{}, "Service", "CASCADE"},
		{ShopDressesModel{}, "Dresses", "CASCADE"},
		{ChatModel{}, "Customer", "RESTRICT"},
		{ChatModel{}, "Owner", "CASCADE"},
		{ChatMessageModel{}, "Chat", "RESTRICT"},
		{ChatMessageModel{}, "Sender", "CASCADE"},
		{ChatMessageModel{}, "Receiver", "RESTRICT"},
	}

	for _, tc := range cases {
		tag := gormTag(t, tc.model, tc.field)
		assert.Contains(t, tag, "constraint:OnDelete:"+tc.action, "%T.%s", tc.model, tc.field)
	}
}

func TestFavoritePairIsUnique(t *testing.T) {
	for _, field := range []string{"CustomerID", "ServiceID"} {
		tag := gormTag(t, FavoriteServiceModel{}, field)
		assert.Contains(t, tag, "uniqueIndex:idx_favorite_customer_service", field)
	}
}
