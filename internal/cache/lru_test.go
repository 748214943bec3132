package cache

import (
	"context"
	"fmt"
	"testing"

	"delivery_service/internal/database/mocks"
	"delivery_service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLRUCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2)

	zones := []model.Zone{{ID: 1, ZoneName: "USA"}}
	c.Set(ctx, ZoneKey(1), zones)

	got, found := c.Get(ctx, ZoneKey(1))
	require.True(t, found)
	assert.Equal(t, zones, got)

	_, found = c.Get(ctx, ZoneKey(2))
	assert.False(t, found)
}

func TestLRUCache_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2)

	c.Set(ctx, "a", 1)
	c.Set(ctx, "b", 2)
	c.Set(ctx, "c", 3) // вытесняет "a"

	_, found := c.Get(ctx, "a")
	assert.False(t, found)

	v, found := c.Get(ctx, "b")
	require.True(t, found)
	assert.Equal(t, 2, v)
}

func TestLRUCache_GetRefreshesRecency(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2)

	c.Set(ctx, "a", 1)
	c.Set(ctx, "b", 2)

	// Обращение к "a" делает "b" самым старым.
	_, found := c.Get(ctx, "a")
	require.True(t, found)

	c.Set(ctx, "c", 3)

	_, found = c.Get(ctx, "b")
	assert.False(t, found)
	_, found = c.Get(ctx, "a")
	assert.True(t, found)
}

func TestLRUCache_SetExistingUpdatesValue(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2)

	c.Set(ctx, "a", 1)
	c.Set(ctx, "a", 100)

	v, found := c.Get(ctx, "a")
	require.True(t, found)
	assert.Equal(t, 100, v)
}

func TestLRUCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2)

	c.Set(ctx, ZoneKey(1), []model.Zone{{ID: 1}})
	c.Delete(ctx, ZoneKey(1))

	_, found := c.Get(ctx, ZoneKey(1))
	assert.False(t, found)

	// Удаление отсутствующего ключа безопасно.
	c.Delete(ctx, "missing")
}

func TestLRUCache_ZeroCapacity(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(0)

	c.Set(ctx, "a", 1)
	_, found := c.Get(ctx, "a")
	assert.False(t, found)
}

func TestZoneKey(t *testing.T) {
	assert.Equal(t, fmt.Sprintf("zones:%d", 7), ZoneKey(7))
}

func TestWarmUp_LoadsActiveZonesPerCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	ctx := context.Background()

	companies := []model.Company{{ID: 1}, {ID: 2}}
	zones1 := []model.Zone{{ID: 11, DeliveryCompanyID: 1}}
	zones2 := []model.Zone{{ID: 21, DeliveryCompanyID: 2}}

	storage.EXPECT().ListActiveCompanies(ctx).Return(companies, nil)
	storage.EXPECT().ActiveZonesByCompany(ctx, int64(1)).Return(zones1, nil)
	storage.EXPECT().ActiveZonesByCompany(ctx, int64(2)).Return(zones2, nil)

	c := NewLRUCache(10)
	require.NoError(t, WarmUp(ctx, storage, c))

	got, found := c.Get(ctx, ZoneKey(1))
	require.True(t, found)
	assert.Equal(t, zones1, got)

	got, found = c.Get(ctx, ZoneKey(2))
	require.True(t, found)
	assert.Equal(t, zones2, got)
}
