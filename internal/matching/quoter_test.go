package matching

import (
	"context"
	"errors"
	"testing"

	"delivery_service/internal/cache"
	cachemocks "delivery_service/internal/cache/mocks"
	"delivery_service/internal/config"
	"delivery_service/internal/database/mocks"
	"delivery_service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQuoterWithMocks(t *testing.T) (*Quoter, *mocks.MockStorage, *cachemocks.MockCache) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	zoneCache := cachemocks.NewMockCache(ctrl)
	quoter := NewQuoter(storage, zoneCache, config.DeliveryConfig{Enabled: true, CommissionRate: 5})
	return quoter, storage, zoneCache
}

func TestQuote_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	zoneCache := cachemocks.NewMockCache(ctrl)
	quoter := NewQuoter(storage, zoneCache, config.DeliveryConfig{Enabled: false})

	quotes, err := quoter.Quote(context.Background(), model.Address{Country: "US"}, 50)
	require.NoError(t, err)
	assert.Nil(t, quotes)
}

func TestQuote_OneQuotePerServingCompany(t *testing.T) {
	quoter, storage, zoneCache := newQuoterWithMocks(t)
	ctx := context.Background()

	companies := []model.Company{
		{ID: 1, CompanyName: "Fast Couriers", Status: model.CompanyStatusActive},
		{ID: 2, CompanyName: "Slow Freight", Status: model.CompanyStatusActive},
	}
	fastZones := []model.Zone{
		{ID: 11, DeliveryCompanyID: 1, ZoneName: "USA", ZoneType: model.ZoneTypeCountry, ZoneValue: "US", ShippingRate: 10, EstimatedDeliveryDays: 2},
	}
	slowZones := []model.Zone{
		{ID: 21, DeliveryCompanyID: 2, ZoneName: "Europe", ZoneType: model.ZoneTypeCountry, ZoneValue: "DE,FR", ShippingRate: 15, EstimatedDeliveryDays: 7},
	}

	storage.EXPECT().ListActiveCompanies(ctx).Return(companies, nil)
	zoneCache.EXPECT().Get(ctx, cache.ZoneKey(int64(1))).Return(nil, false)
	storage.EXPECT().ActiveZonesByCompany(ctx, int64(1)).Return(fastZones, nil)
	zoneCache.EXPECT().Set(ctx, cache.ZoneKey(int64(1)), fastZones)
	zoneCache.EXPECT().Get(ctx, cache.ZoneKey(int64(2))).Return(nil, false)
	storage.EXPECT().ActiveZonesByCompany(ctx, int64(2)).Return(slowZones, nil)
	zoneCache.EXPECT().Set(ctx, cache.ZoneKey(int64(2)), slowZones)

	quotes, err := quoter.Quote(ctx, model.Address{Country: "US"}, 50)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, int64(1), quotes[0].DeliveryCompanyID)
	assert.Equal(t, "Fast Couriers to USA (2 days)", quotes[0].Label)
	assert.Equal(t, 10.0, quotes[0].Cost)
}

func TestQuote_UsesCachedZones(t *testing.T) {
	quoter, storage, zoneCache := newQuoterWithMocks(t)
	ctx := context.Background()

	zones := []model.Zone{
		{ID: 11, ZoneName: "USA", ZoneType: model.ZoneTypeCountry, ZoneValue: "US", ShippingRate: 10, FreeShippingThreshold: 100, EstimatedDeliveryDays: 1},
	}

	storage.EXPECT().ListActiveCompanies(ctx).Return([]model.Company{{ID: 1, CompanyName: "Fast"}}, nil)
	zoneCache.EXPECT().Get(ctx, cache.ZoneKey(int64(1))).Return(zones, true)

	quotes, err := quoter.Quote(ctx, model.Address{Country: "US"}, 150)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, 0.0, quotes[0].Cost) // порог бесплатной доставки достигнут
	assert.Equal(t, "Fast to USA (1 day)", quotes[0].Label)
}

func TestQuote_StorageError(t *testing.T) {
	quoter, storage, _ := newQuoterWithMocks(t)
	ctx := context.Background()

	storage.EXPECT().ListActiveCompanies(ctx).Return(nil, errors.New("db down"))

	_, err := quoter.Quote(ctx, model.Address{Country: "US"}, 50)
	assert.Error(t, err)
}

func TestFindCompanyForAddress_FirstServingCompany(t *testing.T) {
	quoter, storage, zoneCache := newQuoterWithMocks(t)
	ctx := context.Background()

	// Порядок компаний - id ASC; выигрывает первая обслуживающая.
	companies := []model.Company{
		{ID: 1, CompanyName: "A"},
		{ID: 2, CompanyName: "B"},
	}
	storage.EXPECT().ListActiveCompanies(ctx).Return(companies, nil)
	zoneCache.EXPECT().Get(ctx, cache.ZoneKey(int64(1))).Return([]model.Zone{
		{ZoneType: model.ZoneTypeCountry, ZoneValue: "DE"},
	}, true)
	zoneCache.EXPECT().Get(ctx, cache.ZoneKey(int64(2))).Return([]model.Zone{
		{ZoneType: model.ZoneTypeCountry, ZoneValue: "US"},
	}, true)

	company, err := quoter.FindCompanyForAddress(ctx, model.Address{Country: "US"})
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, int64(2), company.ID)
}

func TestFindCompanyForAddress_NoneFound(t *testing.T) {
	quoter, storage, zoneCache := newQuoterWithMocks(t)
	ctx := context.Background()

	storage.EXPECT().ListActiveCompanies(ctx).Return([]model.Company{{ID: 1}}, nil)
	zoneCache.EXPECT().Get(ctx, cache.ZoneKey(int64(1))).Return([]model.Zone{}, true)

	company, err := quoter.FindCompanyForAddress(ctx, model.Address{Country: "US"})
	require.NoError(t, err)
	assert.Nil(t, company)
}
