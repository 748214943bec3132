package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"delivery_service/internal/assignment"
	"delivery_service/internal/cache"
	cachemocks "delivery_service/internal/cache/mocks"
	"delivery_service/internal/config"
	"delivery_service/internal/database/mocks"
	"delivery_service/internal/matching"
	"delivery_service/internal/model"
	"delivery_service/internal/notify"
	"delivery_service/internal/payout"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	handler   *Handler
	storage   *mocks.MockStorage
	zoneCache *cachemocks.MockCache
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	zoneCache := cachemocks.NewMockCache(ctrl)
	cfg := config.DeliveryConfig{Enabled: true, CommissionRate: 5}
	quoter := matching.NewQuoter(storage, zoneCache, cfg)
	assigner := assignment.NewAssigner(storage, quoter, notify.Nop{}, cfg)
	ledger := payout.NewLedger(storage, notify.Nop{})

	return &handlerFixture{
		handler:   NewHandler(storage, zoneCache, quoter, assigner, ledger, notify.Nop{}),
		storage:   storage,
		zoneCache: zoneCache,
	}
}

// newRequest собирает запрос с chi URL-параметрами.
func newRequest(method, target string, body interface{}, params map[string]string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterCompany_Created(t *testing.T) {
	f := newHandlerFixture(t)

	company := model.Company{
		UserID:        10,
		CompanyName:   "Fast Couriers",
		ContactPerson: "Ann",
		Email:         "fast@example.com",
		Phone:         "+15550100",
		Address:       "1 Main St",
		City:          "New York",
		PostalCode:    "10001",
		Country:       "US",
	}
	f.storage.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	rec := httptest.NewRecorder()
	f.handler.RegisterCompany(rec, newRequest(http.MethodPost, "/api/companies", company, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterCompany_InvalidBody(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/companies", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	f.handler.RegisterCompany(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterCompany_ValidationFailure(t *testing.T) {
	f := newHandlerFixture(t)

	// Нет обязательных полей
	rec := httptest.NewRecorder()
	f.handler.RegisterCompany(rec, newRequest(http.MethodPost, "/api/companies", model.Company{}, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCompany_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.storage.EXPECT().GetCompanyByID(gomock.Any(), int64(99)).Return(nil, errors.New("sql: no rows"))

	rec := httptest.NewRecorder()
	f.handler.GetCompany(rec, newRequest(http.MethodGet, "/api/companies/99", nil, map[string]string{"companyID": "99"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCompany_BadID(t *testing.T) {
	f := newHandlerFixture(t)

	rec := httptest.NewRecorder()
	f.handler.GetCompany(rec, newRequest(http.MethodGet, "/api/companies/abc", nil, map[string]string{"companyID": "abc"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCompanyStatus_RejectsUnknownStatus(t *testing.T) {
	f := newHandlerFixture(t)

	rec := httptest.NewRecorder()
	f.handler.UpdateCompanyStatus(rec, newRequest(http.MethodPost, "/api/companies/1/status",
		map[string]string{"status": "vip"}, map[string]string{"companyID": "1"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateZone_InvalidatesZoneCache(t *testing.T) {
	f := newHandlerFixture(t)

	zone := model.Zone{
		ZoneName:     "USA",
		ZoneType:     model.ZoneTypeCountry,
		ZoneValue:    "US",
		ShippingRate: 10,
	}
	f.storage.EXPECT().CreateZone(gomock.Any(), gomock.Any()).Return(int64(5), nil)
	f.zoneCache.EXPECT().Delete(gomock.Any(), cache.ZoneKey(int64(1)))

	rec := httptest.NewRecorder()
	f.handler.CreateZone(rec, newRequest(http.MethodPost, "/api/companies/1/zones", zone, map[string]string{"companyID": "1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeleteZone_InvalidatesOwnerCache(t *testing.T) {
	f := newHandlerFixture(t)

	f.storage.EXPECT().GetZoneByID(gomock.Any(), int64(5)).Return(&model.Zone{ID: 5, DeliveryCompanyID: 2}, nil)
	f.storage.EXPECT().DeleteZone(gomock.Any(), int64(5)).Return(nil)
	f.zoneCache.EXPECT().Delete(gomock.Any(), cache.ZoneKey(int64(2)))

	rec := httptest.NewRecorder()
	f.handler.DeleteZone(rec, newRequest(http.MethodDelete, "/api/zones/5", nil, map[string]string{"zoneID": "5"}))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestQuote_ReturnsRates(t *testing.T) {
	f := newHandlerFixture(t)

	zones := []model.Zone{{ID: 11, ZoneName: "USA", ZoneType: model.ZoneTypeCountry, ZoneValue: "US", ShippingRate: 10, EstimatedDeliveryDays: 2}}
	f.storage.EXPECT().ListActiveCompanies(gomock.Any()).Return([]model.Company{{ID: 1, CompanyName: "Fast"}}, nil)
	f.zoneCache.EXPECT().Get(gomock.Any(), cache.ZoneKey(int64(1))).Return(zones, true)

	body := map[string]interface{}{
		"address":  model.Address{Country: "US"},
		"subtotal": 50,
	}
	rec := httptest.NewRecorder()
	f.handler.Quote(rec, newRequest(http.MethodPost, "/api/shipping/quote", body, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var quotes []model.ShippingQuote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quotes))
	require.Len(t, quotes, 1)
	assert.Equal(t, 10.0, quotes[0].Cost)
}

func TestAssignOrder_NoCompanyServesAddress(t *testing.T) {
	f := newHandlerFixture(t)

	f.storage.EXPECT().ListActiveCompanies(gomock.Any()).Return([]model.Company{}, nil)

	event := model.CheckoutEvent{
		OrderID: 42, VendorID: 9, CustomerID: 5,
		CustomerEmail: "b@example.com", ShippingCost: 10,
		PickupAddress:   "W1",
		DeliveryAddress: model.Address{Country: "AQ"},
		CreatedAt:       time.Now(),
	}
	rec := httptest.NewRecorder()
	f.handler.AssignOrder(rec, newRequest(http.MethodPost, "/api/orders/assign", event, nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateOrderStatus_RejectsBackwardTransition(t *testing.T) {
	f := newHandlerFixture(t)

	f.storage.EXPECT().GetDeliveryOrderByID(gomock.Any(), int64(1)).
		Return(&model.DeliveryOrder{ID: 1, Status: model.OrderStatusInTransit}, nil)

	rec := httptest.NewRecorder()
	f.handler.UpdateOrderStatus(rec, newRequest(http.MethodPost, "/api/orders/1/status",
		map[string]string{"status": "assigned"}, map[string]string{"orderID": "1"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateOrderStatus_AllowsForwardTransition(t *testing.T) {
	f := newHandlerFixture(t)

	f.storage.EXPECT().GetDeliveryOrderByID(gomock.Any(), int64(1)).
		Return(&model.DeliveryOrder{ID: 1, OrderID: 42, Status: model.OrderStatusAssigned, CustomerEmail: "b@example.com"}, nil)
	f.storage.EXPECT().UpdateOrderStatus(gomock.Any(), int64(1), model.OrderStatusPickedUp, "").
		Return(&model.DeliveryOrder{ID: 1, OrderID: 42, Status: model.OrderStatusPickedUp, CustomerEmail: "b@example.com"}, nil)

	rec := httptest.NewRecorder()
	f.handler.UpdateOrderStatus(rec, newRequest(http.MethodPost, "/api/orders/1/status",
		map[string]string{"status": "picked_up"}, map[string]string{"orderID": "1"}))

	require.Equal(t, http.StatusOK, rec.Code)

	var order model.DeliveryOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, model.OrderStatusPickedUp, order.Status)
}

func TestCancelHostOrder_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.storage.EXPECT().CancelByOrderID(gomock.Any(), int64(42)).Return(nil, errors.New("sql: no rows"))

	rec := httptest.NewRecorder()
	f.handler.CancelHostOrder(rec, newRequest(http.MethodPost, "/api/host-orders/42/cancel", nil, map[string]string{"orderID": "42"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProcessPayout_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]interface{}
		setup    func(f *handlerFixture)
		wantCode int
	}{
		{
			name: "unknown method",
			body: map[string]interface{}{"earning_ids": []int64{1}, "method": "crypto"},
			setup: func(f *handlerFixture) {
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "nothing to pay",
			body: map[string]interface{}{"earning_ids": []int64{1}, "method": "manual"},
			setup: func(f *handlerFixture) {
				f.storage.EXPECT().PendingEarningsByIDs(gomock.Any(), int64(7), []int64{1}).
					Return([]model.Earning{}, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "empty selection",
			body:     map[string]interface{}{"earning_ids": []int64{}, "method": "manual"},
			setup:    func(f *handlerFixture) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setup(f)

			rec := httptest.NewRecorder()
			f.handler.ProcessPayout(rec, newRequest(http.MethodPost, "/api/companies/7/payout",
				tt.body, map[string]string{"companyID": "7"}))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestProcessPayout_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.storage.EXPECT().PendingEarningsByIDs(gomock.Any(), int64(7), []int64{1, 2}).
		Return([]model.Earning{
			{ID: 1, NetAmount: 47.50},
			{ID: 2, NetAmount: 9.50},
		}, nil)
	f.storage.EXPECT().GetCompanyByID(gomock.Any(), int64(7)).
		Return(&model.Company{ID: 7, CompanyName: "Fast", Email: "fast@example.com"}, nil)
	f.storage.EXPECT().MarkEarningsPaid(gomock.Any(), []int64{1, 2}, gomock.Any()).Return(nil)

	body := map[string]interface{}{
		"earning_ids": []int64{1, 2},
		"method":      "bank_transfer",
		"method_data": map[string]string{"account_number": "123"},
	}
	rec := httptest.NewRecorder()
	f.handler.ProcessPayout(rec, newRequest(http.MethodPost, "/api/companies/7/payout",
		body, map[string]string{"companyID": "7"}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 57.0, resp["total_paid"])
}
