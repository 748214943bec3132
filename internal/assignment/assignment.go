package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"delivery_service/internal/config"
	"delivery_service/internal/database"
	"delivery_service/internal/matching"
	"delivery_service/internal/metrics"
	"delivery_service/internal/model"
	"delivery_service/internal/notify"

	"github.com/google/uuid"
)

// ErrNoCompany возвращается, когда ни одна активная компания не обслуживает адрес.
var ErrNoCompany = errors.New("нет компании, обслуживающей адрес доставки")

// Assigner создает заказ доставки и запись о заработке по чекаут-событию
// хост-системы. Ставка комиссии берется из явного конфига на момент
// назначения и фиксируется в записи о заработке.
type Assigner struct {
	storage  database.Storage
	quoter   *matching.Quoter
	notifier notify.Notifier
	cfg      config.DeliveryConfig
}

// NewAssigner создает новый экземпляр Assigner.
func NewAssigner(storage database.Storage, quoter *matching.Quoter, notifier notify.Notifier, cfg config.DeliveryConfig) *Assigner {
	return &Assigner{storage: storage, quoter: quoter, notifier: notifier, cfg: cfg}
}

// AssignOrder назначает заказ компании: если компания не выбрана на чекауте,
// подбирает первую активную, обслуживающую адрес. Заказ (pending) и заработок
// (pending) сохраняются одной транзакцией. Уведомления компании и продавцу
// отправляются по принципу fire-and-forget.
func (a *Assigner) AssignOrder(ctx context.Context, event *model.CheckoutEvent) (*model.DeliveryOrder, error) {
	companyID := event.DeliveryCompanyID
	if companyID == 0 {
		company, err := a.quoter.FindCompanyForAddress(ctx, event.DeliveryAddress)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, ErrNoCompany
		}
		companyID = company.ID
	}

	company, err := a.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("компания %d не найдена: %w", companyID, err)
	}

	order := &model.DeliveryOrder{
		OrderID:           event.OrderID,
		DeliveryCompanyID: company.ID,
		VendorID:          event.VendorID,
		CustomerID:        event.CustomerID,
		CustomerEmail:     event.CustomerEmail,
		ShippingCost:      event.ShippingCost,
		PickupAddress:     event.PickupAddress,
		DeliveryAddress:   formatAddress(event.DeliveryAddress),
		TrackingNumber:    newTrackingNumber(),
	}
	earning := model.NewEarning(company.ID, event.OrderID, event.ShippingCost, a.cfg.CommissionRate)

	if err := a.storage.CreateDeliveryOrder(ctx, order, earning); err != nil {
		return nil, err
	}
	metrics.OrdersAssigned.Inc()

	a.notifier.Send(ctx, notify.Message{
		To:      company.Email,
		Subject: fmt.Sprintf("New Delivery Order #%d", order.ID),
		Body:    fmt.Sprintf("You have a new delivery order. Order ID: %d, tracking number: %s", order.OrderID, order.TrackingNumber),
	})

	return order, nil
}

// newTrackingNumber генерирует трек-номер заказа доставки.
func newTrackingNumber() string {
	return "DLVR-" + strings.ToUpper(uuid.New().String()[:8])
}

// formatAddress собирает адресные поля в одну строку для хранения.
func formatAddress(a model.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.City, a.State, a.PostalCode, a.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
