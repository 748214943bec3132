package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusRank задает порядок прямых переходов статуса.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusAssigned:  1,
	OrderStatusPickedUp:  2,
	OrderStatusInTransit: 3,
	OrderStatusDelivered: 4,
}

// CanTransitionTo сообщает, допустим ли переход статуса.
// Статус движется только вперед (пропуск промежуточных разрешен,
// повтор текущего - тоже), cancelled достижим из любого
// нетерминального состояния. delivered и cancelled - терминальные.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == OrderStatusDelivered || s == OrderStatusCancelled {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	curRank, ok := statusRank[s]
	if !ok {
		return false
	}
	nextRank, ok := statusRank[next]
	if !ok {
		return false
	}
	return nextRank >= curRank
}

// ValidOrderStatus проверяет, что статус входит в допустимый набор.
func ValidOrderStatus(s OrderStatus) bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// StatusLabel - человекочитаемая формулировка для писем покупателю.
func StatusLabel(s OrderStatus) string {
	switch s {
	case OrderStatusAssigned:
		return "assigned to delivery company"
	case OrderStatusPickedUp:
		return "picked up"
	case OrderStatusInTransit:
		return "in transit"
	case OrderStatusDelivered:
		return "delivered"
	case OrderStatusCancelled:
		return "cancelled"
	}
	return string(s)
}

// DeliveryOrder - внутренняя запись о доставке: привязка заказа хост-системы
// к курьерской компании и текущий статус выполнения.
type DeliveryOrder struct {
	ID                int64       `json:"id" db:"id"`
	OrderID           int64       `json:"order_id" db:"order_id" validate:"required,gt=0"`
	DeliveryCompanyID int64       `json:"delivery_company_id" db:"delivery_company_id" validate:"required,gt=0"`
	VendorID          int64       `json:"vendor_id" db:"vendor_id" validate:"required,gt=0"`
	CustomerID        int64       `json:"customer_id" db:"customer_id" validate:"required,gt=0"`
	CustomerEmail     string      `json:"customer_email" db:"customer_email"`
	ShippingCost      float64     `json:"shipping_cost" db:"shipping_cost" validate:"gte=0"`
	PickupAddress     string      `json:"pickup_address" db:"pickup_address"`
	DeliveryAddress   string      `json:"delivery_address" db:"delivery_address"`
	Status            OrderStatus `json:"status" db:"status"`
	TrackingNumber    string      `json:"tracking_number" db:"tracking_number"`
	PickupDate        *time.Time  `json:"pickup_date,omitempty" db:"pickup_date"`
	DeliveryDate      *time.Time  `json:"delivery_date,omitempty" db:"delivery_date"`
	Notes             string      `json:"notes" db:"notes"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at" db:"updated_at"`
}
