package model

import "time"

// CheckoutEvent - событие оформленного заказа из хост-системы.
// Приходит через Kafka после завершения чекаута. DeliveryCompanyID
// заполняется из выбранной на чекауте ставки; 0 означает автоподбор
// компании по адресу доставки.
type CheckoutEvent struct {
	OrderID           int64     `json:"order_id" validate:"required,gt=0"`
	VendorID          int64     `json:"vendor_id" validate:"required,gt=0"`
	CustomerID        int64     `json:"customer_id" validate:"required,gt=0"`
	CustomerEmail     string    `json:"customer_email" validate:"required,email"`
	Subtotal          float64   `json:"subtotal" validate:"gte=0"`
	ShippingCost      float64   `json:"shipping_cost" validate:"gte=0"`
	DeliveryCompanyID int64     `json:"delivery_company_id" validate:"gte=0"`
	PickupAddress     string    `json:"pickup_address" validate:"required"`
	DeliveryAddress   Address   `json:"delivery_address" validate:"required"`
	CreatedAt         time.Time `json:"created_at" validate:"required"`
}
