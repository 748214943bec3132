package generator

import (
	"fmt"
	"time"

	"delivery_service/internal/model"

	"github.com/brianvoe/gofakeit/v6"
)

// NewCheckoutEvent создает одно полностью случайное чекаут-событие.
// Эта функция инкапсулирует всю логику генерации тестовых данных.
func NewCheckoutEvent() model.CheckoutEvent {
	// Инициализируем gofakeit, если это еще не сделано (на всякий случай)
	gofakeit.Seed(0)

	// Один адресный объект, чтобы город, штат и zip-код
	// были согласованы друг с другом.
	addr := gofakeit.Address()

	subtotal := float64(gofakeit.Number(1000, 25000)) / 100
	shippingCost := float64(gofakeit.Number(500, 2500)) / 100

	return model.CheckoutEvent{
		OrderID:       int64(gofakeit.Number(1000000, 9999999)),
		VendorID:      int64(gofakeit.Number(1, 100)),
		CustomerID:    int64(gofakeit.Number(1, 10000)),
		CustomerEmail: gofakeit.Email(),
		Subtotal:      subtotal,
		ShippingCost:  shippingCost,
		// 0 = автоподбор компании по адресу доставки
		DeliveryCompanyID: 0,
		PickupAddress:     fmt.Sprintf("%s warehouse, %s", gofakeit.Company(), gofakeit.City()),
		DeliveryAddress: model.Address{
			Country:    addr.Country,
			State:      addr.State,
			City:       addr.City,
			PostalCode: addr.Zip,
		},
		CreatedAt: time.Now().Add(-time.Duration(gofakeit.Number(1, 100)) * time.Minute),
	}
}
