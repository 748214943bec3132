package model

import (
	"math"
	"time"
)

type EarningStatus string

const (
	EarningStatusPending   EarningStatus = "pending"
	EarningStatusPaid      EarningStatus = "paid"
	EarningStatusCancelled EarningStatus = "cancelled"
)

// Earning - запись о заработке компании по одному заказу доставки.
// net_amount = amount - commission_amount.
type Earning struct {
	ID                int64         `json:"id" db:"id"`
	DeliveryCompanyID int64         `json:"delivery_company_id" db:"delivery_company_id"`
	OrderID           int64         `json:"order_id" db:"order_id"`
	Amount            float64       `json:"amount" db:"amount"`
	CommissionRate    float64       `json:"commission_rate" db:"commission_rate"`
	CommissionAmount  float64       `json:"commission_amount" db:"commission_amount"`
	NetAmount         float64       `json:"net_amount" db:"net_amount"`
	Status            EarningStatus `json:"status" db:"status"`
	PaidAt            *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

// NewEarning считает комиссионное разбиение по ставке на момент назначения.
// Суммы округляются до центов.
func NewEarning(companyID, orderID int64, amount, commissionRate float64) *Earning {
	commission := roundCents(amount * commissionRate / 100)
	return &Earning{
		DeliveryCompanyID: companyID,
		OrderID:           orderID,
		Amount:            amount,
		CommissionRate:    commissionRate,
		CommissionAmount:  commission,
		NetAmount:         roundCents(amount - commission),
		Status:            EarningStatusPending,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// EarningsSummary - агрегаты по заработкам компании.
type EarningsSummary struct {
	TotalOrders     int64   `json:"total_orders" db:"total_orders"`
	TotalAmount     float64 `json:"total_amount" db:"total_amount"`
	TotalCommission float64 `json:"total_commission" db:"total_commission"`
	TotalNet        float64 `json:"total_net" db:"total_net"`
	PendingAmount   float64 `json:"pending_amount" db:"pending_amount"`
	PaidAmount      float64 `json:"paid_amount" db:"paid_amount"`
}

// MonthlyEarning - помесячная разбивка заработков за год.
type MonthlyEarning struct {
	Month  int     `json:"month" db:"month"`
	Orders int64   `json:"orders" db:"orders"`
	Amount float64 `json:"amount" db:"amount"`
}
