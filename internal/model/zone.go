package model

import "time"

type ZoneType string

const (
	ZoneTypeCountry ZoneType = "country"
	ZoneTypeState   ZoneType = "state"
	ZoneTypeCity    ZoneType = "city"
	ZoneTypePostal  ZoneType = "postal"
)

type ZoneStatus string

const (
	ZoneStatusActive   ZoneStatus = "active"
	ZoneStatusInactive ZoneStatus = "inactive"
)

// Zone - тарифная зона доставки, принадлежащая одной компании.
// ZoneValue - список значений через запятую ("US,CA"), матчинг
// регистронезависимый, с обрезкой пробелов.
type Zone struct {
	ID                    int64      `json:"id" db:"id"`
	DeliveryCompanyID     int64      `json:"delivery_company_id" db:"delivery_company_id" validate:"required,gt=0"`
	ZoneName              string     `json:"zone_name" db:"zone_name" validate:"required"`
	ZoneType              ZoneType   `json:"zone_type" db:"zone_type" validate:"required,oneof=country state city postal"`
	ZoneValue             string     `json:"zone_value" db:"zone_value" validate:"required"`
	ShippingRate          float64    `json:"shipping_rate" db:"shipping_rate" validate:"gte=0"`
	FreeShippingThreshold float64    `json:"free_shipping_threshold" db:"free_shipping_threshold" validate:"gte=0"`
	EstimatedDeliveryDays int        `json:"estimated_delivery_days" db:"estimated_delivery_days" validate:"gte=1"`
	Status                ZoneStatus `json:"status" db:"status"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}

// ShippingQuote - предложение ставки доставки для чекаута.
// Формируется по первой подошедшей зоне каждой активной компании.
type ShippingQuote struct {
	DeliveryCompanyID     int64   `json:"delivery_company_id"`
	DeliveryCompanyName   string  `json:"delivery_company_name"`
	ZoneID                int64   `json:"zone_id"`
	ZoneName              string  `json:"zone_name"`
	Label                 string  `json:"label"`
	Cost                  float64 `json:"cost"`
	EstimatedDeliveryDays int     `json:"estimated_delivery_days"`
}
