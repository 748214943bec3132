package model

import "time"

type CompanyStatus string

const (
	CompanyStatusPending  CompanyStatus = "pending"
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
)

// Company - курьерская компания, зарегистрированная на маркетплейсе.
// Создается со статусом pending, активируется администратором.
type Company struct {
	ID            int64         `json:"id" db:"id"`
	UserID        int64         `json:"user_id" db:"user_id" validate:"required,gt=0"`
	CompanyName   string        `json:"company_name" db:"company_name" validate:"required"`
	ContactPerson string        `json:"contact_person" db:"contact_person" validate:"required"`
	Email         string        `json:"email" db:"email" validate:"required,email"`
	Phone         string        `json:"phone" db:"phone" validate:"required"`
	Address       string        `json:"address" db:"address" validate:"required"`
	City          string        `json:"city" db:"city" validate:"required"`
	State         string        `json:"state" db:"state"`
	PostalCode    string        `json:"postal_code" db:"postal_code" validate:"required"`
	Country       string        `json:"country" db:"country" validate:"required"`
	Status        CompanyStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// ValidCompanyStatus проверяет, что статус входит в допустимый набор.
func ValidCompanyStatus(s CompanyStatus) bool {
	switch s {
	case CompanyStatusPending, CompanyStatusActive, CompanyStatusInactive:
		return true
	}
	return false
}

// Address - адрес доставки покупателя, против которого матчатся зоны.
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}
