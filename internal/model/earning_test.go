package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEarning_CommissionSplit(t *testing.T) {
	earning := NewEarning(7, 100, 100.00, 5.00)

	assert.Equal(t, int64(7), earning.DeliveryCompanyID)
	assert.Equal(t, int64(100), earning.OrderID)
	assert.Equal(t, 100.00, earning.Amount)
	assert.Equal(t, 5.00, earning.CommissionAmount)
	assert.Equal(t, 95.00, earning.NetAmount)
	assert.Equal(t, EarningStatusPending, earning.Status)
	assert.Nil(t, earning.PaidAt)
}

func TestNewEarning_RoundsToCents(t *testing.T) {
	// 33.33 * 7.5% = 2.49975 -> 2.50
	earning := NewEarning(1, 1, 33.33, 7.5)

	assert.Equal(t, 2.50, earning.CommissionAmount)
	assert.Equal(t, 30.83, earning.NetAmount)
}

func TestNewEarning_ZeroAmount(t *testing.T) {
	// Бесплатная доставка: заработок фиксируется с нулевыми суммами.
	earning := NewEarning(1, 1, 0, 5)

	assert.Equal(t, 0.0, earning.Amount)
	assert.Equal(t, 0.0, earning.CommissionAmount)
	assert.Equal(t, 0.0, earning.NetAmount)
}
