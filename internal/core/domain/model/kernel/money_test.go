package kernel_test

import (
	"testing"

	"burgershop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		name   string
		amount kernel.Money
		want   string
	}{
		{"zero", 0, "₱0.00"},
		{"small", 30, "₱30.00"},
		{"with_decimals", 1234.5, "₱1,234.50"},
		{"thousands", 5000, "₱5,000.00"},
		{"millions", 1234567.89, "₱1,234,567.89"},
		{"negative", -310, "-₱310.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.amount.Format())
		})
	}
}

func TestMoney_IsNegative(t *testing.T) {
	assert.False(t, kernel.Money(0).IsNegative())
	assert.False(t, kernel.Money(10).IsNegative())
	assert.True(t, kernel.Money(-0.01).IsNegative())
}
