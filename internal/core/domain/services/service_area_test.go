package services_test

import (
	"testing"

	"burgershop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestBatangasServiceArea_Contains(t *testing.T) {
	area := services.NewBatangasServiceArea()

	tests := []struct {
		name     string
		city     string
		zip      string
		barangay string
		want     bool
	}{
		{name: "province_zip_prefix", zip: "4217", want: true},
		{name: "known_town_in_city", city: "Lipa City", want: true},
		{name: "known_town_in_barangay", barangay: "Brgy. Anilao", want: true},
		{name: "mabini_special_case", city: "Mainaga, Mabini", want: true},
		{name: "outside_province", city: "Quezon City", zip: "1100", want: false},
		{name: "empty_address", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, area.Contains(tt.city, tt.zip, tt.barangay))
		})
	}
}
