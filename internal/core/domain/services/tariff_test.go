package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingFeeResolver_Resolve(t *testing.T) {
	resolver := services.NewShippingFeeResolver(services.DefaultTariff())

	tests := []struct {
		name     string
		city     string
		zip      string
		barangay string
		subtotal kernel.Money
		want     services.Quote
	}{
		{
			name: "mabini_without_barangay_is_unknown",
			city: "Mabini City", subtotal: 100,
			want: services.Quote{},
		},
		{
			name: "mabini_barangay_exact_match",
			city: "Mabini City", barangay: "Poblacion", subtotal: 100,
			want: services.Quote{Fee: 30, Known: true},
		},
		{
			name: "mabini_barangay_substring_match",
			city: "Mabini", barangay: "Brgy. San Isidro", subtotal: 100,
			want: services.Quote{Fee: 40, Known: true},
		},
		{
			name: "mabini_unknown_barangay_gets_local_default",
			city: "Mabini", barangay: "Somewhere Else", subtotal: 100,
			want: services.Quote{Fee: 30, Known: true},
		},
		{
			name: "mabini_detected_by_zip",
			zip:  "4202", barangay: "Tambong", subtotal: 100,
			want: services.Quote{Fee: 40, Known: true},
		},
		{
			name: "postal_free_over_threshold_met",
			zip:  "4233", subtotal: 6000,
			want: services.Quote{Fee: 0, Known: true},
		},
		{
			name: "postal_free_over_threshold_not_met",
			zip:  "4233", subtotal: 1000,
			want: services.Quote{Fee: 60, Known: true},
		},
		{
			name: "postal_exact_match",
			city: "Lipa", zip: "4217", subtotal: 100,
			want: services.Quote{Fee: 60, Known: true},
		},
		{
			name: "municipality_exact_match",
			city: "  Lipa  City ", subtotal: 100,
			want: services.Quote{Fee: 60, Known: true},
		},
		{
			name: "municipality_free_over",
			city: "Tanauan", subtotal: 5000,
			want: services.Quote{Fee: 0, Known: true},
		},
		{
			name: "province_zip_prefix_fallback",
			zip:  "4299", subtotal: 100,
			want: services.Quote{Fee: 60, Known: true},
		},
		{
			name: "out_of_area_default",
			city: "Unknown Town", subtotal: 100,
			want: services.Quote{Fee: 80, Known: true},
		},
		{
			name: "empty_address_is_unknown",
			want: services.Quote{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.city, tt.zip, tt.barangay, tt.subtotal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadTariff(t *testing.T) {
	t.Run("missing_file_returns_defaults", func(t *testing.T) {
		tariff, err := services.LoadTariff(filepath.Join(t.TempDir(), "absent.json"))

		require.NoError(t, err)
		assert.Equal(t, services.DefaultTariff(), tariff)
	})

	t.Run("empty_path_returns_defaults", func(t *testing.T) {
		tariff, err := services.LoadTariff("")

		require.NoError(t, err)
		assert.Equal(t, services.DefaultTariff(), tariff)
	})

	t.Run("override_replaces_table_wholesale", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fees.json")
		payload := `{"postal": {"4217": 99, "4233": {"fee": 45, "freeOver": 3000}}}`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		tariff, err := services.LoadTariff(path)
		require.NoError(t, err)

		resolver := services.NewShippingFeeResolver(tariff)
		assert.Equal(t, services.Quote{Fee: 99, Known: true}, resolver.Resolve("", "4217", "", 100))
		assert.Equal(t, services.Quote{Fee: 0, Known: true}, resolver.Resolve("", "4233", "", 3000))

		// tables absent from the file keep their defaults
		assert.Equal(t, services.Quote{Fee: 30, Known: true}, resolver.Resolve("Mabini", "", "Poblacion", 100))

		// entries dropped from an overridden table are gone
		assert.Equal(t, services.Quote{Fee: 60, Known: true}, resolver.Resolve("", "4211", "", 100),
			"unlisted zip falls through to the province prefix default")
	})

	t.Run("malformed_file_is_an_error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fees.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := services.LoadTariff(path)
		require.Error(t, err)
	})
}
