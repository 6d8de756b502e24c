package queries

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
	ErrRangeDaysIsInvalid = errors.New("range days must be at least 1")
)

// defaultDashboardRangeDays is the chart window used when none is requested.
const defaultDashboardRangeDays = 7

// GetDashboardQuery computes the admin dashboard: headline metrics, the
// per-day sales series over the requested window, and the top-selling items.
// A non-empty municipality narrows the series and ranking to one town.
type GetDashboardQuery struct {
	rangeDays    int
	municipality kernel.MunicipalitySlug

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a dashboard query. A rangeDays of 0 selects
// the default window.
func NewGetDashboardQuery(rangeDays int, municipality kernel.MunicipalitySlug) (GetDashboardQuery, error) {
	if rangeDays == 0 {
		rangeDays = defaultDashboardRangeDays
	}
	if rangeDays < 1 {
		return GetDashboardQuery{}, ErrRangeDaysIsInvalid
	}

	return GetDashboardQuery{
		rangeDays:    rangeDays,
		municipality: municipality,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// RangeDays returns the chart window in days.
func (q GetDashboardQuery) RangeDays() int {
	return q.rangeDays
}

// Municipality returns the optional municipality filter.
func (q GetDashboardQuery) Municipality() kernel.MunicipalitySlug {
	return q.municipality
}
