package services

import (
	"sort"
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
)

// Metrics is the headline figure set shown at the top of the admin dashboard.
// Sales figures count only delivered and completed orders; pending is
// everything not yet terminal.
type Metrics struct {
	TodaySales        kernel.Money
	MonthSales        kernel.Money
	TotalOrders       int
	PendingOrders     int
	CompletedOrders   int
	CancelledOrders   int
	RevenueYTD        kernel.Money
	OverallRevenue    kernel.Money
	AverageOrderValue kernel.Money
}

// SeriesPoint is one day's totals in the sales chart.
type SeriesPoint struct {
	Date      time.Time
	Completed kernel.Money
	Preparing kernel.Money
	Cancelled kernel.Money
}

// TopItem is one row of the top-selling-items ranking.
type TopItem struct {
	MenuItemID string
	Name       string
	Quantity   int
	Revenue    kernel.Money
}

// topItemsLimit bounds the ranking shown on the dashboard.
const topItemsLimit = 5

// DashboardAggregator computes admin-dashboard aggregates over the order
// collection. All computations are pure functions of the input: calling them
// twice on an unchanged collection yields identical results.
type DashboardAggregator struct{}

// NewDashboardAggregator creates a new DashboardAggregator instance.
func NewDashboardAggregator() DashboardAggregator {
	return DashboardAggregator{}
}

// ComputeMetrics computes the headline metrics as of the given instant.
// Day, month, and year buckets compare calendar components in asOf's
// location against each order's placement time.
func (DashboardAggregator) ComputeMetrics(orders []*order.Order, asOf time.Time) Metrics {
	var m Metrics
	loc := asOf.Location()
	year, month, day := asOf.Date()

	for _, o := range orders {
		m.TotalOrders++

		status := o.Status()
		if !status.IsTerminal() {
			m.PendingOrders++
		}
		if status == order.Cancelled {
			m.CancelledOrders++
		}
		if !status.IsSale() {
			continue
		}

		m.CompletedOrders++
		placed := time.UnixMilli(o.PlacedAt()).In(loc)
		py, pm, pd := placed.Date()

		total := o.Total()
		m.OverallRevenue += total
		if py == year {
			m.RevenueYTD += total
			if pm == month {
				m.MonthSales += total
				if pd == day {
					m.TodaySales += total
				}
			}
		}
	}

	if m.CompletedOrders > 0 {
		m.AverageOrderValue = m.RevenueYTD / kernel.Money(m.CompletedOrders)
	}
	return m
}

// SalesSeries buckets order totals per calendar day over the last days days
// ending at asOf, split by status group. A non-empty municipality restricts
// the series to orders delivered there.
func (DashboardAggregator) SalesSeries(
	orders []*order.Order,
	days int,
	asOf time.Time,
	municipality kernel.MunicipalitySlug,
) []SeriesPoint {
	if days < 1 {
		return nil
	}

	loc := asOf.Location()
	year, month, day := asOf.Date()
	start := time.Date(year, month, day-(days-1), 0, 0, 0, 0, loc)

	points := make([]SeriesPoint, days)
	for i := range points {
		points[i].Date = start.AddDate(0, 0, i)
	}

	for _, o := range orders {
		if !municipality.IsEmpty() && o.Municipality() != municipality {
			continue
		}

		placed := time.UnixMilli(o.PlacedAt()).In(loc)
		py, pm, pd := placed.Date()
		placedDay := time.Date(py, pm, pd, 0, 0, 0, 0, loc)

		i := int(placedDay.Sub(start).Hours() / 24)
		if i < 0 || i >= days {
			continue
		}

		total := o.Total()
		switch {
		case o.Status().IsSale():
			points[i].Completed += total
		case o.Status() == order.Preparing:
			points[i].Preparing += total
		case o.Status() == order.Cancelled:
			points[i].Cancelled += total
		}
	}
	return points
}

// TopItems ranks items ordered within the last days days ending at asOf,
// aggregated by menu item id, by quantity then revenue, capped at five rows.
// A non-empty municipality restricts the ranking to orders delivered there.
func (DashboardAggregator) TopItems(
	orders []*order.Order,
	days int,
	asOf time.Time,
	municipality kernel.MunicipalitySlug,
) []TopItem {
	if days < 1 {
		return nil
	}

	loc := asOf.Location()
	year, month, day := asOf.Date()
	start := time.Date(year, month, day-(days-1), 0, 0, 0, 0, loc)

	agg := make(map[string]*TopItem)
	for _, o := range orders {
		if !municipality.IsEmpty() && o.Municipality() != municipality {
			continue
		}
		if time.UnixMilli(o.PlacedAt()).In(loc).Before(start) {
			continue
		}

		for _, item := range o.Items() {
			key := item.MenuItemID()
			if key == "" {
				key = item.Name()
			}
			row, ok := agg[key]
			if !ok {
				row = &TopItem{MenuItemID: item.MenuItemID(), Name: item.Name()}
				agg[key] = row
			}
			row.Quantity += item.Quantity()
			row.Revenue += item.LineTotal()
		}
	}

	ranked := make([]TopItem, 0, len(agg))
	for _, row := range agg {
		ranked = append(ranked, *row)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > topItemsLimit {
		ranked = ranked[:topItemsLimit]
	}
	return ranked
}
