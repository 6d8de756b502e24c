package services

import "strings"

// ServiceArea answers whether a delivery address falls inside the region the
// kitchen delivers to.
type ServiceArea interface {
	Contains(city, zip, barangay string) bool
}

// BatangasServiceArea is a best-effort membership check for Batangas province.
// A province zip prefix or a recognized town keyword in the city or barangay
// is enough; the check is deliberately tolerant since customers type free-form
// addresses.
type BatangasServiceArea struct{}

// NewBatangasServiceArea creates the province membership check.
func NewBatangasServiceArea() BatangasServiceArea {
	return BatangasServiceArea{}
}

var batangasKeywords = []string{
	"batangas", "lipa", "tanauan", "nasugbu", "calaca", "balete", "cuenca",
	"san juan", "bauan", "malvar", "matabungkay", "balayan", "talisay",
	"agoncillo", "alitagtag", "anilao", "san nicolas", "san jose",
	"mabini", "mainaga",
}

// Contains reports whether the address is within Batangas province.
func (BatangasServiceArea) Contains(city, zip, barangay string) bool {
	c := strings.ToLower(strings.TrimSpace(city))
	z := strings.TrimSpace(zip)
	b := strings.ToLower(strings.TrimSpace(barangay))

	if strings.HasPrefix(z, provinceZipPrefix) {
		return true
	}

	for _, kw := range batangasKeywords {
		if strings.Contains(c, kw) || strings.Contains(b, kw) {
			return true
		}
	}
	return false
}
