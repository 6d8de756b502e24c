package services

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"
)

// FeeRule is a single tariff entry. When FreeOver is positive and the order
// subtotal reaches it, the fee is waived.
type FeeRule struct {
	Fee      kernel.Money
	FreeOver kernel.Money
}

// UnmarshalJSON accepts either a bare number or a {"fee": n, "freeOver": n}
// object, matching the two entry shapes of the tariff override file.
func (r *FeeRule) UnmarshalJSON(data []byte) error {
	var fee float64
	if err := json.Unmarshal(data, &fee); err == nil {
		*r = FeeRule{Fee: kernel.Money(fee)}
		return nil
	}

	var obj struct {
		Fee      float64 `json:"fee"`
		FreeOver float64 `json:"freeOver"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("tariff entry must be a number or a fee object: %w", err)
	}
	*r = FeeRule{Fee: kernel.Money(obj.Fee), FreeOver: kernel.Money(obj.FreeOver)}
	return nil
}

// Tariff holds the three lookup tables the resolver consults, keyed by
// lowercase barangay name, postal code, and normalized municipality name.
// Tables are configuration data: the built-in defaults can be replaced
// wholesale per table from an external JSON file.
type Tariff struct {
	MabiniBarangays map[string]FeeRule `json:"mabiniBarangays"`
	Postal          map[string]FeeRule `json:"postal"`
	Municipality    map[string]FeeRule `json:"municipality"`
}

// DefaultTariff returns the built-in fee tables.
func DefaultTariff() Tariff {
	return Tariff{
		MabiniBarangays: map[string]FeeRule{
			"poblacion":  {Fee: 30},
			"san isidro": {Fee: 40},
			"san roque":  {Fee: 40},
			"san jose":   {Fee: 40},
			"tambong":    {Fee: 40},
		},
		Postal: map[string]FeeRule{
			"4202": {Fee: 30},
			"4211": {Fee: 40},
			"4205": {Fee: 40},
			"4201": {Fee: 40},
			"4209": {Fee: 40},
			"4210": {Fee: 40},
			"4204": {Fee: 40},
			"4206": {Fee: 40},
			"4208": {Fee: 40},
			"4213": {Fee: 50},
			"4219": {Fee: 50},
			"4212": {Fee: 50},
			"4222": {Fee: 50},
			"4218": {Fee: 50},
			"4223": {Fee: 50},
			"4200": {Fee: 60},
			"4230": {Fee: 60},
			"4217": {Fee: 60},
			"4233": {Fee: 60, FreeOver: 5000},
			"4224": {Fee: 60},
			"4225": {Fee: 60},
			"4227": {Fee: 60},
			"4234": {Fee: 60, FreeOver: 5000},
			"4232": {Fee: 60, FreeOver: 5000},
			"4215": {Fee: 70},
			"4221": {Fee: 70},
			"4216": {Fee: 70},
			"4229": {Fee: 70},
			"4226": {Fee: 80},
			"4231": {Fee: 80},
		},
		Municipality: map[string]FeeRule{
			"mabini":           {Fee: 30},
			"agoncillo":        {Fee: 40},
			"alitagtag":        {Fee: 40},
			"bauan":            {Fee: 40},
			"lemery":           {Fee: 40},
			"san luis":         {Fee: 40},
			"san pascual":      {Fee: 40},
			"sta. teresita":    {Fee: 40},
			"sta teresita":     {Fee: 40},
			"taal":             {Fee: 40},
			"balayan":          {Fee: 50},
			"balete":           {Fee: 50},
			"calaca":           {Fee: 50},
			"cuenca":           {Fee: 50},
			"fernando airbase": {Fee: 50},
			"mataas na kahoy":  {Fee: 50},
			"batangas city":    {Fee: 60},
			"ibaan":            {Fee: 60},
			"lipa":             {Fee: 60},
			"lipa city":        {Fee: 60},
			"malvar":           {Fee: 60, FreeOver: 5000},
			"padre garcia":     {Fee: 60},
			"rosario":          {Fee: 60},
			"san jose":         {Fee: 60},
			"sto. tomas":       {Fee: 60, FreeOver: 5000},
			"sto tomas":        {Fee: 60, FreeOver: 5000},
			"tanauan":          {Fee: 60, FreeOver: 5000},
			"calatagan":        {Fee: 70},
			"laurel":           {Fee: 70},
			"lian":             {Fee: 70},
			"lobo":             {Fee: 70},
			"san juan":         {Fee: 80},
			"nasugbu":          {Fee: 80},
		},
	}
}

// LoadTariff reads a tariff override file and merges it over the defaults.
// Each top-level table present in the file replaces the corresponding default
// table wholesale; absent tables keep their defaults. A missing file is not
// an error: the defaults are returned.
func LoadTariff(path string) (Tariff, error) {
	tariff := DefaultTariff()
	if path == "" {
		return tariff, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return tariff, nil
		}
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("tariff file", err)
	}

	var override Tariff
	if err := json.Unmarshal(data, &override); err != nil {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("tariff file", err)
	}

	if override.MabiniBarangays != nil {
		tariff.MabiniBarangays = override.MabiniBarangays
	}
	if override.Postal != nil {
		tariff.Postal = override.Postal
	}
	if override.Municipality != nil {
		tariff.Municipality = override.Municipality
	}
	return tariff, nil
}

// Quote is the outcome of a fee resolution. Known is false when the fee
// cannot be computed yet, which happens for Mabini addresses without a
// barangay and for fully empty address input; callers must treat that as a
// blocking state, not as free shipping.
type Quote struct {
	Fee   kernel.Money
	Known bool
}

const (
	mabiniZip         = "4202"
	provinceZipPrefix = "42"

	defaultMabiniFee   = kernel.Money(30)
	provinceDefaultFee = kernel.Money(60)
	outOfAreaFee       = kernel.Money(80)
)

// ShippingFeeResolver resolves a delivery fee from address fields using
// tiered lookup tables with ordered fallback:
//
//  1. Mabini addresses (city mentions mabini/mainaga, or the Mabini zip) are
//     priced per barangay: exact match, then substring match, then a local
//     default; with no barangay at all the fee is not yet known.
//  2. Exact postal-code match, honoring freeOver thresholds.
//  3. Exact normalized municipality-name match, honoring freeOver thresholds.
//  4. Any other zip in the province prefix gets the province default.
//  5. Everything else gets the out-of-area default.
type ShippingFeeResolver struct {
	tariff Tariff
}

// NewShippingFeeResolver creates a resolver over the given tariff tables.
func NewShippingFeeResolver(tariff Tariff) ShippingFeeResolver {
	return ShippingFeeResolver{tariff: tariff}
}

var cityWhitespace = regexp.MustCompile(`\s+`)

// Resolve computes the delivery fee for the given address and subtotal.
// First match wins; see the type doc for the resolution order.
func (r ShippingFeeResolver) Resolve(city, zip, barangay string, subtotal kernel.Money) Quote {
	c := strings.ToLower(strings.TrimSpace(city))
	z := strings.TrimSpace(zip)
	b := strings.ToLower(strings.TrimSpace(barangay))

	if c == "" && z == "" && b == "" {
		return Quote{}
	}

	// Mabini barangay fees apply only when the address is in Mabini, to
	// avoid matching generic barangay names like Poblacion in other towns.
	if strings.Contains(c, "mabini") || strings.Contains(c, "mainaga") || z == mabiniZip {
		if b == "" {
			return Quote{}
		}
		if rule, ok := r.tariff.MabiniBarangays[b]; ok {
			return Quote{Fee: rule.Fee, Known: true}
		}
		for key, rule := range r.tariff.MabiniBarangays {
			if strings.Contains(b, key) {
				return Quote{Fee: rule.Fee, Known: true}
			}
		}
		return Quote{Fee: defaultMabiniFee, Known: true}
	}

	if z != "" {
		if rule, ok := r.tariff.Postal[z]; ok {
			return Quote{Fee: rule.apply(subtotal), Known: true}
		}
	}

	if c != "" {
		normalized := strings.TrimSpace(cityWhitespace.ReplaceAllString(c, " "))
		if rule, ok := r.tariff.Municipality[normalized]; ok {
			return Quote{Fee: rule.apply(subtotal), Known: true}
		}
	}

	if strings.HasPrefix(z, provinceZipPrefix) {
		return Quote{Fee: provinceDefaultFee, Known: true}
	}

	return Quote{Fee: outOfAreaFee, Known: true}
}

// apply returns the fee after the freeOver waiver.
func (r FeeRule) apply(subtotal kernel.Money) kernel.Money {
	if r.FreeOver > 0 && subtotal >= r.FreeOver {
		return 0
	}
	return r.Fee
}
