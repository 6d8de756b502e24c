package services

import (
	"strings"
	"unicode"

	"burgershop/internal/core/domain/model/cart"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/errs"
)

// defaultDeliveryTime is the estimate shown on every confirmation.
const defaultDeliveryTime = "30-40 minutes"

// CheckoutForm carries the customer-supplied address and contact fields.
type CheckoutForm struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	Barangay   string
	City       string
	Zip        string
	OrderNotes string
}

// PaymentSelection carries the raw payment input for the chosen method.
// For GCash the proof image has already been uploaded and run through the
// text extractor; OCRText and OCRCompleted reflect the latest extraction.
type PaymentSelection struct {
	Method string

	CardHolder string
	CardNumber string
	CardExpiry string
	CardCVC    string

	GCashReference    string
	GCashProofDataURL string
	OCRText           string
	OCRCompleted      bool
}

// CheckoutService validates a cart, address, and payment selection, prices
// the order through the fee resolver, and composes a new Order in its
// initial state. Validation is all-or-nothing: a failed build leaves the
// cart untouched and produces no order.
type CheckoutService struct {
	resolver ShippingFeeResolver
	area     ServiceArea
}

// NewCheckoutService creates a checkout service over the given resolver and
// delivery-area check.
func NewCheckoutService(resolver ShippingFeeResolver, area ServiceArea) CheckoutService {
	return CheckoutService{resolver: resolver, area: area}
}

// Build validates the checkout input and returns the composed Order.
//
// Preconditions: the cart is non-empty, the required contact and address
// fields are present, and the address is inside the delivery area. Payment
// input is validated per method; GCash additionally requires that the
// reference number appears in the text extracted from the uploaded proof.
//
// The shipping fee is resolved from the address; an unresolvable fee prices
// as zero here, since the quote endpoint surfaces the blocking state to the
// customer before submission.
func (s CheckoutService) Build(c *cart.Cart, form CheckoutForm, payment PaymentSelection) (*order.Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("cart")
	}
	if err := validateForm(form); err != nil {
		return nil, err
	}
	if !s.area.Contains(form.City, form.Zip, form.Barangay) {
		return nil, errs.NewOutOfServiceAreaError(form.City, form.Zip)
	}

	details, err := buildPaymentDetails(payment)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(c.Lines()))
	for _, line := range c.Lines() {
		item, err := order.NewItem(line.MenuItemID, line.Name, line.Price, line.Quantity, line.Flavor)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	subtotal := c.Subtotal()
	quote := s.resolver.Resolve(form.City, form.Zip, form.Barangay, subtotal)
	var fee kernel.Money
	if quote.Known {
		fee = quote.Fee
	}

	return order.NewOrder(order.NewOrderParams{
		ID:               kernel.NewOrderID(),
		Customer:         strings.TrimSpace(form.Name),
		CustomerEmail:    strings.TrimSpace(form.Email),
		CustomerPhone:    strings.TrimSpace(form.Phone),
		DeliveryAddress:  strings.TrimSpace(form.Address),
		DeliveryBarangay: strings.TrimSpace(form.Barangay),
		DeliveryCity:     strings.TrimSpace(form.City),
		Zip:              strings.TrimSpace(form.Zip),
		Municipality:     kernel.NewMunicipalitySlug(form.City),
		Items:            items,
		OrderNotes:       strings.TrimSpace(form.OrderNotes),
		Subtotal:         subtotal,
		ShippingFee:      fee,
		PaymentDetails:   details,
		DeliveryTime:     defaultDeliveryTime,
	})
}

// Quote resolves the shipping fee for the given address and subtotal without
// building an order. The checkout page calls this on every address edit.
func (s CheckoutService) Quote(city, zip, barangay string, subtotal kernel.Money) Quote {
	return s.resolver.Resolve(city, zip, barangay, subtotal)
}

func validateForm(form CheckoutForm) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", form.Name},
		{"email", form.Email},
		{"phone", form.Phone},
		{"address", form.Address},
		{"city", form.City},
		{"zip", form.Zip},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return errs.NewValueIsRequiredError(field.name)
		}
	}
	return nil
}

func buildPaymentDetails(p PaymentSelection) (order.PaymentDetails, error) {
	method, err := order.PaymentMethodFromString(p.Method)
	if err != nil {
		return order.PaymentDetails{}, err
	}

	switch method {
	case order.PaymentCard:
		return order.NewCardDetails(p.CardHolder, p.CardNumber, p.CardExpiry, p.CardCVC)
	case order.PaymentGCash:
		if err := verifyGCashProof(p); err != nil {
			return order.PaymentDetails{}, err
		}
		return order.NewGCashDetails(p.GCashReference, p.GCashProofDataURL)
	default:
		return order.NewCODDetails(), nil
	}
}

// verifyGCashProof checks that a proof image was uploaded, that text
// extraction ran on it, and that the normalized reference number appears in
// the normalized extracted text.
func verifyGCashProof(p PaymentSelection) error {
	if strings.TrimSpace(p.GCashReference) == "" {
		return errs.NewValueIsRequiredError("referenceNo")
	}
	if p.GCashProofDataURL == "" {
		return errs.NewPaymentProofMismatchError("no payment proof image uploaded")
	}
	if !p.OCRCompleted {
		return errs.NewPaymentProofMismatchError("payment proof has not been verified yet")
	}

	ref := normalizeProofText(p.GCashReference)
	extracted := normalizeProofText(p.OCRText)
	if ref == "" || !strings.Contains(extracted, ref) {
		return errs.NewPaymentProofMismatchError("reference number not found in payment proof")
	}
	return nil
}

// normalizeProofText lowercases and strips everything but letters and digits,
// so OCR artifacts like spacing and punctuation don't break the match.
func normalizeProofText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
