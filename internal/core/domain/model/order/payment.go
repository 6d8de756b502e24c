package order

import (
	"fmt"
	"regexp"
	"strings"

	"burgershop/internal/pkg/errs"
)

// PaymentMethod identifies how the customer pays for an order.
type PaymentMethod string

const (
	// PaymentCard is payment by credit or debit card.
	PaymentCard PaymentMethod = "card"

	// PaymentGCash is payment by GCash transfer, verified against an
	// uploaded proof image.
	PaymentGCash PaymentMethod = "gcash"

	// PaymentCOD is cash on delivery.
	PaymentCOD PaymentMethod = "cod"
)

// PaymentMethodFromString parses a payment method from its wire form.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case PaymentCard, PaymentGCash, PaymentCOD:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a supported payment method", s))
	}
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cardExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVCPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// PaymentDetails holds the method-specific payment data that is safe to
// persist. For card payments only the holder name, last four digits, and
// expiry survive; the full PAN and CVC are validated and discarded.
type PaymentDetails struct {
	Method PaymentMethod `json:"method"`

	// Card fields
	CardHolder string `json:"cardHolder,omitempty"`
	CardLast4  string `json:"last4,omitempty"`
	CardExpiry string `json:"exp,omitempty"`

	// GCash fields
	ReferenceNo   string `json:"referenceNo,omitempty"`
	ProofImageURL string `json:"gcashProofDataUrl,omitempty"`
}

// NewCardDetails validates raw card input and returns persistable details.
// The card number must be 13-19 digits (spaces tolerated), the expiry MM/YY,
// and the CVC 3-4 digits. Only last4 and expiry are retained.
func NewCardDetails(holder, number, expiry, cvc string) (PaymentDetails, error) {
	holder = strings.TrimSpace(holder)
	number = strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	expiry = strings.TrimSpace(expiry)
	cvc = strings.TrimSpace(cvc)

	if holder == "" {
		return PaymentDetails{}, errs.NewValueIsRequiredError("cardHolder")
	}
	if !cardNumberPattern.MatchString(number) {
		return PaymentDetails{}, errs.NewValueIsInvalidError("cardNumber")
	}
	if !cardExpiryPattern.MatchString(expiry) {
		return PaymentDetails{}, errs.NewValueIsInvalidError("cardExpiry")
	}
	if !cardCVCPattern.MatchString(cvc) {
		return PaymentDetails{}, errs.NewValueIsInvalidError("cardCvc")
	}

	return PaymentDetails{
		Method:     PaymentCard,
		CardHolder: holder,
		CardLast4:  number[len(number)-4:],
		CardExpiry: expiry,
	}, nil
}

// NewGCashDetails returns persistable details for a verified GCash payment.
// Proof verification happens in the checkout service before this is called.
func NewGCashDetails(referenceNo, proofImageURL string) (PaymentDetails, error) {
	referenceNo = strings.TrimSpace(referenceNo)
	if referenceNo == "" {
		return PaymentDetails{}, errs.NewValueIsRequiredError("referenceNo")
	}
	if proofImageURL == "" {
		return PaymentDetails{}, errs.NewValueIsRequiredError("proofImage")
	}

	return PaymentDetails{
		Method:        PaymentGCash,
		ReferenceNo:   referenceNo,
		ProofImageURL: proofImageURL,
	}, nil
}

// NewCODDetails returns details for cash on delivery, which needs no extra fields.
func NewCODDetails() PaymentDetails {
	return PaymentDetails{Method: PaymentCOD}
}
