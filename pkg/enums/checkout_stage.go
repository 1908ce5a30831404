package enums

import "fmt"

// CheckoutStage identifies the buyer's position in the checkout pipeline.
type CheckoutStage string

const (
	CheckoutStageCart    CheckoutStage = "cart"
	CheckoutStageAddress CheckoutStage = "address"
	CheckoutStagePayment CheckoutStage = "payment"
	CheckoutStagePlaced  CheckoutStage = "placed"
)

var validCheckoutStages = []CheckoutStage{
	CheckoutStageCart,
	CheckoutStageAddress,
	CheckoutStagePayment,
	CheckoutStagePlaced,
}

// String implements fmt.Stringer.
func (s CheckoutStage) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CheckoutStage.
func (s CheckoutStage) IsValid() bool {
	for _, candidate := range validCheckoutStages {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCheckoutStage converts raw input into a CheckoutStage.
func ParseCheckoutStage(value string) (CheckoutStage, error) {
	for _, candidate := range validCheckoutStages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout stage %q", value)
}
