package checkout

import (
	"regexp"
	"strings"

	pkgerrors "github.com/voltkart/storefront-backend/pkg/errors"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// Address is the delivery address captured during checkout.
type Address struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// digitsOnly strips everything except digits, so formatted numbers like
// "98765-43210" still validate on length.
func digitsOnly(value string) string {
	return nonDigitPattern.ReplaceAllString(value, "")
}

// normalize trims whitespace and canonicalizes phone and pincode to
// their digit forms.
func (a *Address) normalize() {
	a.FullName = strings.TrimSpace(a.FullName)
	a.Phone = digitsOnly(a.Phone)
	a.Email = strings.TrimSpace(a.Email)
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.Pincode = digitsOnly(a.Pincode)
}

// validate normalizes the address and returns a validation error with
// per-field details when any rule fails.
func (a *Address) validate() error {
	a.normalize()

	details := map[string]string{}
	if a.FullName == "" {
		details["full_name"] = "full name is required"
	}
	if len(a.Phone) != 10 {
		details["phone"] = "phone must contain exactly 10 digits"
	}
	if a.Email != "" && !emailPattern.MatchString(a.Email) {
		details["email"] = "email is not well-formed"
	}
	if a.Street == "" {
		details["street"] = "street address is required"
	}
	if a.City == "" {
		details["city"] = "city is required"
	}
	if a.State == "" {
		details["state"] = "state is required"
	}
	if len(a.Pincode) != 6 {
		details["pincode"] = "pincode must contain exactly 6 digits"
	}

	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery address").WithDetails(details)
	}
	return nil
}
