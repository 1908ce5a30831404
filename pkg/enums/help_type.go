package enums

import "fmt"

// HelpType categorizes what a registration lead is asking for.
type HelpType string

const (
	HelpTypeBuyItems        HelpType = "buy-items"
	HelpTypeMakeWebsites    HelpType = "make-websites"
	HelpTypeMakeApp         HelpType = "make-app"
	HelpTypeCustomizeThings HelpType = "customize-things"
	HelpTypeOthers          HelpType = "others"
)

var validHelpTypes = []HelpType{
	HelpTypeBuyItems,
	HelpTypeMakeWebsites,
	HelpTypeMakeApp,
	HelpTypeCustomizeThings,
	HelpTypeOthers,
}

// String implements fmt.Stringer.
func (h HelpType) String() string {
	return string(h)
}

// IsValid reports whether the value is a known HelpType.
func (h HelpType) IsValid() bool {
	for _, candidate := range validHelpTypes {
		if candidate == h {
			return true
		}
	}
	return false
}

// ParseHelpType converts raw input into a HelpType.
func ParseHelpType(value string) (HelpType, error) {
	for _, candidate := range validHelpTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid help type %q", value)
}
