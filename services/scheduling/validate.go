package scheduling

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"beautycrave/models"
)

// PhoneRule is the configured phone format. The studio takes Danish numbers:
// "+45" followed by exactly eight digits, spaces ignored.
type PhoneRule struct {
	Prefix string
	Digits int
}

// DefaultPhoneRule matches Danish mobile numbers.
var DefaultPhoneRule = PhoneRule{Prefix: "+45", Digits: 8}

// Matches reports whether phone fits the rule after stripping spaces.
func (r PhoneRule) Matches(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	if !strings.HasPrefix(cleaned, r.Prefix) {
		return false
	}
	rest := cleaned[len(r.Prefix):]
	if len(rest) != r.Digits {
		return false
	}
	for _, c := range rest {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

// Normalize strips spaces so the stored number is canonical.
func (r PhoneRule) Normalize(phone string) string {
	return strings.ReplaceAll(phone, " ", "")
}

// ValidateCustomer checks name and phone in request order and returns the
// normalized customer on success. Name must be 2-50 characters after
// trimming; phone must match the configured rule.
func ValidateCustomer(c models.Customer, rule PhoneRule) (models.Customer, *BookingError) {
	name := strings.TrimSpace(c.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return c, NewBookingError(CodeInvalidName, "customer name must be 2-50 characters")
	}
	if !rule.Matches(c.Phone) {
		return c, NewBookingError(CodeInvalidPhoneNumber, "phone number must be %s followed by %d digits", rule.Prefix, rule.Digits)
	}
	c.Name = name
	c.Phone = rule.Normalize(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Notes = strings.TrimSpace(c.Notes)
	return c, nil
}
