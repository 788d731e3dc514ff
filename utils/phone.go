package utils

import (
	"fmt"
	"regexp"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhoneNumber strips everything but digits and, for 10-digit North
// American numbers, formats as (NNN) NNN-NNNN for database storage. Anything
// else is stored as bare digits.
func NormalizePhoneNumber(phoneNumber string) string {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")
	if len(digits) == 10 {
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	}
	return digits
}

// ValidatePhoneNumber reports whether a phone number carries enough digits
// to be dialable.
func ValidatePhoneNumber(phoneNumber string) bool {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")
	return len(digits) >= 7 && len(digits) <= 15
}
