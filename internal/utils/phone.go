package utils

import "strings"

// DigitsOnly strips everything but decimal digits from a phone number,
// so "(11) 95448-0557" and "+55 11 95448-0557" compare by digit count.
func DigitsOnly(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
