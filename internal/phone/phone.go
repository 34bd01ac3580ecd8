// Package phone holds the number reductions shared by lead storage,
// inbound routing and the SMS carrier. The stored phone is always the
// string the customer typed; these helpers only produce derived forms.
package phone

import "strings"

// MatchKey reduces a number to the trailing 10 digits used for routing.
// Carriers deliver sender numbers in E.164 while leads may have been
// typed in free-form local format, so matching has to survive both.
func MatchKey(raw string) string {
	cleaned := stripSeparators(raw)
	cleaned = strings.TrimPrefix(cleaned, "+1")
	cleaned = strings.TrimPrefix(cleaned, "+")

	if len(cleaned) > 10 {
		cleaned = cleaned[len(cleaned)-10:]
	}
	return cleaned
}

// ToE164 formats a number for the carrier. Numbers that already carry a
// country code pass through untouched; everything else is assumed US.
func ToE164(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "+") {
		return trimmed
	}
	return "+1" + stripSeparators(trimmed)
}

func stripSeparators(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\t', '-':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
