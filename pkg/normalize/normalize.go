// Package normalize implements the canonical byte forms that advertising
// conversion APIs require before hashing. Every function is deterministic and
// pure; adapters must not hash anything that did not pass through here.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/virtuacademy/touchpoint/pkg/crypto"
)

var (
	emailSplitRe   = regexp.MustCompile(`[,\s;]+`)
	nonDigitRe     = regexp.MustCompile(`\D+`)
	nonLetterRe    = regexp.MustCompile(`[^a-z]+`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	hexDigest64Re  = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
	offsetOverride = regexp.MustCompile(`^([+-])(\d{1,2})(?::?(\d{2}))?$`)
)

// Email extracts the first address from a possibly delimiter-joined string,
// lowercases it and strips whitespace. Gmail addresses additionally lose the
// dots in the local part and any +suffix alias, so the same inbox always
// hashes to the same digest. Returns "" when no usable address exists.
func Email(value string) string {
	candidate := emailCandidate(value)
	if candidate == "" {
		return ""
	}
	cleaned := whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(candidate)), "")
	parts := strings.Split(cleaned, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}
	local, domain := parts[0], parts[1]
	if domain == "gmail.com" || domain == "googlemail.com" {
		local = strings.ReplaceAll(local, ".", "")
		if idx := strings.Index(local, "+"); idx >= 0 {
			local = local[:idx]
		}
		if local == "" {
			return ""
		}
	}
	return local + "@" + domain
}

func emailCandidate(value string) string {
	for _, part := range emailSplitRe.Split(value, -1) {
		part = strings.TrimSpace(part)
		if part != "" && strings.Contains(part, "@") {
			return part
		}
	}
	return ""
}

// PhoneDigits reduces a phone number to bare digits for storage. It applies
// no country-code derivation; anything shorter than 7 digits is noise.
func PhoneDigits(value string) string {
	digits := nonDigitRe.ReplaceAllString(value, "")
	if len(digits) < 7 {
		return ""
	}
	return digits
}

// PhoneForHash normalizes a phone number into the digits-only form pixel
// APIs hash (no + prefix). A leading + means the caller already supplied a
// country code; otherwise the configured default country code is prepended.
// Results outside the 8-15 digit envelope are rejected, with the NANP
// special case that country code 1 requires exactly 11 digits.
func PhoneForHash(value, defaultCountryCode string) string {
	e164 := PhoneE164(value, defaultCountryCode)
	if e164 == "" {
		return ""
	}
	return strings.TrimPrefix(e164, "+")
}

// PhoneE164 normalizes a phone number into +<digits> E.164 form under the
// same envelope rules as PhoneForHash.
func PhoneE164(value, defaultCountryCode string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "+") {
		digits := nonDigitRe.ReplaceAllString(trimmed, "")
		if !withinEnvelope(digits) {
			return ""
		}
		return "+" + digits
	}

	digits := nonDigitRe.ReplaceAllString(trimmed, "")
	if digits == "" {
		return ""
	}
	cc := nonDigitRe.ReplaceAllString(defaultCountryCode, "")
	if cc == "" {
		return ""
	}
	if strings.HasPrefix(digits, cc) && withinEnvelope(digits) && (cc != "1" || len(digits) == 11) {
		return "+" + digits
	}
	combined := cc + digits
	if !withinEnvelope(combined) {
		return ""
	}
	return "+" + combined
}

func withinEnvelope(digits string) bool {
	return len(digits) >= 8 && len(digits) <= 15
}

// Name lowercases and keeps letters only. Used for first/last name and city.
func Name(value string) string {
	return nonLetterRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "")
}

// City is normalized the same way as names.
func City(value string) string {
	return Name(value)
}

// State requires a 2-letter lowercase code.
func State(value string) string {
	normalized := Name(value)
	if len(normalized) != 2 {
		return ""
	}
	return normalized
}

// Country requires a 2-letter lowercase ISO code.
func Country(value string) string {
	return State(value)
}

// Zip keeps the first 5 digits of a US zip code.
func Zip(value string) string {
	digits := nonDigitRe.ReplaceAllString(value, "")
	if len(digits) < 5 {
		return ""
	}
	return digits[:5]
}

// ForHash applies the final pre-hash cleanup: trim, lowercase, strip
// whitespace.
func ForHash(value string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "")
}

// Hash returns the SHA-256 hex digest of the pre-cleaned value. Values that
// already look like a 64-char hex digest pass through unchanged so upstream
// pre-hashed identifiers are never double-hashed.
func Hash(value string) string {
	if value == "" {
		return ""
	}
	if hexDigest64Re.MatchString(value) {
		return strings.ToLower(value)
	}
	return crypto.SHA256Hex(ForHash(value))
}

// ToUnixSeconds formats an event time for pixel-style APIs.
func ToUnixSeconds(t time.Time) int64 {
	return t.Unix()
}

// OffsetDateTime formats an event time as the offset-qualified local
// timestamp batch-upload APIs expect ("2006-01-02 15:04:05-07:00"). An
// explicit numeric offset override ("+02:00", "-5", "Z") wins over the IANA
// zone name; with neither resolvable the timestamp is rendered in UTC.
func OffsetDateTime(t time.Time, timeZone, offsetOverrideValue string) string {
	if minutes, ok := parseOffsetMinutes(offsetOverrideValue); ok {
		return t.In(time.FixedZone("", minutes*60)).Format("2006-01-02 15:04:05-07:00")
	}
	if timeZone != "" {
		if loc, err := time.LoadLocation(timeZone); err == nil {
			return t.In(loc).Format("2006-01-02 15:04:05-07:00")
		}
	}
	return t.UTC().Format("2006-01-02 15:04:05-07:00")
}

func parseOffsetMinutes(value string) (int, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return 0, false
	}
	if trimmed == "Z" || trimmed == "UTC" {
		return 0, true
	}
	m := offsetOverride.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, false
	}
	var hours, minutes int
	fmt.Sscanf(m[2], "%d", &hours)
	if m[3] != "" {
		fmt.Sscanf(m[3], "%d", &minutes)
	}
	total := hours*60 + minutes
	if m[1] == "-" {
		total = -total
	}
	return total, true
}
