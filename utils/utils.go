package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
)

// RandomReference returns a hex string of length bytes of entropy. Used for
// course references (4 bytes) and checkout references (7 bytes).
func RandomReference(length int) string {
	if length <= 0 {
		length = 20
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	return hex.EncodeToString(buf)
}

// FormatAmount renders an integer amount with thousands separators, e.g.
// 1250000 -> "1,250,000".
func FormatAmount(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// OrderBy whitelists the sortable columns; anything else falls back to created_at.
func OrderBy(raw string) string {
	switch raw {
	case "updatedAt", "updated_at":
		return "updated_at"
	default:
		return "created_at"
	}
}

// SortBy whitelists the sort direction; anything else falls back to desc.
func SortBy(raw string) string {
	if strings.EqualFold(raw, "asc") {
		return "asc"
	}
	return "desc"
}
