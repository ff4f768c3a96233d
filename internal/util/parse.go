package util

import (
	"regexp"
	"strconv"
	"strings"
)

func SafeAtoi(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}

var nonNumericRegex = regexp.MustCompile(`[^\d]`)

// CleanNumericString strips every non-digit rune, so "Rs. 1,250" becomes
// "1250". Thousands separators and currency symbols fall out by construction.
func CleanNumericString(s string) string {
	return nonNumericRegex.ReplaceAllString(s, "")
}
