package utils

import (
	"fmt"
	"unicode"
)

// IsLettersOnly checks if a string consists entirely of letters
func IsLettersOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsValidInput checks if input should be processed for suggestions.
// Dictionary words are letters only, so anything else can never match.
func IsValidInput(s string) bool {
	return len(s) > 0 && IsLettersOnly(s)
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}
	result := make([]byte, 0, len(str)+len(str)/3)
	for i := 0; i < len(str); i++ {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, str[i])
	}
	return string(result)
}
