package resolve

// Normalize inserts middleName between fragment's prefix and its trailing
// run of decimal digits, so a short alias like "kg2" becomes "kg-sophon2".
// An empty middleName leaves fragment unchanged.
func Normalize(fragment, middleName string) string {
	if middleName == "" {
		return fragment
	}
	prefix, suffix := splitTrailingDigits(fragment)
	return prefix + middleName + suffix
}

// splitTrailingDigits splits s before its maximal trailing run of ASCII digits.
func splitTrailingDigits(s string) (prefix, digits string) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[:i], s[i:]
}
