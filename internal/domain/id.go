package domain

// idHexLen is the length of a storage id in hex form (12-byte ObjectID).
const idHexLen = 24

// IsID reports whether s has the shape of a storage identifier:
// a 24-character lowercase-or-uppercase hex string.
func IsID(s string) bool {
	if len(s) != idHexLen {
		return false
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}

	return true
}
