// Package hex converts fixed-size wire units from and to hexadecimal text.
package hex

const (
	lowerAlphabet = "0123456789abcdef"
	upperAlphabet = "0123456789ABCDEF"
)

// Nibble returns the 4 bit value of the hex digit c.
// Upper and lower case digits are accepted, ok is false for any other byte.
func Nibble(c byte) (value byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
