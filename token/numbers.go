package token

import "fmt"

// number scans a numeric literal at the start of d and returns the number
// of bytes consumed and whether the literal is floating (contains a `.` or
// an exponent marker). d starts with a digit, `+`, or `-`.
//
// Digits are accepted freely; at most one `.` and one exponent marker are
// allowed, a `.` may not follow the exponent, and a sign is only accepted
// immediately after the exponent marker. Violations are scan errors.
func number(d []byte) (int, bool, error) {
	i := 0
	if d[i] == '+' || d[i] == '-' {
		i++
	}
	var dot, e bool
	for ; i < len(d); i++ {
		c := d[i]
		switch {
		case asciiDigit(c):
		case c == '.':
			if dot || e {
				return 0, false, fmt.Errorf("%w: unexpected number format", ErrScan)
			}
			dot = true
		case c == 'e' || c == 'E':
			if e {
				return 0, false, fmt.Errorf("%w: unexpected number format", ErrScan)
			}
			e = true
		case c == '+' || c == '-':
			if d[i-1] != 'e' && d[i-1] != 'E' {
				return 0, false, fmt.Errorf("%w: unexpected number format", ErrScan)
			}
		default:
			return i, dot || e, nil
		}
	}
	return i, dot || e, nil
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
