package decimal

import (
	"fmt"
	"strconv"
	"strings"
)

// String implements the [fmt.Stringer] interface and returns a string
// representation of a decimal value.
// The returned string does not use scientific or engineering notation and
// renders exactly [Decimal.Scale] digits after the decimal point, so
// trailing zeros are preserved.
// The format follows this formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {

	var (
		buf   [40]byte
		pos   int
		coef  u96
		scale int
	)

	pos = len(buf) - 1
	coef = d.coef
	scale = d.Scale()

	// Coefficient
	for {
		var r uint32
		coef, r = coef.quoRem32(10)
		buf[pos] = byte(r) + '0'
		pos--
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef.isZero() {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef.isZero() && scale == 0 {
			break
		}
	}

	// Sign
	if d.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//	%e, %E:     -1.23456e2
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is supported for the %f, %e, and %E verbs.
// For %f, precision above the scale pads zeros and precision below the
// scale truncates; the decimal value itself is never changed.
// For %e and %E, precision selects the number of digits after the decimal
// point and rounds half to even.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {

	// Unsigned body
	var body string
	switch verb {
	case 'e', 'E':
		prec, hasPrec := state.Precision()
		body = d.sci(prec, hasPrec, verb == 'E')
	case 'f', 'F':
		body = d.fixed(state)
	case 's', 'S', 'v', 'V', 'q', 'Q':
		body = d.Abs().String()
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(decimal.Decimal="))
		state.Write([]byte(d.String()))
		state.Write([]byte(")"))
		return
	}

	// Arithmetic sign
	sign := ""
	switch {
	case d.IsNeg():
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Quotes
	lquote, tquote := "", ""
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = `"`, `"`
	}

	// Padding
	width := len(lquote) + len(sign) + len(body) + len(tquote)
	lspaces, lzeroes, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	state.Write([]byte(strings.Repeat(" ", lspaces)))
	state.Write([]byte(lquote))
	state.Write([]byte(sign))
	state.Write([]byte(strings.Repeat("0", lzeroes)))
	state.Write([]byte(body))
	state.Write([]byte(tquote))
	state.Write([]byte(strings.Repeat(" ", tspaces)))
}

// fixed renders |d| in plain decimal notation, applying the precision
// from the format descriptor to the final string.
func (d Decimal) fixed(state fmt.State) string {
	s := d.Abs().String()
	prec, ok := state.Precision()
	if !ok {
		return s
	}
	dot := strings.IndexByte(s, '.')
	frac := 0
	if dot >= 0 {
		frac = len(s) - dot - 1
	}
	switch {
	case prec == 0:
		if dot >= 0 {
			s = s[:dot]
		}
	case prec < frac:
		s = s[:dot+1+prec]
	case prec > frac:
		if dot < 0 {
			s += "."
		}
		s += strings.Repeat("0", prec-frac)
	}
	return s
}

// sci renders |d| in scientific notation: the most significant digit,
// a fractional part, and a plain signed decimal exponent.
// Without an explicit precision the fractional part carries all remaining
// coefficient digits, except that a coefficient whose digits after the
// first are all zeros collapses to a single digit.
func (d Decimal) sci(prec int, hasPrec bool, upper bool) string {

	// Coefficient digits, most significant first
	var digits string
	if d.IsZero() {
		digits = "0"
	} else {
		var buf [29]byte
		pos := len(buf)
		coef := d.coef
		for !coef.isZero() {
			var r uint32
			coef, r = coef.quoRem32(10)
			pos--
			buf[pos] = byte(r) + '0'
		}
		digits = string(buf[pos:])
	}

	exp := len(digits) - 1 - d.Scale()

	if hasPrec {
		var delta int
		digits, delta = roundDigits(digits, prec+1)
		exp += delta
	} else if len(digits) > 1 && allZeros(digits[1:]) {
		digits = digits[:1]
	}

	var sb strings.Builder
	sb.WriteByte(digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	if upper {
		sb.WriteByte('E')
	} else {
		sb.WriteByte('e')
	}
	sb.WriteString(strconv.Itoa(exp))
	return sb.String()
}

func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// roundDigits shortens a digit string to n digits, rounding half to even,
// or pads it with zeros up to n digits.
// It returns the digits and the exponent correction caused by a carry out
// of the leading digit.
func roundDigits(s string, n int) (string, int) {
	if n >= len(s) {
		return s + strings.Repeat("0", n-len(s)), 0
	}
	b := []byte(s[:n])
	dig := s[n]
	sticky := false
	for i := n + 1; i < len(s); i++ {
		if s[i] != '0' {
			sticky = true
			break
		}
	}
	if dig > '5' || (dig == '5' && (sticky || (b[n-1]-'0')%2 == 1)) {
		i := n - 1
		for ; i >= 0; i-- {
			if b[i] == '9' {
				b[i] = '0'
			} else {
				b[i]++
				break
			}
		}
		if i < 0 {
			return "1" + string(b[:n-1]), 1
		}
	}
	return string(b), 0
}
