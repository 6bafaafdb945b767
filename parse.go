package decimal

import "fmt"

// Parse converts a string to a (possibly rounded) decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1_000_000
//	1.83e5
//	0.22e-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// '_' may additionally appear after any digit of the significand as a
// digit separator and is discarded.
//
// Fractional digits beyond the 28th, or beyond the capacity of the
// coefficient, do not extend the result; they feed a final half-to-even
// rounding decision instead. Digits of the integer part never round, so
// an integer part above 96 bits is an error.
//
// Parse returns an error:
//   - if the string does not represent a valid decimal number;
//   - if the integer part of the result does not fit in 96 bits;
//   - if the exponent is less than -2 * [MaxScale] or greater than 2 * [MaxScale].
func Parse(s string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    u96
		scale   int
		hascoef bool
		eneg    bool
		exp     int
		hasexp  bool
		hase    bool
		ok      bool
		tail    bool // the coefficient is saturated, digits only round now
		taildig byte // first discarded digit
		sticky  bool // nonzero digits were discarded after taildig
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
whole:
	for pos < width {
		switch {
		case s[pos] >= '0' && s[pos] <= '9':
			hascoef = true
			coef, ok = coef.fsa(1, s[pos]-'0')
			if !ok {
				return Decimal{}, fmt.Errorf("parsing %q: %w", s, overflowErr(neg))
			}
		case s[pos] == '_' && hascoef:
			// separator, skip
		default:
			break whole
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
	frac:
		for pos < width {
			switch {
			case s[pos] >= '0' && s[pos] <= '9':
				b := s[pos] - '0'
				hascoef = true
				switch {
				case tail:
					if b != 0 {
						sticky = true
					}
				case scale >= MaxScale:
					tail, taildig = true, b
				default:
					var ncoef u96
					ncoef, ok = coef.fsa(1, b)
					if ok {
						coef = ncoef
						scale++
					} else {
						tail, taildig = true, b
					}
				}
			case s[pos] == '_' && hascoef:
				// separator, skip
			default:
				break frac
			}
			pos++
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hase = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int(s[pos]-'0')
			if exp > 2*MaxScale {
				return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrExponentRange)
			}
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], ErrInvalidDecimal)
	}
	if !hascoef {
		return Decimal{}, fmt.Errorf("parsing %q: no coefficient: %w", s, ErrInvalidDecimal)
	}
	if hase && !hasexp {
		return Decimal{}, fmt.Errorf("parsing %q: no exponent: %w", s, ErrInvalidDecimal)
	}

	// Rounding-only tail
	if tail && (taildig > 5 || (taildig == 5 && (sticky || coef.isOdd()))) {
		var ncoef u96
		ncoef, ok = coef.add(u96{1, 0, 0})
		if ok {
			coef = ncoef
		} else {
			// the increment carried past 96 bits
			var err error
			coef, scale, err = fit96(coef.wide().inc(), scale)
			if err != nil {
				return Decimal{}, fmt.Errorf("parsing %q: %w", s, overflowErr(neg))
			}
		}
	}

	// Exponent
	if eneg {
		scale += exp
	} else {
		scale -= exp
	}
	switch {
	case scale < 0:
		coef, ok = coef.lsh(-scale)
		if !ok {
			return Decimal{}, fmt.Errorf("parsing %q: %w", s, overflowErr(neg))
		}
		scale = 0
	case scale > MaxScale:
		var err error
		coef, scale, err = fit96(coef.wide(), scale)
		if err != nil {
			return Decimal{}, fmt.Errorf("parsing %q: %w", s, overflowErr(neg))
		}
	}

	return newDecimal(neg, coef, scale)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}
