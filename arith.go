package decimal

import "fmt"

// Add returns the (possibly rounded) sum of d and e.
//
// Add returns an error if the integer part of the sum does not fit in
// 96 bits even after rounding away all fractional digits.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	f, ok := addFast(d, e)
	if !ok {
		return addWide(d, e)
	}
	return f, nil
}

func addFast(d, e Decimal) (Decimal, bool) {
	dcoef, ecoef, scale, ok := alignFast(d, e)
	if !ok {
		return Decimal{}, false
	}

	// Sign
	var neg bool
	if dcoef.cmp(ecoef) >= 0 {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	var coef u96
	if d.neg != e.neg {
		coef = dcoef.dist(ecoef)
	} else {
		coef, ok = dcoef.add(ecoef)
		if !ok {
			return Decimal{}, false
		}
	}

	f, err := newDecimal(neg, coef, scale)
	if err != nil {
		return Decimal{}, false
	}
	return f, true
}

func addWide(d, e Decimal) (Decimal, error) {
	x, y, scale := alignWide(d, e)

	// Sign
	var neg bool
	if x.cmp(y) >= 0 {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	var coef u192
	if d.neg != e.neg {
		coef = x.dist(y)
	} else {
		coef, _ = x.add(y)
	}

	c, scale, err := fit96(coef, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("%q + %q: %w", d, e, overflowErr(neg))
	}
	return newDecimal(neg, c, scale)
}

// Sub returns the (possibly rounded) difference of d and e.
//
// Sub returns an error if the integer part of the difference does not fit
// in 96 bits even after rounding away all fractional digits.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	return d.Add(e.Neg())
}

// Mul returns the (possibly rounded) product of d and e.
// The scale of the product is the sum of the operand scales, lowered with
// half-to-even rounding when it exceeds [MaxScale] or the coefficient
// exceeds 96 bits.
//
// Mul returns an error if the integer part of the product does not fit in
// 96 bits even after rounding away all fractional digits.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	neg := d.neg != e.neg
	coef, scale, err := fit96(d.coef.mul(e.coef), d.Scale()+e.Scale())
	if err != nil {
		return Decimal{}, fmt.Errorf("%q * %q: %w", d, e, overflowErr(neg))
	}
	return newDecimal(neg, coef, scale)
}

// Quo returns the (possibly rounded) quotient of d and e.
// A terminating quotient is returned exactly; a non-terminating expansion
// is carried out to [MaxScale] digits and rounded half to even.
//
// Quo returns an error:
//   - if e is zero;
//   - if the integer part of the quotient does not fit in 96 bits.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("%q / %q: %w", d, e, ErrDivisionByZero)
	}

	// Special case: zero dividend
	if d.IsZero() {
		scale := d.Scale() - e.Scale()
		if scale < 0 {
			scale = 0
		}
		return newDecimal(false, u96{}, scale)
	}

	neg := d.neg != e.neg
	scale := d.Scale() - e.Scale()
	qw, rw := d.coef.wide().divmod(e.coef.wide())
	q, r := qw.u96(), rw.u96()

	// Raise the quotient while the working scale is negative.
	for scale < 0 {
		var ok bool
		q, r, ok = quoStep(q, r, e.coef)
		if !ok {
			return Decimal{}, fmt.Errorf("%q / %q: %w", d, e, overflowErr(neg))
		}
		scale++
	}

	// Extend precision while the remainder divides further.
	for !r.isZero() && scale < MaxScale {
		q2, r2, ok := quoStep(q, r, e.coef)
		if !ok {
			break
		}
		q, r = q2, r2
		scale++
	}

	// Round half to even on the final remainder.
	if !r.isZero() {
		dig, rr := divDigit(r, e.coef)
		if dig > 5 || (dig == 5 && (!rr.isZero() || q.isOdd())) {
			coef, scale, err := fit96(q.wide().inc(), scale)
			if err != nil {
				return Decimal{}, fmt.Errorf("%q / %q: %w", d, e, overflowErr(neg))
			}
			return newDecimal(neg, coef, scale)
		}
	}
	return newDecimal(neg, q, scale)
}

// quoStep appends one decimal digit to the running quotient:
// q' = q*10 + (r*10)/y, r' = (r*10)%y.
// It reports false when the new quotient does not fit in 96 bits.
func quoStep(q, r, y u96) (u96, u96, bool) {
	q10 := q.mul32(10)
	if !q10.fits96() {
		return q, r, false
	}
	dig, rr := divDigit(r, y)
	q2, ok := q10.u96().add(u96{dig, 0, 0})
	if !ok {
		return q, r, false
	}
	return q2, rr, true
}

// divDigit calculates (r*10)/y and (r*10)%y, where r < y.
// The quotient is a single decimal digit, so at most nine subtractions
// are needed.
func divDigit(r, y u96) (uint32, u96) {
	x := r.mul32(10)
	yw := u128{y[0], y[1], y[2], 0}
	var dig uint32
	for x.cmp(yw) >= 0 {
		x, _ = x.sub(yw)
		dig++
	}
	return dig, x.u96()
}

// QuoRem returns the whole and the remaining part of the quotient of
// d and e, such that d = q * e + r and q is an integer truncated
// towards zero.
// The remainder carries the sign of the dividend and the larger of the
// two operand scales, and is always exact.
//
// QuoRem returns an error:
//   - if e is zero;
//   - if the quotient does not fit in 96 bits.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Decimal{}, Decimal{}, fmt.Errorf("%q %% %q: %w", d, e, ErrDivisionByZero)
	}

	// General case: exact alignment, then integer long division
	x, y, scale := alignWide(d, e)
	qw, rw := x.divmod(y)
	if !qw.fits96() {
		return Decimal{}, Decimal{}, fmt.Errorf("%q %% %q: %w", d, e, overflowErr(d.neg != e.neg))
	}
	q, err = newDecimal(d.neg != e.neg, qw.u96(), 0)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	r, err = newDecimal(d.neg, rw.u96(), scale)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return q, r, nil
}

// Rem returns the remainder of dividing d by e.
// Also see method [Decimal.QuoRem].
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	_, r, err := d.QuoRem(e)
	return r, err
}

// Pow returns d raised to the given integer power, computed by repeated
// squaring.
// A negative power inverts the result, so d.Pow(-2) is 1 / d^2.
//
// Pow returns an error if an intermediate product overflows, or if d is
// zero and power is negative.
func (d Decimal) Pow(power int) (Decimal, error) {
	// Special case
	if power == 0 {
		return One, nil
	}
	// General case
	f, err := d.Pow(power / 2)
	if err != nil {
		return Decimal{}, err
	}
	g, err := f.Mul(f)
	if err != nil {
		return Decimal{}, err
	}
	if power%2 == 0 {
		return g, nil
	}
	if power > 0 {
		return g.Mul(d)
	}
	return g.Quo(d)
}
