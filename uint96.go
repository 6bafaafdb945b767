package decimal

import "math/bits"

// The coefficient of a decimal is an unsigned 96-bit integer held in three
// 32-bit limbs, least significant first. Intermediate results widen to 128
// bits (coefficient times one limb) or 192 bits (coefficient times
// coefficient); both scratch types live on the stack.
type (
	u96  [3]uint32
	u128 [4]uint32
	u192 [6]uint32
)

// pow10w32 is a cache of powers of 10 that fit in a limb, where pow10w32[x] = 10^x.
var pow10w32 = [...]uint32{
	1,             // 10^0
	10,            // 10^1
	100,           // 10^2
	1_000,         // 10^3
	10_000,        // 10^4
	100_000,       // 10^5
	1_000_000,     // 10^6
	10_000_000,    // 10^7
	100_000_000,   // 10^8
	1_000_000_000, // 10^9
}

// pow10u96 is a cache of powers of 10 as 96-bit values, where pow10u96[x] = 10^x.
var pow10u96 = [...]u96{
	{1, 0, 0},                                  // 10^0
	{10, 0, 0},                                 // 10^1
	{100, 0, 0},                                // 10^2
	{1_000, 0, 0},                              // 10^3
	{10_000, 0, 0},                             // 10^4
	{100_000, 0, 0},                            // 10^5
	{1_000_000, 0, 0},                          // 10^6
	{10_000_000, 0, 0},                         // 10^7
	{100_000_000, 0, 0},                        // 10^8
	{1_000_000_000, 0, 0},                      // 10^9
	{1_410_065_408, 2, 0},                      // 10^10
	{1_215_752_192, 23, 0},                     // 10^11
	{3_567_587_328, 232, 0},                    // 10^12
	{1_316_134_912, 2_328, 0},                  // 10^13
	{276_447_232, 23_283, 0},                   // 10^14
	{2_764_472_320, 232_830, 0},                // 10^15
	{1_874_919_424, 2_328_306, 0},              // 10^16
	{1_569_325_056, 23_283_064, 0},             // 10^17
	{2_808_348_672, 232_830_643, 0},            // 10^18
	{2_313_682_944, 2_328_306_436, 0},          // 10^19
	{1_661_992_960, 1_808_227_885, 5},          // 10^20
	{3_735_027_712, 902_409_669, 54},           // 10^21
	{2_990_538_752, 434_162_106, 542},          // 10^22
	{4_135_583_744, 46_653_770, 5_421},         // 10^23
	{2_701_131_776, 466_537_709, 54_210},       // 10^24
	{1_241_513_984, 370_409_800, 542_101},      // 10^25
	{3_825_205_248, 3_704_098_002, 5_421_010},  // 10^26
	{3_892_314_112, 2_681_241_660, 54_210_108}, // 10^27
	{268_435_456, 1_042_612_833, 542_101_086},  // 10^28
}

// maxU96 is the maximum value of u96, which is equal to (2^96 - 1).
var maxU96 = u96{4_294_967_295, 4_294_967_295, 4_294_967_295}

func (x u96) isZero() bool {
	return x[0]|x[1]|x[2] == 0
}

func (x u96) isOdd() bool {
	return x[0]&1 != 0
}

// low64 returns the two least significant limbs as a single word.
func (x u96) low64() uint64 {
	return uint64(x[1])<<32 | uint64(x[0])
}

// fits64 returns true if x is representable as uint64.
func (x u96) fits64() bool {
	return x[2] == 0
}

func u96From64(v uint64) u96 {
	return u96{uint32(v), uint32(v >> 32), 0}
}

// cmp compares x and y and returns -1, 0, or 1.
func (x u96) cmp(y u96) int {
	for i := 2; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y and checks overflow.
func (x u96) add(y u96) (z u96, ok bool) {
	var c uint32
	z[0], c = bits.Add32(x[0], y[0], 0)
	z[1], c = bits.Add32(x[1], y[1], c)
	z[2], c = bits.Add32(x[2], y[2], c)
	return z, c == 0
}

// sub calculates x - y and checks underflow.
func (x u96) sub(y u96) (z u96, ok bool) {
	var b uint32
	z[0], b = bits.Sub32(x[0], y[0], 0)
	z[1], b = bits.Sub32(x[1], y[1], b)
	z[2], b = bits.Sub32(x[2], y[2], b)
	return z, b == 0
}

// dist calculates |x - y|.
func (x u96) dist(y u96) u96 {
	if x.cmp(y) >= 0 {
		z, _ := x.sub(y)
		return z
	}
	z, _ := y.sub(x)
	return z
}

// inc calculates x + 1.
// inc must not be called when x is the maximum value.
func (x u96) inc() u96 {
	z, _ := x.add(u96{1, 0, 0})
	return z
}

// mul32 calculates x * y as a 128-bit product.
func (x u96) mul32(y uint32) (z u128) {
	var c uint32
	h0, l0 := bits.Mul32(x[0], y)
	h1, l1 := bits.Mul32(x[1], y)
	h2, l2 := bits.Mul32(x[2], y)
	z[0] = l0
	z[1], c = bits.Add32(l1, h0, 0)
	z[2], c = bits.Add32(l2, h1, c)
	z[3] = h2 + c
	return z
}

// mul calculates x * y as a 192-bit product, schoolbook over 32-bit limbs.
func (x u96) mul(y u96) (z u192) {
	for i := 0; i < 3; i++ {
		var carry uint64
		for j := 0; j < 3; j++ {
			t := uint64(x[i])*uint64(y[j]) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t)
			carry = t >> 32
		}
		z[i+3] = uint32(carry)
	}
	return z
}

// quoRem32 calculates x / y and x % y, limb by limb from the most
// significant end.
func (x u96) quoRem32(y uint32) (q u96, r uint32) {
	var rem uint64
	for i := 2; i >= 0; i-- {
		v := rem<<32 | uint64(x[i])
		q[i] = uint32(v / uint64(y))
		rem = v % uint64(y)
	}
	return q, uint32(rem)
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x u96) lsh(shift int) (z u96, ok bool) {
	z = x
	for shift > 0 {
		k := shift
		if k > 9 {
			k = 9
		}
		w := z.mul32(pow10w32[k])
		if w[3] != 0 {
			return u96{}, false
		}
		z = w.u96()
		shift -= k
	}
	return z, true
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x u96) fsa(shift int, b byte) (z u96, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return u96{}, false
	}
	var c uint32
	z[0], c = bits.Add32(z[0], uint32(b), 0)
	z[1], c = bits.Add32(z[1], 0, c)
	z[2], c = bits.Add32(z[2], 0, c)
	return z, c == 0
}

// rshDown (Right Shift) calculates x / 10^shift and rounds result
// towards zero.
func (x u96) rshDown(shift int) u96 {
	// Special cases
	switch {
	case x.isZero(), shift <= 0:
		return x
	case shift >= len(pow10u96):
		return u96{}
	}
	// General case
	z := x
	for shift > 0 {
		k := shift
		if k > 9 {
			k = 9
		}
		z, _ = z.quoRem32(pow10w32[k])
		shift -= k
	}
	return z
}

// rshUp (Right Shift) calculates x / 10^shift and rounds result away
// from zero.
func (x u96) rshUp(shift int) u96 {
	// Special cases
	switch {
	case x.isZero(), shift <= 0:
		return x
	case shift >= len(pow10u96):
		return u96{1, 0, 0}
	}
	// General case
	z := x
	sticky := false
	for shift > 0 {
		k := shift
		if k > 9 {
			k = 9
		}
		var r uint32
		z, r = z.quoRem32(pow10w32[k])
		if r != 0 {
			sticky = true
		}
		shift -= k
	}
	if sticky {
		z = z.inc()
	}
	return z
}

// rshHalfEven (Right Shift) calculates x / 10^shift and rounds result
// using "half to even" rule.
// The rounding decision considers the entire discarded tail: the first
// dropped digit decides up or down, the remaining dropped digits break
// exact halves.
func (x u96) rshHalfEven(shift int) u96 {
	// Special cases
	switch {
	case x.isZero(), shift <= 0:
		return x
	case shift > len(pow10u96):
		return u96{}
	}
	// General case
	z := x
	sticky := false
	for shift > 1 {
		k := shift - 1
		if k > 9 {
			k = 9
		}
		var r uint32
		z, r = z.quoRem32(pow10w32[k])
		if r != 0 {
			sticky = true
		}
		shift -= k
	}
	z, r := z.quoRem32(10)
	if r > 5 || (r == 5 && (sticky || z.isOdd())) {
		z = z.inc()
	}
	return z
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x u96) prec() int {
	left, right := 0, len(pow10u96)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(pow10u96[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// ntz returns number of trailing zeros in x.
// ntz assumes that 0 has no trailing zeros.
func (x u96) ntz() int {
	if x.isZero() {
		return 0
	}
	n := 0
	for {
		z, r := x.quoRem32(10)
		if r != 0 {
			return n
		}
		x = z
		n++
	}
}

// hasPrec returns true if x has given number of digits or more.
// hasPrec assumes that 0 has no digits.
func (x u96) hasPrec(prec int) bool {
	// Special cases
	switch {
	case prec < 1:
		return true
	case prec > len(pow10u96):
		return false
	}
	// General case
	return x.cmp(pow10u96[prec-1]) >= 0
}

// wide widens x to 192 bits.
func (x u96) wide() (z u192) {
	z[0], z[1], z[2] = x[0], x[1], x[2]
	return z
}

// lshWide calculates x * 10^shift as a 192-bit value.
// The result is exact for any shift up to [MaxScale].
func (x u96) lshWide(shift int) u192 {
	z := x.wide()
	for shift > 0 {
		k := shift
		if k > 9 {
			k = 9
		}
		z, _ = z.mul32(pow10w32[k])
		shift -= k
	}
	return z
}

func (x u128) fits96() bool {
	return x[3] == 0
}

func (x u128) u96() u96 {
	return u96{x[0], x[1], x[2]}
}

// cmp compares x and y and returns -1, 0, or 1.
func (x u128) cmp(y u128) int {
	for i := 3; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// sub calculates x - y and checks underflow.
func (x u128) sub(y u128) (z u128, ok bool) {
	var b uint32
	for i := 0; i < 4; i++ {
		z[i], b = bits.Sub32(x[i], y[i], b)
	}
	return z, b == 0
}

// quoRem32 calculates x / y and x % y.
func (x u128) quoRem32(y uint32) (q u128, r uint32) {
	var rem uint64
	for i := 3; i >= 0; i-- {
		v := rem<<32 | uint64(x[i])
		q[i] = uint32(v / uint64(y))
		rem = v % uint64(y)
	}
	return q, uint32(rem)
}

func (x u192) isZero() bool {
	return x[0]|x[1]|x[2]|x[3]|x[4]|x[5] == 0
}

func (x u192) isOdd() bool {
	return x[0]&1 != 0
}

func (x u192) fits96() bool {
	return x[3]|x[4]|x[5] == 0
}

func (x u192) u96() u96 {
	return u96{x[0], x[1], x[2]}
}

// cmp compares x and y and returns -1, 0, or 1.
func (x u192) cmp(y u192) int {
	for i := 5; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y and checks overflow.
func (x u192) add(y u192) (z u192, ok bool) {
	var c uint32
	for i := 0; i < 6; i++ {
		z[i], c = bits.Add32(x[i], y[i], c)
	}
	return z, c == 0
}

// sub calculates x - y and checks underflow.
func (x u192) sub(y u192) (z u192, ok bool) {
	var b uint32
	for i := 0; i < 6; i++ {
		z[i], b = bits.Sub32(x[i], y[i], b)
	}
	return z, b == 0
}

// dist calculates |x - y|.
func (x u192) dist(y u192) u192 {
	if x.cmp(y) >= 0 {
		z, _ := x.sub(y)
		return z
	}
	z, _ := y.sub(x)
	return z
}

// inc calculates x + 1.
// inc must not be called when x is the maximum value.
func (x u192) inc() u192 {
	z, _ := x.add(u192{1})
	return z
}

// mul32 calculates x * y and checks overflow.
func (x u192) mul32(y uint32) (z u192, ok bool) {
	var carry uint64
	for i := 0; i < 6; i++ {
		t := uint64(x[i])*uint64(y) + carry
		z[i] = uint32(t)
		carry = t >> 32
	}
	return z, carry == 0
}

// quoRem32 calculates x / y and x % y, limb by limb from the most
// significant end.
func (x u192) quoRem32(y uint32) (q u192, r uint32) {
	var rem uint64
	for i := 5; i >= 0; i-- {
		v := rem<<32 | uint64(x[i])
		q[i] = uint32(v / uint64(y))
		rem = v % uint64(y)
	}
	return q, uint32(rem)
}

// rshHalfEven (Right Shift) calculates x / 10^shift and rounds result
// using "half to even" rule over the entire discarded tail.
func (x u192) rshHalfEven(shift int) u192 {
	// Special cases
	switch {
	case x.isZero(), shift <= 0:
		return x
	}
	// General case
	z := x
	sticky := false
	for shift > 1 {
		k := shift - 1
		if k > 9 {
			k = 9
		}
		var r uint32
		z, r = z.quoRem32(pow10w32[k])
		if r != 0 {
			sticky = true
		}
		shift -= k
	}
	z, r := z.quoRem32(10)
	if r > 5 || (r == 5 && (sticky || z.isOdd())) {
		z = z.inc()
	}
	return z
}

// limbs returns the number of significant limbs in x.
func (x u192) limbs() int {
	for i := 5; i >= 0; i-- {
		if x[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// divmod calculates x / y and x % y using long division with a
// leading-limb estimate and correction (Knuth's Algorithm D specialized
// to at most six limbs).
// divmod must not be called with a zero divisor.
func (x u192) divmod(y u192) (q, r u192) {
	n := y.limbs()
	m := x.limbs()

	// Special cases
	switch {
	case m == 0 || x.cmp(y) < 0:
		return u192{}, x
	case n == 1:
		var rem uint32
		q, rem = x.quoRem32(y[0])
		r[0] = rem
		return q, r
	}

	// Normalize the divisor so its leading limb has the high bit set;
	// the quotient estimate below is then off by at most two.
	s := uint(bits.LeadingZeros32(y[n-1]))
	var vn [6]uint32
	for i := n - 1; i > 0; i-- {
		vn[i] = y[i]<<s | uint32(uint64(y[i-1])>>(32-s))
	}
	vn[0] = y[0] << s

	var un [7]uint32
	un[m] = uint32(uint64(x[m-1]) >> (32 - s))
	for i := m - 1; i > 0; i-- {
		un[i] = x[i]<<s | uint32(uint64(x[i-1])>>(32-s))
	}
	un[0] = x[0] << s

	for j := m - n; j >= 0; j-- {
		// Estimate the quotient limb from the two leading limbs.
		num := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		qhat := num / uint64(vn[n-1])
		rhat := num - qhat*uint64(vn[n-1])
		for qhat >= 1<<32 || qhat*uint64(vn[n-2]) > rhat<<32|uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= 1<<32 {
				break
			}
		}

		// Multiply and subtract.
		var k, t int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t = int64(uint64(un[i+j])) - k - int64(p&0xFFFF_FFFF)
			un[i+j] = uint32(t)
			k = int64(p>>32) - (t >> 32)
		}
		t = int64(uint64(un[j+n])) - k
		un[j+n] = uint32(t)

		// The estimate was one too large; add the divisor back.
		if t < 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				w := uint64(un[i+j]) + uint64(vn[i]) + c
				un[i+j] = uint32(w)
				c = w >> 32
			}
			un[j+n] += uint32(c)
		}
		q[j] = uint32(qhat)
	}

	// Denormalize the remainder.
	for i := 0; i < n-1; i++ {
		r[i] = un[i]>>s | uint32(uint64(un[i+1])<<(32-s))
	}
	r[n-1] = un[n-1] >> s
	return q, r
}
