package decimal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func bigFromU96(x u96) *big.Int {
	z := new(big.Int)
	for i := 2; i >= 0; i-- {
		z.Lsh(z, 32)
		z.Or(z, big.NewInt(int64(x[i])))
	}
	return z
}

func bigFromU192(x u192) *big.Int {
	z := new(big.Int)
	for i := 5; i >= 0; i-- {
		z.Lsh(z, 32)
		z.Or(z, big.NewInt(int64(x[i])))
	}
	return z
}

func u96FromBig(t *testing.T, z *big.Int) u96 {
	t.Helper()
	require.LessOrEqual(t, z.BitLen(), 96)
	var x u96
	w := new(big.Int).Set(z)
	mask := big.NewInt(0xFFFF_FFFF)
	for i := 0; i < 3; i++ {
		x[i] = uint32(new(big.Int).And(w, mask).Uint64())
		w.Rsh(w, 32)
	}
	return x
}

var u96Vectors = []string{
	"0",
	"1",
	"9",
	"10",
	"4294967295",
	"4294967296",
	"18446744073709551615",
	"18446744073709551616",
	"10000000000000000000000000000",
	"31415926535897932384626433833",
	"79228162514264337593543950334",
	"79228162514264337593543950335",
}

func TestU96_AddSub(t *testing.T) {
	max := bigFromU96(maxU96)
	for _, xs := range u96Vectors {
		for _, ys := range u96Vectors {
			xb, _ := new(big.Int).SetString(xs, 10)
			yb, _ := new(big.Int).SetString(ys, 10)
			x := u96FromBig(t, xb)
			y := u96FromBig(t, yb)

			sum := new(big.Int).Add(xb, yb)
			z, ok := x.add(y)
			if sum.Cmp(max) > 0 {
				require.False(t, ok, "%v + %v", xs, ys)
			} else {
				require.True(t, ok, "%v + %v", xs, ys)
				require.Equal(t, sum.String(), bigFromU96(z).String())
			}

			diff := new(big.Int).Sub(xb, yb)
			z, ok = x.sub(y)
			if diff.Sign() < 0 {
				require.False(t, ok, "%v - %v", xs, ys)
			} else {
				require.True(t, ok, "%v - %v", xs, ys)
				require.Equal(t, diff.String(), bigFromU96(z).String())
			}

			require.Equal(t, new(big.Int).Abs(diff).String(), bigFromU96(x.dist(y)).String())
			require.Equal(t, xb.Cmp(yb), x.cmp(y))
		}
	}
}

func TestU96_Mul(t *testing.T) {
	for _, xs := range u96Vectors {
		for _, ys := range u96Vectors {
			xb, _ := new(big.Int).SetString(xs, 10)
			yb, _ := new(big.Int).SetString(ys, 10)
			x := u96FromBig(t, xb)
			y := u96FromBig(t, yb)

			want := new(big.Int).Mul(xb, yb)
			require.Equal(t, want.String(), bigFromU192(x.mul(y)).String(), "%v * %v", xs, ys)
		}
	}
}

func TestU96_QuoRem32(t *testing.T) {
	divisors := []uint32{1, 2, 3, 7, 10, 1000000000, 4294967295}
	for _, xs := range u96Vectors {
		for _, ys := range divisors {
			xb, _ := new(big.Int).SetString(xs, 10)
			x := u96FromBig(t, xb)

			wantQ, wantR := new(big.Int).QuoRem(xb, big.NewInt(int64(ys)), new(big.Int))
			q, r := x.quoRem32(ys)
			require.Equal(t, wantQ.String(), bigFromU96(q).String(), "%v / %v", xs, ys)
			require.Equal(t, wantR.String(), new(big.Int).SetUint64(uint64(r)).String(), "%v %% %v", xs, ys)
		}
	}
}

func TestU96_Lsh(t *testing.T) {
	max := bigFromU96(maxU96)
	for _, xs := range u96Vectors {
		for shift := 0; shift <= 29; shift++ {
			xb, _ := new(big.Int).SetString(xs, 10)
			x := u96FromBig(t, xb)

			want := new(big.Int).Mul(xb, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil))
			z, ok := x.lsh(shift)
			if want.Cmp(max) > 0 {
				require.False(t, ok, "%v << %v", xs, shift)
			} else {
				require.True(t, ok, "%v << %v", xs, shift)
				require.Equal(t, want.String(), bigFromU96(z).String())
			}
		}
	}
}

func TestU96_Rsh(t *testing.T) {
	tests := []struct {
		x                string
		shift            int
		down, up, scaled string
	}{
		{"0", 1, "0", "0", "0"},
		{"5", 1, "0", "1", "0"},
		{"15", 1, "1", "2", "2"},
		{"25", 1, "2", "3", "2"},
		{"26", 1, "2", "3", "3"},
		{"151", 2, "1", "2", "2"},
		{"149", 2, "1", "2", "1"},
		{"150", 2, "1", "2", "2"},
		{"250", 2, "2", "3", "2"},
		{"251", 2, "2", "3", "3"},
		{"79228162514264337593543950335", 28, "7", "8", "8"},
		{"79228162514264337593543950335", 29, "0", "1", "1"},
		{"79228162514264337593543950335", 30, "0", "1", "0"},
	}
	for _, tt := range tests {
		xb, _ := new(big.Int).SetString(tt.x, 10)
		x := u96FromBig(t, xb)
		require.Equal(t, tt.down, bigFromU96(x.rshDown(tt.shift)).String(), "rshDown(%v, %v)", tt.x, tt.shift)
		require.Equal(t, tt.up, bigFromU96(x.rshUp(tt.shift)).String(), "rshUp(%v, %v)", tt.x, tt.shift)
		require.Equal(t, tt.scaled, bigFromU96(x.rshHalfEven(tt.shift)).String(), "rshHalfEven(%v, %v)", tt.x, tt.shift)
	}
}

func TestU96_Prec(t *testing.T) {
	tests := []struct {
		x         string
		prec, ntz int
	}{
		{"0", 0, 0},
		{"1", 1, 0},
		{"9", 1, 0},
		{"10", 2, 1},
		{"100", 3, 2},
		{"101", 3, 0},
		{"1000000000000000000000000000", 28, 27},
		{"79228162514264337593543950335", 29, 0},
	}
	for _, tt := range tests {
		xb, _ := new(big.Int).SetString(tt.x, 10)
		x := u96FromBig(t, xb)
		require.Equal(t, tt.prec, x.prec(), "prec(%v)", tt.x)
		require.Equal(t, tt.ntz, x.ntz(), "ntz(%v)", tt.x)
		require.True(t, x.hasPrec(tt.prec), "hasPrec(%v, %v)", tt.x, tt.prec)
		require.False(t, x.hasPrec(tt.prec+1), "hasPrec(%v, %v)", tt.x, tt.prec+1)
	}
}

func TestU192_Divmod(t *testing.T) {
	numerators := []string{
		"0",
		"1",
		"79228162514264337593543950335",
		"79228162514264337593543950336",
		"792281625142643375935439503350000000000000000000000000",
		"6277101735386680763835789423207666416102355444464034512895",
		"1234567890123456789012345678901234567890",
	}
	divisors := []string{
		"1",
		"3",
		"10",
		"4294967296",
		"18446744073709551557",
		"79228162514264337593543950335",
		"1000000000000000000000000000000000",
	}
	for _, xs := range numerators {
		for _, ys := range divisors {
			xb, _ := new(big.Int).SetString(xs, 10)
			yb, _ := new(big.Int).SetString(ys, 10)
			require.LessOrEqual(t, xb.BitLen(), 192)

			var x, y u192
			w := new(big.Int).Set(xb)
			mask := big.NewInt(0xFFFF_FFFF)
			for i := 0; i < 6; i++ {
				x[i] = uint32(new(big.Int).And(w, mask).Uint64())
				w.Rsh(w, 32)
			}
			w.Set(yb)
			for i := 0; i < 6; i++ {
				y[i] = uint32(new(big.Int).And(w, mask).Uint64())
				w.Rsh(w, 32)
			}

			wantQ, wantR := new(big.Int).QuoRem(xb, yb, new(big.Int))
			q, r := x.divmod(y)
			require.Equal(t, wantQ.String(), bigFromU192(q).String(), "%v / %v", xs, ys)
			require.Equal(t, wantR.String(), bigFromU192(r).String(), "%v %% %v", xs, ys)
		}
	}
}

func TestU192_RshHalfEven(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		want  string
	}{
		{"0", 5, "0"},
		{"15", 1, "2"},
		{"25", 1, "2"},
		{"792281625142643375935439503355", 1, "79228162514264337593543950336"},
		{"792281625142643375935439503345", 1, "79228162514264337593543950334"},
		{"792281625142643375935439503346", 1, "79228162514264337593543950335"},
		{"158456325028528675187087900670", 1, "15845632502852867518708790067"},
	}
	for _, tt := range tests {
		xb, _ := new(big.Int).SetString(tt.x, 10)
		var x u192
		w := new(big.Int).Set(xb)
		mask := big.NewInt(0xFFFF_FFFF)
		for i := 0; i < 6; i++ {
			x[i] = uint32(new(big.Int).And(w, mask).Uint64())
			w.Rsh(w, 32)
		}
		require.Equal(t, tt.want, bigFromU192(x.rshHalfEven(tt.shift)).String(), "rshHalfEven(%v, %v)", tt.x, tt.shift)
	}
}
