/*
Package decimal implements immutable fixed-precision decimal numbers.
It is specifically designed for use in transactional financial systems,
where the rounding behavior of binary floating point is unacceptable.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unsigned 96-bit integer representing the numeric value
    of the decimal without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal
    point within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2
    represents the value 123.45.
    The range of allowed values for the scale is from 0 to 28.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have
different scales and coefficients. Comparison and hashing treat them as
equal; formatting preserves the distinction.

The in-memory representation holds the same parts as the 16-byte OLE
DECIMAL layout (three coefficient limbs, a scale, and a sign), and
[Decimal.MarshalBinary] produces that layout byte for byte, so the type is
wire compatible with consumers of the Windows VARIANT DECIMAL encoding.

# Constraints

The magnitude of a decimal is bounded by 2^96 - 1 at scale 0, which is
79228162514264337593543950335. Special values such as NaN, Infinity, or
negative zeros are not supported. This ensures that arithmetic operations
always produce either valid decimals or errors.

# Operations

Arithmetic is carried out in two steps:

 1. The operation is performed over the 96-bit coefficients.
    If no overflow occurs, the exact result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated with increased precision inside fixed
    192-bit scratch buffers.
    The result is then reduced back to 96 bits, lowering the scale with
    half-to-even rounding.
    If the integer part still does not fit at scale 0, an overflow error
    is returned.

All scratch space lives in fixed-size stack buffers; no arithmetic path
allocates.

# Rounding

Methods such as [Decimal.Round], [Decimal.Quo], and the parser round using
the "half to even" rule, also known as banker's rounding: an exact half is
rounded to the nearest even digit. This rounding is unbiased over sums of
rounded values, which is why financial systems favor it.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Decimal.String], [Decimal.Format].
  - from/to float:
    [NewFromFloat64], [NewFromFloat32], [Decimal.Float64], [Decimal.Float32].
  - from/to integer:
    [New], [NewFromUint64], [Decimal.Int64], [Decimal.Uint64].
  - from/to raw parts:
    [NewFromParts], [Decimal.Unpack].

See the documentation for each method for more details.
*/
package decimal
