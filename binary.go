package decimal

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
)

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// The encoding is the 16-byte little-endian OLE DECIMAL layout:
//
//	bytes  0..3   coefficient bits 0..31
//	bytes  4..7   coefficient bits 32..63
//	bytes  8..11  coefficient bits 64..95
//	bytes 12..13  reserved, zero
//	byte  14      scale
//	byte  15      bit 7 holds the sign, remaining bits are zero
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], d.coef[0])
	binary.LittleEndian.PutUint32(buf[4:8], d.coef[1])
	binary.LittleEndian.PutUint32(buf[8:12], d.coef[2])
	buf[14] = d.scale
	if d.neg {
		buf[15] = 0x80
	}
	return buf, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// A negative zero on the wire is accepted and canonicalized to positive
// zero. Nonzero reserved bits and out-of-range scales are rejected.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("unmarshaling %v bytes into %T: %w", len(data), d, ErrInvalidDecimal)
	}
	if data[12] != 0 || data[13] != 0 || data[15]&0x7f != 0 {
		return fmt.Errorf("unmarshaling into %T: reserved bits are not zero: %w", d, ErrInvalidDecimal)
	}
	scale := int(data[14])
	if scale > MaxScale {
		return fmt.Errorf("unmarshaling into %T: %w", d, ErrScaleRange)
	}
	coef := u96{
		binary.LittleEndian.Uint32(data[0:4]),
		binary.LittleEndian.Uint32(data[4:8]),
		binary.LittleEndian.Uint32(data[8:12]),
	}
	f, err := newDecimal(data[15]&0x80 != 0, coef, scale)
	if err != nil {
		return err
	}
	*d = f
	return nil
}

// Value implements [driver.Valuer] interface, rendering the decimal in
// its canonical string form.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements [sql.Scanner] interface.
// It accepts strings, byte slices, integers, and floats.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch v := value.(type) {
	case string:
		*d, err = Parse(v)
	case []byte:
		*d, err = Parse(string(v))
	case int64:
		*d, err = New(v, 0)
	case float64:
		*d, err = NewFromFloat64(v)
	default:
		err = fmt.Errorf("scanning %T into %T: %w", value, d, ErrConversion)
	}
	return err
}
