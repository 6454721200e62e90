// Package utils holds the small allocation-light helpers used to format
// console lines without fmt.
package utils

///////////////////////////////////////////////////////////////////////////////
// Integer Formatting
///////////////////////////////////////////////////////////////////////////////

// Utoa formats an unsigned integer in base 10.
func Utoa(v uint64) string {
	var buf [20]byte
	return string(AppendUint(buf[:0], v))
}

// Itoa formats a signed integer in base 10.
func Itoa(v int) string {
	if v >= 0 {
		return Utoa(uint64(v))
	}
	var buf [21]byte
	b := append(buf[:0], '-')
	// negate in uint64 so math.MinInt64 does not overflow
	return string(AppendUint(b, uint64(-(v + 1))+1))
}

// AppendUint appends the base-10 digits of v to dst.
func AppendUint(dst []byte, v uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for v >= 10 {
		i--
		q := v / 10
		tmp[i] = byte('0' + v - q*10)
		v = q
	}
	i--
	tmp[i] = byte('0' + v)
	return append(dst, tmp[i:]...)
}
