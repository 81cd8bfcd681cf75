package core

// DecodeASCII strips one trailing NUL byte if present and validates that
// every remaining byte is 7-bit ASCII.
func DecodeASCII(b []byte, offset int64) (string, error) {
	if len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	for _, c := range b {
		if c > 0x7F {
			return "", NewErrorAt(KindNonASCII, offset, "string payload contains a non-ASCII byte")
		}
	}
	return string(b), nil
}

// EncodeASCII appends s as raw ASCII bytes to dst, padding with a trailing
// 0x00 if the result would otherwise have odd length.
func EncodeASCII(dst []byte, s string) []byte {
	dst = append(dst, s...)
	if len(s)%2 != 0 {
		dst = append(dst, 0)
	}
	return dst
}
