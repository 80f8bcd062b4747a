package colorspace

// RGB is an 8-bit color without alpha. The alpha channel is the caller's business.
type RGB [3]uint8

// Put writes c into the first three bytes of dst.
func (c RGB) Put(dst []byte) {
	_ = dst[2]
	dst[0], dst[1], dst[2] = c[0], c[1], c[2]
}

// truncByte converts a channel value to a byte by truncating toward zero and keeping the low
// 8 bits, so 300 becomes 44. NaN and values outside int32 become 0.
func truncByte(f float32) uint8 {
	if f != f || f >= 1<<31 || f < -(1<<31) {
		return 0
	}

	return uint8(int32(f))
}
