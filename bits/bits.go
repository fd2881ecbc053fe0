package bits

// Conversion between byte payloads and 0/1 bit slices

// FromBytes unpacks data into bits, most significant bit of each byte first
func FromBytes(data []byte) []uint8 {
	result := make([]uint8, len(data)*8)
	for i := range result {
		byteIdx := i / 8
		bitIdx := i % 8
		if data[byteIdx]&(1<<(7-bitIdx)) != 0 {
			result[i] = 1
		}
	}
	return result
}

// ToBytes packs bits back into bytes, most significant bit first.
// Any non-zero value counts as a 1. If len(b) is not a multiple of 8,
// the last byte is padded with zero bits.
func ToBytes(b []uint8) []byte {
	result := make([]byte, (len(b)+7)/8) // Round up to nearest byte
	for i, bit := range b {
		if bit != 0 {
			result[i/8] |= 1 << (7 - i%8)
		}
	}
	return result
}

// CountErrors returns the number of positions where sent and received differ.
// Positions present in only one of the slices count as errors.
func CountErrors[T comparable](sent, received []T) int {
	n := min(len(sent), len(received))
	count := max(len(sent), len(received)) - n
	for i := 0; i < n; i++ {
		if sent[i] != received[i] {
			count++
		}
	}
	return count
}
