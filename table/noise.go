package table

// Taps and seed for the 16 bit Galois LFSR behind Noise.
const (
	noiseTaps uint16 = 0xd008
	noiseSeed uint16 = 0xffff
)

// Noise fills a table from a linear-feedback shift register. The register
// always starts from the same seed, so the same n always gives the same table,
// and looping it gives a pitched, slightly buzzy noise.
func Noise(n int) Table {
	t := alloc(n)
	state := noiseSeed
	for i := range t {
		fb := state & 1
		state >>= 1
		if fb == 1 {
			state ^= noiseTaps
		}
		t[i] = float32(int16(state)) / (1 << 15)
	}
	return t
}
