package wide

// BlockPixels is the number of pixels a Block processes at once.
const BlockPixels = 16

// Block holds 16 source and 16 destination pixels of a 4-channel
// 8-bit format in Structure-of-Arrays layout. The lanes hold the four
// stored channels in declared order, three color channels and alpha
// last for every supported fast-path format.
//
// Operators read the source lanes and rewrite the destination lanes
// in place.
type Block struct {
	S0, S1, S2, SA U16x16
	D0, D1, D2, DA U16x16
}

// LoadSrc fills the source lanes from 16 consecutive 4-byte pixels.
// src must hold at least 64 bytes.
func (b *Block) LoadSrc(src []byte) {
	for i := 0; i < BlockPixels; i++ {
		o := i * 4
		b.S0[i] = uint16(src[o+0])
		b.S1[i] = uint16(src[o+1])
		b.S2[i] = uint16(src[o+2])
		b.SA[i] = uint16(src[o+3])
	}
}

// LoadSrcPixel broadcasts a single 4-byte pixel to every source lane.
// Used when compositing a constant color.
func (b *Block) LoadSrcPixel(p [4]byte) {
	b.S0 = Splat(uint16(p[0]))
	b.S1 = Splat(uint16(p[1]))
	b.S2 = Splat(uint16(p[2]))
	b.SA = Splat(uint16(p[3]))
}

// LoadDst fills the destination lanes from 16 consecutive 4-byte
// pixels. dst must hold at least 64 bytes.
func (b *Block) LoadDst(dst []byte) {
	for i := 0; i < BlockPixels; i++ {
		o := i * 4
		b.D0[i] = uint16(dst[o+0])
		b.D1[i] = uint16(dst[o+1])
		b.D2[i] = uint16(dst[o+2])
		b.DA[i] = uint16(dst[o+3])
	}
}

// StoreDst writes the destination lanes back as 16 consecutive 4-byte
// pixels. Lane values must already be within [0, 255].
func (b *Block) StoreDst(dst []byte) {
	for i := 0; i < BlockPixels; i++ {
		o := i * 4
		dst[o+0] = uint8(b.D0[i])
		dst[o+1] = uint8(b.D1[i])
		dst[o+2] = uint8(b.D2[i])
		dst[o+3] = uint8(b.DA[i])
	}
}
