// Package blend implements the Porter-Duff compositing operators.
//
// Every operator is a pair of coefficient functions (Fsrc, Fdst) over
// source and destination alpha; the per-channel result is
// src*Fsrc + dst*Fdst, computed in premultiplied, linear space.
//
// Two 8-bit execution paths exist: a scalar kernel per pixel and a
// batched kernel over 16-pixel wide.Blocks. Both use the same
// div-by-255 rounding and produce bit-identical results.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1
package blend

// Op is a Porter-Duff compositing operator.
type Op uint8

const (
	Clear Op = iota // Fsrc=0      Fdst=0
	Src             // Fsrc=1      Fdst=0
	Dst             // Fsrc=0      Fdst=1
	SrcOver         // Fsrc=1      Fdst=1-sa
	DstOver         // Fsrc=1-da   Fdst=1
	SrcIn           // Fsrc=da     Fdst=0
	DstIn           // Fsrc=0      Fdst=sa
	SrcOut          // Fsrc=1-da   Fdst=0
	DstOut          // Fsrc=0      Fdst=1-sa
	SrcAtop         // Fsrc=da     Fdst=1-sa
	DstAtop         // Fsrc=1-da   Fdst=sa
	Xor             // Fsrc=1-da   Fdst=1-sa
	Plus            // Fsrc=1      Fdst=1 (clamped)
)

func (op Op) String() string {
	switch op {
	case Clear:
		return "Clear"
	case Src:
		return "Src"
	case Dst:
		return "Dst"
	case SrcOver:
		return "SrcOver"
	case DstOver:
		return "DstOver"
	case SrcIn:
		return "SrcIn"
	case DstIn:
		return "DstIn"
	case SrcOut:
		return "SrcOut"
	case DstOut:
		return "DstOut"
	case SrcAtop:
		return "SrcAtop"
	case DstAtop:
		return "DstAtop"
	case Xor:
		return "Xor"
	case Plus:
		return "Plus"
	}
	return "unknown"
}

// Coefficients returns the (Fsrc, Fdst) pair for the operator given
// source and destination alpha as unit values. Used by the scalar
// float path for formats outside the 8-bit fast path.
func (op Op) Coefficients(sa, da float64) (fs, fd float64) {
	switch op {
	case Clear:
		return 0, 0
	case Src:
		return 1, 0
	case Dst:
		return 0, 1
	case SrcOver:
		return 1, 1 - sa
	case DstOver:
		return 1 - da, 1
	case SrcIn:
		return da, 0
	case DstIn:
		return 0, sa
	case SrcOut:
		return 1 - da, 0
	case DstOut:
		return 0, 1 - sa
	case SrcAtop:
		return da, 1 - sa
	case DstAtop:
		return 1 - da, sa
	case Xor:
		return 1 - da, 1 - sa
	case Plus:
		return 1, 1
	}
	return 1, 1 - sa
}

// div255 divides by 255 with the rounding shared by the scalar and
// batched kernels: (x + 1 + (x >> 8)) >> 8. Exact for multiples of
// 255, so products with alpha 0 or 255 lose nothing.
func div255(x uint32) uint32 {
	return (x + 1 + (x >> 8)) >> 8
}

// mulDiv255 multiplies two 8-bit values as intensities.
func mulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint32(a) * uint32(b)))
}

// clampAdd adds two 8-bit values saturating at 255.
func clampAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
