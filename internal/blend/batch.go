package blend

import "github.com/gopix/pix/internal/wide"

// BatchFunc is a batch blend kernel over 16 pixels in SoA layout. It
// rewrites the destination lanes of the block in place.
type BatchFunc func(b *wide.Block)

// GetBatch returns the batch kernel for the operator. Unknown
// operators fall back to SrcOver.
func GetBatch(op Op) BatchFunc {
	switch op {
	case Clear:
		return batchClear
	case Src:
		return batchSrc
	case Dst:
		return batchDst
	case SrcOver:
		return batchSrcOver
	case DstOver:
		return batchDstOver
	case SrcIn:
		return batchSrcIn
	case DstIn:
		return batchDstIn
	case SrcOut:
		return batchSrcOut
	case DstOut:
		return batchDstOut
	case SrcAtop:
		return batchSrcAtop
	case DstAtop:
		return batchDstAtop
	case Xor:
		return batchXor
	case Plus:
		return batchPlus
	}
	return batchSrcOver
}

func batchClear(b *wide.Block) {
	zero := wide.Splat(0)
	b.D0 = zero
	b.D1 = zero
	b.D2 = zero
	b.DA = zero
}

func batchSrc(b *wide.Block) {
	b.D0 = b.S0
	b.D1 = b.S1
	b.D2 = b.S2
	b.DA = b.SA
}

func batchDst(*wide.Block) {
	// Destination already holds the result.
}

func batchSrcOver(b *wide.Block) {
	inv := b.SA.Inv()
	b.D0 = b.S0.Add(b.D0.MulDiv255(inv)).Clamp(255)
	b.D1 = b.S1.Add(b.D1.MulDiv255(inv)).Clamp(255)
	b.D2 = b.S2.Add(b.D2.MulDiv255(inv)).Clamp(255)
	b.DA = b.SA.Add(b.DA.MulDiv255(inv)).Clamp(255)
}

func batchDstOver(b *wide.Block) {
	inv := b.DA.Inv()
	b.D0 = b.S0.MulDiv255(inv).Add(b.D0).Clamp(255)
	b.D1 = b.S1.MulDiv255(inv).Add(b.D1).Clamp(255)
	b.D2 = b.S2.MulDiv255(inv).Add(b.D2).Clamp(255)
	b.DA = b.SA.MulDiv255(inv).Add(b.DA).Clamp(255)
}

func batchSrcIn(b *wide.Block) {
	da := b.DA
	b.D0 = b.S0.MulDiv255(da)
	b.D1 = b.S1.MulDiv255(da)
	b.D2 = b.S2.MulDiv255(da)
	b.DA = b.SA.MulDiv255(da)
}

func batchDstIn(b *wide.Block) {
	sa := b.SA
	b.D0 = b.D0.MulDiv255(sa)
	b.D1 = b.D1.MulDiv255(sa)
	b.D2 = b.D2.MulDiv255(sa)
	b.DA = b.DA.MulDiv255(sa)
}

func batchSrcOut(b *wide.Block) {
	inv := b.DA.Inv()
	b.D0 = b.S0.MulDiv255(inv)
	b.D1 = b.S1.MulDiv255(inv)
	b.D2 = b.S2.MulDiv255(inv)
	b.DA = b.SA.MulDiv255(inv)
}

func batchDstOut(b *wide.Block) {
	inv := b.SA.Inv()
	b.D0 = b.D0.MulDiv255(inv)
	b.D1 = b.D1.MulDiv255(inv)
	b.D2 = b.D2.MulDiv255(inv)
	b.DA = b.DA.MulDiv255(inv)
}

func batchSrcAtop(b *wide.Block) {
	da := b.DA
	inv := b.SA.Inv()
	b.D0 = b.S0.MulDiv255(da).Add(b.D0.MulDiv255(inv)).Clamp(255)
	b.D1 = b.S1.MulDiv255(da).Add(b.D1.MulDiv255(inv)).Clamp(255)
	b.D2 = b.S2.MulDiv255(da).Add(b.D2.MulDiv255(inv)).Clamp(255)
	b.DA = b.SA.MulDiv255(da).Add(b.DA.MulDiv255(inv)).Clamp(255)
}

func batchDstAtop(b *wide.Block) {
	sa := b.SA
	inv := b.DA.Inv()
	b.D0 = b.S0.MulDiv255(inv).Add(b.D0.MulDiv255(sa)).Clamp(255)
	b.D1 = b.S1.MulDiv255(inv).Add(b.D1.MulDiv255(sa)).Clamp(255)
	b.D2 = b.S2.MulDiv255(inv).Add(b.D2.MulDiv255(sa)).Clamp(255)
	b.DA = b.SA.MulDiv255(inv).Add(b.DA.MulDiv255(sa)).Clamp(255)
}

func batchXor(b *wide.Block) {
	invD := b.DA.Inv()
	invS := b.SA.Inv()
	b.D0 = b.S0.MulDiv255(invD).Add(b.D0.MulDiv255(invS)).Clamp(255)
	b.D1 = b.S1.MulDiv255(invD).Add(b.D1.MulDiv255(invS)).Clamp(255)
	b.D2 = b.S2.MulDiv255(invD).Add(b.D2.MulDiv255(invS)).Clamp(255)
	b.DA = b.SA.MulDiv255(invD).Add(b.DA.MulDiv255(invS)).Clamp(255)
}

func batchPlus(b *wide.Block) {
	b.D0 = b.S0.Add(b.D0).Clamp(255)
	b.D1 = b.S1.Add(b.D1).Clamp(255)
	b.D2 = b.S2.Add(b.D2).Clamp(255)
	b.DA = b.SA.Add(b.DA).Clamp(255)
}
