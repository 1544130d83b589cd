package blend

// Func is a scalar 8-bit blend kernel. All values are premultiplied
// alpha in [0, 255]; s0..s2 and d0..d2 are the color channels, sa/da
// alpha. It returns the blended channels.
type Func func(s0, s1, s2, sa, d0, d1, d2, da uint8) (r0, r1, r2, ra uint8)

// Get returns the scalar kernel for the operator. Unknown operators
// fall back to SrcOver.
func Get(op Op) Func {
	switch op {
	case Clear:
		return scalarClear
	case Src:
		return scalarSrc
	case Dst:
		return scalarDst
	case SrcOver:
		return scalarSrcOver
	case DstOver:
		return scalarDstOver
	case SrcIn:
		return scalarSrcIn
	case DstIn:
		return scalarDstIn
	case SrcOut:
		return scalarSrcOut
	case DstOut:
		return scalarDstOut
	case SrcAtop:
		return scalarSrcAtop
	case DstAtop:
		return scalarDstAtop
	case Xor:
		return scalarXor
	case Plus:
		return scalarPlus
	}
	return scalarSrcOver
}

func scalarClear(_, _, _, _, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func scalarSrc(s0, s1, s2, sa, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return s0, s1, s2, sa
}

func scalarDst(_, _, _, _, d0, d1, d2, da uint8) (uint8, uint8, uint8, uint8) {
	return d0, d1, d2, da
}

// S + D*(1-Sa)
func scalarSrcOver(s0, s1, s2, sa, d0, d1, d2, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return clampAdd(s0, mulDiv255(d0, inv)),
		clampAdd(s1, mulDiv255(d1, inv)),
		clampAdd(s2, mulDiv255(d2, inv)),
		clampAdd(sa, mulDiv255(da, inv))
}

// S*(1-Da) + D
func scalarDstOver(s0, s1, s2, sa, d0, d1, d2, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return clampAdd(mulDiv255(s0, inv), d0),
		clampAdd(mulDiv255(s1, inv), d1),
		clampAdd(mulDiv255(s2, inv), d2),
		clampAdd(mulDiv255(sa, inv), da)
}

// S*Da
func scalarSrcIn(s0, s1, s2, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(s0, da), mulDiv255(s1, da), mulDiv255(s2, da), mulDiv255(sa, da)
}

// D*Sa
func scalarDstIn(_, _, _, sa, d0, d1, d2, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(d0, sa), mulDiv255(d1, sa), mulDiv255(d2, sa), mulDiv255(da, sa)
}

// S*(1-Da)
func scalarSrcOut(s0, s1, s2, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return mulDiv255(s0, inv), mulDiv255(s1, inv), mulDiv255(s2, inv), mulDiv255(sa, inv)
}

// D*(1-Sa)
func scalarDstOut(_, _, _, sa, d0, d1, d2, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return mulDiv255(d0, inv), mulDiv255(d1, inv), mulDiv255(d2, inv), mulDiv255(da, inv)
}

// S*Da + D*(1-Sa)
func scalarSrcAtop(s0, s1, s2, sa, d0, d1, d2, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return clampAdd(mulDiv255(s0, da), mulDiv255(d0, inv)),
		clampAdd(mulDiv255(s1, da), mulDiv255(d1, inv)),
		clampAdd(mulDiv255(s2, da), mulDiv255(d2, inv)),
		clampAdd(mulDiv255(sa, da), mulDiv255(da, inv))
}

// S*(1-Da) + D*Sa
func scalarDstAtop(s0, s1, s2, sa, d0, d1, d2, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return clampAdd(mulDiv255(s0, inv), mulDiv255(d0, sa)),
		clampAdd(mulDiv255(s1, inv), mulDiv255(d1, sa)),
		clampAdd(mulDiv255(s2, inv), mulDiv255(d2, sa)),
		clampAdd(mulDiv255(sa, inv), mulDiv255(da, sa))
}

// S*(1-Da) + D*(1-Sa)
func scalarXor(s0, s1, s2, sa, d0, d1, d2, da uint8) (uint8, uint8, uint8, uint8) {
	invD := 255 - da
	invS := 255 - sa
	return clampAdd(mulDiv255(s0, invD), mulDiv255(d0, invS)),
		clampAdd(mulDiv255(s1, invD), mulDiv255(d1, invS)),
		clampAdd(mulDiv255(s2, invD), mulDiv255(d2, invS)),
		clampAdd(mulDiv255(sa, invD), mulDiv255(da, invS))
}

// min(S + D, 255)
func scalarPlus(s0, s1, s2, sa, d0, d1, d2, da uint8) (uint8, uint8, uint8, uint8) {
	return clampAdd(s0, d0), clampAdd(s1, d1), clampAdd(s2, d2), clampAdd(sa, da)
}
