// Package wide provides SIMD-friendly wide types for batched pixel
// compositing.
//
// U16x16 holds 16 uint16 lanes in a fixed-size array so the compiler
// can auto-vectorize the element-wise loops (SSE, AVX, NEON). Block
// holds 16 source and 16 destination pixels in Structure-of-Arrays
// layout, one U16x16 per channel, which lets an operator work on a
// whole channel at once.
//
// All arithmetic uses the same div-by-255 rounding as the scalar
// compositing kernels, so batched and scalar results are
// bit-identical for every input.
package wide
