// Package lightsout is a GF(2) linear-algebra engine for the Lights Out
// puzzle: invert the chase operator, read off quiet patterns, and predict
// which board shapes solve themselves.
//
// 🚀 What is inside?
//
//	A board of r rows and c columns is chased row by row until only the last
//	row can be lit. That last row is a linear function of the top-row
//	presses, P_{r+1}(A)·x, where A is the c×c line operator and P_k the
//	sequence P₀ = 0, P₁ = 1, P_{k+1} = x·P_k + P_{k-1} over GF(2). Everything
//	here builds on that one fact:
//		• gf2/: bit-row matrices, products, powers and inversion
//		• operator/: the line operator, kernel, image and min-weight solves
//		• poly/: GF(2) polynomials, minimal polynomial, factorisation
//		• period/: periodicity of the heights whose operator is I
//		• inversion/: a concurrent cache of per-shape inverses
//		• board/: presses, chasing, solving and chase animation frames
//		• analysis/: solvability, periodicity and God's number reports
//		• worker/: one-request one-response job dispatch
//		• server/: HTTP, websocket and metrics host for worker
//
// ✨ Why GF(2)?
//
//   - Pressing twice is a no-op, so press sets are bit vectors and XOR is
//     the only addition needed.
//   - Rows pack into big.Int (any width) or uint256 words (up to 256), so a
//     matrix product is a handful of XORs per row.
//
// Quick ASCII example, the 3×3 combined operator and its inverse:
//
//	    0 1 1        1 1 0
//	    1 1 1   ⁻¹   1 1 1
//	    1 1 0   =    0 1 1
//
//	go install github.com/katalvlaran/lightsout/cmd/lightsout@latest
package lightsout
