// Package escape counts how quickly orbits of z² + c leave the bounded disk.
package escape

import "github.com/willbeason/almond/pkg/cplx"

// Radius is the escape bound: once an orbit's magnitude exceeds it, the orbit
// diverges and never returns.
const Radius = 2.0

// Iterations returns the smallest i for which the orbit z₀ = 0,
// z_{k+1} = z_k² + c has left the disk of Radius, or max if the orbit stays
// bounded for the whole cap.
//
// The value tested at step i is z_i, so any c with |c| > Radius yields 1.
// Each step uses Squared and Add only; nothing here touches polar form.
func Iterations(c *cplx.Complex, max int) int {
	z := cplx.FromReal(0)

	i := 0
	for ; z.SqAbs() <= Radius*Radius && i < max; i++ {
		z = z.Squared().Add(c)
	}

	return i
}

// Bounded reports whether c survives the full iteration cap without escaping.
func Bounded(c *cplx.Complex, max int) bool {
	return Iterations(c, max) == max
}
