package cplx

import "math"

// Abs returns the distance from the origin, converting to polar if needed.
// Callers that only compare against a bound should prefer SqAbs, which stays
// in Cartesian form and avoids the square root.
func (z *Complex) Abs() float64 {
	return z.Polar().Length
}

// SqAbs returns the squared distance from the origin, computed directly from
// the Cartesian form. This is the escape-test fast path.
func (z *Complex) SqAbs() float64 {
	c := z.Coordinate()
	return c.Real*c.Real + c.Imag*c.Imag
}

// Conjugate returns the complex conjugate.
func (z *Complex) Conjugate() *Complex {
	c := z.Coordinate()
	return FromCartesian(c.Real, -c.Imag)
}

// Add returns z + w, componentwise in Cartesian form.
func (z *Complex) Add(w *Complex) *Complex {
	c1 := z.Coordinate()
	c2 := w.Coordinate()
	return FromCartesian(c1.Real+c2.Real, c1.Imag+c2.Imag)
}

// Sub returns z - w, componentwise in Cartesian form.
func (z *Complex) Sub(w *Complex) *Complex {
	c1 := z.Coordinate()
	c2 := w.Coordinate()
	return FromCartesian(c1.Real-c2.Real, c1.Imag-c2.Imag)
}

// Mul returns z * w.
//
// When both operands already carry a polar form the lengths multiply and the
// angles add, skipping the Cartesian expansion entirely; Mul never forces a
// conversion just to take that path. The two branches agree within
// floating-point tolerance but are not bit-for-bit identical.
func (z *Complex) Mul(w *Complex) *Complex {
	if z.HasPolar() && w.HasPolar() {
		p1 := z.Polar()
		p2 := w.Polar()
		return FromPolar(p1.Length*p2.Length, math.Mod(p1.Angle+p2.Angle, twoPi))
	}

	// (a+bi)(c+di) = ac-bd + (ad+bc)i
	c1 := z.Coordinate()
	c2 := w.Coordinate()
	return FromCartesian(
		c1.Real*c2.Real-c1.Imag*c2.Imag,
		c1.Real*c2.Imag+c1.Imag*c2.Real,
	)
}

// Div returns z / w, always in polar form.
func (z *Complex) Div(w *Complex) *Complex {
	p1 := z.Polar()
	p2 := w.Polar()
	return FromPolar(p1.Length/p2.Length, math.Mod(p1.Angle-p2.Angle, twoPi))
}

// Pow returns z raised to the given real power, always in polar form.
func (z *Complex) Pow(power float64) *Complex {
	p := z.Polar()
	return FromPolar(math.Pow(p.Length, power), math.Mod(p.Angle*power, twoPi))
}

// Root returns the root-th root of z.
func (z *Complex) Root(root float64) *Complex {
	return z.Pow(1.0 / root)
}

// Inverse returns 1 / z.
func (z *Complex) Inverse() *Complex {
	return z.Pow(-1)
}

// InverseOfOrder returns z to the power -order.
func (z *Complex) InverseOfOrder(order float64) *Complex {
	return z.Pow(-order)
}

// Squared returns z² without leaving Cartesian form, avoiding the polar
// conversion the generic Pow would force. This is the hot-loop step.
func (z *Complex) Squared() *Complex {
	// (a+bi)² = a²-b² + 2abi
	c := z.Coordinate()
	return FromCartesian(c.Real*c.Real-c.Imag*c.Imag, 2.0*c.Real*c.Imag)
}
