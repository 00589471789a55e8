// Package cplx implements complex numbers that carry their Cartesian and
// polar representations side by side, converting between them lazily so each
// operation can use whichever form is cheaper.
package cplx

import (
	"fmt"
	"log"
	"math"
)

const twoPi = 2.0 * math.Pi

// A Cartesian is the real/imaginary representation of a complex number.
type Cartesian struct {
	Real float64
	Imag float64
}

func (c Cartesian) String() string {
	return fmt.Sprintf("(%.2f%+.2fi)", c.Real, c.Imag)
}

// A Polar is the length/angle representation of a complex number.
//
// Angle is measured in radians and is not normalized; chained operations may
// leave intermediate angles outside [0, 2π).
type Polar struct {
	Length float64
	Angle  float64
}

func (p Polar) String() string {
	return fmt.Sprintf("(%.2f*E(%.2f°))", p.Length, p.Angle*180.0/math.Pi)
}

func (c Cartesian) toPolar() Polar {
	return Polar{
		Length: math.Sqrt(c.Real*c.Real + c.Imag*c.Imag),
		Angle:  math.Atan2(c.Imag, c.Real),
	}
}

func (p Polar) toCartesian() Cartesian {
	return Cartesian{
		Real: p.Length * math.Cos(p.Angle),
		Imag: p.Length * math.Sin(p.Angle),
	}
}

// A Complex is an immutable complex number holding at least one of its two
// representations. The missing form is computed on first demand and cached;
// once filled, a form is never recomputed.
//
// Operations pick whichever form is cheapest for them, so the same
// mathematical value may be reached through different arithmetic depending on
// which forms the operands happen to carry.
type Complex struct {
	cartesian *Cartesian
	polar     *Polar
}

// FromCartesian returns the complex number real + imag*i.
func FromCartesian(real, imag float64) *Complex {
	return &Complex{cartesian: &Cartesian{Real: real, Imag: imag}}
}

// FromPolar returns the complex number with the given length and angle.
//
// Angles larger than 2π in magnitude are stored as given but logged, since
// they usually indicate a missing reduction somewhere upstream.
func FromPolar(length, angle float64) *Complex {
	if math.Abs(angle) > twoPi {
		log.Printf("WARNING: polar angle %v outside [-2π, 2π]", angle)
	}
	return &Complex{polar: &Polar{Length: length, Angle: angle}}
}

// FromReal returns the complex number r + 0i, with both forms precomputed.
// Negative reals get the polar angle -π.
func FromReal(r float64) *Complex {
	angle := 0.0
	if r <= 0 {
		angle = -math.Pi
	}
	return &Complex{
		cartesian: &Cartesian{Real: r, Imag: 0},
		polar:     &Polar{Length: math.Abs(r), Angle: angle},
	}
}

// HasCoordinate reports whether the Cartesian form is already cached.
func (z *Complex) HasCoordinate() bool {
	return z.cartesian != nil
}

// HasPolar reports whether the polar form is already cached.
func (z *Complex) HasPolar() bool {
	return z.polar != nil
}

// Coordinate returns the Cartesian form, converting from polar on first use.
func (z *Complex) Coordinate() Cartesian {
	if z.cartesian == nil {
		c := z.polar.toCartesian()
		z.cartesian = &c
	}
	return *z.cartesian
}

// Polar returns the polar form, converting from Cartesian on first use.
func (z *Complex) Polar() Polar {
	if z.polar == nil {
		p := z.cartesian.toPolar()
		z.polar = &p
	}
	return *z.polar
}

func (z *Complex) String() string {
	if z.HasCoordinate() {
		return z.cartesian.String()
	}
	return z.polar.String()
}
