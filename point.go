// Copyright 2010-2011 Anders Wallin (anders.e.e.wallin "at" gmail.com)
//
// This file is part of OpenCAMlib
// (see https://github.com/aewallin/opencamlib).
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 2.1 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package ocl

import (
	"fmt"
	"math"
)

// Point is a position or displacement in 3D space.
type Point struct {
	X, Y, Z float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product of two vectors.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length when you only need to compare magnitudes.
func (p Point) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// XYDistance returns the distance between two points projected onto
// the xy-plane. Subdivision gating uses this so that height sampling,
// which only displaces z, does not affect refinement decisions.
func (p Point) XYDistance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Mid returns the midpoint of two points.
func (p Point) Mid(q Point) Point {
	return p.Add(q).Mul(0.5)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Mul(t))
}

// Approx reports whether two points are equal within tolerance eps.
func (p Point) Approx(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps &&
		math.Abs(p.Y-q.Y) <= eps &&
		math.Abs(p.Z-q.Z) <= eps
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
