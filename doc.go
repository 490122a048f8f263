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

// Package ocl builds cutter location surfaces for CAM toolpath
// generation.
//
// A cutter location surface is a planar quadrilateral mesh, stored as
// a half-edge diagram, that is adaptively subdivided until the edge
// length reaches a configured minimum sampling distance. Its vertices
// are then projected onto a 3D model with a drop-cutter height
// sampler, yielding the cutter contact heights used for toolpath
// planning.
//
// Basic usage:
//
//	surf := ocl.NewCutterLocationSurface(ocl.WithFar(10))
//	surf.SetMinSampling(0.5)
//	surf.Refine()
//	misses, err := surf.SampleHeights(ocl.SphereSampler{Radius: 5})
//
// The refined mesh is exported with Vertices and Edges, or rendered
// with WritePNG.
package ocl
