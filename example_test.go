package ocl_test

import (
	"fmt"

	ocl "github.com/sliptonic/opencamlib"
)

func Example() {
	surf := ocl.NewCutterLocationSurface(ocl.WithFar(1.0))
	fmt.Println(surf)

	surf.Subdivide()
	fmt.Println(surf)

	// Output:
	// 4 vertices, 8 edges
	// 9 vertices, 24 edges
}

func ExampleCutterLocationSurface_Refine() {
	surf := ocl.NewCutterLocationSurface(
		ocl.WithFar(1.0),
		ocl.WithMinSampling(0.6),
	)
	n := surf.Refine()
	fmt.Printf("%d subdivisions\n", n)
	fmt.Println(surf)

	// Output:
	// 5 subdivisions
	// 25 vertices, 80 edges
}

func ExampleCutterLocationSurface_SampleHeights() {
	surf := ocl.NewCutterLocationSurface(
		ocl.WithFar(1.0),
		ocl.WithMinSampling(0.6),
	)
	surf.Refine()

	misses, err := surf.SampleHeights(ocl.SphereSampler{Radius: 0.8})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d vertices outside the footprint\n", misses)

	// Output:
	// 16 vertices outside the footprint
}
