//go:build example
// +build example

package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"

	ocl "github.com/sliptonic/opencamlib"
)

const (
	screenWidth  = 480
	screenHeight = 480
)

var (
	surf     *ocl.CutterLocationSurface
	segments [][2]ocl.Point
	summary  string
)

// toScreen maps surface xy coordinates to screen pixels.
func toScreen(p ocl.Point) (float64, float64) {
	margin := 1.1 * surf.Far()
	sx := screenWidth / (2 * margin)
	sy := screenHeight / (2 * margin)
	return (p.X + margin) * sx, (margin - p.Y) * sy
}

func update(screen *ebiten.Image) error {
	if ebiten.IsDrawingSkipped() {
		return nil
	}
	for _, seg := range segments {
		x1, y1 := toScreen(seg[0])
		x2, y2 := toScreen(seg[1])
		// Shade by sampled height: higher edges are brighter.
		t := (seg[0].Z + seg[1].Z) / (2 * surf.Far())
		v := uint8(96 + 128*t)
		ebitenutil.DrawLine(screen, x1, y1, x2, y2, color.RGBA{R: v, G: v, B: 255, A: 255})
	}
	ebitenutil.DebugPrint(screen, summary)
	return nil
}

func main() {
	surf = ocl.NewCutterLocationSurface(
		ocl.WithFar(1.0),
		ocl.WithMinSampling(0.1),
	)
	surf.Refine()
	if _, err := surf.SampleHeights(ocl.SphereSampler{Radius: 0.8}); err != nil {
		log.Fatal(err)
	}
	segments = surf.Edges()
	summary = surf.String()

	if err := ebiten.Run(update, screenWidth, screenHeight, 1, "cutter location surface"); err != nil {
		log.Fatal(err)
	}
}
