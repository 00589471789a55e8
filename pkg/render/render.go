// Package render evaluates a square window of the complex plane into an
// iteration-count grid and colors it.
package render

import (
	"runtime"
	"sync"

	"github.com/willbeason/almond/pkg/cplx"
	"github.com/willbeason/almond/pkg/escape"
)

// A View is a square window of the complex plane rendered onto a Size×Size
// pixel grid.
type View struct {
	// CenterX and CenterY locate the middle of the window on the plane.
	CenterX float64
	CenterY float64

	// Radius is half the window's side length, in plane units.
	Radius float64

	// Size is the pixel width and height of the output.
	Size int

	// MaxIterations caps the escape-time loop; points surviving the cap are
	// treated as inside the set.
	MaxIterations int
}

// Delta is the plane distance between adjacent pixels.
func (v View) Delta() float64 {
	return 2.0 * v.Radius / float64(v.Size)
}

// At maps pixel (x, y) to its complex coordinate. Pixel (0, 0) is the
// bottom-left corner of the window at (CenterX-Radius, CenterY-Radius).
func (v View) At(x, y int) *cplx.Complex {
	delta := v.Delta()
	return cplx.FromCartesian(
		float64(x)*delta+v.CenterX-v.Radius,
		float64(y)*delta+v.CenterY-v.Radius,
	)
}

// Plot evaluates every pixel of the view and returns the Size×Size grid of
// iteration counts, indexed x + y*Size.
//
// Rows are distributed over a worker pool; every pixel depends only on its own
// coordinate and owns its slot in the grid, so the workers share nothing.
// workers <= 0 means one per CPU.
func Plot(v View, workers int) []int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	counts := make([]int, v.Size*v.Size)

	rows := make(chan int)
	go func() {
		for y := 0; y < v.Size; y++ {
			rows <- y
		}
		close(rows)
	}()

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			for y := range rows {
				for x := 0; x < v.Size; x++ {
					counts[x+y*v.Size] = escape.Iterations(v.At(x, y), v.MaxIterations)
				}
			}
			wg.Done()
		}()
	}
	wg.Wait()

	return counts
}
