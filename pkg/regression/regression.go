// Package regression estimates the size of a fish population from
// removal sampling. Each capture pass depletes the population, so the
// count of a pass plotted against the running total of captured fish
// lies on a decreasing line whose x-intercept is the total population.
//
// The line is fitted by batch gradient descent on data normalized to
// the unit square. All arithmetic is carried out in single precision,
// intermediate products are rounded explicitly so that results do not
// depend on fused multiply-add support of the target architecture.
package regression

import (
	"errors"
	"fmt"
	"math"
)

const (
	iterations   = 10_000
	learningRate = float32(0.001)
	epsilon      = float32(1e-6)
)

// ErrSameValues is returned by Fit when all points share the same y
// value and no line can be fitted.
var ErrSameValues = errors.New("all points have the same number of captures")

// NegativeEstimateError reports an x-intercept below zero.
type NegativeEstimateError struct {
	Quantity int32
}

func (e *NegativeEstimateError) Error() string {
	return fmt.Sprintf("negative estimated quantity %d", e.Quantity)
}

// Point is one capture pass. X is the number of fish captured up to and
// including the pass, Y is the number captured during the pass.
type Point struct {
	X int32
	Y int32
}

type normPoint struct {
	x float32
	y float32
}

type bounds struct {
	minX, maxX float32
	minY, maxY float32
}

// Fit returns slope and intercept of the line that best fits points in
// the least squares sense.
func Fit(points []Point) (float32, float32, error) {
	if len(points) == 0 {
		return 0, 0, ErrSameValues
	}
	bnd := findBounds(points)
	if abs(bnd.maxY-bnd.minY) < epsilon {
		return 0, 0, ErrSameValues
	}

	norm := normalize(points, bnd)
	m, b := float32(-1.0), float32(1.0)
	for range iterations {
		m, b = descend(m, b, norm)
	}

	m, b = denormalize(m, b, bnd)
	return m, b, nil
}

// Estimate returns the estimated total population for the given capture
// passes. When no decreasing line can be fitted, the sum of captures is
// returned.
func Estimate(points []Point) (uint32, error) {
	m, b, err := Fit(points)
	if errors.Is(err, ErrSameValues) {
		return sumY(points), nil
	}
	if err != nil {
		return 0, err
	}

	if abs(m) < epsilon || m > 0 {
		return sumY(points), nil
	}

	q := int32(-(b / m))
	if q < 0 {
		return 0, &NegativeEstimateError{Quantity: q}
	}
	return uint32(q), nil
}

// QuantityByPass estimates the population of a species from the number
// of individuals captured at each pass. Passes are numbered from 1 and
// do not need to be contiguous, missing passes count as zero captures.
func QuantityByPass(passes map[uint8]uint32) (uint32, error) {
	switch len(passes) {
	case 0:
		return 0, nil
	case 1:
		for _, v := range passes {
			return v, nil
		}
	}

	c1, ok1 := passes[1]
	c2, ok2 := passes[2]
	if len(passes) == 2 && ok1 && ok2 {
		return TwoPasses(c1, c2), nil
	}

	var last uint8
	for k := range passes {
		if k == 0 {
			return 0, errors.New("capture pass number must start from 1")
		}
		last = max(last, k)
	}

	counts := make([]uint32, last)
	for k, v := range passes {
		counts[k-1] = v
	}

	points := make([]Point, 0, len(counts))
	var total uint32
	for _, v := range counts {
		total += v
		points = append(points, Point{X: int32(total), Y: int32(v)})
	}
	return Estimate(points)
}

// TwoPasses is the closed form removal estimate for exactly two
// passes. Equal counts, or a zero count, return the sum of captures, as
// does a non-positive estimate.
func TwoPasses(c1, c2 uint32) uint32 {
	if c1 == c2 || c1 == 0 || c2 == 0 {
		return c1 + c2
	}
	c := c1 + c2
	ratio := float32(c2) / float32(c1)
	est := float32(c) / (1 - float32(ratio*ratio))
	res := int32(math.Round(float64(est)))
	if res <= 0 {
		return c
	}
	return uint32(res)
}

func descend(m, b float32, points []normPoint) (float32, float32) {
	var mGrad, bGrad float32
	coef := -(2 / float32(len(points)))
	for _, p := range points {
		residual := p.y - (float32(m*p.x) + b)
		mGrad += float32(float32(coef*p.x) * residual)
		bGrad += float32(coef * residual)
	}
	return m - float32(mGrad*learningRate), b - float32(bGrad*learningRate)
}

func findBounds(points []Point) bounds {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return bounds{
		minX: float32(minX),
		maxX: float32(maxX),
		minY: float32(minY),
		maxY: float32(maxY),
	}
}

func normalize(points []Point, bnd bounds) []normPoint {
	res := make([]normPoint, len(points))
	for i, p := range points {
		res[i] = normPoint{
			x: (float32(p.X) - bnd.minX) / (bnd.maxX - bnd.minX),
			y: (float32(p.Y) - bnd.minY) / (bnd.maxY - bnd.minY),
		}
	}
	return res
}

// denormalize maps a line from the unit square back to the original
// coordinates.
func denormalize(mNorm, bNorm float32, bnd bounds) (float32, float32) {
	dy := bnd.maxY - bnd.minY
	m := float32(mNorm*dy) / (bnd.maxX - bnd.minX)
	b := float32(bNorm*dy) + bnd.minY - float32(m*bnd.minX)
	return m, b
}

func sumY(points []Point) uint32 {
	var res int32
	for _, p := range points {
		res += p.Y
	}
	return uint32(res)
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
