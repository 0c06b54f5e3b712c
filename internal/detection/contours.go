package detection

import (
	"image"

	"github.com/ironsheep/shape-color-id/internal/geometry"
	"github.com/ironsheep/shape-color-id/internal/imaging"
)

// Preprocessing constants for contour extraction.
const (
	// ThresholdLevel is the gray level a pixel must exceed to be set in the
	// binary image.
	ThresholdLevel uint8 = 70

	// BlurRadius is the Gaussian blur radius applied before thresholding.
	// Radius 2 corresponds to a 5x5 kernel.
	BlurRadius = 2.0
)

// ContourFinder extracts the external contours of the shapes in an image.
// It is the pure-Go contour source; it holds no state and is safe for
// concurrent use.
type ContourFinder struct{}

// NewContourFinder creates a contour finder.
func NewContourFinder() *ContourFinder {
	return &ContourFinder{}
}

// Contours returns the external contours of img in raster order of each
// contour's top-left-most pixel.
//
// # Algorithm
//
//  1. Binarize: grayscale, Gaussian blur (BlurRadius), threshold
//     (ThresholdLevel)
//  2. Polarity: if more than half of the border pixels are set, the shapes
//     are dark on a light background and the binary image is inverted
//  3. Components: 8-connected foreground regions are grouped by flood fill
//  4. External filter: regions enclosed in a hole of another region are
//     skipped; only regions touching the outside background are kept
//  5. Tracing: the outer boundary of each region is followed with
//     Moore-neighbour tracing
//  6. Compression: points in the middle of horizontal, vertical or diagonal
//     runs are dropped, leaving the run endpoints
//
// Contour points are in img's coordinate space. An image with no shapes
// yields no contours and no error.
func (f *ContourFinder) Contours(img image.Image) ([]geometry.Contour, error) {
	bin := imaging.Binarize(img, ThresholdLevel, BlurRadius)
	m := newBinaryMask(bin)
	if m.borderMostlySet() {
		m.invert()
	}
	return m.externalContours(img.Bounds().Min), nil
}

// binaryMask is a row-major foreground map with zero-origin coordinates.
type binaryMask struct {
	width, height int
	pix           []bool
}

func newBinaryMask(gray *image.Gray) *binaryMask {
	b := gray.Bounds()
	m := &binaryMask{width: b.Dx(), height: b.Dy(), pix: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.pix[y*m.width+x] = gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y >= 128
		}
	}
	return m
}

// at reports whether (x, y) is foreground. Everything outside the mask is
// background.
func (m *binaryMask) at(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.pix[y*m.width+x]
}

func (m *binaryMask) invert() {
	for i := range m.pix {
		m.pix[i] = !m.pix[i]
	}
}

func (m *binaryMask) borderMostlySet() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	set, total := 0, 0
	count := func(x, y int) {
		total++
		if m.at(x, y) {
			set++
		}
	}
	for x := 0; x < m.width; x++ {
		count(x, 0)
		if m.height > 1 {
			count(x, m.height-1)
		}
	}
	for y := 1; y < m.height-1; y++ {
		count(0, y)
		if m.width > 1 {
			count(m.width-1, y)
		}
	}
	return set*2 > total
}

// outsideBackground marks the background pixels 4-connected to the area
// beyond the image edge.
func (m *binaryMask) outsideBackground() []bool {
	outside := make([]bool, len(m.pix))
	stack := make([]geometry.Point, 0, 2*(m.width+m.height))

	push := func(x, y int) {
		if x < 0 || y < 0 || x >= m.width || y >= m.height {
			return
		}
		i := y*m.width + x
		if m.pix[i] || outside[i] {
			return
		}
		outside[i] = true
		stack = append(stack, geometry.Point{X: x, Y: y})
	}

	for x := 0; x < m.width; x++ {
		push(x, 0)
		push(x, m.height-1)
	}
	for y := 0; y < m.height; y++ {
		push(0, y)
		push(m.width-1, y)
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		push(p.X+1, p.Y)
		push(p.X-1, p.Y)
		push(p.X, p.Y+1)
		push(p.X, p.Y-1)
	}
	return outside
}

// externalContours labels 8-connected components and traces the outer
// boundary of every component that touches the outside background.
func (m *binaryMask) externalContours(origin image.Point) []geometry.Contour {
	outside := m.outsideBackground()
	visited := make([]bool, len(m.pix))
	contours := make([]geometry.Contour, 0)

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.width + x
			if !m.pix[i] || visited[i] {
				continue
			}

			size, external := m.floodFill(visited, outside, x, y)
			if !external {
				continue
			}

			contour := compressRuns(m.traceBoundary(geometry.Point{X: x, Y: y}, size))
			for j := range contour {
				contour[j].X += origin.X
				contour[j].Y += origin.Y
			}
			contours = append(contours, contour)
		}
	}
	return contours
}

// floodFill marks the 8-connected component containing (startX, startY) as
// visited. It returns the component's pixel count and whether any of its
// pixels borders the outside background or the image edge.
func (m *binaryMask) floodFill(visited, outside []bool, startX, startY int) (int, bool) {
	stack := []geometry.Point{{X: startX, Y: startY}}
	visited[startY*m.width+startX] = true
	size := 0
	external := false

	isOutside := func(x, y int) bool {
		if x < 0 || y < 0 || x >= m.width || y >= m.height {
			return true
		}
		return outside[y*m.width+x]
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++

		if !external && (isOutside(p.X+1, p.Y) || isOutside(p.X-1, p.Y) ||
			isOutside(p.X, p.Y+1) || isOutside(p.X, p.Y-1)) {
			external = true
		}

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if !m.at(nx, ny) {
					continue
				}
				j := ny*m.width + nx
				if visited[j] {
					continue
				}
				visited[j] = true
				stack = append(stack, geometry.Point{X: nx, Y: ny})
			}
		}
	}
	return size, external
}

// neighbors lists the 8 neighbor offsets clockwise (on screen, Y down)
// starting from east.
var neighbors = [8]geometry.Point{
	{X: 1, Y: 0},   // E
	{X: 1, Y: 1},   // SE
	{X: 0, Y: 1},   // S
	{X: -1, Y: 1},  // SW
	{X: -1, Y: 0},  // W
	{X: -1, Y: -1}, // NW
	{X: 0, Y: -1},  // N
	{X: 1, Y: -1},  // NE
}

const west = 4

func neighborIndex(dx, dy int) int {
	for i, n := range neighbors {
		if n.X == dx && n.Y == dy {
			return i
		}
	}
	return -1
}

// nextBoundaryPixel searches the neighbors of p clockwise, starting just
// after the background neighbor in direction back. It returns the first
// foreground neighbor and the direction, seen from that neighbor, of the
// last background pixel passed over.
func (m *binaryMask) nextBoundaryPixel(p geometry.Point, back int) (geometry.Point, int, bool) {
	for i := 1; i <= 8; i++ {
		d := (back + i) % 8
		q := geometry.Point{X: p.X + neighbors[d].X, Y: p.Y + neighbors[d].Y}
		if !m.at(q.X, q.Y) {
			continue
		}
		prev := neighbors[(d+7)%8]
		b := geometry.Point{X: p.X + prev.X, Y: p.Y + prev.Y}
		return q, neighborIndex(b.X-q.X, b.Y-q.Y), true
	}
	return geometry.Point{}, 0, false
}

// traceBoundary follows the outer boundary of the component whose top-left
// most pixel is start. Tracing stops when the walk is about to repeat its
// first step from start.
func (m *binaryMask) traceBoundary(start geometry.Point, componentSize int) geometry.Contour {
	contour := geometry.Contour{start}

	// Nothing lies west of, or above, the top-left-most pixel.
	second, back, ok := m.nextBoundaryPixel(start, west)
	if !ok {
		return contour
	}

	limit := 4*componentSize + 8
	p, q := start, second
	for steps := 0; steps < limit; steps++ {
		contour = append(contour, q)
		p = q
		var next geometry.Point
		next, back, _ = m.nextBoundaryPixel(p, back)
		if p == start && next == second {
			break
		}
		q = next
	}

	if len(contour) > 1 && contour[len(contour)-1] == start {
		contour = contour[:len(contour)-1]
	}
	return contour
}

// compressRuns keeps only the points where the direction of the closed
// contour changes.
func compressRuns(c geometry.Contour) geometry.Contour {
	n := len(c)
	if n <= 2 {
		return c
	}
	out := make(geometry.Contour, 0, n)
	for i := range c {
		prev := c[(i-1+n)%n]
		next := c[(i+1)%n]
		if c[i].X-prev.X != next.X-c[i].X || c[i].Y-prev.Y != next.Y-c[i].Y {
			out = append(out, c[i])
		}
	}
	if len(out) == 0 {
		return c[:1]
	}
	return out
}
