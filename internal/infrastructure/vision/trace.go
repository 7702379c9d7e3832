package vision

import (
	"image"

	"fingermachine/pkg/geometry"
)

// mooreNeighbours соседи по часовой стрелке на экране, начиная с западного.
var mooreNeighbours = [8]image.Point{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

const west = 0

type binaryMask struct {
	w, h int
	fg   []bool
}

func (m *binaryMask) at(p image.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= m.w || p.Y >= m.h {
		return false
	}
	return m.fg[p.Y*m.w+p.X]
}

// fill размечает 8-связную область и возвращает число её пикселей.
func (m *binaryMask) fill(labels []int32, x, y int, label int32) int {
	stack := []image.Point{{x, y}}
	labels[y*m.w+x] = label
	size := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, d := range mooreNeighbours {
			q := p.Add(d)
			if !m.at(q) {
				continue
			}
			if i := q.Y*m.w + q.X; labels[i] == 0 {
				labels[i] = label
				stack = append(stack, q)
			}
		}
	}
	return size
}

// trace обходит границу области от её первого по построчному обходу пикселя.
// Обход заканчивается, когда из стартового пикселя снова делается первый шаг.
func (m *binaryMask) trace(start image.Point, size int) geometry.Contour {
	contour := geometry.Contour{toPoint(start)}

	p, back := start, west
	var second image.Point
	started := false
	for steps := 0; steps < 4*size+8; steps++ {
		next, nextBack, ok := m.step(p, back)
		if !ok {
			break
		}
		if started && p == start && next == second {
			break
		}
		if !started {
			second, started = next, true
		}
		contour = append(contour, toPoint(next))
		p, back = next, nextBack
	}

	if n := len(contour); n > 1 && contour[n-1] == contour[0] {
		contour = contour[:n-1]
	}
	return contour
}

// step ищет следующий пиксель границы по часовой стрелке от точки возврата.
// Возвращает его и направление на новую точку возврата относительно него.
func (m *binaryMask) step(p image.Point, back int) (image.Point, int, bool) {
	for i := 1; i <= 8; i++ {
		d := (back + i) % 8
		q := p.Add(mooreNeighbours[d])
		if !m.at(q) {
			continue
		}
		prev := p.Add(mooreNeighbours[(d+7)%8])
		return q, neighbourIndex(prev.Sub(q)), true
	}
	return p, back, false
}

func neighbourIndex(d image.Point) int {
	for i, n := range mooreNeighbours {
		if n == d {
			return i
		}
	}
	return west
}

// compressRuns оставляет только концы горизонтальных, вертикальных и
// диагональных отрезков, как ChainApproxSimple в OpenCV.
func compressRuns(c geometry.Contour) geometry.Contour {
	n := len(c)
	if n < 3 {
		return c
	}

	out := make(geometry.Contour, 0, n)
	for i := range c {
		prev, cur, next := c[(i+n-1)%n], c[i], c[(i+1)%n]
		in := geometry.Point{X: cur.X - prev.X, Y: cur.Y - prev.Y}
		outDir := geometry.Point{X: next.X - cur.X, Y: next.Y - cur.Y}
		if in != outDir {
			out = append(out, cur)
		}
	}
	return out
}

func toPoint(p image.Point) geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}
