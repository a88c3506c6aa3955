package contour

import (
	"image"

	"turtlecode/heading"
)

// preference is the turn order tried at each step of a walk, relative to
// the current heading.
var preference = [4]int{0, 90, -90, 180}

// walk orders boundary cells into strokes in which every consecutive pair is
// 4-adjacent. Strokes start at the first unwalked cell in discovery order.
func walk(boundary []image.Point) [][]image.Point {
	var r image.Rectangle
	for _, p := range boundary {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	member := newMask(r)
	for _, p := range boundary {
		member.set(p)
	}
	walked := newMask(r)
	var strokes [][]image.Point
	for _, start := range boundary {
		if walked.has(start) {
			continue
		}
		strokes = append(strokes, walkFrom(start, member, walked))
	}
	return strokes
}

// walkFrom runs a depth-first walk from start over member cells. At a dead
// end it backtracks and records the cells it passes back over, so the pen
// never jumps. The backtrack after the last new cell is dropped.
func walkFrom(start image.Point, member, walked *mask) []image.Point {
	walked.set(start)
	path := []image.Point{start}
	stack := []image.Point{start}
	h := heading.East
	end := len(path)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		if next, nh, ok := nextStep(cur, h, member, walked); ok {
			walked.set(next)
			stack = append(stack, next)
			path = append(path, next)
			end = len(path)
			h = nh
			continue
		}
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			prev := stack[len(stack)-1]
			path = append(path, prev)
			h, _ = heading.FromVector(prev.Sub(cur))
		}
	}
	path = path[:end]
	if len(path) > 2 && adjacent(path[len(path)-1], start) {
		path = append(path, start)
	}
	return path
}

func nextStep(cur image.Point, h heading.Heading, member, walked *mask) (image.Point, heading.Heading, bool) {
	for _, turn := range preference {
		nh := h.Rotate(turn)
		n := cur.Add(nh.Vector())
		if member.has(n) && !walked.has(n) {
			return n, nh, true
		}
	}
	return image.Point{}, h, false
}

func adjacent(a, b image.Point) bool {
	_, ok := heading.FromVector(b.Sub(a))
	return ok
}
