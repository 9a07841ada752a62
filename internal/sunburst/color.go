package sunburst

import (
	"fmt"
	"math"
)

// Fixed colors for the cases the gradient never produces.
const (
	colorExcluded = "#6c757d"
	colorRoot     = "#495057"
	colorPerfect  = "#28a745"
)

// ColorFor maps a node to its display color. Excluded subtrees are flat
// gray, the root keeps a fixed dark shade, everything else runs through the
// percentage gradient. Checked in that order.
func ColorFor(n *Node) string {
	p, ok := Percentage(n)
	if !ok {
		return colorExcluded
	}
	if n.Type == TypeRoot {
		return colorRoot
	}
	return gradientColor(p)
}

// LabelFor renders the node name with its percentage when one applies, with
// the raw status when the node is excluded from scoring, bare otherwise.
func LabelFor(n *Node) string {
	p, ok := Percentage(n)
	if ok {
		return fmt.Sprintf("%s (%.1f%%)", n.Name, p)
	}
	if n.Status != "" {
		return fmt.Sprintf("%s (%s)", n.Name, n.Status)
	}
	return n.Name
}

// gradientColor picks the HSL band for p and renders it as rgb(r, g, b).
// Bands are inclusive at the low end, so exactly 50 lands in the 50-70 band.
func gradientColor(p float64) string {
	var h, s, l float64
	switch {
	case p >= 95:
		return colorPerfect
	case p >= 85:
		f := (p - 85) / 10
		h, s, l = 120, 60+20*f, 45+10*f
	case p >= 70:
		f := (p - 70) / 15
		h, s, l = 90+30*f, 70, 50
	case p >= 50:
		f := (p - 50) / 20
		h, s, l = 60+30*f, 75, 50
	case p >= 30:
		f := (p - 30) / 20
		h, s, l = 30+30*f, 80, 50
	default:
		f := p / 30
		h, s, l = 30*f, 75+10*f, 45+10*f
	}

	r, g, b := hslToRGB(h, s, l)
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// hslToRGB converts hue in [0,360) and saturation/lightness in [0,100] to
// 8-bit channels using the six 60-degree hue sectors.
func hslToRGB(h, s, l float64) (int, int, int) {
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return channel(r + m), channel(g + m), channel(b + m)
}

// channel rounds one color channel to the nearest integer in [0,255].
func channel(v float64) int {
	return int(math.Round(v * 255))
}
