package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/dynarray/internal/workload"
)

const (
	capacityColor = "#ff00ff"
	sizeColor     = "#00ffff"
)

// StepsToSVG draws capacity and size per step as two polylines.
func StepsToSVG(steps []workload.Step, width, height int) string {
	if len(steps) < 2 {
		return ""
	}

	maxY := 1
	for _, s := range steps {
		if s.Capacity > maxY {
			maxY = s.Capacity
		}
	}
	maxY += maxY / 10

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	series := []struct {
		color string
		value func(workload.Step) int
	}{
		{capacityColor, func(s workload.Step) int { return s.Capacity }},
		{sizeColor, func(s workload.Step) int { return s.Size }},
	}

	last := float64(len(steps) - 1)
	for _, ser := range series {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, ser.color))
		for i, s := range steps {
			x := float64(i) / last * float64(width)
			y := float64(height) - float64(ser.value(s))/float64(maxY)*float64(height)
			if i > 0 {
				sb.WriteString(" L")
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		}
		sb.WriteString("\"/>\n")
	}

	for i, s := range steps {
		if !s.Grew {
			continue
		}
		x := float64(i) / last * float64(width)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#444466" stroke-dasharray="2,2"/>
`, x, x, height))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
