package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/workload"
)

func liveSlot() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Live)
}

func spareSlot() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Spare)
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent).MarginBottom(1)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(10)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Error)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Italic(true).MarginTop(1)
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#444466")).
	Padding(0, 1)

// RenderSlots draws every allocated slot of a, live ones with their value
// and spare ones as dots. Slots past maxSlots are summarised.
func RenderSlots(a *dynarray.Array[workload.Item], maxSlots int) string {
	var sb strings.Builder
	shown := a.Cap()
	if maxSlots > 0 && shown > maxSlots {
		shown = maxSlots
	}

	for i := 0; i < shown; i++ {
		if i < a.Len() {
			v, _ := a.Get(i)
			sb.WriteString(liveSlot().Render(fmt.Sprintf("%4d", int(v))))
		} else {
			sb.WriteString(spareSlot().Render("   ·"))
		}
	}
	if rest := a.Cap() - shown; rest > 0 {
		sb.WriteString(spareSlot().Render(fmt.Sprintf("  +%d", rest)))
	}
	return sb.String()
}

// FillBar renders size/capacity as a bar of the given width.
func FillBar(size, capacity, width int) string {
	filled := 0
	if capacity > 0 {
		filled = size * width / capacity
	}
	if filled > width {
		filled = width
	}
	return liveSlot().Render(strings.Repeat("█", filled)) + spareSlot().Render(strings.Repeat("░", width-filled))
}

// CapacityChart plots size and capacity across steps.
func CapacityChart(steps []workload.Step, width, height int) string {
	if len(steps) < 2 {
		return ""
	}
	sizes := make([]float64, len(steps))
	caps := make([]float64, len(steps))
	for i, s := range steps {
		sizes[i] = float64(s.Size)
		caps[i] = float64(s.Capacity)
	}
	return asciigraph.PlotMany([][]float64{caps, sizes},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("capacity (upper) / size"),
	)
}
