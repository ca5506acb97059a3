package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline characters from low to high
var sparklineChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// renderSparkline draws values as a sparkline of exactly width characters.
// Short series are left padded with the lowest bar, long ones keep the
// newest values.
func renderSparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("▁", width)
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	rangeVal := max - min
	if rangeVal == 0 {
		rangeVal = 1
	}

	var result strings.Builder
	result.WriteString(strings.Repeat("▁", width-len(values)))
	for _, v := range values {
		index := int((v - min) / rangeVal * float64(len(sparklineChars)-1))
		if index < 0 {
			index = 0
		}
		if index >= len(sparklineChars) {
			index = len(sparklineChars) - 1
		}

		result.WriteRune(sparklineChars[index])
	}

	return result.String()
}

// renderTrend renders a sparkline coloured by the direction of the series
func renderTrend(values []float64, width int) string {
	sparkline := renderSparkline(values, width)
	if len(values) < 2 {
		return sparkline
	}

	return lipgloss.NewStyle().
		Foreground(getTrendColor(values[0], values[len(values)-1])).
		Render(sparkline)
}

// getTrendColor returns green for a growing population and red for a
// shrinking one
func getTrendColor(first, last float64) lipgloss.Color {
	switch {
	case last > first:
		return lipgloss.Color("#00FF00")
	case last < first:
		return lipgloss.Color("#FF0000")
	default:
		return lipgloss.Color("#808080")
	}
}

// renderProgressBar creates a progress bar with color coding
// value: percentage (0-100)
// width: total width of the bar
func renderProgressBar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	filledWidth := int(math.Round(value / 100.0 * float64(width)))
	emptyWidth := width - filledWidth

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", emptyWidth)

	return lipgloss.NewStyle().
		Foreground(getFillColor(value)).
		Render(filled + empty)
}

// renderProgressBarWithPercentage renders a progress bar with percentage text
func renderProgressBarWithPercentage(value float64, barWidth int) string {
	bar := renderProgressBar(value, barWidth)
	percentage := fmt.Sprintf("% 3.0f%%", value)
	return fmt.Sprintf("%s %s", bar, percentage)
}

// getFillColor returns a color based on how full a server is
func getFillColor(percentage float64) lipgloss.Color {
	switch {
	case percentage >= 90:
		return lipgloss.Color("#FF0000") // Red
	case percentage >= 70:
		return lipgloss.Color("#FFA500") // Orange
	case percentage >= 50:
		return lipgloss.Color("#FFFF00") // Yellow
	case percentage >= 30:
		return lipgloss.Color("#90EE90") // Light Green
	default:
		return lipgloss.Color("#00FF00") // Green
	}
}

// renderSeparator creates a horizontal separator
func renderSeparator(width int, title string) string {
	if title == "" {
		return strings.Repeat("─", width)
	}

	var b strings.Builder
	b.WriteString("─ ")
	b.WriteString(title)
	b.WriteString(" ")
	remaining := width - len(title) - 4 // 4 for "─  ─"
	if remaining > 0 {
		b.WriteString(strings.Repeat("─", remaining))
	}
	return b.String()
}
