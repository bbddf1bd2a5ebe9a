package render

import (
	"sort"

	"github.com/guptarohit/asciigraph"

	"github.com/r-castano/eleven-usage/internal/models"
)

// DailyCreditChart renders an ASCII chart of credits per day from the
// summary's day breakdown. Fewer than two day buckets yields no chart.
func DailyCreditChart(byDay map[string]models.Breakdown, width, height int) string {
	if len(byDay) < 2 {
		return ""
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	data := make([]float64, len(days))
	for i, day := range days {
		data[i] = float64(byDay[day].Credits)
	}

	return plot(data, width, height, "credits per day ("+days[0]+" .. "+days[len(days)-1]+")")
}

// HistoryChart renders archived daily totals, oldest first.
func HistoryChart(usage []models.DailyUsage, width, height int) string {
	if len(usage) < 2 {
		return ""
	}

	data := make([]float64, len(usage))
	for i := range usage {
		data[i] = float64(usage[i].Credits)
	}

	return plot(data, width, height, "archived credits per day ("+usage[0].Day+" .. "+usage[len(usage)-1].Day+")")
}

func plot(data []float64, width, height int, caption string) string {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
