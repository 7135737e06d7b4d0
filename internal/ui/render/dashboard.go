package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/yusufkecer/body-metrics-calculator/internal/domain"
	"github.com/yusufkecer/body-metrics-calculator/internal/service"
	"github.com/yusufkecer/body-metrics-calculator/internal/ui/theme"
)

const barWidth = 30

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

func Dashboard(d domain.Dashboard) string {
	sections := []string{
		theme.Title.Render("Sales Dashboard - Performance Analysis"),
		KPITiles(d.KPIs),
		section("Product Analysis", productTable(d.Products)),
		section("Daily Trend", dailyTrend(d.Daily)),
		section("Performance by Region", regionTable(d.Regions)),
		section("Insights", insights(d.Insights)),
		theme.Hint.Render("Data updated at: " + d.GeneratedAt.Format("02/01/2006 15:04:05")),
	}
	return strings.Join(sections, "\n\n")
}

func KPITiles(k domain.KPIs) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tile("Total Sales", humanize.Comma(int64(k.TotalUnits))),
		tile("Total Profit", "$ "+Money(k.TotalProfit)),
		tile("Total Cost", "$ "+Money(k.TotalCost)),
		tile("Profit Margin", fmt.Sprintf("%.1f%%", k.ProfitMargin)),
	)
}

// Money formats v with thousands separators and two decimals.
func Money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func tile(label, value string) string {
	return theme.Tile.Render(theme.TileLabel.Render(label) + "\n" + theme.TileValue.Render(value))
}

func section(title, body string) string {
	return theme.Rule.Render(strings.Repeat("─", 60)) + "\n" + theme.Subtitle.Render(title) + "\n" + body
}

func productTable(products []domain.ProductSales) string {
	maxUnits := 0
	for _, p := range products {
		maxUnits = max(maxUnits, p.Units)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-10s  %6s  %10s  %10s  %7s  %s\n", "Product", "Units", "Profit", "Cost", "Margin", "Share")
	for _, p := range products {
		fmt.Fprintf(&b, "%-10s  %6d  %10s  %10s  %6.1f%%  %s\n",
			p.Product, p.Units, Money(p.Profit), Money(p.Cost), p.Margin(), bar(p.Units, maxUnits))
	}
	return strings.TrimRight(b.String(), "\n")
}

func regionTable(regions []domain.RegionSales) string {
	maxUnits := 0
	for _, r := range regions {
		maxUnits = max(maxUnits, r.Units)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-8s  %6s  %12s  %s\n", "Region", "Units", "Satisfaction", "Share")
	for _, r := range regions {
		fmt.Fprintf(&b, "%-8s  %6d  %12.1f  %s\n", r.Region, r.Units, r.Satisfaction, bar(r.Units, maxUnits))
	}
	return strings.TrimRight(b.String(), "\n")
}

func dailyTrend(daily []domain.DailySales) string {
	if len(daily) == 0 {
		return theme.Hint.Render("no data")
	}
	units := make([]int, len(daily))
	customers := make([]int, len(daily))
	for i, d := range daily {
		units[i] = d.Units
		customers[i] = d.Customers
	}

	growth := "n/a"
	if g, ok := service.WeeklyGrowth(daily); ok {
		growth = fmt.Sprintf("%+.1f%%", g)
	}

	return fmt.Sprintf("Sales      %s\nCustomers  %s\n%s",
		theme.Bar.Render(Sparkline(units)),
		theme.Bar.Render(Sparkline(customers)),
		theme.Hint.Render(fmt.Sprintf("%s to %s, weekly growth %s",
			daily[0].Date.Format("02/01"), daily[len(daily)-1].Date.Format("02/01"), growth)))
}

func insights(items []string) string {
	lines := make([]string, len(items))
	for i, s := range items {
		lines[i] = Message(service.LevelInfo, s)
	}
	return strings.Join(lines, "\n")
}

func bar(v, maxV int) string {
	if maxV <= 0 {
		return ""
	}
	n := v * barWidth / maxV
	return theme.Bar.Render(strings.Repeat("█", n))
}

// Sparkline maps values onto eight block heights, scaled between the
// series minimum and maximum.
func Sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	out := make([]rune, len(values))
	for i, v := range values {
		idx := 0
		if hi > lo {
			idx = (v - lo) * (len(sparkLevels) - 1) / (hi - lo)
		}
		out[i] = sparkLevels[idx]
	}
	return string(out)
}
