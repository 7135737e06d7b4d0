package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/yusufkecer/body-metrics-calculator/internal/domain"
)

const (
	DefaultDashboardSeed = 42
	DefaultDashboardDays = 30
)

var (
	Products = []string{"Product A", "Product B", "Product C", "Product D", "Product E"}
	Regions  = []string{"North", "South", "East", "West"}
)

// DashboardService generates synthetic sales data. Output is fully
// determined by the seed and the reference time.
type DashboardService struct {
	seed uint64
	days int
}

func NewDashboardService(seed uint64, days int) *DashboardService {
	if days <= 0 {
		days = DefaultDashboardDays
	}
	return &DashboardService{seed: seed, days: days}
}

func (s *DashboardService) Generate(now time.Time) domain.Dashboard {
	rng := rand.New(rand.NewPCG(s.seed, s.seed))

	products := make([]domain.ProductSales, len(Products))
	for i, name := range Products {
		products[i].Product = name
		products[i].Units = intBetween(rng, 100, 1000)
	}
	for i := range products {
		products[i].Profit = round(floatBetween(rng, 1000, 5000), 2)
	}
	for i := range products {
		products[i].Cost = round(floatBetween(rng, 500, 3000), 2)
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daily := make([]domain.DailySales, s.days)
	for i := range daily {
		daily[i].Date = end.AddDate(0, 0, i-s.days+1)
		daily[i].Units = intBetween(rng, 50, 200)
	}
	for i := range daily {
		daily[i].Customers = intBetween(rng, 10, 50)
	}

	regions := make([]domain.RegionSales, len(Regions))
	for i, name := range Regions {
		regions[i].Region = name
		regions[i].Units = intBetween(rng, 200, 800)
	}
	for i := range regions {
		regions[i].Satisfaction = round(floatBetween(rng, 3.5, 5), 1)
	}

	return domain.Dashboard{
		GeneratedAt: now,
		Products:    products,
		Daily:       daily,
		Regions:     regions,
		KPIs:        ComputeKPIs(products),
		Insights:    Insights(products, daily, regions),
	}
}

func ComputeKPIs(products []domain.ProductSales) domain.KPIs {
	var k domain.KPIs
	for _, p := range products {
		k.TotalUnits += p.Units
		k.TotalProfit += p.Profit
		k.TotalCost += p.Cost
	}
	if k.TotalUnits > 0 {
		k.ProfitMargin = k.TotalProfit / float64(k.TotalUnits) * 100
	}
	return k
}

// Insights derives the headline observations shown under the charts.
func Insights(products []domain.ProductSales, daily []domain.DailySales, regions []domain.RegionSales) []string {
	var out []string

	if len(products) > 0 {
		best := products[0]
		for _, p := range products[1:] {
			if p.Margin() > best.Margin() {
				best = p
			}
		}
		out = append(out, fmt.Sprintf("%s has the highest profit margin (%.1f%%)", best.Product, best.Margin()))
	}

	if len(regions) > 0 {
		best := regions[0]
		for _, r := range regions[1:] {
			if r.Satisfaction > best.Satisfaction {
				best = r
			}
		}
		out = append(out, fmt.Sprintf("%s region has the highest satisfaction (%.1f/5.0)", best.Region, best.Satisfaction))
	}

	if growth, ok := WeeklyGrowth(daily); ok {
		verb := "growing"
		if growth < 0 {
			verb = "shrinking"
		}
		out = append(out, fmt.Sprintf("Sales are %s %.1f%% per week on average", verb, math.Abs(growth)))
	}

	if len(products) > 0 {
		var mean float64
		for _, p := range products {
			mean += p.Cost
		}
		mean /= float64(len(products))

		worst, excess := "", 0.0
		for _, p := range products {
			if mean == 0 {
				break
			}
			if pct := (p.Cost - mean) / mean * 100; pct > excess {
				worst, excess = p.Product, pct
			}
		}
		if worst != "" {
			out = append(out, fmt.Sprintf("%s cost is %.0f%% above average", worst, excess))
		}
	}

	return out
}

// WeeklyGrowth is the mean percentage change in units between consecutive
// full weeks, counted back from the last day. It needs two full weeks.
func WeeklyGrowth(daily []domain.DailySales) (float64, bool) {
	weeks := len(daily) / 7
	if weeks < 2 {
		return 0, false
	}

	start := len(daily) - weeks*7
	totals := make([]int, weeks)
	for i, d := range daily[start:] {
		totals[i/7] += d.Units
	}

	var sum float64
	var n int
	for i := 1; i < weeks; i++ {
		if totals[i-1] == 0 {
			continue
		}
		sum += float64(totals[i]-totals[i-1]) / float64(totals[i-1]) * 100
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo)
}

func floatBetween(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
