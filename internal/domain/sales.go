package domain

import "time"

type ProductSales struct {
	Product string  `json:"product"`
	Units   int     `json:"units"`
	Profit  float64 `json:"profit"`
	Cost    float64 `json:"cost"`
}

// Margin is profit over profit plus cost, in percent.
func (p ProductSales) Margin() float64 {
	if p.Profit+p.Cost == 0 {
		return 0
	}
	return p.Profit / (p.Profit + p.Cost) * 100
}

type DailySales struct {
	Date      time.Time `json:"date"`
	Units     int       `json:"units"`
	Customers int       `json:"customers"`
}

type RegionSales struct {
	Region       string  `json:"region"`
	Units        int     `json:"units"`
	Satisfaction float64 `json:"satisfaction"`
}

type KPIs struct {
	TotalUnits   int     `json:"total_units"`
	TotalProfit  float64 `json:"total_profit"`
	TotalCost    float64 `json:"total_cost"`
	ProfitMargin float64 `json:"profit_margin"`
}

type Dashboard struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Products    []ProductSales `json:"products"`
	Daily       []DailySales   `json:"daily"`
	Regions     []RegionSales  `json:"regions"`
	KPIs        KPIs           `json:"kpis"`
	Insights    []string       `json:"insights"`
}
