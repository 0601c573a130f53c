// Package chart renders finance reports as PNG charts.
//
// It is a thin presentation collaborator: every function takes the computed
// series verbatim and writes an image, without re-deriving any number.
package chart

import (
	"fmt"
	"io"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/etnz/fintrack"
)

var (
	incomeColor  = drawing.ColorFromHex("2563eb") // blue-600
	expenseColor = drawing.ColorFromHex("dc2626") // red-600
	trendColor   = drawing.ColorFromHex("16a34a") // green-600
)

// Spending renders a pie chart of expense totals by category.
func Spending(w io.Writer, spending map[string]fintrack.Money) error {
	if len(spending) == 0 {
		return fmt.Errorf("no expense data to chart")
	}

	categories := make([]string, 0, len(spending))
	for c := range spending {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	values := make([]chart.Value, 0, len(categories))
	for _, c := range categories {
		values = append(values, chart.Value{
			Label: c,
			Value: spending[c].AsFloat(),
		})
	}

	graph := chart.PieChart{
		Title:  "Spending by Category",
		Width:  700,
		Height: 700,
		Values: values,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

// Allocation renders a pie chart of the portfolio's current value share by
// investment type.
func Allocation(w io.Writer, allocation map[string]fintrack.Percent) error {
	if len(allocation) == 0 {
		return fmt.Errorf("no portfolio data to chart")
	}

	kinds := make([]string, 0, len(allocation))
	for k := range allocation {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	values := make([]chart.Value, 0, len(kinds))
	for _, k := range kinds {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", k, allocation[k]),
			Value: float64(allocation[k]),
		})
	}

	graph := chart.PieChart{
		Title:  "Portfolio Allocation",
		Width:  700,
		Height: 700,
		Values: values,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

// IncomeVsExpenses renders the monthly income and expense series of one year
// as two lines.
func IncomeVsExpenses(w io.Writer, series []fintrack.IncomeExpensePoint) error {
	if len(series) < 2 {
		return fmt.Errorf("need at least 2 data points, got %d", len(series))
	}

	xValues := make([]float64, len(series))
	incomeY := make([]float64, len(series))
	expenseY := make([]float64, len(series))
	ticks := make([]chart.Tick, len(series))
	for i, p := range series {
		xValues[i] = float64(i)
		incomeY[i] = p.Income.AsFloat()
		expenseY[i] = p.Expense.AsFloat()
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Month.Month().String()[:3]}
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Income vs Expenses (%d)", series[0].Month.Year()),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Income",
				Style:   chart.Style{StrokeColor: incomeColor, StrokeWidth: 2.5},
				XValues: xValues,
				YValues: incomeY,
			},
			chart.ContinuousSeries{
				Name:    "Expenses",
				Style:   chart.Style{StrokeColor: expenseColor, StrokeWidth: 2.5},
				XValues: xValues,
				YValues: expenseY,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

// CategoryTrend renders a category's monthly spending trend as a line.
func CategoryTrend(w io.Writer, category string, series []fintrack.TrendPoint) error {
	if len(series) < 2 {
		return fmt.Errorf("need at least 2 data points, got %d", len(series))
	}

	xValues := make([]float64, len(series))
	yValues := make([]float64, len(series))
	ticks := make([]chart.Tick, len(series))
	for i, p := range series {
		xValues[i] = float64(i)
		yValues[i] = p.Amount.AsFloat()
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Month.Label()}
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Spending Trend: %s", category),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    category,
				Style:   chart.Style{StrokeColor: trendColor, StrokeWidth: 2.5},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

// SavingsRate renders the monthly savings-rate series as a line.
func SavingsRate(w io.Writer, series []fintrack.SavingsPoint) error {
	if len(series) < 2 {
		return fmt.Errorf("need at least 2 data points, got %d", len(series))
	}

	xValues := make([]float64, len(series))
	yValues := make([]float64, len(series))
	ticks := make([]chart.Tick, len(series))
	for i, p := range series {
		xValues[i] = float64(i)
		yValues[i] = float64(p.Rate)
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Month.Label()}
	}

	graph := chart.Chart{
		Title:  "Monthly Savings Rate",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f%%", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Savings Rate",
				Style:   chart.Style{StrokeColor: incomeColor, StrokeWidth: 2.5},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}
