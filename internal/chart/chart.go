// Package chart renders the per-category spending aggregate as a bar chart.
package chart

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sbdc-tools/wonflow/internal/common"
	"github.com/sbdc-tools/wonflow/internal/model"
)

// SaveCategoryBars renders one bar per category total and writes the image
// to path (format from the file extension, e.g. .png or .svg).
func SaveCategoryBars(totals []model.CategoryTotal, path string) error {
	if len(totals) == 0 {
		return common.ErrNoResults
	}

	p := plot.New()
	p.Title.Text = "계정과목별 총 지출"
	p.Y.Label.Text = "총 지출금액 (원)"

	values := make(plotter.Values, len(totals))
	names := make([]string, len(totals))
	for i, t := range totals {
		v, _ := t.Total.Float64()
		values[i] = v
		names[i] = t.Category
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}
