// Command gallery renders the library's figure kinds into an output
// directory, working through the two sample datasets the way a
// first-time reader would: scatter plots, color series, marginal
// distributions, facets, a regression overlay, a histogram, boxplots,
// and finally a summarized bar chart with error bars.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"statplot/dataset"
	"statplot/figure"
	"statplot/render"
	"statplot/stats"
	"statplot/summarize"
)

func main() {
	out := flag.String("out", "figures", "output directory")
	width := flag.Float64("width", 6, "figure width in inches")
	height := flag.Float64("height", 4.5, "figure height in inches")
	flag.Parse()

	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}
	w := vg.Length(*width) * vg.Inch
	h := vg.Length(*height) * vg.Inch

	cars, err := dataset.Cars()
	if err != nil {
		log.Fatalf("loading cars: %v", err)
	}
	tips, err := dataset.Tips()
	if err != nil {
		log.Fatalf("loading tips: %v", err)
	}

	save := func(name string, fig figure.Figure) {
		path := filepath.Join(*out, name)
		if err := render.Save(fig, w, h, path); err != nil {
			log.Fatalf("rendering %s: %v", name, err)
		}
		log.Printf("wrote %s", path)
	}

	scatter := figure.New(cars, figure.Aes{X: "displ", Y: "hwy"}).
		With(figure.Points{}).
		WithAxisLabels("engine displacement (l)", "highway mileage (mpg)")
	save("scatter.png", scatter.WithTitle("Engine size vs mileage"))

	byClass := figure.New(cars, figure.Aes{X: "displ", Y: "hwy", Color: "class"}).
		With(figure.Points{}).
		WithAxisLabels("engine displacement (l)", "highway mileage (mpg)")
	save("scatter_class.png", byClass.WithTitle("Engine size vs mileage by class"))

	marginalPath := filepath.Join(*out, "scatter_marginal.png")
	if err := render.SaveMarginal(scatter, w, h, marginalPath); err != nil {
		log.Fatalf("rendering scatter_marginal.png: %v", err)
	}
	log.Printf("wrote %s", marginalPath)

	save("scatter_facets.png", scatter.WithFacet("class", 3))

	save("scatter_fit.png", scatter.
		With(figure.LinearFit{}).
		WithTitle("Mileage falls with displacement"))

	bills, err := tips.Floats("total_bill")
	if err != nil {
		log.Fatalf("reading bills: %v", err)
	}
	box5, err := stats.BoxStats(bills)
	if err != nil {
		log.Fatalf("summarizing bills: %v", err)
	}
	log.Printf("total_bill: min %.2f  q1 %.2f  median %.2f  q3 %.2f  max %.2f  outliers %d",
		box5.Min, box5.Q1, box5.Median, box5.Q3, box5.Max, len(box5.Outliers))

	hist := figure.New(tips, figure.Aes{X: "total_bill"}).
		With(figure.Histogram{Bins: 15}).
		WithAxisLabels("total bill ($)", "count")
	save("hist_total_bill.png", hist.WithTitle("Bill distribution"))

	box := figure.New(tips, figure.Aes{X: "day", Y: "total_bill"}).
		With(figure.Box{}).
		WithAxisLabels("day", "total bill ($)")
	save("box_bill_by_day.png", box.WithTitle("Bills by day"))

	summary, err := summarize.Summarize(tips, []string{"day"}, "tip")
	if err != nil {
		log.Fatalf("summarizing tips: %v", err)
	}
	summaryTable, err := summary.ToTable()
	if err != nil {
		log.Fatalf("laying out summary: %v", err)
	}
	bars := figure.New(summaryTable, figure.Aes{X: "day", Y: "mean"}).
		With(figure.Bars{}, figure.ErrorBars{Field: "se"}).
		WithAxisLabels("day", "mean tip ($)")
	save("bars_tip_by_day.png", bars.WithTitle("Mean tip by day"))

	dodged, err := summarize.Summarize(tips, []string{"day", "sex"}, "tip")
	if err != nil {
		log.Fatalf("summarizing tips by day and sex: %v", err)
	}
	dodgedTable, err := dodged.ToTable()
	if err != nil {
		log.Fatalf("laying out summary: %v", err)
	}
	save("bars_tip_by_day_sex.png", figure.
		New(dodgedTable, figure.Aes{X: "day", Y: "mean", Color: "sex"}).
		With(figure.Bars{}, figure.ErrorBars{Field: "se"}).
		WithAxisLabels("day", "mean tip ($)").
		WithTitle("Mean tip by day and sex"))
}
