// Package dataset embeds the two small CSV datasets the gallery
// figures draw from.
package dataset

import (
	"bytes"
	_ "embed"

	"statplot/table"
)

//go:embed tips.csv
var tipsCSV []byte

//go:embed cars.csv
var carsCSV []byte

// Tips is a sample of restaurant bills: the bill total, the tip, and
// who/when categorical context.
func Tips() (*table.Table, error) {
	return table.ReadCSV(bytes.NewReader(tipsCSV), table.Schema{
		{Name: "total_bill", Kind: table.Float},
		{Name: "tip", Kind: table.Float},
		{Name: "sex", Kind: table.String},
		{Name: "smoker", Kind: table.String},
		{Name: "day", Kind: table.String},
		{Name: "time", Kind: table.String},
		{Name: "size", Kind: table.Float},
	})
}

// Cars is a sample of fuel economy measurements: engine displacement,
// cylinders, highway mileage, and vehicle context.
func Cars() (*table.Table, error) {
	return table.ReadCSV(bytes.NewReader(carsCSV), table.Schema{
		{Name: "manufacturer", Kind: table.String},
		{Name: "displ", Kind: table.Float},
		{Name: "cyl", Kind: table.Float},
		{Name: "drv", Kind: table.String},
		{Name: "hwy", Kind: table.Float},
		{Name: "class", Kind: table.String},
	})
}
