//go:build ignore

// Generates products.csv and products.parquet sample inputs.
//
//	go run testdata/generate.go
package main

import (
	"encoding/csv"
	"log"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/prodcat/record"
)

var products = []record.Product{
	{Name: "iphone 15 pro", Brand: "apple", Price: 999, Rating: 4.9},
	{Name: "galaxy s23 ultra", Brand: "samsung", Price: 1199, Rating: 4.8},
	{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6},
	{Name: "iphone 14", Brand: "apple", Price: 799, Rating: 4.7},
	{Name: "galaxy a54", Brand: "samsung", Price: 349, Rating: 4.2},
	{Name: "poco x5 pro", Brand: "xiaomi", Price: 299, Rating: 4.4},
	{Name: "iphone se", Brand: "apple", Price: 429, Rating: 4.1},
	{Name: "galaxy z flip5", Brand: "samsung", Price: 999, Rating: 4.6},
}

func main() {
	if err := writeCSV("products.csv"); err != nil {
		log.Fatal(err)
	}
	if err := writeParquet("products.parquet"); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated products.csv and products.parquet with %d products", len(products))
}

func writeCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(record.Columns()); err != nil {
		return err
	}
	for _, row := range record.ToRows(products) {
		cells := make([]string, 0, len(row))
		for _, col := range record.Columns() {
			cells = append(cells, record.FormatValue(row[col]))
		}
		if err := w.Write(cells); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeParquet(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[record.Product](file)
	if _, err := writer.Write(products); err != nil {
		return err
	}
	return writer.Close()
}
