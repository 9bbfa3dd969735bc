package query

import (
	"github.com/vegasq/prodcat/record"
)

// samplePhones returns a fresh copy of the four-phone fixture
func samplePhones() []record.Product {
	return []record.Product{
		{Name: "iphone 15 pro", Brand: "apple", Price: 999, Rating: 4.9},
		{Name: "galaxy s23 ultra", Brand: "samsung", Price: 1199, Rating: 4.8},
		{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6},
		{Name: "iphone 14", Brand: "apple", Price: 799, Rating: 4.7},
	}
}

// names extracts product names, preserving order
func names(products []record.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}
