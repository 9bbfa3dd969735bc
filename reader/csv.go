package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/prodcat/record"
)

const utf8BOM = "\ufeff"

// readCSV reads products from comma-separated text with a header row
func readCSV(r io.Reader) ([]record.Product, error) {
	csvReader := csv.NewReader(r)
	// Rows may be shorter or longer than the header; missing cells are
	// reported per column below.
	csvReader.FieldsPerRecord = -1
	// A bare quote inside an unquoted cell is kept as a literal character
	csvReader.LazyQuotes = true

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", ErrSchema)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	products := make([]record.Product, 0)
	for rowNum := 1; ; rowNum++ {
		row, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: row %d: %w", ErrConversion, rowNum, err)
		}

		p, err := productFromCells(row, index)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrConversion, rowNum, err)
		}
		products = append(products, p)
	}

	return products, nil
}

// productFromCells builds a product from the cells of one CSV row
func productFromCells(row []string, index map[string]int) (record.Product, error) {
	cell := func(column string) (string, error) {
		i := index[column]
		if i >= len(row) {
			return "", fmt.Errorf("missing value for column %q", column)
		}
		return row[i], nil
	}

	var p record.Product
	var err error

	if p.Name, err = cell("name"); err != nil {
		return p, err
	}
	if p.Brand, err = cell("brand"); err != nil {
		return p, err
	}

	price, err := cell("price")
	if err != nil {
		return p, err
	}
	if p.Price, err = parseInt(price); err != nil {
		return p, fmt.Errorf("column %q: %w", "price", err)
	}

	rating, err := cell("rating")
	if err != nil {
		return p, err
	}
	if p.Rating, err = parseFloat(rating); err != nil {
		return p, fmt.Errorf("column %q: %w", "rating", err)
	}

	return p, nil
}
