package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/prodcat/record"
)

// readParquet reads products from a parquet file.
//
// The top-level column names play the role of the CSV header. The entire
// file is loaded into memory.
func readParquet(r io.ReaderAt, size int64) ([]record.Product, error) {
	pqFile, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	if err := checkParquetSchema(pqFile.Schema()); err != nil {
		return nil, err
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	products := make([]record.Product, 0, pqFile.NumRows())
	for rowNum := 1; ; rowNum++ {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: row %d: %w", ErrConversion, rowNum, err)
		}

		p, err := productFromValues(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrConversion, rowNum, err)
		}
		products = append(products, p)
	}

	return products, nil
}

// productFromValues builds a product from one decoded parquet row
func productFromValues(row map[string]interface{}) (record.Product, error) {
	var p record.Product
	var err error

	if p.Name, err = toText(row["name"]); err != nil {
		return p, fmt.Errorf("column %q: %w", "name", err)
	}
	if p.Brand, err = toText(row["brand"]); err != nil {
		return p, fmt.Errorf("column %q: %w", "brand", err)
	}
	if p.Price, err = toInt64(row["price"]); err != nil {
		return p, fmt.Errorf("column %q: %w", "price", err)
	}
	if p.Rating, err = toFloat64(row["rating"]); err != nil {
		return p, fmt.Errorf("column %q: %w", "rating", err)
	}

	return p, nil
}
