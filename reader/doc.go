// Package reader loads product records from CSV and Apache Parquet files.
//
// The input format is chosen by file extension: files ending in .parquet
// are read with the parquet-go library, everything else is parsed as
// comma-separated text with a header row.
//
// # Basic Usage
//
// Reading a single file:
//
//	products, err := reader.ReadFile("products.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, p := range products {
//	    fmt.Printf("%s %d\n", p.Name, p.Price)
//	}
//
// Keeping the file open to inspect it before reading:
//
//	r, err := reader.NewReader("products.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	fmt.Println(r.Format(), r.Size())
//	products, err := r.ReadAll()
//
// # Required Columns
//
// The header (or the parquet schema) must name the columns name, brand,
// price and rating. Additional columns are ignored and column order does
// not matter.
//
// # Errors
//
// All errors wrap one of the package sentinels and can be matched with
// errors.Is:
//
//   - ErrFileAccess: the file is missing or cannot be opened
//   - ErrSchema: required columns are missing or have unusable types
//   - ErrConversion: a row holds a value that does not convert
//
// Conversion is all-or-nothing. A single bad row fails the whole read.
package reader
