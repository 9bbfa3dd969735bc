package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/prodcat/record"
)

var (
	// ErrFileAccess is returned when the input file cannot be opened
	ErrFileAccess = errors.New("cannot access file")

	// ErrSchema is returned when required columns are missing from the input
	ErrSchema = errors.New("invalid schema")

	// ErrConversion is returned when a row cannot be converted to a product
	ErrConversion = errors.New("cannot convert row")
)

// Format identifies the encoding of an input file
type Format int

const (
	FormatCSV Format = iota
	FormatParquet
)

// String returns the format name
func (f Format) String() string {
	if f == FormatParquet {
		return "parquet"
	}
	return "csv"
}

// DetectFormat picks the input format from the file extension.
// Files ending in .parquet are read as Parquet, everything else as CSV.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return FormatParquet
	}
	return FormatCSV
}

// Reader loads products from a CSV or Parquet file.
//
// It owns the OS file handle until Close is called.
type Reader struct {
	path   string
	file   *os.File
	size   int64
	format Format
}

// NewReader opens the file at path for reading.
//
// Returns an error wrapping ErrFileAccess if the file doesn't exist or
// cannot be opened. The underlying os error is kept in the chain, so
// errors.Is(err, fs.ErrNotExist) distinguishes a missing file.
//
// Example:
//
//	r, err := NewReader("products.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if stat.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileAccess, path)
	}

	return &Reader{
		path:   path,
		file:   file,
		size:   stat.Size(),
		format: DetectFormat(path),
	}, nil
}

// ReadAll reads every product from the file, in file order.
//
// Conversion is all-or-nothing: the first row that fails to convert aborts
// the read and no products are returned.
func (r *Reader) ReadAll() ([]record.Product, error) {
	if r.file == nil {
		return nil, fmt.Errorf("%w: %s is closed", ErrFileAccess, r.path)
	}

	switch r.format {
	case FormatParquet:
		return readParquet(r.file, r.size)
	default:
		return readCSV(r.file)
	}
}

// Path returns the path the reader was opened with
func (r *Reader) Path() string {
	return r.path
}

// Size returns the file size in bytes
func (r *Reader) Size() int64 {
	return r.size
}

// Format returns the detected input format
func (r *Reader) Format() Format {
	return r.format
}

// Close releases the file handle. It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ReadFile opens path, reads all products and closes the file
func ReadFile(path string) ([]record.Product, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadAll()
}
