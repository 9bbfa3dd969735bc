package reader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/prodcat/record"
)

const phonesCSV = `name,brand,price,rating
iphone 15 pro,apple,999,4.9
galaxy s23 ultra,samsung,1199,4.8
redmi note 12,xiaomi,199,4.6
iphone 14,apple,799,4.7
`

var phones = []record.Product{
	{Name: "iphone 15 pro", Brand: "apple", Price: 999, Rating: 4.9},
	{Name: "galaxy s23 ultra", Brand: "samsung", Price: 1199, Rating: 4.8},
	{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6},
	{Name: "iphone 14", Brand: "apple", Price: 799, Rating: 4.7},
}

// writeFile creates a file with the given content in a temporary directory
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// writeParquet creates a parquet file from rows of any struct type
func writeParquet[T any](t *testing.T, rows []T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.parquet")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[T](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return path
}

func TestReadFile_CSV(t *testing.T) {
	path := writeFile(t, "products.csv", phonesCSV)

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if diff := cmp.Diff(phones, got); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile_CSVLayout(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []record.Product
	}{
		{
			name:    "extra columns ignored",
			content: "id,name,brand,price,rating,color\n1,iphone 14,apple,799,4.7,black\n",
			want:    []record.Product{{Name: "iphone 14", Brand: "apple", Price: 799, Rating: 4.7}},
		},
		{
			name:    "columns in any order",
			content: "rating,price,brand,name\n4.6,199,xiaomi,redmi note 12\n",
			want:    []record.Product{{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6}},
		},
		{
			name:    "byte order mark",
			content: "\ufeffname,brand,price,rating\niphone 14,apple,799,4.7\n",
			want:    []record.Product{{Name: "iphone 14", Brand: "apple", Price: 799, Rating: 4.7}},
		},
		{
			name:    "numeric cells with spaces",
			content: "name,brand,price,rating\niphone 14,apple, 799 , 4.7\n",
			want:    []record.Product{{Name: "iphone 14", Brand: "apple", Price: 799, Rating: 4.7}},
		},
		{
			name:    "quoted text with comma",
			content: "name,brand,price,rating\n\"pixel 8, pro\",google,899,4.5\n",
			want:    []record.Product{{Name: "pixel 8, pro", Brand: "google", Price: 899, Rating: 4.5}},
		},
		{
			name:    "bare quote in unquoted cell",
			content: "name,brand,price,rating\ngalaxy tab 11\" wifi,samsung,499,4.5\n",
			want:    []record.Product{{Name: "galaxy tab 11\" wifi", Brand: "samsung", Price: 499, Rating: 4.5}},
		},
		{
			name:    "header only",
			content: "name,brand,price,rating\n",
			want:    []record.Product{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "products.csv", tt.content)

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing columns",
			content: "name,price\niphone 14,799\n",
			wantErr: ErrSchema,
			wantMsg: "brand, rating",
		},
		{
			name:    "empty file",
			content: "",
			wantErr: ErrSchema,
		},
		{
			name:    "bad price",
			content: "name,brand,price,rating\niphone 14,apple,799,4.7\nbad,acme,cheap,4.0\n",
			wantErr: ErrConversion,
			wantMsg: "row 2",
		},
		{
			name:    "float price",
			content: "name,brand,price,rating\niphone 14,apple,799.5,4.7\n",
			wantErr: ErrConversion,
			wantMsg: "price",
		},
		{
			name:    "bad rating",
			content: "name,brand,price,rating\niphone 14,apple,799,good\n",
			wantErr: ErrConversion,
			wantMsg: "rating",
		},
		{
			name:    "short row",
			content: "name,brand,price,rating\niphone 14,apple,799\n",
			wantErr: ErrConversion,
			wantMsg: "missing value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "products.csv", tt.content)

			got, err := ReadFile(path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadFile() error = %v, want %v", err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("ReadFile() returned %d products on error, want none", len(got))
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("ReadFile() error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := ReadFile(path)
	if !errors.Is(err, ErrFileAccess) {
		t.Fatalf("ReadFile() error = %v, want ErrFileAccess", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want it to wrap fs.ErrNotExist", err)
	}
}

func TestNewReader_Directory(t *testing.T) {
	_, err := NewReader(t.TempDir())
	if !errors.Is(err, ErrFileAccess) {
		t.Fatalf("NewReader() error = %v, want ErrFileAccess", err)
	}
}

func TestReader_Close(t *testing.T) {
	path := writeFile(t, "products.csv", phonesCSV)

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	if r.Size() != int64(len(phonesCSV)) {
		t.Errorf("Size() = %d, want %d", r.Size(), len(phonesCSV))
	}
	if r.Format() != FormatCSV {
		t.Errorf("Format() = %v, want csv", r.Format())
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := r.ReadAll(); !errors.Is(err, ErrFileAccess) {
		t.Errorf("ReadAll() after Close error = %v, want ErrFileAccess", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"products.csv", FormatCSV},
		{"products.parquet", FormatParquet},
		{"PRODUCTS.PARQUET", FormatParquet},
		{"products.txt", FormatCSV},
		{"products", FormatCSV},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReadFile_Parquet(t *testing.T) {
	path := writeParquet(t, phones)

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if diff := cmp.Diff(phones, got); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile_ParquetNarrowTypes(t *testing.T) {
	type row struct {
		ID     int64   `parquet:"id"`
		Name   string  `parquet:"name"`
		Brand  string  `parquet:"brand"`
		Price  int32   `parquet:"price"`
		Rating float32 `parquet:"rating"`
	}
	path := writeParquet(t, []row{{ID: 7, Name: "iphone 14", Brand: "apple", Price: 799, Rating: 4.5}})

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want := []record.Product{{Name: "iphone 14", Brand: "apple", Price: 799, Rating: 4.5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile_ParquetSchemaErrors(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		type row struct {
			Name  string `parquet:"name"`
			Price int64  `parquet:"price"`
		}
		path := writeParquet(t, []row{{Name: "iphone 14", Price: 799}})

		_, err := ReadFile(path)
		if !errors.Is(err, ErrSchema) {
			t.Fatalf("ReadFile() error = %v, want ErrSchema", err)
		}
		if !strings.Contains(err.Error(), "brand, rating") {
			t.Errorf("ReadFile() error = %q, want missing columns listed", err)
		}
	})

	t.Run("float price column", func(t *testing.T) {
		type row struct {
			Name   string  `parquet:"name"`
			Brand  string  `parquet:"brand"`
			Price  float64 `parquet:"price"`
			Rating float64 `parquet:"rating"`
		}
		path := writeParquet(t, []row{{Name: "iphone 14", Brand: "apple", Price: 799.5, Rating: 4.7}})

		_, err := ReadFile(path)
		if !errors.Is(err, ErrSchema) {
			t.Fatalf("ReadFile() error = %v, want ErrSchema", err)
		}
	})
}

func TestReadFile_ParquetNotParquet(t *testing.T) {
	path := writeFile(t, "broken.parquet", "name,brand,price,rating\n")

	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("ReadFile() expected error for invalid parquet file")
	}
	if errors.Is(err, ErrFileAccess) {
		t.Errorf("ReadFile() error = %v, should not be a file access error", err)
	}
}

func TestReadFile_SampleData(t *testing.T) {
	products, err := ReadFile(filepath.Join("..", "testdata", "products.csv"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(products) != 8 {
		t.Fatalf("ReadFile() returned %d products, want 8", len(products))
	}
	if diff := cmp.Diff(phones, products[:len(phones)]); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}
}
