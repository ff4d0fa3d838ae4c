package table

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reader reads a file into a raw cell grid with no header assumption. The
// header row is located afterwards by the resolver.
type Reader interface {
	ReadGrid(path string) ([][]string, error)
}

// ReaderForFormat selects a reader by explicit format name.
func ReaderForFormat(format string) (Reader, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// ReaderForPath selects a reader from the file extension when no explicit
// format is given.
func ReaderForPath(path, format string) (Reader, error) {
	if strings.TrimSpace(format) != "" {
		return ReaderForFormat(format)
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return &CSVReader{}, nil
	case "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension for %s", path)
	}
}
