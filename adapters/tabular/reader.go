package tabular

import (
	"context"
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strings"

	"drivestat/domain/table"
	"drivestat/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Reader loads Excel and delimited text files into tables. Paths with a
// spreadsheet extension are parsed with excelize; everything else is read
// as comma-separated text.
type Reader struct{}

// NewReader creates a new data reader that handles both Excel and CSV files
func NewReader() *Reader {
	return &Reader{}
}

var spreadsheetExts = map[string]bool{
	".xls":  true,
	".xlsx": true,
}

// Load reads the file at path into a Table. For spreadsheet files, sheet
// selects the worksheet; an empty sheet means the workbook's default sheet.
// The selector is ignored for delimited text.
func (r *Reader) Load(ctx context.Context, path string, sheet string) (*table.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.FileNotFound(path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if spreadsheetExts[ext] {
		return r.loadSpreadsheet(path, sheet)
	}
	return r.loadCSV(path)
}

// loadSpreadsheet reads one worksheet into a Table
func (r *Reader) loadSpreadsheet(path string, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.ParseError(path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.ParseError(path, err)
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.CodeParseError, "spreadsheet has no header row: "+path)
	}

	log.Printf("[TabularReader] Sheet %q read from %s (%d rows)", sheet, path, len(rows))
	return table.FromRows(rows[0], rows[1:]), nil
}

// loadCSV reads comma-separated text into a Table
func (r *Reader) loadCSV(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.IOError("failed to open "+path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // short rows become missing cells

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseError(path, err)
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.CodeParseError, "CSV file has no header row: "+path)
	}

	log.Printf("[TabularReader] CSV read from %s (%d rows)", path, len(rows))
	return table.FromRows(rows[0], rows[1:]), nil
}
