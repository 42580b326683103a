package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxXLSRows bounds how many rows are pulled from a legacy workbook.
const maxXLSRows = 100000

var (
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	zipMagic = []byte("PK\x03\x04")
)

// Format is the detected encoding of a report export.
type Format string

const (
	FormatXLS  Format = "xls"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
	FormatCSV  Format = "csv"
)

// ReadRows reads the first worksheet of the export at path as a grid of strings.
func ReadRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadRowsFrom(f, filepath.Base(path))
}

// ReadRowsFrom reads an export from r. The content decides the format; name
// (its extension) is only consulted when the content is ambiguous.
func ReadRowsFrom(r io.Reader, name string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch Detect(data, name) {
	case FormatXLS:
		return readXLS(data)
	case FormatXLSX:
		return readXLSX(data)
	case FormatHTML:
		return readHTML(data)
	default:
		return readCSV(data)
	}
}

// Detect sniffs the export format. Registration systems often serve an HTML
// table with an .xls extension, so magic bytes win over the file name.
func Detect(data []byte, name string) Format {
	switch {
	case bytes.HasPrefix(data, oleMagic):
		return FormatXLS
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	}

	head := strings.ToLower(strings.TrimSpace(string(data[:min(len(data), 512)])))
	head = strings.TrimPrefix(head, "\ufeff")
	if strings.HasPrefix(head, "<") {
		return FormatHTML
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".xls":
		return FormatXLS
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".htm", ".html":
		return FormatHTML
	}
	return FormatCSV
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls workbook: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}
	rows := workbook.ReadAllCells(maxXLSRows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}
	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	// Raw values keep dates and times as serial numbers instead of whatever
	// number format the export happened to use.
	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}
	return rows, nil
}

// readHTML takes the largest <table> of the document.
func readHTML(data []byte) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html export: %w", err)
	}

	var best [][]string
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		var rows [][]string
		table.Find("tr").Each(func(j int, tr *goquery.Selection) {
			// Nested tables would otherwise contribute their rows twice.
			if tr.Closest("table").Get(0) != table.Get(0) {
				return
			}
			var cells []string
			tr.Find("th, td").Each(func(k int, cell *goquery.Selection) {
				cells = append(cells, strings.Join(strings.Fields(cell.Text()), " "))
			})
			rows = append(rows, cells)
		})
		if len(rows) > len(best) {
			best = rows
		}
	})

	if len(best) == 0 {
		return nil, fmt.Errorf("no table found in html export")
	}
	return best, nil
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv export: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}
	return rows, nil
}
