package query

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/alpacahq/marketcal/calendar"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatCSV, formatJSON:
		return nil
	default:
		return errors.Wrapf(calendar.ErrInvalidArgument, "unknown output format %q", format)
	}
}

type holidayRow struct {
	Date     string `csv:"date"`
	Observed string `csv:"observed"`
	Weekday  string `csv:"weekday"`
	Name     string `csv:"name"`
}

type checkRow struct {
	Country    string `csv:"country"`
	Date       string `csv:"date"`
	Holiday    bool   `csv:"holiday"`
	WorkingDay bool   `csv:"working_day"`
	Names      string `csv:"names"`
}

type workdayRow struct {
	Country string `csv:"country"`
	From    string `csv:"from"`
	Date    string `csv:"date"`
	Days    int    `csv:"days"`
}

type easterRow struct {
	Year     int    `csv:"year"`
	Computus string `csv:"computus"`
	Date     string `csv:"date"`
}

type shiftRow struct {
	Date     string `csv:"date" json:"date"`
	Policy   string `csv:"policy" json:"policy"`
	Observed string `csv:"observed" json:"observed"`
	Weekday  string `csv:"weekday" json:"weekday"`
}

type countryRow struct {
	Code string `csv:"code"`
	Name string `csv:"name"`
}

// render writes reply as indented JSON, or rows (a slice of csv-tagged
// structs) as CSV or an aligned table.
func render(w io.Writer, format string, reply, rows interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reply)
	case formatCSV:
		return gocsv.Marshal(rows, w)
	default:
		b, err := gocsv.MarshalBytes(rows)
		if err != nil {
			return err
		}
		records, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
		if err != nil {
			return err
		}
		return printTable(w, records)
	}
}

// printTable prints records with the first record as a header line.
func printTable(w io.Writer, records [][]string) error {
	if len(records) == 0 {
		return nil
	}
	widths := make([]int, len(records[0]))
	for _, rec := range records {
		for i, cell := range rec {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var buf bytes.Buffer
	line := func(rec []string) {
		for i, cell := range rec {
			if i == len(rec)-1 {
				buf.WriteString(cell)
				break
			}
			fmt.Fprintf(&buf, "%-*s  ", widths[i], cell)
		}
		buf.WriteByte('\n')
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.ToUpper(name)
	}
	line(header)
	total := 0
	for _, width := range widths {
		total += width + 2
	}
	buf.WriteString(strings.Repeat("=", total-2))
	buf.WriteByte('\n')
	for _, rec := range records[1:] {
		line(rec)
	}
	fmt.Fprintf(&buf, "(%d rows)\n", len(records)-1)

	_, err := w.Write(buf.Bytes())
	return err
}
