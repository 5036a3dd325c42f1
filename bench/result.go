package bench

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Header is the column header of a results file.
var Header = []string{"TreeType", "Dataset", "Size", "Time(s)", "Rotations"}

// A Result is the outcome of inserting one key set into one tree.
type Result struct {
	Tree      Kind
	Dataset   string
	Size      int
	Elapsed   time.Duration
	Rotations int
}

// FormatSeconds returns d in seconds with four decimal places. If comma is
// true the decimal separator is a comma.
func FormatSeconds(d time.Duration, comma bool) string {
	s := strconv.FormatFloat(d.Seconds(), 'f', 4, 64)
	if comma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// A Writer writes Results as semicolon separated records.
type Writer struct {
	csv   *csv.Writer
	comma bool
}

// NewWriter returns a Writer writing to w. If decimalComma is true times are
// written with a decimal comma.
func NewWriter(w io.Writer, decimalComma bool) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	return &Writer{csv: cw, comma: decimalComma}
}

// WriteHeader writes the column header.
func (w *Writer) WriteHeader() error {
	return w.write(Header)
}

// Write writes r as a single record. The record is flushed to the underlying
// io.Writer before Write returns.
func (w *Writer) Write(r Result) error {
	return w.write([]string{
		string(r.Tree),
		r.Dataset,
		strconv.Itoa(r.Size),
		FormatSeconds(r.Elapsed, w.comma),
		strconv.Itoa(r.Rotations),
	})
}

func (w *Writer) write(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return errors.Wrap(err, "bench: failed to write record")
	}
	w.csv.Flush()
	return errors.Wrap(w.csv.Error(), "bench: failed to flush record")
}
