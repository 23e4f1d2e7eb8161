package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	enc "github.com/MrJamesThe3rd/catasto/internal/encoding"
)

var dateLayouts = []string{time.DateOnly, "02/01/2006", "02-01-2006"}

// colIndex maps lower-cased header names to their column.
type colIndex map[string]int

// record is one data row together with its 1-based line in the file.
type record struct {
	line  int
	cells []string
	cols  colIndex
}

func (r record) value(name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(r.cells) {
		return ""
	}

	return strings.TrimSpace(r.cells[idx])
}

func (r record) optional(name string) *string {
	v := r.value(name)
	if v == "" {
		return nil
	}

	return &v
}

func (r record) required(name string) (string, error) {
	v := r.value(name)
	if v == "" {
		return "", catasto.DataError("row %d: %s is required", r.line, name)
	}

	return v, nil
}

func (r record) date(name string) (time.Time, error) {
	v, err := r.required(name)
	if err != nil {
		return time.Time{}, err
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, v); err == nil {
			return d, nil
		}
	}

	return time.Time{}, catasto.DataError("row %d: %s %q is not a date", r.line, name, v)
}

func (r record) positiveInt(name string) (int, error) {
	v, err := r.required(name)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, catasto.DataError("row %d: %s %q is not a positive integer", r.line, name, v)
	}

	return n, nil
}

// sniffDelimiter picks ';' or ',' from whichever occurs more often in the
// header line.
func sniffDelimiter(br *bufio.Reader) rune {
	head, _ := br.Peek(br.Size())
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}

	if bytes.Count(head, []byte{';'}) > bytes.Count(head, []byte{','}) {
		return ';'
	}

	return ','
}

// readTable decodes r, reads the header and checks it carries every
// required column. Blank lines are skipped.
func readTable(r io.Reader, required []string) ([]record, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(br)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, catasto.DataError("file is empty")
	}

	if err != nil {
		return nil, catasto.DataError("reading header: %v", err)
	}

	cols := make(colIndex, len(header))
	for i, name := range header {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			cols[name] = i
		}
	}

	var missing []string

	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, catasto.DataError("missing columns: %s", strings.Join(missing, ", "))
	}

	var out []record

	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, catasto.DataError("reading rows: %v", err)
		}

		if blank(cells) {
			continue
		}

		line, _ := reader.FieldPos(0)

		out = append(out, record{line: line, cells: cells, cols: cols})
	}

	return out, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
