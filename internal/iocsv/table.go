package iocsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const separator = ';'

// row is a normalized CSV record. Parsing problems are accumulated in
// probs, so all problems of a record are reported together.
type row struct {
	num   int
	cells []string
	idx   map[string]int
	probs []string
}

func (r *row) problem(format string, args ...any) {
	msg := fmt.Sprintf("record %d: ", r.num) + fmt.Sprintf(format, args...)
	r.probs = append(r.probs, msg)
}

func (r *row) str(col string) string {
	return r.cells[r.idx[col]]
}

func (r *row) integer(col string) int {
	s := r.str(col)
	res, err := strconv.Atoi(s)
	if err != nil {
		r.problem("%s: cannot parse '%s' as an integer", col, s)
	}
	return res
}

func (r *row) natural(col string) uint32 {
	s := r.str(col)
	res, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		r.problem("%s: cannot parse '%s' as a non-negative integer", col, s)
	}
	return uint32(res)
}

func (r *row) number(col string) float32 {
	s := decimal(r.str(col))
	res, err := strconv.ParseFloat(s, 32)
	if err != nil {
		r.problem("%s: cannot parse '%s' as a number", col, s)
		return float32(math.NaN())
	}
	return float32(res)
}

// readTable reads a semicolon separated file with the given header.
// Records with a wrong number of fields are reported in the returned
// problems and skipped.
func readTable(path string, header []string) ([]*row, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, CSVOpenError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = separator
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	got, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, CSVHeaderError(path, header, nil)
	}
	if err != nil {
		return nil, nil, CSVRecordError(path, err)
	}
	if len(got) > 0 {
		got[0] = strings.TrimPrefix(got[0], "\ufeff")
	}
	for i := range got {
		got[i] = Normalize(got[i])
	}
	if !sameHeader(header, got) {
		return nil, nil, CSVHeaderError(path, header, got)
	}

	idx := make(map[string]int, len(header))
	for i, v := range header {
		idx[v] = i
	}

	var rows []*row
	var probs []string
	var num int
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, CSVRecordError(path, err)
		}
		num++
		if len(rec) != len(header) {
			probs = append(probs,
				fmt.Sprintf("record %d: expected %d fields, found %d",
					num, len(header), len(rec)))
			continue
		}
		for i := range rec {
			rec[i] = Normalize(rec[i])
		}
		rows = append(rows, &row{num: num, cells: rec, idx: idx})
	}
	return rows, probs, nil
}

func sameHeader(want, got []string) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if !strings.EqualFold(want[i], got[i]) {
			return false
		}
	}
	return true
}
