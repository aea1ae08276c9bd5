// Package csvparser turns raw CSV text into rows of string cells.
//
// The scanner is deliberately lenient: it does not check that rows have the
// same number of cells, a quote may open anywhere inside a cell, and rows
// made only of blank cells are skipped. Column mapping decides later what a
// short row means.
package csvparser

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse scans text left to right and returns its non-blank rows.
//
// Inside a quoted section a doubled quote ("") yields one literal quote; any
// other quote toggles quoting and is not emitted. Outside quotes a comma
// ends a cell and \n, \r or \r\n ends a row. A final row without a line
// terminator is kept.
func Parse(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	endRow := func() {
		row = append(row, cell.String())
		cell.Reset()
		if !isBlank(row) {
			rows = append(rows, row)
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]

		switch {
		case ch == '"' && inQuotes && i+1 < len(text) && text[i+1] == '"':
			cell.WriteByte('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			row = append(row, cell.String())
			cell.Reset()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			cell.WriteByte(ch)
		}
	}
	endRow()

	return rows
}

// ParseReader reads all of r, drops a leading UTF-8 byte order mark and
// parses the rest with Parse.
func ParseReader(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV input: %w", err)
	}
	return Parse(string(bytes.TrimPrefix(data, utf8BOM))), nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
