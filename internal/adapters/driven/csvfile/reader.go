// Package csvfile reads CSV content files into raw domain records.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.RecordReader = (*Reader)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader parses comma-separated files with a header row.
type Reader struct {
	comma rune
}

// New creates a reader for comma-separated files.
func New() *Reader {
	return &Reader{comma: ','}
}

// Read parses the file at path.
func (r *Reader) Read(path string) ([]domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ReadError{Path: path, Kind: domain.ErrIO, Err: err}
	}

	records, err := r.Parse(data)
	if err != nil {
		return nil, &domain.ReadError{Path: path, Kind: domain.ErrParse, Err: err}
	}
	return records, nil
}

// Parse reads records from CSV bytes. A leading BOM is stripped, values
// are trimmed, and rows that are entirely blank are skipped.
func (r *Reader) Parse(data []byte) ([]domain.Record, error) {
	cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	cr.Comma = r.comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // ragged rows are padded or truncated against the header

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	header = trimAll(header)

	var records []domain.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row = trimAll(row)
		if blank(row) {
			continue
		}

		line, _ := cr.FieldPos(0)
		records = append(records, domain.NewRecord(line, header, row))
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

func trimAll(values []string) []string {
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	return values
}

func blank(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
