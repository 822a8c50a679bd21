// Package csvfile loads block tables from plain or gzip-compressed CSV files.
package csvfile

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
)

var gzipMagic = []byte{0x1f, 0x8b}

// naTokens are the lower-cased markers read as missing values; the set matches
// the defaults of pandas read_csv.
var naTokens = map[string]struct{}{
	"":         {},
	"#n/a":     {},
	"#n/a n/a": {},
	"#na":      {},
	"-1.#ind":  {},
	"-1.#qnan": {},
	"-nan":     {},
	"1.#ind":   {},
	"1.#qnan":  {},
	"<na>":     {},
	"n/a":      {},
	"na":       {},
	"nan":      {},
	"null":     {},
	"none":     {},
}

// Read loads the CSV file at path. Gzip input is detected by its magic bytes.
func Read(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// Decode parses a CSV document with a header row from r.
func Decode(r io.Reader) (*model.Table, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("sniff input: %w", err)
	}

	var src io.Reader = br
	if bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	cr := csv.NewReader(src)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	t, err := model.NewTable(header)
	if err != nil {
		return nil, err
	}

	row := make([]model.Value, len(header))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		for i, cell := range rec {
			row[i] = ParseCell(cell)
		}
		if err := t.Append(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ParseCell converts a raw CSV field into a cell. Empty fields and the usual
// missing-value markers become null; non-finite numbers are treated as missing.
func ParseCell(raw string) model.Value {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	if _, ok := naTokens[lower]; ok {
		return model.Null()
	}
	switch lower {
	case "true":
		return model.Bool(true)
	case "false":
		return model.Bool(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsInf(f, 0) {
			return model.Null()
		}
		return model.Number(f)
	}
	return model.Text(raw)
}
