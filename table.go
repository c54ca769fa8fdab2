package main

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

// Table holds a measurements CSV verbatim: header order for columns, file
// order for rows.
type Table struct {
	Columns []string
	Rows    [][]string
	index   map[string]int
}

func LoadTable(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("measurements file not found: %v: %w", path, os.ErrNotExist)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("measurements path %v is a directory", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	table, err := ReadTable(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", path, err)
	}
	return table, nil
}

func ReadTable(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no header row")
	}
	columns := records[0]
	columns[0] = strings.TrimPrefix(columns[0], "\ufeff")
	index := make(map[string]int, len(columns))
	for i, column := range columns {
		if _, ok := index[column]; !ok {
			index[column] = i
		}
	}
	return &Table{Columns: columns, Rows: records[1:], index: index}, nil
}

func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

func (t *Table) Column(column string) []string {
	i, ok := t.index[column]
	if !ok {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[i])
	}
	return values
}

// Floats parses column as numbers. Blank cells become NaN.
func (t *Table) Floats(column string) ([]float64, error) {
	i, ok := t.index[column]
	if !ok {
		return nil, fmt.Errorf("unknown column %v", column)
	}
	values := make([]float64, 0, len(t.Rows))
	for row, record := range t.Rows {
		cell := strings.TrimSpace(record[i])
		if cell == "" {
			values = append(values, math.NaN())
			continue
		}
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %v, row %v: %w", column, row+1, err)
		}
		values = append(values, value)
	}
	return values, nil
}
