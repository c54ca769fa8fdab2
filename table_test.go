package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.Nil(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metricas.csv")
	writeFile(t, path, "cenario,tempo_ms,memoria_kb\npequeno,0.0120,1024\nmedio,0.0450,2048\n")

	table, err := LoadTable(path)
	require.Nil(t, err)
	require.Equal(t, []string{"cenario", "tempo_ms", "memoria_kb"}, table.Columns)
	require.Equal(t, 2, table.Len())
	require.True(t, table.Has("tempo_ms"))
	require.False(t, table.Has("nos_visitados"))
	require.Equal(t, []string{"pequeno", "medio"}, table.Column("cenario"))
	require.Nil(t, table.Column("nos_visitados"))

	values, err := table.Floats("memoria_kb")
	require.Nil(t, err)
	require.Equal(t, []float64{1024, 2048}, values)
}

func TestLoadTableNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "metricas_guloso.csv")
	_, err := LoadTable(path)
	require.NotNil(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.Contains(t, err.Error(), path)
}

func TestLoadTableDirectory(t *testing.T) {
	_, err := LoadTable(t.TempDir())
	require.NotNil(t, err)
	require.False(t, errors.Is(err, os.ErrNotExist))
}

func TestReadTableMalformed(t *testing.T) {
	_, err := ReadTable(strings.NewReader("scenario,tempo_ms\nA,1,2\n"))
	require.NotNil(t, err)

	_, err = ReadTable(strings.NewReader(""))
	require.NotNil(t, err)
}

func TestReadTableHeaderOnly(t *testing.T) {
	table, err := ReadTable(strings.NewReader("scenario,tempo_ms\n"))
	require.Nil(t, err)
	require.Equal(t, 0, table.Len())
	require.True(t, table.Has("tempo_ms"))
}

func TestReadTableByteOrderMark(t *testing.T) {
	table, err := ReadTable(strings.NewReader("\ufeffscenario,tempo_ms\nA,10\n"))
	require.Nil(t, err)
	require.True(t, table.Has("scenario"))
}

func TestFloatsInvalid(t *testing.T) {
	table, err := ReadTable(strings.NewReader("scenario,tempo_ms\nA, 10 \nB,fast\n"))
	require.Nil(t, err)

	_, err = table.Floats("tempo_ms")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "row 2")

	_, err = table.Floats("memoria_kb")
	require.NotNil(t, err)
}

func TestFloatsBlankCells(t *testing.T) {
	table, err := ReadTable(strings.NewReader("scenario,tempo_ms,nos_visitados\nA,1,120\nB,2,\nC,3,  \n"))
	require.Nil(t, err)

	values, err := table.Floats("nos_visitados")
	require.Nil(t, err)
	require.Len(t, values, 3)
	require.Equal(t, 120.0, values[0])
	require.True(t, math.IsNaN(values[1]))
	require.True(t, math.IsNaN(values[2]))
}
