package main

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Storage publishes measurements and rendered charts to a libsql database.
type Storage struct {
	Url       string
	AuthToken string
}

type Measurement struct {
	Implementation string
	Scenario       string
	Metric         string
	Value          float64
}

func (s *Storage) ConnectDb() (*sql.DB, error) {
	link := s.Url
	if s.AuthToken != "" {
		parsed, err := url.Parse(s.Url)
		if err != nil {
			return nil, fmt.Errorf("invalid db url: %w", err)
		}
		query := parsed.Query()
		query.Set("authToken", s.AuthToken)
		parsed.RawQuery = query.Encode()
		link = parsed.String()
	}
	return sql.Open("libsql", link)
}

// parametersArgs flattens meta into (name, value) pairs prefixed with the
// current time and returns the matching VALUES placeholders.
func parametersArgs(now time.Time, meta map[string]any) (string, []any) {
	keys := make([]string, 0, len(meta))
	for key := range meta {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	parameters := make([]any, 0, 2*(len(keys)+1))
	parameters = append(parameters, "time", now.Format("2006-01-02 15:04:05"))
	for _, key := range keys {
		parameters = append(parameters, key, fmt.Sprintf("%v", meta[key]))
	}
	placeholders := strings.Join(slices.Repeat([]string{"(?, ?)"}, len(parameters)/2), ", ")
	return placeholders, parameters
}

func (s *Storage) InitChartsDb(ctx context.Context, db *sql.DB, meta map[string]any) error {
	_, err := db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS parameters (name TEXT PRIMARY KEY, value)")
	if err != nil {
		return err
	}
	placeholders, parameters := parametersArgs(time.Now(), meta)
	_, err = db.ExecContext(
		ctx,
		fmt.Sprintf("INSERT INTO parameters VALUES %v ON CONFLICT (name) DO UPDATE SET value = excluded.value", placeholders),
		parameters...,
	)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS measurements (
		implementation TEXT,
		scenario TEXT,
		metric TEXT,
		value REAL,
		PRIMARY KEY (implementation, scenario, metric)
	)`)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS charts (
		implementation TEXT,
		metric TEXT,
		filename TEXT,
		content BLOB,
		PRIMARY KEY (implementation, metric)
	)`)
	if err != nil {
		return err
	}
	Logger.Infof("initialized charts database with meta %v", meta)
	return nil
}

func (s *Storage) UpdateMeasurementsDb(ctx context.Context, db *sql.DB, measurements []Measurement) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, m := range measurements {
		_, err = tx.ExecContext(
			ctx,
			"INSERT OR REPLACE INTO measurements VALUES (?, ?, ?, ?)",
			m.Implementation,
			m.Scenario,
			m.Metric,
			m.Value,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Storage) UploadChartsDb(ctx context.Context, db *sql.DB, implementation string, files []string) error {
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		name := filepath.Base(file)
		_, err = db.ExecContext(
			ctx,
			"INSERT OR REPLACE INTO charts VALUES (?, ?, ?, ?)",
			implementation,
			strings.TrimSuffix(name, filepath.Ext(name)),
			name,
			data,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// CollectMeasurements returns one measurement per scenario for each metric of
// the list present in table. Blank cells are left out.
func CollectMeasurements(table *Table, implementation string, metrics []string) ([]Measurement, error) {
	scenario, ok := scenarioColumn(table)
	if !ok {
		return nil, fmt.Errorf("no scenario column among %v", ScenarioColumns)
	}
	scenarios := table.Column(scenario)
	measurements := make([]Measurement, 0)
	for _, metric := range metrics {
		if !table.Has(metric) {
			continue
		}
		values, err := table.Floats(metric)
		if err != nil {
			return nil, err
		}
		for i, value := range values {
			if math.IsNaN(value) {
				continue
			}
			measurements = append(measurements, Measurement{
				Implementation: implementation,
				Scenario:       scenarios[i],
				Metric:         metric,
				Value:          value,
			})
		}
	}
	return measurements, nil
}
