package main

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

type System struct {
	root            string
	implementations []Implementation
	style           ChartStyle
	storage         *Storage
}

type SysInfo struct {
	Arch     string
	Hostname string
	Platform string
	CPUCount int
	CPUFreq  float64
	RAM      float64
}

func HostStat() SysInfo {
	info := SysInfo{Arch: runtime.GOARCH}
	if hostStat, err := host.Info(); err == nil {
		info.Hostname = hostStat.Hostname
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		totalFreq := 0.0
		for _, cpu := range cpuStat {
			totalFreq += cpu.Mhz
		}
		info.CPUCount = len(cpuStat)
		info.CPUFreq = totalFreq / float64(len(cpuStat)) * 1000
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = float64(vmStat.Total) / 1024 / 1024 / 1024
	}
	return info
}

func (s *System) resultsDir() string { return filepath.Join(s.root, "results") }

func (s *System) sourcePath(impl Implementation) string {
	return filepath.Join(s.resultsDir(), filepath.FromSlash(impl.Source))
}

func (s *System) graphicsDir(impl Implementation) string {
	return filepath.Join(s.resultsDir(), impl.Name, "graphics")
}

// Run charts every implementation in order. The first failure aborts the run.
func (s *System) Run(ctx context.Context) error {
	Logger.Infof("start charts generation at %v", s.resultsDir())

	info := HostStat()
	Logger.Infof("host stat: %+v", info)

	var db *sql.DB
	if s.storage != nil {
		var err error
		db, err = s.storage.ConnectDb()
		if err != nil {
			return fmt.Errorf("unable to connect to the charts db: %w", err)
		}
		defer db.Close()
		err = s.storage.InitChartsDb(ctx, db, map[string]any{
			"root":     s.root,
			"arch":     info.Arch,
			"hostname": info.Hostname,
			"platform": info.Platform,
			"ram":      info.RAM,
			"cpu":      info.CPUCount,
			"freq":     info.CPUFreq,
		})
		if err != nil {
			return fmt.Errorf("unable to initialize charts db: %w", err)
		}
	}

	for _, impl := range s.implementations {
		if err := ctx.Err(); err != nil {
			return err
		}
		files, err := s.RunImplementation(ctx, db, impl)
		if err != nil {
			return err
		}
		Logger.Infof("generated %v charts for %v", len(files), impl.Name)
	}
	return nil
}

func (s *System) RunImplementation(ctx context.Context, db *sql.DB, impl Implementation) ([]string, error) {
	source := s.sourcePath(impl)
	table, err := LoadTable(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load measurements for %v: %w", impl.Name, err)
	}
	Logger.Infof("loaded %v: %v rows, columns %v", source, table.Len(), table.Columns)

	files, err := GenerateCharts(table, impl.Metrics, impl.Name, s.graphicsDir(impl), s.style)
	if err != nil {
		return nil, err
	}

	if db == nil {
		return files, nil
	}
	measurements, err := CollectMeasurements(table, impl.Name, impl.Metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to collect measurements for %v: %w", impl.Name, err)
	}
	if err := s.storage.UpdateMeasurementsDb(ctx, db, measurements); err != nil {
		return nil, fmt.Errorf("failed to update measurements for %v: %w", impl.Name, err)
	}
	if err := s.storage.UploadChartsDb(ctx, db, impl.Name, files); err != nil {
		return nil, fmt.Errorf("failed to upload charts for %v: %w", impl.Name, err)
	}
	Logger.Infof("published %v measurements and %v charts for %v", len(measurements), len(files), impl.Name)
	return files, nil
}
