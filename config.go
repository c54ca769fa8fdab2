package main

import (
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Root        string
	Style       ChartStyle
	DbUrl       string
	DbAuthToken string
}

// LoadConfig reads the environment, seeding it from a .env file in the working
// directory when one exists. Variables already set in the process win.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		Logger.Warnf("failed to load .env file: %v", err)
	}
	return Config{
		Root: StringEnv("CHARTS_ROOT", "."),
		Style: ChartStyle{
			Width:  FloatEnv("CHARTS_WIDTH_INCH", DefaultChartStyle.Width),
			Height: FloatEnv("CHARTS_HEIGHT_INCH", DefaultChartStyle.Height),
		},
		DbUrl:       StringEnv("CHARTS_DB_URL", ""),
		DbAuthToken: StringEnv("CHARTS_DB_AUTH_TOKEN", ""),
	}
}

func StringEnv(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

func FloatEnv(key string, def float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed <= 0 {
		Logger.Warnf("invalid value %q for %v, fallback to %v", value, key, def)
		return def
	}
	return parsed
}
