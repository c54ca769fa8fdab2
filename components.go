package main

import "path"

// Implementation describes the measurements one algorithm variant writes and
// the metrics charted for it. Source is relative to the results root.
type Implementation struct {
	Name    string
	Source  string
	Metrics []string
}

var metricsCommon = []string{
	"tempo_ms",
	"memoria_kb",
	"qualidade",
	"n_intervalos_solucao",
}

var Implementations = []Implementation{
	{
		Name:    "guloso",
		Source:  path.Join("guloso", "file", "metricas_guloso.csv"),
		Metrics: metricsCommon,
	},
	{
		Name:    "backtracking",
		Source:  path.Join("backtracking", "file", "metricas_backtracking.csv"),
		Metrics: append(append([]string{}, metricsCommon...), "nos_visitados"),
	},
}
