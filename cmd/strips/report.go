package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gopherplan/strips/search"
)

// logProgress logs one line each time the running search's progress metric
// advances: max_depth for BFS, max_f_value for A*/Dijkstra.
func logProgress(log *logrus.Entry, algorithmArg string, framework *search.Framework, start time.Time) {
	stats := framework.Stats()
	elapsed := time.Since(start).Milliseconds()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	memKB := mem.Alloc / 1024

	switch algorithmArg {
	case "bfs":
		log.Infof("[depth=%d expanded=%d generated=%d %d ms; %d KB]",
			stats.MaxDepth, stats.Expanded, stats.Generated, elapsed, memKB)
	default:
		log.Infof("[f=%.0f expanded=%d generated=%d evaluated=%d %d ms; %d KB]",
			stats.MaxFValue, stats.Expanded, stats.Generated, stats.Evaluated, elapsed, memKB)
	}
}

// printResult prints the plan (or the reason there isn't one) to stdout.
func printResult(result *search.Result) {
	switch result.Status {
	case search.Solved:
		fmt.Printf("Found a plan of length %d:\n", len(result.Plan))
		for _, a := range result.Plan {
			fmt.Println(a.String())
		}
	case search.Unsolvable:
		fmt.Println("Problem is provably unsolvable")
	case search.Aborted:
		fmt.Println("Search was aborted")
	}
}
