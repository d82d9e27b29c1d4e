// benchmark.go
// A reusable benchmarking module for Chopper
// Measures execution time and memory usage for a wrapped run

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Run wraps f to measure its runtime and memory usage, writing the report
// to out. The report is printed even when f fails; f's error is returned.
func Run(label string, out io.Writer, f func() error) error {
	fmt.Fprintf(out, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(out, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	host, err := os.Hostname()
	if err == nil {
		fmt.Fprintln(out, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(out, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(out, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	runErr := f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	// Report resource usage
	fmt.Fprintf(out, "[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(out, "[Benchmark] Total Allocated: %.2f MB\n", mb(memEnd.TotalAlloc-memStart.TotalAlloc))
	fmt.Fprintf(out, "[Benchmark] Heap In Use: %.2f MB\n", mb(memEnd.HeapAlloc))
	fmt.Fprintf(out, "[Benchmark] Total System Memory Allocated: %.2f MB\n", mb(memEnd.Sys))
	fmt.Fprintf(out, "[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	if runErr != nil {
		fmt.Fprintf(out, "[Benchmark] Run failed: %v\n", runErr)
	}
	fmt.Fprintln(out, "[Benchmark] ----------------------------------------")
	return runErr
}

func mb(b uint64) float64 { return float64(b) / 1024.0 / 1024.0 }
