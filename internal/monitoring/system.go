package monitoring

import (
	"log/slog"
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
)

// SystemStats reports host memory and Go runtime figures. Host memory is
// omitted when the platform does not expose it.
func SystemStats() map[string]interface{} {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	stats := map[string]interface{}{
		"goroutines":    runtime.NumGoroutine(),
		"heap_alloc_mb": float64(ms.HeapAlloc) / 1024 / 1024,
		"num_gc":        ms.NumGC,
		"num_cpu":       runtime.NumCPU(),
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		slog.Warn("Failed to get memory statistics", "error", err)
		return stats
	}
	stats["memory_used_percent"] = vm.UsedPercent
	stats["memory_total_mb"] = float64(vm.Total) / 1024 / 1024
	return stats
}
