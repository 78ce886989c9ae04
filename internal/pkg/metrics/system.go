package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 5 * time.Second

var (
	cpuUsageGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	memoryUsedGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "Host memory used in bytes",
		},
	)

	heapAllocGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Go heap allocation in bytes",
		},
	)
)

// StartSystemMetricsCollector снимает показатели хоста и рантайма раз в
// collectInterval. Горутина живет до конца процесса.
func StartSystemMetricsCollector() {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for range ticker.C {
			collect()
		}
	}()
}

func collect() {
	if percents, err := cpu.Percent(time.Second, false); err == nil && len(percents) > 0 {
		cpuUsageGauge.Set(percents[0])
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		memoryUsedGauge.Set(float64(vm.Used))
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	heapAllocGauge.Set(float64(stats.Alloc))
}
