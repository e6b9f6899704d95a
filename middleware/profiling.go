package middleware

import (
	"fmt"
	"sync"

	"github.com/grafana/pyroscope-go"

	"github.com/duynhne/exam-service/config"
)

var (
	profilerMu sync.Mutex
	profiler   *pyroscope.Profiler
)

// InitProfiling starts continuous profiling to the configured Pyroscope server.
func InitProfiling(cfg *config.Config) error {
	profilerMu.Lock()
	defer profilerMu.Unlock()

	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.Service.Name,
		ServerAddress:   cfg.Profiling.Endpoint,
		Tags: map[string]string{
			"version": cfg.Service.Version,
			"env":     cfg.Service.Env,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return fmt.Errorf("start pyroscope: %w", err)
	}
	profiler = p
	return nil
}

// StopProfiling flushes and stops the profiler, if running.
func StopProfiling() {
	profilerMu.Lock()
	defer profilerMu.Unlock()

	if profiler != nil {
		_ = profiler.Stop()
		profiler = nil
	}
}
