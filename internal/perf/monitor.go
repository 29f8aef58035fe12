// Package perf watches the frame rate and captures a CPU profile and an
// execution trace when it drops.
package perf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultThreshold is the frame rate below which a capture starts
	DefaultThreshold = 55.0

	window = 0.5
)

// Monitor measures frames per second over half-second windows
type Monitor struct {
	mu        sync.Mutex
	capturing bool

	dir string
	log zerolog.Logger

	Threshold float64
	Warmup    time.Duration
	Cooldown  time.Duration
	Duration  time.Duration

	frames  int
	elapsed float64
	fps     float64
	uptime  time.Duration

	lastCapture time.Duration
	captured    bool

	// capture writes the profiles; replaced in tests
	capture func(base string) error
}

// NewMonitor creates a monitor writing profiles under dir.
// An empty dir measures the frame rate without ever capturing.
func NewMonitor(dir string, logger zerolog.Logger) *Monitor {
	m := &Monitor{
		dir:       dir,
		log:       logger,
		Threshold: DefaultThreshold,
		Warmup:    3 * time.Second,
		Cooldown:  10 * time.Second,
		Duration:  5 * time.Second,
		fps:       60,
	}
	m.capture = m.writeProfiles
	return m
}

// FPS returns the rate measured over the last full window
func (m *Monitor) FPS() float64 {
	return m.fps
}

// Frame records one frame of dt seconds. reason describes the load and is
// only called when a capture starts.
func (m *Monitor) Frame(dt float64, reason func() string) {
	m.frames++
	m.elapsed += dt
	m.uptime += time.Duration(dt * float64(time.Second))
	if m.elapsed < window {
		return
	}

	m.fps = float64(m.frames) / m.elapsed
	m.frames = 0
	m.elapsed = 0

	if m.dir == "" || m.fps >= m.Threshold || m.uptime < m.Warmup {
		return
	}
	if m.captured && m.uptime-m.lastCapture < m.Cooldown {
		return
	}

	m.mu.Lock()
	busy := m.capturing
	m.capturing = true
	m.mu.Unlock()
	if busy {
		return
	}

	m.captured = true
	m.lastCapture = m.uptime

	base := fmt.Sprintf("fps-drop-%s-fps%.0f-%s", time.Now().Format("20060102-150405"), m.fps, reason())
	m.log.Warn().Float64("fps", m.fps).Str("profile", base).Msg("frame rate drop, capturing profile")

	go func() {
		defer func() {
			m.mu.Lock()
			m.capturing = false
			m.mu.Unlock()
		}()
		if err := m.capture(base); err != nil {
			m.log.Error().Err(err).Msg("profile capture")
		}
	}()
}

// Capturing reports whether a capture is in progress
func (m *Monitor) Capturing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.capturing
}

func (m *Monitor) writeProfiles(base string) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("profile dir: %w", err)
	}

	var wg sync.WaitGroup
	var cpuErr, traceErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		cpuErr = m.captureCPU(filepath.Join(m.dir, base+".cpu.prof"))
	}()
	go func() {
		defer wg.Done()
		traceErr = m.captureTrace(filepath.Join(m.dir, base+".trace"))
	}()
	wg.Wait()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.log.Info().
		Str("profile", base).
		Uint64("heap_kb", ms.HeapAlloc/1024).
		Uint32("num_gc", ms.NumGC).
		Msg("profile saved")

	if cpuErr != nil {
		return cpuErr
	}
	return traceErr
}

func (m *Monitor) captureCPU(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(m.Duration)
	pprof.StopCPUProfile()
	return nil
}

func (m *Monitor) captureTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(m.Duration)
	trace.Stop()
	return nil
}
