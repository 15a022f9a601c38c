package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// StepBudget is the time one simulation step may take at 60 TPS.
const StepBudget = time.Second / 60

// PerformanceMonitor tracks simulation step timing and roster sizes.
type PerformanceMonitor struct {
	// Step metrics
	frameCount     atomic.Uint64
	frameTime      atomic.Uint64 // nanoseconds, last step
	totalFrameTime atomic.Uint64 // nanoseconds, all steps since Reset

	// Phase metrics
	enemyUpdateTime   atomic.Uint64
	hitResolutionTime atomic.Uint64
	levelBuildTime    atomic.Uint64

	// Game-specific metrics
	enemiesActive atomic.Int32
	potionsActive atomic.Int32
	enemiesKilled atomic.Uint64
	level         atomic.Int32

	// Statistics
	mutex          sync.RWMutex
	avgFrameTime   float64
	peakFrameTime  uint64
	startTime      time.Time
	enableDetailed bool
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
	}
}

// FrameTimer measures one simulation step.
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.recordFrame(time.Since(ft.startTime))
}

func (pm *PerformanceMonitor) recordFrame(d time.Duration) {
	nanos := uint64(d.Nanoseconds())
	pm.frameTime.Store(nanos)
	total := pm.totalFrameTime.Add(nanos)
	count := pm.frameCount.Add(1)

	if !pm.DetailedEnabled() {
		return
	}
	pm.mutex.Lock()
	pm.avgFrameTime = float64(total) / float64(count)
	if nanos > pm.peakFrameTime {
		pm.peakFrameTime = nanos
	}
	pm.mutex.Unlock()
}

// DetailedEnabled reports whether average and peak tracking is on.
func (pm *PerformanceMonitor) DetailedEnabled() bool {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return pm.enableDetailed
}

// UpdateGameMetrics records roster sizes after a step.
func (pm *PerformanceMonitor) UpdateGameMetrics(enemies, potions, level int) {
	pm.enemiesActive.Store(int32(enemies))
	pm.potionsActive.Store(int32(potions))
	pm.level.Store(int32(level))
}

// AddKills counts defeated enemies.
func (pm *PerformanceMonitor) AddKills(n int) {
	if n > 0 {
		pm.enemiesKilled.Add(uint64(n))
	}
}

// GameMetrics is a snapshot for HUD display.
type GameMetrics struct {
	EnemiesActive int32
	PotionsActive int32
	EnemiesKilled uint64
	Level         int32
	StepsPerSec   float64
	AvgStepTime   time.Duration
	PeakStepTime  time.Duration
	MemoryUsageMB uint64

	// Last measured duration of each profiled phase.
	EnemyUpdateTime   time.Duration
	HitResolutionTime time.Duration
	LevelBuildTime    time.Duration
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() GameMetrics {
	pm.mutex.RLock()
	avg := pm.avgFrameTime
	peak := pm.peakFrameTime
	pm.mutex.RUnlock()

	stepsPerSec := 0.0
	if frameTime := pm.frameTime.Load(); frameTime > 0 {
		stepsPerSec = float64(time.Second) / float64(frameTime)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return GameMetrics{
		EnemiesActive: pm.enemiesActive.Load(),
		PotionsActive: pm.potionsActive.Load(),
		EnemiesKilled: pm.enemiesKilled.Load(),
		Level:         pm.level.Load(),
		StepsPerSec:   stepsPerSec,
		AvgStepTime:   time.Duration(avg),
		PeakStepTime:  time.Duration(peak),
		MemoryUsageMB: memStats.Alloc / 1024 / 1024,

		EnemyUpdateTime:   time.Duration(pm.enemyUpdateTime.Load()),
		HitResolutionTime: time.Duration(pm.hitResolutionTime.Load()),
		LevelBuildTime:    time.Duration(pm.levelBuildTime.Load()),
	}
}

// GetDetailedStats returns a flat summary suitable for structured logging.
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]interface{}{
		"uptime_seconds":       time.Since(pm.startTime).Seconds(),
		"step_count":           pm.frameCount.Load(),
		"avg_step_time_ms":     pm.avgFrameTime / 1e6,
		"peak_step_time_ms":    float64(pm.peakFrameTime) / 1e6,
		"enemy_update_time_ms": float64(pm.enemyUpdateTime.Load()) / 1e6,
		"hit_resolution_ms":    float64(pm.hitResolutionTime.Load()) / 1e6,
		"level_build_time_ms":  float64(pm.levelBuildTime.Load()) / 1e6,
		"enemies_active":       pm.enemiesActive.Load(),
		"potions_active":       pm.potionsActive.Load(),
		"enemies_killed":       pm.enemiesKilled.Load(),
		"floor":                pm.level.Load(),
		"memory_alloc_mb":      memStats.Alloc / 1024 / 1024,
		"gc_cycles":            memStats.NumGC,
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts reports a step that overran StepBudget.
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)

	frameTime := time.Duration(pm.frameTime.Load())
	if frameTime > StepBudget {
		alerts = append(alerts, PerformanceAlert{
			Type:      "slow_step",
			Message:   "Simulation step exceeded its frame budget",
			Value:     frameTime.Seconds() * 1000,
			Threshold: StepBudget.Seconds() * 1000,
			Timestamp: time.Now(),
		})
	}

	return alerts
}

// EnableDetailedLogging enables/disables average and peak tracking
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Reset clears every counter; the game calls it when a new run starts.
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.totalFrameTime.Store(0)
	pm.enemyUpdateTime.Store(0)
	pm.hitResolutionTime.Store(0)
	pm.levelBuildTime.Store(0)
	pm.enemiesActive.Store(0)
	pm.potionsActive.Store(0)
	pm.enemiesKilled.Store(0)
	pm.level.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.peakFrameTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}

// ProfiledFunction wraps a function with performance timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	switch name {
	case "enemy_update":
		pm.enemyUpdateTime.Store(uint64(duration.Nanoseconds()))
	case "hit_resolution":
		pm.hitResolutionTime.Store(uint64(duration.Nanoseconds()))
	case "level_build":
		pm.levelBuildTime.Store(uint64(duration.Nanoseconds()))
	}

	return duration
}
