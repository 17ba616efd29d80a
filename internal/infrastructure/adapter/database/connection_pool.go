package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"gorm.io/gorm"
)

// PoolStatsRecorder receives connection pool snapshots, e.g. to export them as gauges
type PoolStatsRecorder interface {
	RecordPoolStats(stats sql.DBStats)
}

// ConnectionPoolMonitor samples the database connection pool on an interval
type ConnectionPoolMonitor struct {
	db       *gorm.DB
	logger   coreport.Logger
	recorder PoolStatsRecorder
	last     sql.DBStats
	mutex    sync.RWMutex
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor. recorder may be nil.
func NewConnectionPoolMonitor(db *gorm.DB, logger coreport.Logger, recorder PoolStatsRecorder) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		recorder: recorder,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start takes a first sample and keeps sampling every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("invalid pool monitor interval: %s", interval)
	}
	if err := m.collectMetrics(); err != nil {
		return err
	}

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring goroutine and waits for it to exit
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
	select {
	case <-m.done:
	case <-time.After(time.Second):
	}
}

// GetMetrics returns the most recent pool snapshot
func (m *ConnectionPoolMonitor) GetMetrics() sql.DBStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.last
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	m.last = stats
	m.mutex.Unlock()

	if m.recorder != nil {
		m.recorder.RecordPoolStats(stats)
	}

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return nil
}

// Ping checks that the database answers within the context deadline
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
