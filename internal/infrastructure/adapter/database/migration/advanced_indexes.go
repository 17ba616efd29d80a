package migration

import (
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes that GORM tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// Partial index for the live reservations a release or commit looks up
		name: "idx_reservations_reserved",
		sql: `CREATE INDEX IF NOT EXISTS idx_reservations_reserved
			ON reservations (user_id, created_at)
			WHERE status = 'reserved'`,
	},
	{
		// Partial index for the liability queue
		name: "idx_reconciliation_items_open",
		sql: `CREATE INDEX IF NOT EXISTS idx_reconciliation_items_open
			ON reconciliation_items (created_at DESC)
			WHERE status = 'open'`,
	},
	{
		name: "idx_spend_pulls_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_spend_pulls_pending
			ON spend_pulls (created_at)
			WHERE status = 'pending'`,
	},
	{
		// Keyed sells are recorded at most once per user
		name: "idx_orders_user_idempotency",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_user_idempotency
			ON orders (user_id, idempotency_key)
			WHERE idempotency_key <> ''`,
	},
	{
		// BRIN suits the append-only ledger
		name: "idx_orders_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_orders_created_at_brin
			ON orders USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates the partial and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies storage settings. Failures are logged and skipped.
func (m *AdvancedIndexManager) CreatePerformanceTweaks() {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []string{
		// budgets is updated in place on every reservation
		`ALTER TABLE budgets SET (fillfactor = 80)`,
		`ALTER TABLE orders SET (fillfactor = 100)`,
		`ALTER TABLE orders ALTER COLUMN user_id SET STATISTICS 1000`,
	}
	for _, stmt := range tweaks {
		if err := m.db.Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
