package migrate

import (
	"context"

	"pressdesk/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool
	CreateChecks           bool
	CreateIndexes          bool
	CreateFKsViaSQL        bool
	CreateUpdatedAtTrigger bool
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
	}
}

func MigratePressDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("starting press shop database migration")

	if opt.CreateExtensions {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("failed to enable pgcrypto extension", zap.Error(err))
			return err
		}
	}

	log.Info("creating tables")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentRecord{},
		&models.Transaction{},
		&models.Settings{},
	); err != nil {
		log.Error("failed to create tables", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("failed to create updated_at trigger", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		log.Info("creating CHECK constraints")

		// Statuses are TEXT, so the allowed sets are enforced here.
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('PENDING','PROCESSING','READY','DELIVERED'));
`).Error; err != nil {
			log.Error("failed to create CHECK for order status", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_priority_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_priority_allowed
  CHECK (priority IN ('URGENT','NORMAL','LOW'));
`).Error; err != nil {
			log.Error("failed to create CHECK for order priority", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_press_stage_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_press_stage_allowed
  CHECK (press_stage IS NULL OR press_stage IN ('PLATE','PRINT','BIND','COMPLETE'));
`).Error; err != nil {
			log.Error("failed to create CHECK for press stage", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for item quantity", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_rate_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_rate_gt_zero
  CHECK (rate > 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for item rate", zap.Error(err))
			return err
		}

		// grand_total is clamped at zero in code; the DB agrees. due_amount is
		// intentionally unconstrained: negative due = customer credit.
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_grand_total_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_grand_total_non_negative
  CHECK (grand_total >= 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for grand_total", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE transactions
  DROP CONSTRAINT IF EXISTS chk_transactions_type_allowed;
ALTER TABLE transactions
  ADD CONSTRAINT chk_transactions_type_allowed
  CHECK (type IN ('INCOME','EXPENSE'));
`).Error; err != nil {
			log.Error("failed to create CHECK for transaction type", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		log.Info("creating indexes")

		if err := db.WithContext(ctx).Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_orders_workspace_number
ON orders (workspace_id, number);
`).Error; err != nil {
			log.Error("failed to create unique index ux_orders_workspace_number", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_workspace_date
ON orders (workspace_id, order_date DESC);
`).Error; err != nil {
			log.Error("failed to create index ix_orders_workspace_date", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_workspace_status
ON orders (workspace_id, status);
`).Error; err != nil {
			log.Error("failed to create index ix_orders_workspace_status", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_transactions_workspace_date
ON transactions (workspace_id, date DESC);
`).Error; err != nil {
			log.Error("failed to create index ix_transactions_workspace_date", zap.Error(err))
			return err
		}
	}

	if opt.CreateFKsViaSQL {
		log.Info("creating foreign keys")

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("failed to create FK order_items.order_id -> orders.id", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE payment_records
  DROP CONSTRAINT IF EXISTS fk_payment_records_order,
  ADD CONSTRAINT fk_payment_records_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("failed to create FK payment_records.order_id -> orders.id", zap.Error(err))
			return err
		}
	}

	log.Info("press shop database migration finished")
	return nil
}
