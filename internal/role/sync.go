package role

import (
	"context"
	"database/sql"
	"fmt"

	"floreria-be/internal/logger"

	"go.uber.org/zap"
)

// Sync reconciles the groups and group_permissions tables with the static
// permission table. Safe to run on every deploy: existing rows are replaced,
// never duplicated.
func Sync(ctx context.Context, db *sql.DB) error {
	log := logger.FromCtx(ctx).With(zap.String("method", "role.Sync"))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin role sync: %w", err)
	}
	defer tx.Rollback()

	for _, group := range All {
		var groupID int
		err := tx.QueryRowContext(ctx, `
			INSERT INTO groups (name)
			VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, group).Scan(&groupID)
		if err != nil {
			return fmt.Errorf("upsert group %s: %w", group, err)
		}

		// Replace the permission set wholesale so removed entries disappear.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM group_permissions WHERE group_id = $1`, groupID); err != nil {
			return fmt.Errorf("clear permissions for %s: %w", group, err)
		}

		for model, actions := range permissions[group] {
			for _, action := range actions {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO group_permissions (group_id, model, action)
					VALUES ($1, $2, $3)
				`, groupID, model, action)
				if err != nil {
					return fmt.Errorf("insert permission %s/%s for %s: %w", model, action, group, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit role sync: %w", err)
	}

	log.Info("roles reconciled", zap.Int("groups", len(All)))
	return nil
}
