package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/schedulebot/core/bootstrap"
	"github.com/m3rciful/schedulebot/core/logger"
	"github.com/m3rciful/schedulebot/schedule"
)

const (
	selectGroupsSQL = `SELECT id, description, thumb_url FROM student_groups ORDER BY position, id`
	upsertGroupSQL  = `INSERT INTO student_groups (id, description, thumb_url, position)
VALUES (:id, :description, :thumb_url, :position)
ON CONFLICT (id) DO UPDATE SET
	description = EXCLUDED.description,
	thumb_url = EXCLUDED.thumb_url,
	position = EXCLUDED.position`
	pruneGroupsSQL = `DELETE FROM student_groups WHERE id NOT IN (?)`
)

// GroupStore persists the group registry in the student_groups table.
type GroupStore struct {
	db *sqlx.DB
}

// NewGroupStore wraps db.
func NewGroupStore(db *sqlx.DB) *GroupStore {
	return &GroupStore{db: db}
}

type groupRow struct {
	schedule.Group
	Position int `db:"position"`
}

// List returns stored groups in registry order.
func (s *GroupStore) List(ctx context.Context) ([]schedule.Group, error) {
	var groups []schedule.Group
	if err := s.db.SelectContext(ctx, &groups, selectGroupsSQL); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// Upsert makes the table hold exactly groups, in one transaction: rows are
// inserted or updated and ids missing from groups are deleted. Slice order
// becomes registry order. An empty slice leaves the table untouched.
func (s *GroupStore) Upsert(ctx context.Context, groups []schedule.Group) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]string, 0, len(groups))
	for i, g := range groups {
		g.ID = schedule.NormalizeID(g.ID)
		if _, err := tx.NamedExecContext(ctx, upsertGroupSQL, groupRow{Group: g, Position: i}); err != nil {
			return fmt.Errorf("upsert group %q: %w", g.ID, err)
		}
		ids = append(ids, g.ID)
	}
	pruned, err := pruneGroups(ctx, tx, ids)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	logger.SEED.Info("groups seeded",
		slog.String("event", "db.seed.groups"),
		slog.String("status", "ok"),
		slog.Int("count", len(groups)),
		slog.Int64("pruned", pruned),
	)
	return nil
}

func pruneGroups(ctx context.Context, tx *sqlx.Tx, keep []string) (int64, error) {
	if len(keep) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(pruneGroupsSQL, keep)
	if err != nil {
		return 0, fmt.Errorf("prune groups: %w", err)
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("prune groups: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// GroupSeeder upserts groups into the bootstrap database.
func GroupSeeder(groups []schedule.Group) bootstrap.Seeder {
	return bootstrap.SeederFunc(func(ctx context.Context, storage bootstrap.Storage) error {
		db, ok := storage.(*sqlx.DB)
		if !ok || db == nil {
			return fmt.Errorf("group seeder: unexpected storage %T", storage)
		}
		return NewGroupStore(db).Upsert(ctx, groups)
	})
}
