package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type settingsRepo struct {
	db *sql.DB
}

func (r *settingsRepo) GetSetting(ctx context.Context, name string) (string, bool, error) {
	b := builder()
	query, args := b.Select("value").
		From(b.Table(tableSettings)).
		Where(entsql.EQ("name", name)).
		Query()

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", name, err)
	}
	return value, true, nil
}

func (r *settingsRepo) SetSetting(ctx context.Context, name, value string) error {
	query, args := builder().Insert(tableSettings).
		Columns("name", "value", "updated_at").
		Values(name, value, time.Now().UTC().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set setting %q: %w", name, err)
	}
	return nil
}
