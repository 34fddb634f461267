package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"profile-translate-api/core/domain"
)

// metaRowID is the single settings row
const metaRowID = 1

type metaModel struct {
	bun.BaseModel `bun:"table:meta"`

	ID           int     `bun:"id,pk"`
	DeeplAuthKey *string `bun:"deepl_auth_key"`
	DeeplIsPro   bool    `bun:"deepl_is_pro,notnull"`
}

// MetaStore reads and writes instance settings
type MetaStore struct {
	db *bun.DB
}

// Fetch returns the instance settings, or (nil, nil) if they were never saved
func (s *MetaStore) Fetch(ctx context.Context) (*domain.InstanceMeta, error) {
	var m metaModel
	err := s.db.NewSelect().Model(&m).Where("id = ?", metaRowID).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch instance meta: %w", err)
	}

	return &domain.InstanceMeta{
		DeeplAuthKey: m.DeeplAuthKey,
		DeeplIsPro:   m.DeeplIsPro,
	}, nil
}

// Save inserts or replaces the instance settings
func (s *MetaStore) Save(ctx context.Context, meta *domain.InstanceMeta) error {
	m := &metaModel{
		ID:           metaRowID,
		DeeplAuthKey: meta.DeeplAuthKey,
		DeeplIsPro:   meta.DeeplIsPro,
	}

	_, err := s.db.NewInsert().
		Model(m).
		On("CONFLICT (id) DO UPDATE").
		Set("deepl_auth_key = EXCLUDED.deepl_auth_key").
		Set("deepl_is_pro = EXCLUDED.deepl_is_pro").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save instance meta: %w", err)
	}
	return nil
}
