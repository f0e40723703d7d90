package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

type FamilyReadRepository struct {
	db *sqlx.DB
}

func NewFamilyReadRepository(db *sqlx.DB) *FamilyReadRepository {
	return &FamilyReadRepository{db: db}
}

// GetByID returns the family or nil when no row matches.
func (r *FamilyReadRepository) GetByID(ctx context.Context, familyID string) (*models.FamilyDB, error) {
	const query = `
		SELECT id, currency, currency_address, created_at, updated_at
		FROM families
		WHERE id = $1
	`

	var family models.FamilyDB
	err := r.db.GetContext(ctx, &family, query, familyID)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{familyID},
		"result", family,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &family, nil
}
