package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/logger"
)

// CatalogRepository reads the tables administrators pick from but do not edit:
// practice_organization and practice.
type CatalogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// GetOrganizations returns every organization ordered by id
func (r *CatalogRepository) GetOrganizations(ctx context.Context) ([]*models.Organization, error) {
	sql, args, err := r.sb.Select("organization_id", "organization_name").
		From("practice_organization").
		OrderBy("organization_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get organizations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get organizations query")
		return nil, fmt.Errorf("error querying organizations: %w", err)
	}
	defer rows.Close()

	organizations := []*models.Organization{}
	for rows.Next() {
		o := &models.Organization{}
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("error scanning organization row: %w", err)
		}
		organizations = append(organizations, o)
	}
	return organizations, rows.Err()
}

// GetPractices returns every practice ordered by start date
func (r *CatalogRepository) GetPractices(ctx context.Context) ([]*models.Practice, error) {
	sql, args, err := r.sb.Select("practice_id", "start_date", "end_date", "location_id").
		From("practice").
		OrderBy("start_date DESC", "practice_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get practices query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get practices query")
		return nil, fmt.Errorf("error querying practices: %w", err)
	}
	defer rows.Close()

	practices := []*models.Practice{}
	for rows.Next() {
		p := &models.Practice{}
		if err := rows.Scan(&p.ID, &p.StartDate, &p.EndDate, &p.LocationID); err != nil {
			return nil, fmt.Errorf("error scanning practice row: %w", err)
		}
		practices = append(practices, p)
	}
	return practices, rows.Err()
}

// OrganizationExists reports whether the organization exists
func (r *CatalogRepository) OrganizationExists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "practice_organization", "organization_id", id)
}

// PracticeExists reports whether the practice exists
func (r *CatalogRepository) PracticeExists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "practice", "practice_id", id)
}
