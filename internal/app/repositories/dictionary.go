package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/pkg/dberrors"
	"github.com/yigit/practicum/internal/pkg/logger"
)

// dictionaryRow is one (id, name) pair of a reference table
type dictionaryRow struct {
	ID   int64
	Name string
}

// dictionaryTable holds the SQL shared by the single-name reference tables
// (practice_location, student_groups, roles).
type dictionaryTable struct {
	db       *pgxpool.Pool
	sb       squirrel.StatementBuilderType
	table    string
	idCol    string
	nameCol  string
	notFound error
	inUse    error
}

func (t *dictionaryTable) list(ctx context.Context) ([]dictionaryRow, error) {
	sql, args, err := t.sb.Select(t.idCol, t.nameCol).
		From(t.table).
		OrderBy(t.idCol + " ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.table).Msg("Error building list SQL")
		return nil, fmt.Errorf("failed to build list %s query: %w", t.table, err)
	}

	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", t.table).Msg("Error executing list query")
		return nil, fmt.Errorf("error querying %s: %w", t.table, err)
	}
	defer rows.Close()

	result := []dictionaryRow{}
	for rows.Next() {
		var row dictionaryRow
		if err := rows.Scan(&row.ID, &row.Name); err != nil {
			logger.Error().Err(err).Str("table", t.table).Msg("Error scanning row")
			return nil, fmt.Errorf("error scanning %s row: %w", t.table, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", t.table).Msg("Error iterating rows")
		return nil, fmt.Errorf("error iterating %s rows: %w", t.table, err)
	}

	return result, nil
}

func (t *dictionaryTable) create(ctx context.Context, name string) (dictionaryRow, error) {
	sql, args, err := t.sb.Insert(t.table).
		Columns(t.nameCol).
		Values(name).
		Suffix("RETURNING " + t.idCol + ", " + t.nameCol).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.table).Msg("Error building create SQL")
		return dictionaryRow{}, fmt.Errorf("failed to build create %s query: %w", t.table, err)
	}

	var row dictionaryRow
	if err := t.db.QueryRow(ctx, sql, args...).Scan(&row.ID, &row.Name); err != nil {
		logger.Error().Err(err).Str("table", t.table).Msg("Error executing create query")
		return dictionaryRow{}, fmt.Errorf("error creating %s row: %w", t.table, err)
	}
	return row, nil
}

func (t *dictionaryTable) update(ctx context.Context, id int64, name string) (dictionaryRow, error) {
	sql, args, err := t.sb.Update(t.table).
		Set(t.nameCol, name).
		Where(squirrel.Eq{t.idCol: id}).
		Suffix("RETURNING " + t.idCol + ", " + t.nameCol).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.table).Msg("Error building update SQL")
		return dictionaryRow{}, fmt.Errorf("failed to build update %s query: %w", t.table, err)
	}

	var row dictionaryRow
	if err := t.db.QueryRow(ctx, sql, args...).Scan(&row.ID, &row.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dictionaryRow{}, t.notFound
		}
		logger.Error().Err(err).Str("table", t.table).Int64("id", id).Msg("Error executing update query")
		return dictionaryRow{}, fmt.Errorf("error updating %s row: %w", t.table, err)
	}
	return row, nil
}

// delete removes the row; a foreign key violation raised by a dependent inserted after the
// service's dependents check is reported as the in-use conflict.
func (t *dictionaryTable) delete(ctx context.Context, id int64) error {
	sql, args, err := t.sb.Delete(t.table).
		Where(squirrel.Eq{t.idCol: id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.table).Msg("Error building delete SQL")
		return fmt.Errorf("failed to build delete %s query: %w", t.table, err)
	}

	cmdTag, err := t.db.Exec(ctx, sql, args...)
	if err != nil {
		if _, ok := dberrors.IsForeignKeyViolation(err); ok {
			return t.inUse
		}
		logger.Error().Err(err).Str("table", t.table).Int64("id", id).Msg("Error executing delete query")
		return fmt.Errorf("error deleting %s row: %w", t.table, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return t.notFound
	}
	return nil
}

func (t *dictionaryTable) exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, t.db, t.sb, t.table, t.idCol, id)
}
