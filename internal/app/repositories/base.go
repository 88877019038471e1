package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/practicum/internal/db"
)

// newStatementBuilder returns a squirrel builder using PostgreSQL placeholders
func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// rowExists reports whether table holds at least one row where column = value
func rowExists(ctx context.Context, q db.Querier, sb squirrel.StatementBuilderType, table, column string, value int64) (bool, error) {
	sql, args, err := sb.Select("1").
		From(table).
		Where(squirrel.Eq{column: value}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query on %s: %w", table, err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking %s.%s: %w", table, column, err)
	}
	return exists, nil
}
