package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/config"
	"github.com/yigit/practicum/internal/pkg/logger"
)

// defaultTxTimeout bounds a transaction whose caller did not set a deadline
const defaultTxTimeout = 30 * time.Second

// Querier is the statement surface shared by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ Querier = (*pgxpool.Pool)(nil)
	_ Querier = (pgx.Tx)(nil)
)

// PostgresDB database connection structure
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB creates a new PostgreSQL connection pool
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	connectTimeout, err := time.ParseDuration(cfg.Database.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connect timeout: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	poolConfig.MaxConnLifetime = maxLifetime

	maxIdle, err := time.ParseDuration(cfg.Database.ConnMaxIdleTime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max idle time: %w", err)
	}
	poolConfig.MaxConnIdleTime = maxIdle

	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		logger.Debug().Uint32("pid", conn.PgConn().PID()).Msg("New PostgreSQL connection established")
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

// Close closes the pool
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, q Querier) error

// WithTransaction runs fn within a read-write transaction
func (db *PostgresDB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	return db.WithTransactionOptions(ctx, pgx.TxOptions{}, fn)
}

// WithReadOnlyTransaction runs fn within a READ ONLY transaction. The store rejects any write
// issued through it, which is what the dynamic query gateway relies on.
func (db *PostgresDB) WithReadOnlyTransaction(ctx context.Context, fn TransactionFn) error {
	return db.WithTransactionOptions(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

// WithTransactionOptions begins a transaction with opts, runs fn and commits, or rolls back on
// error or panic. The connection acquired by Begin goes back to the pool on every path.
func (db *PostgresDB) WithTransactionOptions(ctx context.Context, opts pgx.TxOptions, fn TransactionFn) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTxTimeout)
		defer cancel()
	}

	tx, err := db.Pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		// the transaction may already be aborted by the failing statement; rollback still
		// releases the connection
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("%w (rollback error: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// InTx satisfies the services.TxRunner contract
func (db *PostgresDB) InTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	return db.WithTransaction(ctx, fn)
}

// InReadOnlyTx satisfies the services.ReadOnlyRunner contract
func (db *PostgresDB) InReadOnlyTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	return db.WithReadOnlyTransaction(ctx, fn)
}
