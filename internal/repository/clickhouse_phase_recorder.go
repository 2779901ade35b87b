package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"WyckoffLab/internal/domain/models"
	domrepo "WyckoffLab/internal/domain/repository"
	pkgch "WyckoffLab/pkg/clickhouse"
	applogger "WyckoffLab/pkg/logger"
)

// CHPhaseRecorder archives phase transitions in ClickHouse for later review.
type CHPhaseRecorder struct {
	db    *sql.DB
	ch    *pkgch.Client
	table string
	l     *applogger.Logger
}

func NewCHPhaseRecorder(ch *pkgch.Client, database, table string, l *applogger.Logger) (*CHPhaseRecorder, error) {
	r := &CHPhaseRecorder{
		db:    ch.DB(),
		ch:    ch,
		table: database + "." + table,
		l:     l,
	}
	stmts := []string{
		fmt.Sprintf(`CREATE DATABASE IF NOT EXISTS %s`, database),
		fmt.Sprintf(`
            CREATE TABLE IF NOT EXISTS %s (
                symbol LowCardinality(String),
                interval LowCardinality(String),
                label String,
                at DateTime
            ) ENGINE = MergeTree()
            ORDER BY (symbol, interval, at)
        `, r.table),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ch.InitSchema(ctx, stmts); err != nil {
		return nil, fmt.Errorf("phase recorder schema: %w", err)
	}
	return r, nil
}

var _ domrepo.PhaseRecorder = (*CHPhaseRecorder)(nil)

func (r *CHPhaseRecorder) RecordPhase(ctx context.Context, symbol string, interval domrepo.Interval, label models.PhaseLabel, at time.Time) error {
	q := fmt.Sprintf(`INSERT INTO %s (symbol, interval, label, at) VALUES (?, ?, ?, ?)`, r.table)
	if _, err := r.db.ExecContext(ctx, q, symbol, string(interval), string(label), at); err != nil {
		r.l.Error("clickhouse phase insert error",
			applogger.String("symbol", symbol),
			applogger.String("interval", string(interval)),
			applogger.Error(err),
		)
		return fmt.Errorf("record phase: %w", err)
	}
	return nil
}

// RecentPhases returns the latest transitions for one selection, newest
// first.
func (r *CHPhaseRecorder) RecentPhases(ctx context.Context, symbol string, interval domrepo.Interval, limit int) ([]models.PhaseChangeEvent, error) {
	q := fmt.Sprintf(`
        SELECT symbol, interval, label, at
        FROM %s
        WHERE symbol = ? AND interval = ?
        ORDER BY at DESC
        LIMIT ?
    `, r.table)
	rows, err := r.db.QueryContext(ctx, q, symbol, string(interval), limit)
	if err != nil {
		return nil, fmt.Errorf("recent phases: %w", err)
	}
	defer rows.Close()

	out := make([]models.PhaseChangeEvent, 0, limit)
	for rows.Next() {
		var (
			ev models.PhaseChangeEvent
			to string
			at time.Time
		)
		if err := rows.Scan(&ev.Symbol, &ev.Interval, &to, &at); err != nil {
			return nil, fmt.Errorf("scan phase: %w", err)
		}
		ev.To = models.PhaseLabel(to)
		ev.At = at.Unix()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *CHPhaseRecorder) Close() error {
	return r.ch.Close()
}

// NoopPhaseRecorder is used when the recorder is disabled in config.
type NoopPhaseRecorder struct{}

func (NoopPhaseRecorder) RecordPhase(context.Context, string, domrepo.Interval, models.PhaseLabel, time.Time) error {
	return nil
}

func (NoopPhaseRecorder) Close() error { return nil }
