package dbz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
)

var ErrInvalidTable = errors.New("dbz: invalid table")

type Option func(*options)

type options struct {
	columns []string
	list    ListParams
	l       *slog.Logger
}

// WithColumns selects only the given columns instead of all.
func WithColumns(columns ...string) Option {
	return func(o *options) {
		o.columns = columns
	}
}

// WithList paginates and orders the records.
// The limit is limited by [SafeList].
func WithList(p ListParams) Option {
	return func(o *options) {
		o.list = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.l = l
	}
}

// Records selects the rows of table as records, keyed by column name.
//
// Column values keep the driver types, e.g. int64 for SQLite integers.
func Records(ctx context.Context, db bun.IDB, table string, opts ...Option,
) (res []map[string]any, err error) {
	if table == "" {
		return nil, ErrInvalidTable
	}

	o := options{
		l: slog.Default().With("pkg", "dbz"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	q := db.NewSelect().Table(table)
	if len(o.columns) > 0 {
		q = q.Column(o.columns...)
	}
	if o.list != nil {
		p := SafeList(o.list)
		q = q.Limit(int(p.GetLimit())).Offset(int(p.GetOffset()))
		for _, order := range p.GetOrders() {
			q = q.OrderExpr(order)
		}
	}

	l := o.l.With("do", "Records", "table", table)
	l.Debug("select records", "query", q.String())

	res = []map[string]any{}
	if err = q.Scan(ctx, &res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []map[string]any{}, nil
		}
		return nil, fmt.Errorf("select records: %w", err)
	}

	l.Debug("selected records", "count", len(res))
	return
}
