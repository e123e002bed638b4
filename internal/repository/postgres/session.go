package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// withConn runs fn on one pooled connection: acquisition is bounded by the
// configured acquire timeout, release happens exactly once on every path,
// and both sides are logged with duration. Errors leave classified as
// transient or fatal.
func (p *Postgres) withConn(ctx context.Context, op string, fn func(ctx context.Context, conn *pgxpool.Conn) error) error {
	acquireCtx, cancel := context.WithTimeout(ctx, p.cfg.AcquireTimeout)
	defer cancel()

	start := time.Now()
	conn, err := p.db.Acquire(acquireCtx)
	if err != nil {
		// Pool exhaustion surfaces as a deadline here; callers may retry.
		p.log.Errorw("session acquire failed", "op", op, "wait", time.Since(start), "error", err)
		return classify(err)
	}
	p.log.Debugw("session acquired", "op", op, "wait", time.Since(start))

	defer func() {
		conn.Release()
		p.log.Debugw("session released", "op", op, "held", time.Since(start))
	}()

	if err := fn(ctx, conn); err != nil {
		return classify(err)
	}
	return nil
}
