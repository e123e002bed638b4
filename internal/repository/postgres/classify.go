package postgres

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

// classify sorts a store failure into exactly one bucket: transient
// (connectivity, worth retrying) or fatal (integrity, syntax,
// serialization; never retried). Sentinels already carrying a
// classification, and the not-found sentinel, pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, entities.ErrNotFound) ||
		errors.Is(err, entities.ErrTransientStore) ||
		errors.Is(err, entities.ErrFatalStore) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"): // connection exception
			return entities.Transient(err)
		case pgErr.Code == "57P01" || pgErr.Code == "57P02" || pgErr.Code == "57P03": // admin shutdown / crash
			return entities.Transient(err)
		case pgErr.Code == "57014": // statement timeout cancel
			return entities.Transient(err)
		default:
			// Integrity (23xxx), syntax (42xxx), serialization (40001)
			// and everything else the server rejected deliberately.
			return entities.Fatal(err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return entities.Transient(err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.ErrUnexpectedEOF) {
		return entities.Transient(err)
	}
	if pgconn.SafeToRetry(err) {
		return entities.Transient(err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") || strings.Contains(s, "connection reset") ||
		strings.Contains(s, "broken pipe") || strings.Contains(s, "conn closed") {
		return entities.Transient(err)
	}

	return err
}
