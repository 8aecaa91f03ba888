package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor минимальный интерфейс для выполнения запросов
// Реализуется *sql.DB и *dbmetrics.DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Collector интерфейс для записи метрик БД (реализуется pkg/metrics)
type Collector interface {
	ObserveDBQuery(operation string, duration time.Duration)
	SetDBConnections(open, idle int)
}

// DB обертка над *sql.DB, записывающая длительность запросов в метрики
type DB struct {
	db        *sql.DB
	collector Collector
}

// Wrap оборачивает *sql.DB сбором метрик запросов
func Wrap(db *sql.DB, collector Collector) *DB {
	return &DB{db: db, collector: collector}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор
// статистики connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector Collector, interval time.Duration, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector)
	go wrapped.collectPoolStats(interval, stopCh)
	return wrapped
}

// ExecContext выполняет запрос без возврата строк
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery(operationOf(query), time.Since(start))
	return res, err
}

// QueryContext выполняет запрос с возвратом строк
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery(operationOf(query), time.Since(start))
	return rows, err
}

// QueryRowContext выполняет запрос с возвратом одной строки
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery(operationOf(query), time.Since(start))
	return row
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.collector.SetDBConnections(stats.OpenConnections, stats.Idle)
		}
	}
}

// operationOf грубо классифицирует запрос по первому слову (SELECT/INSERT/UPDATE/DELETE)
func operationOf(query string) string {
	for i := 0; i < len(query); i++ {
		if query[i] == ' ' || query[i] == '\n' || query[i] == '\t' {
			if i == 0 {
				query = query[1:]
				i = -1
				continue
			}
			return normalize(query[:i])
		}
	}
	return normalize(query)
}

func normalize(word string) string {
	b := []byte(word)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	switch string(b) {
	case "select", "insert", "update", "delete":
		return string(b)
	default:
		return "other"
	}
}

var _ DBExecutor = (*DB)(nil)
var _ DBExecutor = (*sql.DB)(nil)
