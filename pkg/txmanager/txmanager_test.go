package txmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/pkg/dbmetrics"
	"github.com/barberhub/booking-service/pkg/metrics"
)

// stubDriver драйвер, у которого коммит транзакции завершается заданной ошибкой
type stubDriver struct {
	mu        sync.Mutex
	begins    int
	commitErr error
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{d: d}, nil
}

func (d *stubDriver) beginCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.begins
}

type stubConn struct {
	d *stubDriver
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("not supported")
}

func (c *stubConn) Close() error {
	return nil
}

func (c *stubConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *stubConn) BeginTx(_ context.Context, _ driver.TxOptions) (driver.Tx, error) {
	c.d.mu.Lock()
	c.d.begins++
	c.d.mu.Unlock()
	return &stubTx{d: c.d}, nil
}

type stubTx struct {
	d *stubDriver
}

func (t *stubTx) Commit() error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	return t.d.commitErr
}

func (t *stubTx) Rollback() error {
	return nil
}

// testMetrics метрики регистрируются в default registry один раз на тестовый процесс
var (
	testMetrics     *metrics.Metrics
	testMetricsOnce sync.Once
)

func newWrappedStubDB(t *testing.T, name string, commitErr error) (*dbmetrics.DB, *stubDriver) {
	t.Helper()

	testMetricsOnce.Do(func() {
		testMetrics = metrics.New("txmanager-test")
	})

	drv := &stubDriver{commitErr: commitErr}
	sql.Register(name, drv)

	db, err := sql.Open(name, "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return dbmetrics.Wrap(db, testMetrics), drv
}

func TestDoSerializable_RetriesCommitTimeSerializationFailure(t *testing.T) {
	db, drv := newWrappedStubDB(t, "txmanager-serialization", &pq.Error{Code: "40001"})
	m := NewTransactionManager(db)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	// Конфликт сериализации на COMMIT должен быть виден через errors.As
	// и приводить к повтору транзакции до исчерпания попыток
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.True(t, isSerializationFailure(err))
	assert.Equal(t, maxSerializableRetries, calls)
	assert.Equal(t, maxSerializableRetries, drv.beginCount())
}

func TestDoSerializable_NoRetryOnOtherCommitErrors(t *testing.T) {
	db, drv := newWrappedStubDB(t, "txmanager-unique", &pq.Error{Code: "23505"})
	m := NewTransactionManager(db)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxFailed)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("23505"), pqErr.Code)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, drv.beginCount())
}

func TestDoSerializable_RetrySucceedsAfterConflict(t *testing.T) {
	db, drv := newWrappedStubDB(t, "txmanager-recover", &pq.Error{Code: "40001"})
	m := NewTransactionManager(db)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 2 {
			// Со второй попытки конфликт исчезает
			drv.mu.Lock()
			drv.commitErr = nil
			drv.mu.Unlock()
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}
