package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/arcsportszone/ARC-BookingService/pkg/dbmetrics"
)

const (
	// Код ошибки Postgres при истечении lock_timeout
	pqLockNotAvailable = "55P03"

	// Код ошибки Postgres при срыве сериализуемой транзакции (SSI)
	pqSerializationFailure = "40001"

	// Сколько раз DoSerializable перезапускает транзакцию после 40001
	serializableAttempts = 3
)

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrLockTimeout возвращается, когда ожидание блокировки превысило
	// lock_timeout; вызывающий может безопасно повторить запрос.
	ErrLockTimeout = errors.New("txmanager: lock wait timeout")

	// ErrSerializationFailure возвращается, когда сериализуемая транзакция
	// не зафиксировалась даже после перезапусков; вызывающий может
	// безопасно повторить запрос.
	ErrSerializationFailure = errors.New("txmanager: serialization failure")
)

// TxBeginner то, над чем менеджер открывает транзакции
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакции.
// Исполнитель транзакции передается вниз через контекст (dbmetrics.WithExecutor),
// репозитории подхватывают его через dbmetrics.GetExecutor.
type TransactionManager struct {
	db            TxBeginner
	lockTimeoutMS int
}

// Option настройка менеджера
type Option func(*TransactionManager)

// WithLockTimeout ограничивает ожидание блокировок строк (мс); 0 - без лимита
func WithLockTimeout(ms int) Option {
	return func(m *TransactionManager) {
		m.lockTimeoutMS = ms
	}
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, opts ...Option) *TransactionManager {
	m := &TransactionManager{db: db}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции.
// Срыв сериализации (40001) перезапускает транзакцию целиком: fn
// перечитывает уже зафиксированное состояние и проигравшая заявка
// получает осмысленный доменный отказ вместо инфраструктурной ошибки
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < serializableAttempts; attempt++ {
		err = m.run(ctx, opts, fn)
		if !errors.Is(err, ErrSerializationFailure) {
			return err
		}
	}
	return err
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенная транзакция не открывается - переиспользуем текущую
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if m.lockTimeoutMS > 0 && !opts.ReadOnly {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeoutMS)); err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: set lock_timeout: %v", ErrBeginTx, err)
		}
	}

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		tx.Rollback()
		return mapRetryable(err)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		// Сначала распознаем retryable-код, пока цепочка pq-ошибки цела
		if mapped := mapRetryable(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// mapRetryable переводит retryable-коды Postgres в сентинели пакета:
// 55P03 в ErrLockTimeout, 40001 в ErrSerializationFailure
func mapRetryable(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch string(pqErr.Code) {
	case pqLockNotAvailable:
		return fmt.Errorf("%w: %v", ErrLockTimeout, err)
	case pqSerializationFailure:
		return fmt.Errorf("%w: %v", ErrSerializationFailure, err)
	}
	return err
}
