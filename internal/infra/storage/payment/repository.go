package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/pkg/dbmetrics"
	"github.com/arcsportszone/ARC-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с платежами.
// Таблица payments append-only: платежи никогда не изменяются и не
// удаляются, amount_paid бронирования всегда пересчитывается суммой.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет платеж в леджер бронирования
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"booking_id",
			"amount",
			"payment_mode",
			"payment_id",
			"created_by_user_id",
		).
		Values(
			p.BookingID,
			p.Amount,
			p.PaymentMode,
			p.PaymentID,
			p.CreatedByUserID,
		).
		Suffix("RETURNING id, payment_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// SumByBookingID пересчитывает сумму всех платежей бронирования
func (r *Repository) SumByBookingID(ctx context.Context, bookingID int64) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%w: SumByBookingID - execute query: %v", ErrExecQuery, err)
	}

	return total, nil
}

// ListByBookingID получает историю платежей бронирования
func (r *Repository) ListByBookingID(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.booking_id",
		"p.amount",
		"p.payment_mode",
		"p.payment_id",
		"p.created_by_user_id",
		"u.username",
		"p.payment_date",
	).
		From("payments p").
		LeftJoin("users u ON p.created_by_user_id = u.id").
		Where(squirrel.Eq{"p.booking_id": bookingID}).
		OrderBy("p.payment_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		var username sql.NullString
		err = rows.Scan(
			&p.ID,
			&p.BookingID,
			&p.Amount,
			&p.PaymentMode,
			&p.PaymentID,
			&p.CreatedByUserID,
			&username,
			&p.PaymentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBookingID - scan row: %v", ErrScanRow, err)
		}
		if username.Valid {
			p.CreatedByUser = &username.String
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBookingID - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
