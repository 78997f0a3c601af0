package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/pkg/dbmetrics"
	"github.com/arcsportszone/ARC-BookingService/pkg/psqlbuilder"
)

// Колонки таблицы bookings без денормализованных join-полей.
// Используются там, где нужен FOR UPDATE (outer join с блокировкой
// Postgres не допускает).
var bareColumns = []string{
	"id",
	"court_id",
	"sport_id",
	"created_by_user_id",
	"customer_name",
	"customer_contact",
	"customer_email",
	"date",
	"start_minutes",
	"end_minutes",
	"slots_booked",
	"total_price",
	"amount_paid",
	"balance_amount",
	"payment_status",
	"payment_mode",
	"payment_id",
	"status",
	"discount_amount",
	"discount_reason",
	"is_rescheduled",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Вызывается внутри транзакции create_booking usecase: исполнитель
// транзакции приходит через контекст.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"court_id",
			"sport_id",
			"created_by_user_id",
			"customer_name",
			"customer_contact",
			"customer_email",
			"date",
			"start_minutes",
			"end_minutes",
			"slots_booked",
			"total_price",
			"amount_paid",
			"balance_amount",
			"payment_status",
			"payment_mode",
			"payment_id",
			"status",
			"discount_amount",
			"discount_reason",
		).
		Values(
			b.CourtID,
			b.SportID,
			b.CreatedByUserID,
			b.CustomerName,
			b.CustomerContact,
			b.CustomerEmail,
			b.Date,
			b.Interval.StartMinutes,
			b.Interval.EndMinutes,
			b.SlotsBooked,
			b.TotalPrice,
			b.AmountPaid,
			b.BalanceAmount,
			b.PaymentStatus,
			b.PaymentMode,
			b.PaymentID,
			b.Status,
			b.DiscountAmount,
			b.DiscountReason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID (с блокировкой строки внутри транзакции)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bareColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции строка бронирования блокируется - update/extend
	// сериализуются по самой записи
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByIDWithDetails получает бронирование с именами корта/спорта/создателя
func (r *Repository) GetByIDWithDetails(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailedSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithDetails - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanDetailedBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithDetails - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListForCourtDate получает все активные бронирования корта на дату.
// Внутри транзакции выборка делается с FOR UPDATE: это и есть блокировка
// court-day, сериализующая конкурирующие попытки бронирования - вторая
// из двух гонящихся заявок видит зафиксированный результат первой.
func (r *Repository) ListForCourtDate(ctx context.Context, courtID int64, date time.Time, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bareColumns...).
		From("bookings").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_minutes ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForCourtDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForCourtDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListForDate получает все активные бронирования на дату по всем кортам
// (с денормализованными именами для календаря и теплокарты)
func (r *Repository) ListForDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailedSelect().
		Where(squirrel.Eq{"b.date": date}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		OrderBy("b.court_id ASC, b.start_minutes ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetailedBookings(rows)
}

// Update обновляет изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("customer_name", b.CustomerName).
		Set("customer_contact", b.CustomerContact).
		Set("customer_email", b.CustomerEmail).
		Set("date", b.Date).
		Set("start_minutes", b.Interval.StartMinutes).
		Set("end_minutes", b.Interval.EndMinutes).
		Set("slots_booked", b.SlotsBooked).
		Set("total_price", b.TotalPrice).
		Set("amount_paid", b.AmountPaid).
		Set("balance_amount", b.BalanceAmount).
		Set("payment_status", b.PaymentStatus).
		Set("discount_amount", b.DiscountAmount).
		Set("discount_reason", b.DiscountReason).
		Set("is_rescheduled", b.IsRescheduled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdatePaymentTotals обновляет платежные поля после пересчета суммы
// платежей (amount_paid всегда пересчитывается из таблицы payments)
func (r *Repository) UpdatePaymentTotals(ctx context.Context, id int64, totalPrice, amountPaid float64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("total_price", totalPrice).
		Set("amount_paid", amountPaid).
		Set("balance_amount", totalPrice-amountPaid).
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentTotals - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentTotals - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentTotals - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateInterval обновляет интервал и платежные поля (используется extend)
func (r *Repository) UpdateInterval(ctx context.Context, id int64, interval domain.Interval, totalPrice, amountPaid float64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_minutes", interval.StartMinutes).
		Set("end_minutes", interval.EndMinutes).
		Set("total_price", totalPrice).
		Set("balance_amount", totalPrice-amountPaid).
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel помечает бронирование отмененным; отмененные бронирования
// перестают потреблять емкость, но остаются в истории
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// detailedSelect builder с join-ами имен корта, спорта и создателя
func detailedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"b.id",
		"b.court_id",
		"b.sport_id",
		"b.created_by_user_id",
		"b.customer_name",
		"b.customer_contact",
		"b.customer_email",
		"b.date",
		"b.start_minutes",
		"b.end_minutes",
		"b.slots_booked",
		"b.total_price",
		"b.amount_paid",
		"b.balance_amount",
		"b.payment_status",
		"b.payment_mode",
		"b.payment_id",
		"b.status",
		"b.discount_amount",
		"b.discount_reason",
		"b.is_rescheduled",
		"b.created_at",
		"b.updated_at",
		"COALESCE(c.name, 'Deleted Court') AS court_name",
		"COALESCE(s.name, 'Deleted Sport') AS sport_name",
		"u.username AS created_by_user",
	).
		From("bookings b").
		LeftJoin("courts c ON b.court_id = c.id").
		LeftJoin("sports s ON b.sport_id = s.id").
		LeftJoin("users u ON b.created_by_user_id = u.id")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.CourtID,
		&b.SportID,
		&b.CreatedByUserID,
		&b.CustomerName,
		&b.CustomerContact,
		&b.CustomerEmail,
		&b.Date,
		&b.Interval.StartMinutes,
		&b.Interval.EndMinutes,
		&b.SlotsBooked,
		&b.TotalPrice,
		&b.AmountPaid,
		&b.BalanceAmount,
		&b.PaymentStatus,
		&b.PaymentMode,
		&b.PaymentID,
		&b.Status,
		&b.DiscountAmount,
		&b.DiscountReason,
		&b.IsRescheduled,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanDetailedBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.CourtID,
		&b.SportID,
		&b.CreatedByUserID,
		&b.CustomerName,
		&b.CustomerContact,
		&b.CustomerEmail,
		&b.Date,
		&b.Interval.StartMinutes,
		&b.Interval.EndMinutes,
		&b.SlotsBooked,
		&b.TotalPrice,
		&b.AmountPaid,
		&b.BalanceAmount,
		&b.PaymentStatus,
		&b.PaymentMode,
		&b.PaymentID,
		&b.Status,
		&b.DiscountAmount,
		&b.DiscountReason,
		&b.IsRescheduled,
		&createdAt,
		&updatedAt,
		&b.CourtName,
		&b.SportName,
		&b.CreatedByUser,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func scanDetailedBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanDetailedBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetailedBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetailedBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
