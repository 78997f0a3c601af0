package accessory

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/pkg/dbmetrics"
	"github.com/arcsportszone/ARC-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий аксессуаров и их привязок к бронированиям
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аксессуаров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает каталог аксессуаров
func (r *Repository) List(ctx context.Context) ([]*domain.Accessory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price").
		From("accessories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	accessories := make([]*domain.Accessory, 0)
	for rows.Next() {
		var a domain.Accessory
		if err := rows.Scan(&a.ID, &a.Name, &a.Price); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		accessories = append(accessories, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return accessories, nil
}

// GetByIDs получает аксессуары по списку ID.
// Вызывающий обязан проверить, что все запрошенные ID найдены: здесь
// отсутствующие просто не попадают в результат.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Accessory, error) {
	result := make(map[int64]*domain.Accessory, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price").
		From("accessories").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Accessory
		if err := rows.Scan(&a.ID, &a.Name, &a.Price); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		result[a.ID] = &a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// InsertBookingLines сохраняет строки аксессуаров бронирования
// с ценами на момент бронирования
func (r *Repository) InsertBookingLines(ctx context.Context, bookingID int64, lines []domain.AccessoryLine) error {
	if len(lines) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_accessories").
		Columns("booking_id", "accessory_id", "quantity", "price_at_booking")
	for _, line := range lines {
		insertBuilder = insertBuilder.Values(bookingID, line.AccessoryID, line.Quantity, line.PriceAtBooking)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: InsertBookingLines - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: InsertBookingLines - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReplaceBookingLines заменяет строки аксессуаров бронирования целиком
// (update бронирования пересоздает набор)
func (r *Repository) ReplaceBookingLines(ctx context.Context, bookingID int64, lines []domain.AccessoryLine) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_accessories").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBookingLines - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceBookingLines - execute delete: %v", ErrExecQuery, err)
	}

	return r.InsertBookingLines(ctx, bookingID, lines)
}

// ListBookingLines получает строки аксессуаров бронирования
func (r *Repository) ListBookingLines(ctx context.Context, bookingID int64) ([]domain.AccessoryLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// LEFT JOIN: снимок строки переживает удаление аксессуара из каталога
	query, args, err := psqlbuilder.Select(
		"ba.booking_id",
		"ba.accessory_id",
		"COALESCE(a.name, 'Deleted Accessory') AS accessory_name",
		"ba.quantity",
		"ba.price_at_booking",
	).
		From("booking_accessories ba").
		LeftJoin("accessories a ON ba.accessory_id = a.id").
		Where(squirrel.Eq{"ba.booking_id": bookingID}).
		OrderBy("accessory_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookingLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookingLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.AccessoryLine, 0)
	for rows.Next() {
		var line domain.AccessoryLine
		err = rows.Scan(
			&line.BookingID,
			&line.AccessoryID,
			&line.AccessoryName,
			&line.Quantity,
			&line.PriceAtBooking,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBookingLines - scan row: %v", ErrScanRow, err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookingLines - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
}
