package get_heatmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
)

// Состояния ячейки теплокарты
const (
	CellAvailable = "available"
	CellPartial   = "partial"
	CellFull      = "full"
	CellBooked    = "booked"
)

// Request модель запроса теплокарты на дату
type Request struct {
	Date time.Time
}

// Cell одна ячейка сетки: полуоткрытый интервал фиксированной ширины
type Cell struct {
	Interval       domain.Interval
	Label          string // "5:00 AM - 5:30 AM"
	State          string
	AvailableSlots int
	Capacity       int
}

// CourtRow строка теплокарты одного корта
type CourtRow struct {
	CourtID   int64
	CourtName string
	SportName string
	Status    string
	Capacity  int
	Cells     []Cell
}

// Response теплокарта дня по всем кортам
type Response struct {
	Date   time.Time
	Courts []CourtRow
}

// UseCase use case построения теплокарты занятости.
// Ячейки считаются через тот же ResolveAvailability, что и живая
// проверка конфликтов, поэтому теплокарта и create/update не могут
// разойтись в семантике пересечения
type UseCase struct {
	courtRepo       CourtRepository
	bookingRepo     BookingRepository
	dayStartMinutes int
	dayEndMinutes   int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// Границы сетки приходят из конфигурации (по умолчанию 05:00 - 23:00)
func NewUseCase(courtRepo CourtRepository, bookingRepo BookingRepository, dayStartMinutes, dayEndMinutes int, logger Logger) *UseCase {
	if dayStartMinutes <= 0 && dayEndMinutes <= 0 {
		dayStartMinutes = domain.DefaultDayStartMinutes
		dayEndMinutes = domain.DefaultDayEndMinutes
	}
	return &UseCase{
		courtRepo:       courtRepo,
		bookingRepo:     bookingRepo,
		dayStartMinutes: dayStartMinutes,
		dayEndMinutes:   dayEndMinutes,
		logger:          logger,
	}
}

// Execute строит теплокарту на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	courts, err := uc.courtRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListForDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	byCourt := make(map[int64][]*domain.Booking)
	for _, b := range bookings {
		byCourt[b.CourtID] = append(byCourt[b.CourtID], b)
	}

	rows := make([]CourtRow, 0, len(courts))
	for _, court := range courts {
		rows = append(rows, uc.buildRow(court, byCourt[court.ID]))
	}

	return &Response{Date: req.Date, Courts: rows}, nil
}

func (uc *UseCase) buildRow(court *domain.Court, bookings []*domain.Booking) CourtRow {
	policy := domain.PolicyFor(court.Capacity)

	row := CourtRow{
		CourtID:   court.ID,
		CourtName: court.Name,
		SportName: court.SportName,
		Status:    string(court.Status),
		Capacity:  policy.Capacity(),
	}

	for start := uc.dayStartMinutes; start < uc.dayEndMinutes; start += domain.HeatmapBucketMinutes {
		cell, err := domain.NewIntervalFromMinutes(start, start+domain.HeatmapBucketMinutes)
		if err != nil {
			continue
		}

		availability := domain.ResolveAvailability(court.Status, policy, bookings, cell, 1)
		row.Cells = append(row.Cells, Cell{
			Interval:       cell,
			Label:          cell.Label(),
			State:          cellState(availability, policy),
			AvailableSlots: availability.AvailableSlots,
			Capacity:       policy.Capacity(),
		})
	}

	return row
}

// cellState переводит разрешенную доступность в состояние ячейки.
// Статус-оверрайд окрашивает весь день строчной формой статуса
// ("under maintenance", "event", ...)
func cellState(a domain.Availability, policy domain.SlotPolicy) string {
	if a.Override != nil {
		return strings.ToLower(string(*a.Override))
	}

	switch {
	case a.AvailableSlots == policy.Capacity():
		return CellAvailable
	case a.AvailableSlots == 0 && policy.Capacity() == 1:
		return CellBooked
	case a.AvailableSlots == 0:
		return CellFull
	default:
		return CellPartial
	}
}
