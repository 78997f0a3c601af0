package domain

// CourtStatus represents the override status of a court.
// Any value other than Available makes the court unavailable for booking
// regardless of what the bookings table says.
type CourtStatus string

const (
	CourtAvailable        CourtStatus = "Available"
	CourtUnderMaintenance CourtStatus = "Under Maintenance"
	CourtEvent            CourtStatus = "Event"
	CourtTournament       CourtStatus = "Tournament"
	CourtMembership       CourtStatus = "Membership"
	CourtCoaching         CourtStatus = "Coaching"
)

// OverrideStatuses список статусов, при которых корт закрыт для бронирования
var OverrideStatuses = []CourtStatus{
	CourtUnderMaintenance,
	CourtEvent,
	CourtTournament,
	CourtMembership,
	CourtCoaching,
}

// IsOverride returns true if the status blocks bookings entirely.
func (s CourtStatus) IsOverride() bool {
	for _, st := range OverrideStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsValid returns true for a known court status value.
func (s CourtStatus) IsValid() bool {
	return s == CourtAvailable || s.IsOverride()
}

// Sport is the pricing/capacity template shared by one or more courts.
// Capacity 1 means exclusive use; capacity > 1 means the court hosts up to
// Capacity simultaneous independent bookings over the same interval.
type Sport struct {
	ID       int64
	Name     string
	Price    float64 // hourly rate
	Capacity int
}

// Court is a bookable physical unit tied to one sport.
// The engine reads courts and mutates only Status.
type Court struct {
	ID        int64
	Name      string
	SportID   int64
	Status    CourtStatus
	SportName string  // denormalized from sports join
	Price     float64 // denormalized hourly rate
	Capacity  int     // denormalized sport capacity
}

// Accessory is a rentable add-on priced per unit.
// The engine only reads accessory prices; CRUD belongs to the admin service.
type Accessory struct {
	ID    int64
	Name  string
	Price float64
}
