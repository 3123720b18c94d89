package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID         uuid.UUID  `json:"id"`
	KosID      uuid.UUID  `json:"kos_id"`
	KosName    string     `json:"kos_name"`
	KosOwnerID uuid.UUID  `json:"kos_owner_id"`
	UserID     uuid.UUID  `json:"user_id"`
	UserEmail  string     `json:"user_email"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   time.Time  `json:"check_out"`
	Duration   int        `json:"duration"`
	TotalPrice int64      `json:"total_price"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	KosID      uuid.UUID `json:"kos_id"`
	KosName    string    `json:"kos_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Duration   int       `json:"duration"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type KosPhotoView struct {
	ID       uuid.UUID `json:"id"`
	URL      string    `json:"url"`
	Caption  string    `json:"caption"`
	Position int       `json:"position"`
}

type KosView struct {
	ID           uuid.UUID      `json:"id"`
	OwnerID      uuid.UUID      `json:"owner_id"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	Description  string         `json:"description"`
	MonthlyPrice int64          `json:"monthly_price"`
	RoomTotal    int            `json:"room_total"`
	GenderPolicy string         `json:"gender_policy"`
	IsPublished  bool           `json:"is_published"`
	RatingAvg    float64        `json:"rating_avg"`
	ReviewCount  int            `json:"review_count"`
	Photos       []KosPhotoView `json:"photos"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type KosListItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	MonthlyPrice int64     `json:"monthly_price"`
	GenderPolicy string    `json:"gender_policy"`
	RatingAvg    float64   `json:"rating_avg"`
	ReviewCount  int       `json:"review_count"`
	Score        float64   `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	KosID     uuid.UUID `json:"kos_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	BookingID uuid.UUID `json:"booking_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type SortOrder string

const (
	SortRecommended SortOrder = "recommended"
	SortCheapest    SortOrder = "cheapest"
	SortNewest      SortOrder = "newest"
)

func (s SortOrder) IsValid() bool {
	switch s {
	case SortRecommended, SortCheapest, SortNewest:
		return true
	default:
		return false
	}
}

type KosSearchFilter struct {
	City     *string
	Gender   *string
	MinPrice *int64
	MaxPrice *int64
	Sort     SortOrder
	Limit    int
}
