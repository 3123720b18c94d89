package shared

import (
	"context"

	"koskita/internal/domain/booking"
	"koskita/internal/domain/kos"
	"koskita/internal/domain/review"
	"koskita/internal/domain/user"
	"koskita/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Read-committed transaction for ordinary write operations.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction with retry, for
	// check-then-act sequences like booking conflict detection.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Kos() KosRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Favorites() FavoriteRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	KosByID(ctx context.Context, id uuid.UUID) (*KosSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// CountOverlapping counts non-cancelled bookings on the kos whose
	// half-open [check_in, check_out) range intersects the given one.
	CountOverlapping(ctx context.Context, tx db.DBTX, kosID uuid.UUID, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, notes *string) error
}

type KosRepository interface {
	Create(ctx context.Context, tx db.DBTX, k *kos.Kos) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, params UpdateKosParams) error
	SetPublished(ctx context.Context, tx db.DBTX, id uuid.UUID, published bool) error
	AddPhoto(ctx context.Context, tx db.DBTX, kosID uuid.UUID, photo kos.Photo) (uuid.UUID, error)
	RemovePhoto(ctx context.Context, tx db.DBTX, kosID, photoID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, rating int, comment string) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcKosRatingStats(ctx context.Context, tx db.DBTX, kosID uuid.UUID) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, tx db.DBTX, userID, kosID uuid.UUID) error
	Remove(ctx context.Context, tx db.DBTX, userID, kosID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
