package shared

import (
	"context"
	"time"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/domain/transaction"
	"github.com/Evidive-blue/evidive/internal/infra/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Transactions() TransactionRepository
	Centers() CenterRepository
	Services() ServiceRepository
	BlockedDates() BlockedDateRepository
	PlatformConfig() PlatformConfigRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	CenterByID(ctx context.Context, id uuid.UUID) (*center.Center, error)
	Membership(ctx context.Context, centerID, profileID uuid.UUID) (center.Membership, error)
	// PlatformSetting returns nil when the key is not configured.
	PlatformSetting(ctx context.Context, key string) (*string, error)
	IsDateBlocked(ctx context.Context, centerID uuid.UUID, date booking.Date) (bool, error)
	IsSlotTaken(ctx context.Context, serviceID uuid.UUID, date booking.Date, slot booking.TimeSlot) (bool, error)
	TransactionExists(ctx context.Context, paymentIntentID string) (bool, error)
	AvailableBalance(ctx context.Context, centerID uuid.UUID) (decimal.Decimal, error)
	// IdempotencyRecord treats an expired key as not found.
	IdempotencyRecord(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx query.DBTX, b *booking.Booking) error
	// Transition applies a guarded status change and reports whether a row moved.
	Transition(ctx context.Context, tx query.DBTX, id uuid.UUID, to booking.Status) (bool, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx query.DBTX, t *transaction.Transaction) error
	MarkRefunded(ctx context.Context, tx query.DBTX, paymentIntentID string) (bool, error)
}

type CenterRepository interface {
	SetStripeAccount(ctx context.Context, tx query.DBTX, centerID uuid.UUID, accountID string) error
	SetOnboardingByAccount(ctx context.Context, tx query.DBTX, accountID string, complete bool) (bool, error)
	SetCurrency(ctx context.Context, tx query.DBTX, centerID uuid.UUID, currency string) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx query.DBTX, s *center.Service) error
}

type BlockedDateRepository interface {
	Create(ctx context.Context, tx query.DBTX, b booking.BlockedDate) (uuid.UUID, error)
	Delete(ctx context.Context, tx query.DBTX, centerID, id uuid.UUID) error
}

type PlatformConfigRepository interface {
	Update(ctx context.Context, tx query.DBTX, key, value string, updatedBy uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when a live claim for the key already exists.
	TryInsert(ctx context.Context, tx query.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx query.DBTX, key, userID uuid.UUID, result IdempotentTransfer) error
	// Release drops a claim still in processing so the key can be retried.
	Release(ctx context.Context, tx query.DBTX, key, userID uuid.UUID) error
}
