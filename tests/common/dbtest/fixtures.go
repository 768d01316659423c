//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProfile(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO profiles (id, email, display_name, role) VALUES ($1, $2, $3, $4)",
		id, email, strings.Split(email, "@")[0], role)
	require.NoError(t, err)
	return id
}

type CenterFixture struct {
	Name                     string
	Currency                 string
	StripeAccountID          *string
	StripeOnboardingComplete bool
}

func CreateTestCenter(t *testing.T, db DBLike, ownerID uuid.UUID, f CenterFixture) uuid.UUID {
	t.Helper()

	if f.Name == "" {
		f.Name = "Blue Reef Divers"
	}
	if f.Currency == "" {
		f.Currency = "EUR"
	}
	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO centers (owner_id, name, currency, stripe_account_id, stripe_onboarding_complete)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		ownerID, f.Name, f.Currency, f.StripeAccountID, f.StripeOnboardingComplete).Scan(&id)
	require.NoError(t, err)

	AddCenterMember(t, db, ownerID, id, "owner")
	return id
}

func AddCenterMember(t *testing.T, db DBLike, profileID, centerID uuid.UUID, role string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO center_members (profile_id, center_id, role) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
		profileID, centerID, role)
	require.NoError(t, err)
}

func CreateTestService(t *testing.T, db DBLike, centerID uuid.UUID, name, price string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO services (center_id, name, price, currency, min_participants, max_capacity)
		VALUES ($1, $2, $3::numeric, 'EUR', 1, 20) RETURNING id`,
		centerID, name, price).Scan(&id)
	require.NoError(t, err)
	return id
}

func BlockDate(t *testing.T, db DBLike, centerID uuid.UUID, date string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO blocked_dates (center_id, blocked_date, reason) VALUES ($1, $2::date, 'maintenance')",
		centerID, date)
	require.NoError(t, err)
}

func SetPlatformConfig(t *testing.T, db DBLike, key, value string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO platform_config (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	require.NoError(t, err)
}

func SetBookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE bookings SET status = $2 WHERE id = $1", bookingID, status)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO platform_config (key, value, category, is_secret, description) VALUES
		    ('commission_rate', '20', 'payments', false, 'Platform commission percentage'),
		    ('stripe_publishable_key', 'pk_test_1234567890abcd', 'payments', true, NULL)
		ON CONFLICT (key) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
