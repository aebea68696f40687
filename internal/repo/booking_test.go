package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adlertours/backend/internal/domain"
	"github.com/adlertours/backend/internal/repo"
	"github.com/adlertours/backend/testutil"
)

// bookingFixture returns a booking request targeting the given tour.
// The phone is unique per call so parallel runs against a shared DB never
// collide on fixture data.
func bookingFixture(tourID int64) domain.Booking {
	comment := "window seat please"
	userID := int64(424242)
	username := "ana_travels"
	return domain.Booking{
		TourID:      tourID,
		TgUserID:    &userID,
		TgUsername:  &username,
		ClientName:  "Ana",
		ClientPhone: testutil.UniquePhone(),
		PeopleCount: 2,
		DateTime:    domain.DateTime{Time: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)},
		Comment:     &comment,
	}
}

func TestBookingRepo_Submit(t *testing.T) {
	tx := newTestTx(t)
	tours := repo.NewTourRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	tour, err := tours.Create(ctx, tourFixture())
	require.NoError(t, err)

	input := bookingFixture(tour.ID)
	created, gotTour, err := bookings.Submit(ctx, input)

	require.NoError(t, err)
	assert.Positive(t, created.ID, "ID should be DB-generated")
	assert.Equal(t, tour.ID, created.TourID)
	assert.Equal(t, domain.BookingStatusNew, created.Status)
	assert.False(t, created.CreatedAt.IsZero(), "created_at should be set by the DB")
	assert.Equal(t, input.ClientName, created.ClientName)
	assert.Equal(t, input.ClientPhone, created.ClientPhone)
	require.NotNil(t, created.Comment)
	assert.Equal(t, *input.Comment, *created.Comment)
	assert.True(t, input.DateTime.Equal(created.DateTime.Time))

	// The referenced tour comes back alongside the booking.
	assert.Equal(t, tour.ID, gotTour.ID)
	assert.Equal(t, tour.Title, gotTour.Title)
}

func TestBookingRepo_Submit_InactiveTour(t *testing.T) {
	tx := newTestTx(t)
	tours := repo.NewTourRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	inactive := tourFixture()
	inactive.IsActive = false
	tour, err := tours.Create(ctx, inactive)
	require.NoError(t, err)

	_, _, err = bookings.Submit(ctx, bookingFixture(tour.ID))

	assert.ErrorIs(t, err, domain.ErrTourNotBookable)
	assertNoBookings(t, bookings)
}

func TestBookingRepo_Submit_MissingTour(t *testing.T) {
	tx := newTestTx(t)
	bookings := repo.NewBookingRepo(tx)

	_, _, err := bookings.Submit(context.Background(), bookingFixture(999999999))

	assert.ErrorIs(t, err, domain.ErrTourNotBookable)
	assertNoBookings(t, bookings)
}

func TestBookingRepo_Submit_IncreasingIDs(t *testing.T) {
	tx := newTestTx(t)
	tours := repo.NewTourRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	tour, err := tours.Create(ctx, tourFixture())
	require.NoError(t, err)

	first, _, err := bookings.Submit(ctx, bookingFixture(tour.ID))
	require.NoError(t, err)
	second, _, err := bookings.Submit(ctx, bookingFixture(tour.ID))
	require.NoError(t, err)

	assert.Less(t, first.ID, second.ID)
}

func TestBookingRepo_List_NewestFirst(t *testing.T) {
	tx := newTestTx(t)
	tours := repo.NewTourRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	tour, err := tours.Create(ctx, tourFixture())
	require.NoError(t, err)

	first, _, err := bookings.Submit(ctx, bookingFixture(tour.ID))
	require.NoError(t, err)
	second, _, err := bookings.Submit(ctx, bookingFixture(tour.ID))
	require.NoError(t, err)

	list, err := bookings.List(ctx)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(list), 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestBookingRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	tours := repo.NewTourRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	tour, err := tours.Create(ctx, tourFixture())
	require.NoError(t, err)
	created, _, err := bookings.Submit(ctx, bookingFixture(tour.ID))
	require.NoError(t, err)

	got, err := bookings.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.ClientPhone, got.ClientPhone)
}

func TestBookingRepo_GetByID_NotFound(t *testing.T) {
	bookings := repo.NewBookingRepo(newTestTx(t))

	_, err := bookings.GetByID(context.Background(), 999999999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingRepo_UpdateStatus(t *testing.T) {
	tx := newTestTx(t)
	tours := repo.NewTourRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	tour, err := tours.Create(ctx, tourFixture())
	require.NoError(t, err)
	created, _, err := bookings.Submit(ctx, bookingFixture(tour.ID))
	require.NoError(t, err)

	updated, err := bookings.UpdateStatus(ctx, created.ID, "confirmed")

	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.ClientName, updated.ClientName, "only status changes")
}

func TestBookingRepo_UpdateStatus_NotFound(t *testing.T) {
	bookings := repo.NewBookingRepo(newTestTx(t))

	_, err := bookings.UpdateStatus(context.Background(), 999999999, "confirmed")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// assertNoBookings verifies a failed submit left no row behind.
func assertNoBookings(t *testing.T, bookings repo.BookingRepo) {
	t.Helper()
	list, err := bookings.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
