package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	cafeRepo "github.com/GCN-Platform/GCN-BookingService/internal/infra/storage/cafe"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	getErr     error
	createErr  error
	created    *domain.Booking
	createCall int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCall++
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = 101
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByCafeAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.getErr
}

type fakeCafeRepo struct {
	cafe *domain.Cafe
	err  error
}

func (f *fakeCafeRepo) Resolve(_ context.Context, _ string) (*domain.Cafe, error) {
	return f.cafe, f.err
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCafe() *domain.Cafe {
	return &domain.Cafe{
		ID:          5,
		Slug:        "arena-central",
		OwnerUserID: 900,
		Capacities: map[domain.ResourceType]int{
			domain.ResourcePS5: 4,
			domain.ResourcePC:  10,
		},
	}
}

// Часы фиксируются на утро дня бронирования
var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func testRequest() *Request {
	return &Request{
		UserID:          42,
		CafeRef:         "arena-central",
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:00",
		DurationMinutes: 60,
		Lines: []domain.BookingLine{
			{ResourceType: domain.ResourcePS5, Quantity: 2},
		},
	}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, cafeRepo *fakeCafeRepo) (*UseCase, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	uc := NewUseCase(bookingRepo, cafeRepo, txMgr, &fixedTimeProvider{now: testNow}, 30, nopLogger{})
	return uc, txMgr
}

func TestExecuteCreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, txMgr := newTestUseCase(repo, &fakeCafeRepo{cafe: testCafe()})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, txMgr.calls)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(101), resp.Booking.ID)
	assert.Equal(t, int64(42), resp.Booking.UserID)
	assert.Equal(t, int64(5), resp.Booking.CafeID)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	require.Len(t, resp.Booking.Lines, 1)
	assert.Equal(t, 2, resp.Booking.Lines[0].Quantity)
}

func TestExecuteMergesDuplicateLines(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(repo, &fakeCafeRepo{cafe: testCafe()})

	req := testRequest()
	req.Lines = []domain.BookingLine{
		{ResourceType: domain.ResourcePS5, Quantity: 1},
		{ResourceType: domain.ResourcePC, Quantity: 3},
		{ResourceType: domain.ResourcePS5, Quantity: 1},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Дубли слиты, порядок строк - фиксированный порядок перечня типов
	require.Len(t, resp.Booking.Lines, 2)
	assert.Equal(t, domain.ResourcePS5, resp.Booking.Lines[0].ResourceType)
	assert.Equal(t, 2, resp.Booking.Lines[0].Quantity)
	assert.Equal(t, domain.ResourcePC, resp.Booking.Lines[1].ResourceType)
	assert.Equal(t, 3, resp.Booking.Lines[1].Quantity)
}

func TestExecuteRejectsOverCapacity(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				Status:          domain.StatusConfirmed,
				StartTime:       "18:00",
				DurationMinutes: 60,
				Lines:           []domain.BookingLine{{ResourceType: domain.ResourcePS5, Quantity: 3}},
			},
		},
	}
	uc, _ := newTestUseCase(repo, &fakeCafeRepo{cafe: testCafe()})

	_, err := uc.Execute(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Contains(t, capErr.Rejection.Message, "only 1 available")
	assert.Zero(t, repo.createCall)
}

func TestExecuteCapacityCheckRunsInsideTransaction(t *testing.T) {
	repo := &fakeBookingRepo{}
	txMgr := &fakeTxManager{}
	checked := false

	// Транзакционная обёртка, которая фиксирует, что и чтение, и запись
	// происходят внутри callback
	wrapper := &probeTxManager{inner: txMgr, onEnter: func() { checked = true }}
	uc := NewUseCase(repo, &fakeCafeRepo{cafe: testCafe()}, wrapper, &fixedTimeProvider{now: testNow}, 30, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.True(t, checked)
	assert.Equal(t, 1, repo.createCall)
}

type probeTxManager struct {
	inner   *fakeTxManager
	onEnter func()
}

func (p *probeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.onEnter()
	return p.inner.DoSerializable(ctx, fn)
}

func TestExecuteCafeNotFound(t *testing.T) {
	uc, _ := newTestUseCase(&fakeBookingRepo{}, &fakeCafeRepo{err: cafeRepo.ErrCafeNotFound})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "missing user",
			mutate:  func(req *Request) { req.UserID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing cafe ref",
			mutate:  func(req *Request) { req.CafeRef = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty cart",
			mutate:  func(req *Request) { req.Lines = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration too short",
			mutate:  func(req *Request) { req.DurationMinutes = 15 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration too long",
			mutate:  func(req *Request) { req.DurationMinutes = 600 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration not a step multiple",
			mutate:  func(req *Request) { req.DurationMinutes = 45 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "invalid start time",
			mutate:  func(req *Request) { req.StartTime = "25:99" },
			wantErr: ErrInvalidInput,
		},
		{
			name: "date in the past",
			mutate: func(req *Request) {
				req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrInvalidDate,
		},
		{
			name: "same day inside notice window",
			mutate: func(req *Request) {
				req.StartTime = "10:15"
			},
			wantErr: ErrTooLateToBook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc, _ := newTestUseCase(repo, &fakeCafeRepo{cafe: testCafe()})

			req := testRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.createCall)
		})
	}
}

func TestExecuteTimingUsesServerCalendarDay(t *testing.T) {
	// Раннее утро в зоне UTC+5: по UTC ещё идут предыдущие сутки.
	// Проверка времени обязана считать дни по календарю сервера,
	// а не по границам суток UTC.
	serverZone := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2026, 8, 30, 3, 0, 0, 0, serverZone)

	newUC := func(repo *fakeBookingRepo) *UseCase {
		return NewUseCase(repo, &fakeCafeRepo{cafe: testCafe()}, &fakeTxManager{},
			&fixedTimeProvider{now: now}, 30, nopLogger{})
	}

	t.Run("same local day inside notice window", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		req := testRequest()
		req.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
		req.StartTime = "03:05"

		_, err := newUC(repo).Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooLateToBook)
		assert.Zero(t, repo.createCall)
	})

	t.Run("previous local day rejected as past", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		req := testRequest()
		req.Date = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

		_, err := newUC(repo).Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.Zero(t, repo.createCall)
	})

	t.Run("same local day outside notice window", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		req := testRequest()
		req.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
		req.StartTime = "18:00"

		_, err := newUC(repo).Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecuteSameDayAtNoticeBoundary(t *testing.T) {
	// Старт ровно через minNotice минут - допустим
	uc, _ := newTestUseCase(&fakeBookingRepo{}, &fakeCafeRepo{cafe: testCafe()})

	req := testRequest()
	req.StartTime = "10:30"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecuteTransactionFailure(t *testing.T) {
	repo := &fakeBookingRepo{getErr: errors.New("deadlock")}
	uc, _ := newTestUseCase(repo, &fakeCafeRepo{cafe: testCafe()})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteCreateFailure(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("constraint violation")}
	uc, _ := newTestUseCase(repo, &fakeCafeRepo{cafe: testCafe()})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
