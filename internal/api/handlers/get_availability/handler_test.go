package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	getAvailability "github.com/GCN-Platform/GCN-BookingService/internal/usecase/get_availability"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

type fakeUseCase struct {
	gotReq *getAvailability.Request
	resp   *getAvailability.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serveAvailability(t *testing.T, uc GetAvailabilityUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/cafes/{cafeRef}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func okResponse() *getAvailability.Response {
	next := types.TimeString("19:00")
	return &getAvailability.Response{
		CafeID:          7,
		CafeSlug:        "arena-central",
		StartTime:       "18:00",
		DurationMinutes: 60,
		Resources: map[domain.ResourceType]getAvailability.Snapshot{
			domain.ResourcePS5: {Total: 4, Booked: 3, Available: 1, NextAvailableAt: &next},
		},
	}
}

func TestHandleServesSnapshot(t *testing.T) {
	uc := &fakeUseCase{resp: okResponse()}

	rec := serveAvailability(t, uc, "/api/v1/cafes/arena-central/availability?date=2026-09-01&time=18:00&duration=60")

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.CafeID)

	ps5 := body.Resources["ps5"]
	assert.Equal(t, 4, ps5.Total)
	assert.Equal(t, 1, ps5.Available)
	require.NotNil(t, ps5.NextAvailableAt)
	assert.Equal(t, "19:00", *ps5.NextAvailableAt)
}

func TestHandleAcceptsTwelveHourTime(t *testing.T) {
	uc := &fakeUseCase{resp: okResponse()}

	rec := serveAvailability(t, uc, "/api/v1/cafes/arena-central/availability?date=2026-09-01&time=7:30+pm")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, types.TimeString("19:30"), uc.gotReq.StartTime)
	// duration не указан - подставляется стандартная сессия
	assert.Equal(t, domain.DefaultSessionMinutes, uc.gotReq.DurationMinutes)
}

func TestHandleRejectsBadParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing date", url: "/api/v1/cafes/arena-central/availability?time=18:00"},
		{name: "bad date", url: "/api/v1/cafes/arena-central/availability?date=tomorrow&time=18:00"},
		{name: "bad time", url: "/api/v1/cafes/arena-central/availability?date=2026-09-01&time=late"},
		{name: "bad duration", url: "/api/v1/cafes/arena-central/availability?date=2026-09-01&time=18:00&duration=soon"},
		{name: "negative duration", url: "/api/v1/cafes/arena-central/availability?date=2026-09-01&time=18:00&duration=-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{resp: okResponse()}
			rec := serveAvailability(t, uc, tt.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleCafeNotFound(t *testing.T) {
	uc := &fakeUseCase{err: getAvailability.ErrCafeNotFound}

	rec := serveAvailability(t, uc, "/api/v1/cafes/ghost/availability?date=2026-09-01&time=18:00")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
