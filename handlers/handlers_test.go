package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	services []models.Service
}

func (f *fakeCatalog) GetAll() ([]models.Service, error) {
	return f.services, nil
}

type fakeAvailability struct {
	services []models.Service
}

func (f *fakeAvailability) Compute(date string) ([]models.Service, error) {
	if date == "" {
		return nil, availability.ErrDateRequired
	}
	return f.services, nil
}

type fakeBookingService struct {
	result   models.BookingResult
	err      error
	bookings []models.Booking
}

func (f *fakeBookingService) Record(b models.Booking) (models.BookingResult, error) {
	if f.err != nil {
		return models.BookingResult{}, f.err
	}
	return f.result, nil
}

func (f *fakeBookingService) ListByPatient(patient string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func availabilityRouter(h *AvailabilityHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/service", h.GetServices)
	r.GET("/available", h.GetAvailable)
	return r
}

func bookingRouter(h *BookingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/booking", h.CreateBooking)
	r.GET("/booking", middleware.JWTAuthMiddleware(), h.GetPatientBookings)
	return r
}

func TestGetAvailable_MissingDateBadRequest(t *testing.T) {
	h := NewAvailabilityHandler(&fakeAvailability{}, &fakeCatalog{})
	r := availabilityRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/available", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailable_ReturnsFilteredCatalog(t *testing.T) {
	h := NewAvailabilityHandler(&fakeAvailability{
		services: []models.Service{{Name: "Cleaning", Slots: []string{"10:00 AM"}}},
	}, &fakeCatalog{})
	r := availabilityRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/available?date=2024-01-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Cleaning", got[0].Name)
	assert.Equal(t, []string{"10:00 AM"}, got[0].Slots)
}

func TestGetServices_ReturnsCatalog(t *testing.T) {
	h := NewAvailabilityHandler(&fakeAvailability{}, &fakeCatalog{
		services: []models.Service{{Name: "Cleaning", Slots: []string{"9:00 AM"}}},
	})
	r := availabilityRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/service", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cleaning")
}

func TestCreateBooking_SuccessAndDuplicateBoth200(t *testing.T) {
	fresh := models.Booking{ID: "b1", Patient: "a@x.com", Treatment: "Cleaning", Date: "2024-01-01", Slot: "9:00 AM"}

	cases := []struct {
		name    string
		result  models.BookingResult
		success bool
	}{
		{"fresh booking", models.BookingResult{Success: true, Booking: &fresh}, true},
		{"duplicate booking", models.BookingResult{Success: false, Booking: &fresh}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewBookingHandler(&fakeBookingService{result: tc.result})
			r := bookingRouter(h)

			body, _ := json.Marshal(models.Booking{
				Patient: "a@x.com", PatientName: "Ada",
				Treatment: "Cleaning", Date: "2024-01-01", Slot: "9:00 AM",
			})
			req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var got models.BookingResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tc.success, got.Success)
			require.NotNil(t, got.Booking)
			assert.Equal(t, "b1", got.Booking.ID)
		})
	}
}

func TestCreateBooking_ValidationErrorBadRequest(t *testing.T) {
	h := NewBookingHandler(&fakeBookingService{err: booking.NewValidationError("slot")})
	r := bookingRouter(h)

	body, _ := json.Marshal(models.Booking{Patient: "a@x.com"})
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPatientBookings_MismatchForbidden(t *testing.T) {
	h := NewBookingHandler(&fakeBookingService{})
	r := bookingRouter(h)

	token, err := utils.GenerateToken("a@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/booking?patient=b@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetPatientBookings_MatchReturnsBookings(t *testing.T) {
	h := NewBookingHandler(&fakeBookingService{
		bookings: []models.Booking{
			{ID: "b1", Patient: "a@x.com", Treatment: "Cleaning", Date: "2024-01-01", Slot: "9:00 AM"},
			{ID: "b2", Patient: "b@x.com", Treatment: "Cleaning", Date: "2024-01-01", Slot: "10:00 AM"},
		},
	})
	r := bookingRouter(h)

	token, err := utils.GenerateToken("a@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/booking?patient=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
}
