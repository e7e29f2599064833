package toursapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/model/entity"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&config.AppConfig{APIBaseURL: srv.URL}, srv.Client())
}

func TestGetAllToursDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tours", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": {"data": [{
				"id": "t1",
				"name": "The Forest Hiker",
				"duration": 5,
				"maxGroupSize": 25,
				"price": 397,
				"ratingsAverage": 4.7,
				"ratingsQuantity": 37,
				"startDates": ["2026-04-25T09:00:00.000Z"],
				"startLocation": {"description": "Manali, India", "coordinates": [77.1887, 32.2432]}
			}]}
		}`))
	}))

	tours, err := c.GetAllTours()
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, "t1", tours[0].ID)
	assert.Equal(t, "The Forest Hiker", tours[0].Name)
	assert.Equal(t, 25, tours[0].MaxGroupSize)
	assert.Equal(t, "Manali, India", tours[0].StartLocation.Description)
	require.Len(t, tours[0].StartDates, 1)
	assert.Equal(t, 2026, tours[0].StartDates[0].Year())
}

func TestGetTourByID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tours/t9", r.URL.Path)
		w.Write([]byte(`{"status":"success","data":{"data":{"id":"t9","name":"Sea Explorer"}}}`))
	}))

	tour, err := c.GetTourByID("t9")
	require.NoError(t, err)
	assert.Equal(t, "Sea Explorer", tour.Name)
}

func TestGetAllBookingsUsesBackendFieldNames(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/booking", r.URL.Path)
		w.Write([]byte(`{"status":"success","data":{"data":[
			{"_id":"b1","userId":"u1","tourName":"Forest Hiker","members":3,"totalPrice":1191}
		]}}`))
	}))

	bookings, err := c.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, "u1", bookings[0].UserID)
	assert.Equal(t, 3, bookings[0].Members)
}

func TestCancelBookingEmptyBody(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.CancelBooking("b1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/booking/b1", gotPath)
}

func TestForgotPasswordReturnsBackendMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/users/forgotPassword", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"status":"success","message":"Token sent to email!"}`))
	}))

	message, err := c.ForgotPassword("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Token sent to email!", message)
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"statusCode":404},"message":"There is no user with email address."}`))
	}))

	_, err := c.ForgotPassword("nobody@example.com")
	require.Error(t, err)

	var apiErr *entity.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "There is no user with email address.", apiErr.Message)
}

func TestNonJSONErrorBodyKeepsTransportStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))

	_, err := c.GetAllReviews()
	require.Error(t, err)

	var apiErr *entity.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}
