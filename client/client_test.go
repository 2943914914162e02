package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/crewplan/crewplan-api/models"
)

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(ShiftList{})
	}))
	defer srv.Close()

	api := New(srv.URL, "secret-token")
	_, err := api.ListShifts(context.Background(), ShiftQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClient_MutationsCarryIdempotencyKey(t *testing.T) {
	var getKey, postKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getKey = r.Header.Get("X-Idempotency-Key")
			json.NewEncoder(w).Encode(ShiftList{})
		case http.MethodPost:
			postKey = r.Header.Get("X-Idempotency-Key")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Shift{})
		}
	}))
	defer srv.Close()

	api := New(srv.URL, "t")
	_, err := api.ListShifts(context.Background(), ShiftQuery{})
	require.NoError(t, err)
	_, err = api.CreateShift(context.Background(), models.Shift{Title: "Opening"})
	require.NoError(t, err)

	assert.Empty(t, getKey, "reads must not carry an idempotency key")
	require.NotEmpty(t, postKey)
	_, err = uuid.Parse(postKey)
	assert.NoError(t, err, "idempotency key should be a UUID")
}

func TestClient_UnauthorizedFiresHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Unauthorized",
			"error":   "token expired",
		})
	}))
	defer srv.Close()

	fired := false
	api := New(srv.URL, "expired", WithUnauthorizedHandler(func() { fired = true }))
	_, err := api.ListShifts(context.Background(), ShiftQuery{})

	require.Error(t, err)
	assert.True(t, fired)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Unauthorized", apiErr.Message)
	assert.Equal(t, "token expired", apiErr.Detail)
}

func TestClient_ErrorEnvelopeDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Shift not found",
			"error":   "no shift with that id in this organization",
		})
	}))
	defer srv.Close()

	api := New(srv.URL, "t")
	err := api.DeleteShift(context.Background(), 99)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Shift not found", apiErr.Message)
}

func TestClient_ShiftQueryValues(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		json.NewEncoder(w).Encode(ShiftList{})
	}))
	defer srv.Close()

	api := New(srv.URL, "t")
	_, err := api.ListShifts(context.Background(), ShiftQuery{
		WeekStart:  "2024-06-09",
		WeekEnd:    "2024-06-15",
		WorksiteID: 3,
		Page:       2,
		PerPage:    50,
	})
	require.NoError(t, err)

	assert.Contains(t, got, "week_start=2024-06-09")
	assert.Contains(t, got, "week_end=2024-06-15")
	assert.Contains(t, got, "worksite_id=3")
	assert.Contains(t, got, "page=2")
	assert.Contains(t, got, "per_page=50")
	assert.NotContains(t, got, "employee_id")
}

func TestClient_EmployeeEndpoints(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Employee{ID: 9, FullName: "Robin Vale"})
		case http.MethodPut:
			json.NewEncoder(w).Encode(models.Employee{ID: 9, FullName: "Robin Vale-Okafor"})
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]string{"message": "Employee deactivated successfully"})
		}
	}))
	defer srv.Close()

	api := New(srv.URL, "t")
	ctx := context.Background()

	created, err := api.CreateEmployee(ctx, models.Employee{FullName: "Robin Vale"})
	require.NoError(t, err)
	assert.Equal(t, uint(9), created.ID)

	rate := 22.5
	updated, err := api.UpdateEmployee(ctx, 9, EmployeeEdit{FullName: "Robin Vale-Okafor", PayRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "Robin Vale-Okafor", updated.FullName)

	require.NoError(t, api.RemoveEmployee(ctx, 9))

	require.Len(t, calls, 3)
	assert.Equal(t, call{http.MethodPost, "/api/employee/create"}, calls[0])
	assert.Equal(t, call{http.MethodPut, "/api/employee/edit/9"}, calls[1])
	assert.Equal(t, call{http.MethodDelete, "/api/employee/delete/9"}, calls[2])
}

func TestClient_SwapEmployeeBody(t *testing.T) {
	var body map[string]uint
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/shift/swap-employee/12", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(models.Shift{
			Model:      gorm.Model{ID: 12},
			EmployeeID: body["employee_id"],
		})
	}))
	defer srv.Close()

	api := New(srv.URL, "t")
	updated, err := api.SwapEmployee(context.Background(), 12, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), body["employee_id"])
	assert.Equal(t, uint(7), updated.EmployeeID)
}
