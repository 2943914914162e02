// Package client is a small REST client for the crewplan API plus an
// in-memory cache shaped the way the planner screen consumes data.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/crewplan/crewplan-api/models"
)

// APIError is the server's error envelope with the HTTP status attached.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Detail     string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s (%s)", e.StatusCode, e.Message, e.Detail)
}

// Pagination mirrors the metadata block on list responses.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// ShiftList is the envelope returned by the shift list endpoint.
type ShiftList struct {
	Data       []models.Shift `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// ShiftQuery selects the week window the planner is displaying.
type ShiftQuery struct {
	WeekStart   string
	WeekEnd     string
	WorksiteID  uint
	EmployeeID  uint
	SearchQuery string
	Page        int
	PerPage     int
}

func (q ShiftQuery) values() url.Values {
	v := url.Values{}
	if q.WeekStart != "" {
		v.Set("week_start", q.WeekStart)
	}
	if q.WeekEnd != "" {
		v.Set("week_end", q.WeekEnd)
	}
	if q.WorksiteID != 0 {
		v.Set("worksite_id", strconv.FormatUint(uint64(q.WorksiteID), 10))
	}
	if q.EmployeeID != 0 {
		v.Set("employee_id", strconv.FormatUint(uint64(q.EmployeeID), 10))
	}
	if q.SearchQuery != "" {
		v.Set("search_query", q.SearchQuery)
	}
	if q.Page != 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage != 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return v
}

// ShiftEdit is a partial shift update. Zero fields are left unchanged.
type ShiftEdit struct {
	Title      string `json:"title,omitempty"`
	Date       string `json:"date,omitempty"`
	ShiftStart string `json:"shift_start,omitempty"`
	ShiftEnd   string `json:"shift_end,omitempty"`
	WorksiteID uint   `json:"worksite_id,omitempty"`
	Remarks    string `json:"remarks,omitempty"`
}

// EmployeeEdit is a partial employee update. Zero and nil fields are
// left unchanged.
type EmployeeEdit struct {
	FullName       string         `json:"full_name,omitempty"`
	PhoneNumber    string         `json:"phone_number,omitempty"`
	PhoneNumberExt string         `json:"phone_number_ext,omitempty"`
	Address        string         `json:"address,omitempty"`
	PayType        models.PayType `json:"pay_type,omitempty"`
	PayRate        *float64       `json:"payrate,omitempty"`
	IsActive       *bool          `json:"is_active,omitempty"`
}

// Client talks to one crewplan server with one bearer token.
type Client struct {
	baseURL        string
	token          string
	httpc          *http.Client
	onUnauthorized func()
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithUnauthorizedHandler registers a callback fired on any 401, which
// the caller typically uses to drop the session and re-login.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New builds a client for baseURL authenticating with token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	if res.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		_ = json.NewDecoder(res.Body).Decode(apiErr)
		return apiErr
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// ListShifts fetches one page of shifts for the query's week window.
func (c *Client) ListShifts(ctx context.Context, q ShiftQuery) (ShiftList, error) {
	var list ShiftList
	err := c.do(ctx, http.MethodGet, "/api/shift/list", q.values(), nil, &list)
	return list, err
}

// CreateShift creates a shift and returns the stored record.
func (c *Client) CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error) {
	var created models.Shift
	err := c.do(ctx, http.MethodPost, "/api/shift/create", nil, shift, &created)
	return created, err
}

// EditShift applies a partial update to a shift.
func (c *Client) EditShift(ctx context.Context, id uint, edit ShiftEdit) (models.Shift, error) {
	var updated models.Shift
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/shift/edit/%d", id), nil, edit, &updated)
	return updated, err
}

// DeleteShift removes a shift.
func (c *Client) DeleteShift(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/shift/delete/%d", id), nil, nil, nil)
}

// SwapEmployee reassigns a shift to another employee.
func (c *Client) SwapEmployee(ctx context.Context, id, employeeID uint) (models.Shift, error) {
	var updated models.Shift
	body := map[string]uint{"employee_id": employeeID}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/shift/swap-employee/%d", id), nil, body, &updated)
	return updated, err
}

// CallInShift marks a shift as called in.
func (c *Client) CallInShift(ctx context.Context, id uint, reason string) (models.Shift, error) {
	var updated models.Shift
	body := map[string]string{"call_in_reason": reason}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/shift/%d/call-in", id), nil, body, &updated)
	return updated, err
}

// ListEmployees fetches the organization's employees.
func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := c.do(ctx, http.MethodGet, "/api/employee/list", nil, nil, &employees)
	return employees, err
}

// CreateEmployee creates an employee and returns the stored record.
func (c *Client) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	var created models.Employee
	err := c.do(ctx, http.MethodPost, "/api/employee/create", nil, employee, &created)
	return created, err
}

// UpdateEmployee applies a partial update to an employee.
func (c *Client) UpdateEmployee(ctx context.Context, id uint, edit EmployeeEdit) (models.Employee, error) {
	var updated models.Employee
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/employee/edit/%d", id), nil, edit, &updated)
	return updated, err
}

// RemoveEmployee deactivates an employee.
func (c *Client) RemoveEmployee(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/employee/delete/%d", id), nil, nil, nil)
}

// ListWorkSites fetches the organization's worksites.
func (c *Client) ListWorkSites(ctx context.Context) ([]models.WorkSite, error) {
	var sites []models.WorkSite
	err := c.do(ctx, http.MethodGet, "/api/worksite/list", nil, nil, &sites)
	return sites, err
}

// ListPresetGroups fetches the weekly templates with their presets.
func (c *Client) ListPresetGroups(ctx context.Context) ([]models.ShiftPresetGroup, error) {
	var groups []models.ShiftPresetGroup
	err := c.do(ctx, http.MethodGet, "/api/shift-preset/group/list", nil, nil, &groups)
	return groups, err
}

// PopulateWeek applies a preset group to the week containing weekDate.
func (c *Client) PopulateWeek(ctx context.Context, groupID uint, weekDate string) error {
	body := map[string]string{"week_date": weekDate}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/shift-preset/group/%d/populate", groupID), nil, body, nil)
}
