package controllers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/crewplan/crewplan-api/db"
)

// scriptedDB builds a gorm handle whose queries return the scripted
// counts in order and fail once the script runs out.
func scriptedDB(t *testing.T, counts ...int64) *gorm.DB {
	t.Helper()
	sqlDB := sql.OpenDB(scriptedConnector{conn: &scriptedConn{results: counts}})
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return gdb
}

type scriptedConnector struct{ conn *scriptedConn }

func (c scriptedConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c scriptedConnector) Driver() driver.Driver                        { return scriptedDriver{} }

type scriptedDriver struct{}

func (scriptedDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open through the connector")
}

type scriptedConn struct {
	mu      sync.Mutex
	results []int64
}

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.results) == 0 {
		return nil, errors.New("storage offline")
	}
	n := c.results[0]
	c.results = c.results[1:]
	return &scriptedStmt{n: n}, nil
}
func (c *scriptedConn) Close() error { return nil }
func (c *scriptedConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions are not scripted")
}

type scriptedStmt struct{ n int64 }

func (s *scriptedStmt) Close() error  { return nil }
func (s *scriptedStmt) NumInput() int { return -1 }
func (s *scriptedStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.ResultNoRows, nil
}
func (s *scriptedStmt) Query([]driver.Value) (driver.Rows, error) {
	return &scriptedRows{n: s.n}, nil
}

type scriptedRows struct {
	n    int64
	done bool
}

func (r *scriptedRows) Columns() []string { return []string{"count"} }
func (r *scriptedRows) Close() error      { return nil }
func (r *scriptedRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	dest[0] = r.n
	r.done = true
	return nil
}

func summaryApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/summary", func(c *fiber.Ctx) error {
		c.Locals("orgID", uint(1))
		return GetSummary(c)
	})
	return app
}

func TestGetSummaryCounts(t *testing.T) {
	prev := db.DB
	db.DB = scriptedDB(t, 4, 2, 9, 1, 3)
	defer func() { db.DB = prev }()

	resp, err := summaryApp().Test(httptest.NewRequest("GET", "/api/summary", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.EqualValues(t, 4, payload["active_employees"])
	assert.EqualValues(t, 2, payload["active_worksites"])
	assert.EqualValues(t, 9, payload["week_shifts"])
	assert.EqualValues(t, 1, payload["week_call_ins"])
	assert.EqualValues(t, 3, payload["open_punches"])
}

func TestGetSummaryFailsWhenAnyCountFails(t *testing.T) {
	// Only the first two counts succeed; the summary must error instead
	// of reporting the remaining counts as zero.
	prev := db.DB
	db.DB = scriptedDB(t, 4, 2)
	defer func() { db.DB = prev }()

	resp, err := summaryApp().Test(httptest.NewRequest("GET", "/api/summary", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Failed to build summary", payload["message"])
	assert.Contains(t, payload["error"], "storage offline")
}
