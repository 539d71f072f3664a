// Package testutil provides an in-memory stand-in for the REST collaborator.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// Request is one call the fake collaborator received.
type Request struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

type resource struct {
	name      string
	singular  string
	idField   string
	stamp     string
	rename    map[string]string
	writeOnly []string
	rows      []map[string]interface{}
	nextID    int64
}

type failure struct {
	status int
	body   string
}

// Collaborator serves the sixteen list/create/update/delete endpoints for
// users, products, orders and reviews from memory.
type Collaborator struct {
	*httptest.Server

	mu        sync.Mutex
	resources map[string]*resource
	requests  []Request
	failures  map[string]failure
}

func NewCollaborator(t testing.TB) *Collaborator {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := &Collaborator{
		resources: map[string]*resource{
			"users": {
				name: "users", singular: "User", idField: "user_id", stamp: "created_at",
				rename:    map[string]string{"name": "username"},
				writeOnly: []string{"password"},
			},
			"products": {name: "products", singular: "Product", idField: "product_id", stamp: "created_at"},
			"orders":   {name: "orders", singular: "Order", idField: "order_id", stamp: "order_date"},
			"reviews":  {name: "reviews", singular: "Review", idField: "review_id", stamp: "created_at"},
		},
		failures: make(map[string]failure),
	}

	r := gin.New()
	r.Use(c.record, c.injectFailures)
	for _, res := range c.resources {
		r.GET("/"+res.name, c.list(res))
		r.POST("/create"+res.singular+"s", c.create(res))
		r.PUT("/update"+res.singular+"/:id", c.update(res))
		r.DELETE("/delete"+res.singular+"/:id", c.remove(res))
	}

	c.Server = httptest.NewServer(r)
	t.Cleanup(c.Server.Close)
	return c
}

// Seed stores rows as-is, assigning an identifier to rows without one.
func (c *Collaborator) Seed(name string, rows ...map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := c.resources[name]
	for _, row := range rows {
		stored := copyRow(row)
		id, ok := toInt64(stored[res.idField])
		if !ok {
			res.nextID++
			id = res.nextID
		}
		if id > res.nextID {
			res.nextID = id
		}
		stored[res.idField] = id
		res.rows = append(res.rows, stored)
	}
}

// Rows returns a copy of a resource's rows in insertion order.
func (c *Collaborator) Rows(name string) []map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]map[string]interface{}, 0, len(c.resources[name].rows))
	for _, row := range c.resources[name].rows {
		rows = append(rows, copyRow(row))
	}
	return rows
}

func (c *Collaborator) Requests() []Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Request(nil), c.requests...)
}

// Calls lists the received requests as "METHOD path" strings.
func (c *Collaborator) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	calls := make([]string, 0, len(c.requests))
	for _, req := range c.requests {
		calls = append(calls, req.Method+" "+req.Path)
	}
	return calls
}

func (c *Collaborator) ResetRequests() {
	c.mu.Lock()
	c.requests = nil
	c.mu.Unlock()
}

// Fail makes every matching request answer with status and body until
// ClearFailures is called.
func (c *Collaborator) Fail(method, path string, status int, body string) {
	c.mu.Lock()
	c.failures[method+" "+path] = failure{status: status, body: body}
	c.mu.Unlock()
}

func (c *Collaborator) ClearFailures() {
	c.mu.Lock()
	c.failures = make(map[string]failure)
	c.mu.Unlock()
}

func (c *Collaborator) record(ctx *gin.Context) {
	raw, _ := io.ReadAll(ctx.Request.Body)
	ctx.Request.Body = io.NopCloser(bytes.NewReader(raw))

	req := Request{Method: ctx.Request.Method, Path: ctx.Request.URL.Path}
	if len(raw) > 0 {
		json.Unmarshal(raw, &req.Body)
	}

	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()

	ctx.Next()
}

func (c *Collaborator) injectFailures(ctx *gin.Context) {
	c.mu.Lock()
	f, ok := c.failures[ctx.Request.Method+" "+ctx.Request.URL.Path]
	c.mu.Unlock()

	if ok {
		ctx.Data(f.status, "application/json", []byte(f.body))
		ctx.Abort()
		return
	}
	ctx.Next()
}

func (c *Collaborator) list(res *resource) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, c.Rows(res.name))
	}
}

func (c *Collaborator) create(res *resource) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body map[string]interface{}
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		res.nextID++
		row := res.apply(map[string]interface{}{
			res.idField: res.nextID,
			res.stamp:   time.Now().UTC().Format(time.RFC3339Nano),
		}, body)
		res.rows = append(res.rows, row)

		ctx.JSON(http.StatusCreated, row)
	}
}

func (c *Collaborator) update(res *resource) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body map[string]interface{}
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		i := res.find(ctx.Param("id"))
		if i < 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": res.singular + " not found"})
			return
		}
		res.rows[i] = res.apply(res.rows[i], body)

		ctx.JSON(http.StatusOK, res.rows[i])
	}
}

func (c *Collaborator) remove(res *resource) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.mu.Lock()
		defer c.mu.Unlock()

		i := res.find(ctx.Param("id"))
		if i < 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": res.singular + " not found"})
			return
		}
		res.rows = append(res.rows[:i], res.rows[i+1:]...)

		ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s deleted", res.singular)})
	}
}

func (res *resource) apply(row, body map[string]interface{}) map[string]interface{} {
	out := copyRow(row)
	for k, v := range body {
		if slices.Contains(res.writeOnly, k) {
			continue
		}
		if renamed, ok := res.rename[k]; ok {
			k = renamed
		}
		out[k] = v
	}
	return out
}

func (res *resource) find(param string) int {
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return -1
	}
	for i, row := range res.rows {
		if rowID, ok := toInt64(row[res.idField]); ok && rowID == id {
			return i
		}
	}
	return -1
}

func copyRow(row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
