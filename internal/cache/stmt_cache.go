// Package cache provides a small LRU cache for prepared statements, keyed by
// SQL text. Repeated insert calls against the same table reuse the prepared
// batch statement instead of re-preparing it per call.
package cache

import (
	"container/list"
	"database/sql"
	"sync"
)

// DefaultCapacity is the statement cache capacity used when none is given.
const DefaultCapacity = 64

type entry struct {
	sql  string
	stmt *sql.Stmt
}

// StmtCache is an LRU cache of prepared statements. Evicted statements are
// closed.
type StmtCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[string]*list.Element
}

// New creates a statement cache with the default capacity.
func New() *StmtCache {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity creates a statement cache holding at most capacity
// statements. Non-positive capacities fall back to the default.
func NewWithCapacity(capacity int) *StmtCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &StmtCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get returns the cached statement for the SQL text, if present.
func (c *StmtCache) Get(sqlText string) (*sql.Stmt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[sqlText]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).stmt, true
}

// Set stores a prepared statement, evicting the least recently used entry
// when the cache is full.
func (c *StmtCache) Set(sqlText string, stmt *sql.Stmt) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[sqlText]; ok {
		c.order.MoveToFront(el)
		el.Value.(*entry).stmt = stmt
		return
	}
	c.items[sqlText] = c.order.PushFront(&entry{sql: sqlText, stmt: stmt})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		e := oldest.Value.(*entry)
		delete(c.items, e.sql)
		_ = e.stmt.Close()
	}
}

// Len returns the number of cached statements.
func (c *StmtCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear closes and drops every cached statement.
func (c *StmtCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, el := range c.items {
		_ = el.Value.(*entry).stmt.Close()
	}
	c.order.Init()
	c.items = make(map[string]*list.Element)
}
