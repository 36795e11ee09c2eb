// internal/catalogfake/server.go
package catalogfake

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed products.json
var defaultSeed []byte

// Server is an in-process stand-in for the remote catalog API. It serves the
// product JSON exactly as seeded so the wire format stays under test control.
type Server struct {
	mu         sync.RWMutex
	list       []byte
	byID       map[string]json.RawMessage
	failStatus int
	delay      time.Duration
	hits       map[string]int
}

// New returns a server seeded with seed, a JSON array of product objects.
func New(seed []byte) (*Server, error) {
	s := &Server{hits: make(map[string]int)}
	if err := s.Load(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// NewDefault returns a server seeded with the bundled sample catalog.
func NewDefault() *Server {
	s, err := New(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("catalogfake: bundled seed is invalid: %v", err))
	}
	return s
}

// Load replaces the catalog.
func (s *Server) Load(seed []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(seed, &items); err != nil {
		return fmt.Errorf("seed must be a JSON array: %w", err)
	}

	byID := make(map[string]json.RawMessage, len(items))
	for i, item := range items {
		var head struct {
			ID *int `json:"id"`
		}
		if err := json.Unmarshal(item, &head); err != nil || head.ID == nil {
			return fmt.Errorf("seed item %d has no integer id", i)
		}
		byID[strconv.Itoa(*head.ID)] = item
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, seed); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = buf.Bytes()
	s.byID = byID
	return nil
}

// FailWith makes every endpoint answer with status. Zero restores normal service.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// SetDelay adds a fixed latency before each response.
func (s *Server) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Hits reports how many requests reached path, e.g. "/products" or "/products/1".
func (s *Server) Hits(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hits[path]
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.intercept)

	r.GET("/products", s.listProducts)
	r.GET("/products/:id", s.getProduct)
	return r
}

func (s *Server) intercept(c *gin.Context) {
	s.mu.Lock()
	s.hits[c.Request.URL.Path]++
	status, delay := s.failStatus, s.delay
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-c.Request.Context().Done():
			c.Abort()
			return
		}
	}

	if status != 0 {
		c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.Next()
}

// GET /products
func (s *Server) listProducts(c *gin.Context) {
	s.mu.RLock()
	body := s.list
	s.mu.RUnlock()

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GET /products/:id
func (s *Server) getProduct(c *gin.Context) {
	s.mu.RLock()
	item, ok := s.byID[c.Param("id")]
	s.mu.RUnlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", item)
}
