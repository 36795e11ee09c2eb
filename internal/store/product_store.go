// internal/store/product_store.go
package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/productlist/internal/models"
)

const (
	// ListErrorPrefix is prepended to the cause when the product list cannot be loaded.
	ListErrorPrefix = "Error fetching products: "
	// DetailErrorMessage is shown for every failed detail fetch, whatever the cause.
	DetailErrorMessage = "Failed to load product details."
)

// ProductAPI is the remote catalog as seen by the store.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// State is a point-in-time copy of the store's four observable fields.
type State struct {
	ProductList   []models.Product `json:"productList"`
	ProductDetail *models.Product  `json:"productDetail"`
	IsLoading     bool             `json:"isLoading"`
	ErrorMessage  *string          `json:"errorMessage"`
}

func (s State) clone() State {
	out := State{
		ProductList: models.CloneProducts(s.ProductList),
		IsLoading:   s.IsLoading,
	}
	if s.ProductDetail != nil {
		p := s.ProductDetail.Clone()
		out.ProductDetail = &p
	}
	if s.ErrorMessage != nil {
		msg := *s.ErrorMessage
		out.ErrorMessage = &msg
	}
	return out
}

// ProductStore holds the product list and detail state and drives the two
// catalog calls that change it. Both operations share one ErrorMessage.
type ProductStore struct {
	api        ProductAPI
	logger     logrus.FieldLogger
	latestOnly bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	state     State
	detailSeq uint64
	subs      map[*subscription]struct{}
	closed    bool

	initOnce sync.Once
	initDone chan struct{}
}

type Option func(*ProductStore)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *ProductStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLatestDetailOnly discards detail responses superseded by a later
// FetchDetails call. Without it the last response to arrive wins.
func WithLatestDetailOnly() Option {
	return func(s *ProductStore) { s.latestOnly = true }
}

// New creates the store and starts loading the product list. The load runs
// once per store; Initialized reports when it is done.
func New(ctx context.Context, api ProductAPI, opts ...Option) *ProductStore {
	s := &ProductStore{
		api:      api,
		logger:   logrus.StandardLogger(),
		subs:     make(map[*subscription]struct{}),
		initDone: make(chan struct{}),
		state:    State{ProductList: []models.Product{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ctx, s.cancel = context.WithCancel(ctx)

	s.initOnce.Do(s.loadProducts)
	return s
}

// Initialized is closed once the initial list load has finished.
func (s *ProductStore) Initialized() <-chan struct{} {
	return s.initDone
}

func (s *ProductStore) loadProducts() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.wg.Add(1)
	s.publishLocked()
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer close(s.initDone)

		products, err := s.api.ListProducts(s.ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			msg := ListErrorPrefix + err.Error()
			s.state.ErrorMessage = &msg
			s.state.ProductList = []models.Product{}
			s.logger.WithError(err).Warn("Failed to load product list")
		} else {
			s.state.ProductList = models.CloneProducts(products)
			s.state.ErrorMessage = nil
			s.logger.WithField("count", len(products)).Debug("Product list loaded")
		}
		s.state.IsLoading = false
		s.publishLocked()
	}()
}

// FetchDetails loads product id into ProductDetail. It marks the store as
// loading and clears ErrorMessage before returning; the returned channel is
// closed once the response has been applied. Calls are not cancelled or
// de-duplicated.
func (s *ProductStore) FetchDetails(id string) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(done)
		return done
	}
	s.detailSeq++
	seq := s.detailSeq
	s.state.IsLoading = true
	s.state.ErrorMessage = nil
	s.wg.Add(1)
	s.publishLocked()
	s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{"product_id": id, "seq": seq})
	log.Debug("Fetching product details")

	go func() {
		defer s.wg.Done()
		defer close(done)

		product, err := s.api.GetProduct(s.ctx, id)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.latestOnly && seq != s.detailSeq {
			log.WithField("latest_seq", s.detailSeq).Debug("Discarding superseded product details")
			return
		}
		if err != nil {
			msg := DetailErrorMessage
			s.state.ErrorMessage = &msg
			log.WithError(err).Warn("Failed to load product details")
		} else {
			p := product.Clone()
			s.state.ProductDetail = &p
			log.Debug("Product details loaded")
		}
		s.state.IsLoading = false
		s.publishLocked()
	}()

	return done
}

// Snapshot returns a copy of all four fields taken under one lock.
func (s *ProductStore) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *ProductStore) ProductList() []models.Product {
	return s.Snapshot().ProductList
}

func (s *ProductStore) ProductDetail() *models.Product {
	return s.Snapshot().ProductDetail
}

func (s *ProductStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsLoading
}

func (s *ProductStore) ErrorMessage() *string {
	return s.Snapshot().ErrorMessage
}

// Close cancels in-flight calls, waits for them to finish and ends every
// subscription. The store keeps its last state.
func (s *ProductStore) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for sub := range s.subs {
		sub.closeLocked()
	}
	s.subs = make(map[*subscription]struct{})
}
