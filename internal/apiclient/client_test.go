package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/productlist/internal/catalogfake"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newFakeClient(t *testing.T) (*Client, *catalogfake.Server) {
	t.Helper()
	fake := catalogfake.NewDefault()
	srv := httptest.NewServer(fake.Router())
	t.Cleanup(srv.Close)

	logger, _ := test.NewNullLogger()
	c, err := New(srv.URL, WithLogger(logger))
	require.NoError(t, err)
	return c, fake
}

func rawServer(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL + "/")
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "ftp://example.com/", "http://", "::not-a-url"} {
		_, err := New(raw)
		assert.Error(t, err, raw)
	}
}

func TestListProducts(t *testing.T) {
	c, fake := newFakeClient(t)

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{products[0].ID, products[1].ID, products[2].ID})
	assert.Equal(t, "Galaxy Nova 5", products[0].Name)
	assert.Equal(t, "799.99", products[0].BasePrice.String())
	assert.Equal(t, 1, fake.Hits("/products"))
}

func TestListProductsEmptyAndNull(t *testing.T) {
	for _, body := range []string{"[]", "null"} {
		products, err := rawServer(t, http.StatusOK, body).ListProducts(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	}
}

func TestGetProduct(t *testing.T) {
	c, fake := newFakeClient(t)

	p, err := c.GetProduct(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, 2, p.ID)
	assert.Equal(t, "Tensor T3", p.CPU)
	assert.Equal(t, "10.5MP", p.Camera.FrontCamera)
	assert.Equal(t, 1, fake.Hits("/products/2"))
}

func TestGetProductNotFound(t *testing.T) {
	c, _ := newFakeClient(t)

	_, err := c.GetProduct(context.Background(), "999")
	require.Error(t, err)

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "999", nf.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProductsNotFoundIsStatusError(t *testing.T) {
	_, err := rawServer(t, http.StatusNotFound, `{"error":"gone"}`).ListProducts(context.Background())

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestServerErrorIsStatusError(t *testing.T) {
	c, fake := newFakeClient(t)
	fake.FailWith(http.StatusInternalServerError)

	_, err := c.ListProducts(context.Background())

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, se.Body, "Internal Server Error")
}

func TestMalformedJSONIsDecodeError(t *testing.T) {
	cases := map[string]string{
		"truncated":     `[{"id": 1,`,
		"wrong type":    `[{"id": "one"}]`,
		"object":        `{"id": 1}`,
		"empty body":    ``,
		"bad price":     `[{"id": 1, "basePrice": "cheap"}]`,
		"scalar camera": `[{"id": 1, "camera": "12MP"}]`,
		"trailing data": `[{"id": 1}] []`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rawServer(t, http.StatusOK, body).ListProducts(context.Background())
			var de *DecodeError
			assert.True(t, errors.As(err, &de), "got %v", err)
		})
	}
}

func TestMalformedProductIsDecodeError(t *testing.T) {
	cases := map[string]string{
		"null body":        `null`,
		"trailing garbage": `{"id":2} trailing garbage`,
		"two objects":      `{"id":2}{"id":3}`,
		"array":            `[{"id":2}]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := rawServer(t, http.StatusOK, body).GetProduct(context.Background(), "2")
			assert.Nil(t, p)
			var de *DecodeError
			assert.True(t, errors.As(err, &de), "got %v", err)
		})
	}
}

func TestGetProductRejectsDotSegments(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"id": 99, "name": "root"}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL + "/")
	require.NoError(t, err)

	for _, id := range []string{"", ".", ".."} {
		p, err := c.GetProduct(context.Background(), id)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrInvalidID, "id %q", id)
	}
	assert.Zero(t, hits)
}

func TestConnectionFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url)
	require.NoError(t, err)

	_, err = c.ListProducts(context.Background())
	var ne *NetworkError
	assert.True(t, errors.As(err, &ne), "got %v", err)
}

func TestTimeoutIsNetworkError(t *testing.T) {
	fake := catalogfake.NewDefault()
	fake.SetDelay(200 * time.Millisecond)
	srv := httptest.NewServer(fake.Router())
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	_, err = c.GetProduct(context.Background(), "1")
	var ne *NetworkError
	assert.True(t, errors.As(err, &ne), "got %v", err)
}

func TestCancelledContextIsNetworkError(t *testing.T) {
	c, _ := newFakeClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListProducts(ctx)
	var ne *NetworkError
	assert.True(t, errors.As(err, &ne))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBaseURLPathAndHeaders(t *testing.T) {
	var gotPath, gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotUA = r.UserAgent()
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"id": 5}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/api/v2", WithUserAgent("productlist-test"))
	require.NoError(t, err)

	_, err = c.GetProduct(context.Background(), "a/b")
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/products/a%2Fb", gotPath)
	assert.Equal(t, "productlist-test", gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestRequestsAreLogged(t *testing.T) {
	fake := catalogfake.NewDefault()
	srv := httptest.NewServer(fake.Router())
	t.Cleanup(srv.Close)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c, err := New(srv.URL, WithLogger(logger))
	require.NoError(t, err)

	_, err = c.ListProducts(context.Background())
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}
