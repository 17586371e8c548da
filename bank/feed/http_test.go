package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/govalues/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Rates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.True(t, strings.HasSuffix(req.URL.String(), "/exchange-rates?currency=USD"))
		response := `{
			"data": {
				"currency": "USD",
				"rates": {
					"EUR": "0.91",
					"jpy": "151.25",
					"BAD": "abc",
					"NEG": "-1"
				}
			}
		}`
		_, _ = rw.Write([]byte(response))
	}))
	defer server.Close()

	src := NewHTTPSource(WithURL(server.URL+"/"), WithLogger(log.NewNopLogger()))
	rates, err := src.Rates(context.Background(), cash.USD)

	require.NoError(t, err)
	assert.Len(t, rates, 2)
	assert.Equal(t, "0.91", rates["EUR"].String())
	assert.Equal(t, "151.25", rates["JPY"].String())
}

func TestHTTPSource_Errors(t *testing.T) {
	tests := map[string]http.HandlerFunc{
		"status": func(rw http.ResponseWriter, _ *http.Request) {
			rw.WriteHeader(http.StatusTooManyRequests)
		},
		"json": func(rw http.ResponseWriter, _ *http.Request) {
			_, _ = rw.Write([]byte("{"))
		},
		"currency": func(rw http.ResponseWriter, _ *http.Request) {
			_, _ = rw.Write([]byte(`{"data": {"currency": "EUR", "rates": {}}}`))
		},
	}
	for name, h := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(h)
			defer server.Close()

			src := NewHTTPSource(WithURL(server.URL))
			_, err := src.Rates(context.Background(), cash.USD)
			assert.Error(t, err)
		})
	}
}

func TestHTTPSource_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = rw.Write([]byte("{}"))
	}))
	defer server.Close()

	src := NewHTTPSource(WithURL(server.URL), WithClient(&http.Client{Timeout: time.Millisecond}))
	_, err := src.Rates(context.Background(), cash.USD)

	assert.Error(t, err)
}
