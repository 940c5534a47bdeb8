package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServer_HTTPMiddleware(t *testing.T) {
	srv := newTestServer(t, nil, WithAllowedOrigins("http://localhost:3000"), WithTransport(TransportStreamable))
	handler := srv.Handler()

	testCases := []struct {
		description string
		method      string
		path        string
		headers     map[string]string
		expectCode  int
		expectLoc   string
	}{
		{
			description: "foreign origin rejected",
			method:      http.MethodPost,
			path:        "/mcp",
			headers:     map[string]string{"Origin": "http://evil.example"},
			expectCode:  http.StatusForbidden,
		},
		{
			description: "protocol version mismatch rejected",
			method:      http.MethodPost,
			path:        "/mcp",
			headers:     map[string]string{"MCP-Protocol-Version": "1999-01-01"},
			expectCode:  http.StatusBadRequest,
		},
		{
			description: "root redirects to streamable endpoint",
			method:      http.MethodGet,
			path:        "/",
			expectCode:  http.StatusTemporaryRedirect,
			expectLoc:   "/mcp",
		},
		{
			description: "unknown path",
			method:      http.MethodGet,
			path:        "/other",
			expectCode:  http.StatusNotFound,
		},
	}
	for _, testCase := range testCases {
		request := httptest.NewRequest(testCase.method, testCase.path, nil)
		for k, v := range testCase.headers {
			request.Header.Set(k, v)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, testCase.expectCode, recorder.Code, testCase.description)
		if testCase.expectLoc != "" {
			assert.Equal(t, testCase.expectLoc, recorder.Header().Get("Location"), testCase.description)
		}
	}
}

func TestServer_HTTPAddress(t *testing.T) {
	srv := newTestServer(t, nil)
	assert.Equal(t, "127.0.0.1:5000", srv.HTTP(context.Background(), "").Addr)

	srv = newTestServer(t, nil, WithEndpointAddress(":6001"))
	assert.Equal(t, ":6001", srv.HTTP(context.Background(), "").Addr)
	assert.Equal(t, ":7000", srv.HTTP(context.Background(), ":7000").Addr)
}

func TestOriginValidationMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	testCases := []struct {
		description string
		allowed     []string
		origin      string
		expectCode  int
	}{
		{description: "no origin header", allowed: []string{"http://a"}, expectCode: http.StatusNoContent},
		{description: "listed origin", allowed: []string{"http://a/"}, origin: "HTTP://A", expectCode: http.StatusNoContent},
		{description: "wildcard", allowed: []string{"*"}, origin: "http://b", expectCode: http.StatusNoContent},
		{description: "unlisted origin", allowed: []string{"http://a"}, origin: "http://b", expectCode: http.StatusForbidden},
	}
	for _, testCase := range testCases {
		handler := ChainMiddlewareHandlers(next, originValidationMiddleware(testCase.allowed))
		request := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		if testCase.origin != "" {
			request.Header.Set("Origin", testCase.origin)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, testCase.expectCode, recorder.Code, testCase.description)
	}
}
