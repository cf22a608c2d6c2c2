package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/median-api/internal/store"
	"github.com/phrazzld/median-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err         error
	sawDeadline bool
}

func (p *fakePinger) PingContext(ctx context.Context) error {
	_, p.sawDeadline = ctx.Deadline()
	return p.err
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "database reachable",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name:           "database unreachable",
			pingErr:        store.NewDatabaseError(store.CodeConnection, "dial tcp 127.0.0.1:5432:\nconnect: connection refused", nil),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"statusCode":500,"message":"Database connection error: dial tcp 127.0.0.1:5432: connect: connection refused"}`,
		},
		{
			name:           "unclassified failure",
			pingErr:        errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"statusCode":500,"message":"An unexpected error occurred"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, _ := testutils.NewTestLogger()
			pinger := &fakePinger{err: tc.pingErr}
			handler := NewHealthHandler(pinger, time.Second, logger)
			errHandler := NewErrorHandler(NewDatabaseErrorTranslator(logger))

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			errHandler.Wrap(handler.Check).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			assert.True(t, pinger.sawDeadline, "ping should be bounded by a deadline")
		})
	}
}

func TestHealthCheckWithoutTimeout(t *testing.T) {
	pinger := &fakePinger{}
	handler := NewHealthHandler(pinger, 0, nil)

	w := httptest.NewRecorder()
	require.NoError(t, handler.Check(w, httptest.NewRequest(http.MethodGet, "/health", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, pinger.sawDeadline)
}
