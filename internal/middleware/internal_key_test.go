package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"subtrack/internal/config"
	"subtrack/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireInternalAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *config.ReminderConfig
		header     string
		wantStatus int
		wantCode   errors.ErrorCode
	}{
		{
			name:       "valid key",
			cfg:        &config.ReminderConfig{InternalAPIKey: "s3cret-key"},
			header:     "s3cret-key",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong key",
			cfg:        &config.ReminderConfig{InternalAPIKey: "s3cret-key"},
			header:     "s3cret-kez",
			wantStatus: http.StatusUnauthorized,
			wantCode:   errors.ReminderInvalidAPIKey,
		},
		{
			name:       "missing header",
			cfg:        &config.ReminderConfig{InternalAPIKey: "s3cret-key"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   errors.ReminderInvalidAPIKey,
		},
		{
			name:       "prefix of key",
			cfg:        &config.ReminderConfig{InternalAPIKey: "s3cret-key"},
			header:     "s3cret",
			wantStatus: http.StatusUnauthorized,
			wantCode:   errors.ReminderInvalidAPIKey,
		},
		{
			name:       "no key configured",
			cfg:        &config.ReminderConfig{},
			header:     "anything",
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   errors.ReminderNotConfigured,
		},
		{
			name:       "nil config",
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   errors.ReminderNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			called := false
			handler := RequireInternalAPIKey(tt.cfg)(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/internal/run-reminders", nil)
			if tt.header != "" {
				req.Header.Set(InternalAPIKeyHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)

			if tt.wantCode != "" {
				var body errors.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, string(tt.wantCode), body.Error.Code)
			}
		})
	}
}
