package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "plain date", input: `"2025-10-01"`, want: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 truncated", input: `"2025-10-01T22:15:00+02:00"`, want: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: `"next tuesday"`, wantErr: true},
		{name: "number", input: `20251001`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2026, time.February, 1, 15, 0, 0, 0, time.UTC))

	out, err := json.Marshal(struct {
		Date Date `json:"date"`
	}{Date: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-02-01"}`, string(out))
}

func TestDatePtr(t *testing.T) {
	assert.Nil(t, DatePtr(nil))

	ts := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	d := DatePtr(&ts)
	require.NotNil(t, d)
	assert.Equal(t, ts, *d.Ptr())

	var missing *Date
	assert.Nil(t, missing.Ptr())
}

func TestOptional_DistinguishesNullFromMissing(t *testing.T) {
	var req UpdateSubscriptionRequest

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Netflix"}`), &req))
	assert.False(t, req.Category.Set)
	assert.False(t, req.NextBillingDate.Set)

	req = UpdateSubscriptionRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"category":null,"next_billing_date":"2025-11-05"}`), &req))
	assert.True(t, req.Category.Set)
	assert.Nil(t, req.Category.Value)
	require.True(t, req.NextBillingDate.Set)
	require.NotNil(t, req.NextBillingDate.Value)
	assert.Equal(t, "2025-11-05", req.NextBillingDate.Value.Format(DateLayout))

	req = UpdateSubscriptionRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"category":"Music"}`), &req))
	require.NotNil(t, req.Category.Value)
	assert.Equal(t, "Music", *req.Category.Value)
}

func TestOptional_Constructors(t *testing.T) {
	some := Some("Music")
	assert.True(t, some.Set)
	assert.Equal(t, "Music", *some.Value)

	null := Null[string]()
	assert.True(t, null.Set)
	assert.Nil(t, null.Value)

	out, err := json.Marshal(null)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
