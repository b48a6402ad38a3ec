package exchange_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/exchange"
)

func TestClient_Latest(t *testing.T) {
	type testCase struct {
		name    string
		status  int
		body    string
		want    exchange.Table
		wantErr error
	}

	tests := []testCase{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"result":"success","base_code":"USD","conversion_rates":{"USD":1,"brl":5.1,"EUR":0.92}}`,
			want: exchange.Table{
				currency.USD: decimal.RequireFromString("1"),
				currency.BRL: decimal.RequireFromString("5.1"),
				currency.EUR: decimal.RequireFromString("0.92"),
			},
		},
		{
			name:    "api error result",
			status:  http.StatusOK,
			body:    `{"result":"error","error-type":"invalid-key"}`,
			wantErr: exchange.ErrMalformedResponse,
		},
		{
			name:    "empty rates",
			status:  http.StatusOK,
			body:    `{"result":"success","conversion_rates":{}}`,
			wantErr: exchange.ErrMalformedResponse,
		},
		{
			name:    "not json",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: exchange.ErrMalformedResponse,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `oops`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := exchange.NewClient(srv.URL+"/v6/", "secret", time.Second)

			got, err := client.Latest(context.Background(), currency.USD)
			assert.Equal(t, "/v6/secret/latest/USD", gotPath)

			if tt.want == nil {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}

			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for code, rate := range tt.want {
				assert.True(t, rate.Equal(got[code]), "rate for %s: got %s", code, got[code])
			}
		})
	}
}

func TestClient_Latest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	client := exchange.NewClient(srv.URL, "key", 20*time.Millisecond)

	_, err := client.Latest(context.Background(), currency.USD)
	assert.Error(t, err)
}
