package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-store-api/internal/payment"
)

func TestInitialize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/transaction/initialize", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			json.NewEncoder(w).Encode(map[string]any{
				"status":  true,
				"message": "Authorization URL created",
				"data": map[string]any{
					"authorization_url": "https://checkout.paystack.com/abc123",
					"access_code":       "abc123",
					"reference":         "BTF-1700000000-9F2C",
				},
			})
		}))
		defer srv.Close()

		svc := payment.NewPaystackServiceWithBase("sk_test_xyz", srv.URL)

		resp, err := svc.Initialize(context.Background(), payment.InitializeRequest{
			Email:     "ada@example.com",
			Amount:    28000,
			Currency:  "NGN",
			Reference: "BTF-1700000000-9F2C",
		})
		require.NoError(t, err)

		assert.Equal(t, "Bearer sk_test_xyz", gotAuth)
		assert.Equal(t, float64(28000), gotBody["amount"])
		assert.Equal(t, "NGN", gotBody["currency"])
		assert.Equal(t, "https://checkout.paystack.com/abc123", resp.AuthorizationURL)
		assert.Equal(t, "BTF-1700000000-9F2C", resp.Reference)
	})

	t.Run("provider_rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "Invalid key"})
		}))
		defer srv.Close()

		svc := payment.NewPaystackServiceWithBase("sk_test_xyz", srv.URL)

		_, err := svc.Initialize(context.Background(), payment.InitializeRequest{Email: "ada@example.com"})
		assert.ErrorIs(t, err, payment.ErrInitializeFailed)
	})

	t.Run("missing_secret_key", func(t *testing.T) {
		svc := payment.NewPaystackServiceWithBase("", "http://localhost:1")

		_, err := svc.Initialize(context.Background(), payment.InitializeRequest{})
		assert.ErrorIs(t, err, payment.ErrNotConfigured)
	})
}

func TestVerify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/transaction/verify/BTF-1700000000-9F2C", r.URL.Path)

			json.NewEncoder(w).Encode(map[string]any{
				"status":  true,
				"message": "Verification successful",
				"data": map[string]any{
					"status":    "success",
					"reference": "BTF-1700000000-9F2C",
					"amount":    28000,
				},
			})
		}))
		defer srv.Close()

		svc := payment.NewPaystackServiceWithBase("sk_test_xyz", srv.URL)

		resp, err := svc.Verify(context.Background(), "BTF-1700000000-9F2C")
		require.NoError(t, err)

		assert.True(t, resp.Succeeded())
		assert.Equal(t, int64(28000), resp.Amount)
	})

	t.Run("failed_charge_is_not_an_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"status":  true,
				"message": "Verification successful",
				"data": map[string]any{
					"status":    "abandoned",
					"reference": "BTF-1700000000-9F2C",
				},
			})
		}))
		defer srv.Close()

		svc := payment.NewPaystackServiceWithBase("sk_test_xyz", srv.URL)

		resp, err := svc.Verify(context.Background(), "BTF-1700000000-9F2C")
		require.NoError(t, err)
		assert.False(t, resp.Succeeded())
	})

	t.Run("upstream_500", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		svc := payment.NewPaystackServiceWithBase("sk_test_xyz", srv.URL)

		_, err := svc.Verify(context.Background(), "ref")
		assert.ErrorIs(t, err, payment.ErrVerifyFailed)
	})
}
