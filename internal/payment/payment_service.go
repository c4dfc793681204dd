package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

//go:generate mockgen -source=payment_service.go -destination=../mock/payment/payment_service_mock.go -package=mock
type Service interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error)
	Verify(ctx context.Context, reference string) (*VerifyResponse, error)
}

type paystackService struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

// NewPaystackService reads PAYSTACK_SECRET_KEY from the environment. The
// provider call is the only asynchronous leg of checkout; any non-success
// outcome abandons the checkout, it never crashes it.
func NewPaystackService() Service {
	return &paystackService{
		secretKey: strings.TrimSpace(os.Getenv("PAYSTACK_SECRET_KEY")),
		baseURL:   "https://api.paystack.co",
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewPaystackServiceWithBase is used by tests to point at a stub server.
func NewPaystackServiceWithBase(secretKey, baseURL string) Service {
	return &paystackService{
		secretKey: secretKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *paystackService) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	if s.secretKey == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(map[string]any{
		"email":     req.Email,
		"amount":    req.Amount,
		"currency":  req.Currency,
		"reference": req.Reference,
		"metadata":  req.Metadata,
	})
	if err != nil {
		return nil, err
	}

	var env paystackInitEnvelope
	if err := s.do(ctx, http.MethodPost, "/transaction/initialize", body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitializeFailed, err)
	}
	if !env.Status {
		return nil, fmt.Errorf("%w: %s", ErrInitializeFailed, env.Message)
	}

	return &InitializeResponse{
		AuthorizationURL: env.Data.AuthorizationURL,
		AccessCode:       env.Data.AccessCode,
		Reference:        env.Data.Reference,
	}, nil
}

func (s *paystackService) Verify(ctx context.Context, reference string) (*VerifyResponse, error) {
	if s.secretKey == "" {
		return nil, ErrNotConfigured
	}

	path := "/transaction/verify/" + url.PathEscape(reference)

	var env paystackVerifyEnvelope
	if err := s.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	if !env.Status {
		return nil, fmt.Errorf("%w: %s", ErrVerifyFailed, env.Message)
	}

	return &VerifyResponse{
		Reference: env.Data.Reference,
		Status:    env.Data.Status,
		Amount:    env.Data.Amount,
	}, nil
}

func (s *paystackService) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("paystack returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
