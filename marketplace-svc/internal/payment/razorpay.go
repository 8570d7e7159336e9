package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/service"
)

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Razorpay talks to the Orders API and checks checkout signatures.
type Razorpay struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Currency  string
	Client    HTTPDoer
}

func NewRazorpay(keyID, keySecret, baseURL, currency string, timeout time.Duration) *Razorpay {
	if currency == "" {
		currency = "INR"
	}
	return &Razorpay{
		KeyID:     keyID,
		KeySecret: keySecret,
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Currency:  currency,
		Client:    &http.Client{Timeout: timeout},
	}
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string          `json:"id"`
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt"`
	Status   string          `json:"status"`
	Notes    json.RawMessage `json:"notes"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (o orderResponse) toDomain() (*domain.GatewayOrder, error) {
	order := &domain.GatewayOrder{
		ID:       o.ID,
		Amount:   o.Amount,
		Currency: o.Currency,
		Receipt:  o.Receipt,
		Status:   o.Status,
	}
	// empty notes come back as [] rather than {}
	if len(o.Notes) > 0 && o.Notes[0] == '{' {
		if err := json.Unmarshal(o.Notes, &order.Notes); err != nil {
			return nil, fmt.Errorf("decode razorpay notes: %w", err)
		}
	}
	return order, nil
}

func (r *Razorpay) call(ctx context.Context, method, path string, payload any) (*domain.GatewayOrder, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(r.KeyID, r.KeySecret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay: %s (%s)", apiErr.Error.Description, apiErr.Error.Code)
		}
		return nil, fmt.Errorf("razorpay: unexpected status %d", resp.StatusCode)
	}

	var out orderResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode razorpay order: %w", err)
	}
	return out.toDomain()
}

// CreateOrder opens a gateway order; amount is in the currency's minor unit.
func (r *Razorpay) CreateOrder(ctx context.Context, amount int64, receipt string, notes map[string]string) (*domain.GatewayOrder, error) {
	return r.call(ctx, http.MethodPost, "/v1/orders", createOrderRequest{
		Amount:   amount,
		Currency: r.Currency,
		Receipt:  receipt,
		Notes:    notes,
	})
}

// FetchOrder reads back an order so its amount and notes can be checked.
func (r *Razorpay) FetchOrder(ctx context.Context, orderID string) (*domain.GatewayOrder, error) {
	return r.call(ctx, http.MethodGet, "/v1/orders/"+url.PathEscape(orderID), nil)
}

// Sign computes the checkout signature for orderID|paymentID.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (r *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	expected := Sign(r.KeySecret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

var _ service.PaymentGateway = (*Razorpay)(nil)
