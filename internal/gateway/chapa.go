// Package gateway talks to the Chapa transaction API. Two calls exist:
// initialize (hosted checkout) and verify. Everything else about the
// provider is out of scope.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error is any failure talking to the provider. Transient marks
// transport and parse faults; rejections decoded from a well-formed
// provider response are not transient and carry the provider message.
type Error struct {
	Message   string
	Transient bool
}

func (e *Error) Error() string { return e.Message }

type InitializeRequest struct {
	Amount      float64
	Currency    string
	Email       string
	TxRef       string
	CallbackURL string
}

type InitializeResult struct {
	CheckoutURL string
	TxRef       string
}

type VerifyResult struct {
	Succeeded bool
	Message   string
}

type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
}

func NewClient(baseURL, secret string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		secret:     secret,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: 2,
		retryDelay: 200 * time.Millisecond,
	}
}

type initializePayload struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Email       string  `json:"email"`
	TxRef       string  `json:"tx_ref"`
	CallbackURL string  `json:"callback_url"`
}

type providerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		CheckoutURL string `json:"checkout_url"`
		TxRef       string `json:"tx_ref"`
		Status      string `json:"status"`
	} `json:"data"`
}

func (c *Client) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error) {
	payload, err := json.Marshal(initializePayload{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Email:       req.Email,
		TxRef:       req.TxRef,
		CallbackURL: req.CallbackURL,
	})
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("encode initialize payload: %v", err), Transient: true}
	}

	resp, err := c.doWithRetry(ctx, http.MethodPost, c.baseURL+"/initialize", payload)
	if err != nil {
		return nil, err
	}

	if resp.Status != "success" {
		msg := resp.Message
		if msg == "" {
			msg = "payment initiation failed"
		}
		return nil, &Error{Message: msg}
	}
	return &InitializeResult{
		CheckoutURL: resp.Data.CheckoutURL,
		TxRef:       resp.Data.TxRef,
	}, nil
}

func (c *Client) Verify(ctx context.Context, transactionID string) (*VerifyResult, error) {
	resp, err := c.doWithRetry(ctx, http.MethodGet, c.baseURL+"/verify/"+transactionID, nil)
	if err != nil {
		return nil, err
	}

	// Both the envelope and the transaction itself must report success.
	if resp.Status == "success" && resp.Data.Status == "success" {
		return &VerifyResult{Succeeded: true, Message: resp.Message}, nil
	}
	msg := resp.Message
	if msg == "" {
		msg = "Verification failed"
	}
	return &VerifyResult{Succeeded: false, Message: msg}, nil
}

// doWithRetry retries transport faults only. A response that decodes,
// whatever it says, is handed back to the caller unretried.
func (c *Client) doWithRetry(ctx context.Context, method, url string, body []byte) (*providerResponse, error) {
	var lastErr error
	delay := c.retryDelay

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &Error{Message: ctx.Err().Error(), Transient: true}
			case <-time.After(delay):
			}
			delay *= 2
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("build gateway request: %v", err), Transient: true}
		}
		req.Header.Set("Authorization", "Bearer "+c.secret)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		raw, err := io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		var decoded providerResponse
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, &Error{Message: fmt.Sprintf("malformed gateway response: %v", err), Transient: true}
		}
		return &decoded, nil
	}

	return nil, &Error{Message: fmt.Sprintf("gateway unreachable: %v", lastErr), Transient: true}
}
