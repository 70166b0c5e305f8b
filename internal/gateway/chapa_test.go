package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(baseURL string) *Client {
	c := NewClient(baseURL, "test-secret", 5*time.Second)
	c.retryDelay = time.Millisecond
	return c
}

func TestInitialize_Success(t *testing.T) {
	var gotAuth string
	var gotPayload initializePayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/initialize" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "Hosted Link",
			"data": map[string]any{
				"checkout_url": "https://checkout.test/abc",
				"tx_ref":       gotPayload.TxRef,
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	res, err := c.Initialize(context.Background(), InitializeRequest{
		Amount:      150.00,
		Currency:    "ETB",
		Email:       "a@example.com",
		TxRef:       "BK-1",
		CallbackURL: "https://app.test/payments/verify/",
	})
	if err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if res.CheckoutURL != "https://checkout.test/abc" {
		t.Fatalf("unexpected checkout url %q", res.CheckoutURL)
	}
	if res.TxRef != "BK-1" {
		t.Fatalf("unexpected tx_ref %q", res.TxRef)
	}
	if gotAuth != "Bearer test-secret" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotPayload.Currency != "ETB" || gotPayload.Amount != 150.00 || gotPayload.CallbackURL == "" {
		t.Fatalf("unexpected payload %+v", gotPayload)
	}
}

func TestInitialize_ProviderRejection(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "failed",
			"message": "Invalid API key",
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Initialize(context.Background(), InitializeRequest{Amount: 10, Currency: "ETB", Email: "a@b.c", TxRef: "BK-2"})

	var gwErr *Error
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if gwErr.Transient {
		t.Fatalf("rejection must not be transient")
	}
	if gwErr.Message != "Invalid API key" {
		t.Fatalf("expected provider message, got %q", gwErr.Message)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("rejections must not be retried, got %d attempts", n)
	}
}

func TestVerify_SuccessAndFailure(t *testing.T) {
	inner := "success"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/verify/tx-123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "Payment details",
			"data":    map[string]any{"status": inner},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	res, err := c.Verify(context.Background(), "tx-123")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !res.Succeeded {
		t.Fatalf("expected success")
	}

	inner = "pending"
	res, err = c.Verify(context.Background(), "tx-123")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if res.Succeeded {
		t.Fatalf("inner status %q must not verify as success", inner)
	}
	if res.Message == "" {
		t.Fatalf("expected a message on failed verification")
	}
}

func TestDoWithRetry_TransportFaultThenSuccess(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) <= 2 {
			// Kill the connection to simulate a transport fault.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Error("hijacking not supported")
				return
			}
			conn, _, _ := hj.Hijack()
			_ = conn.Close()
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]any{"status": "success"},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	res, err := c.Verify(context.Background(), "tx-9")
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if !res.Succeeded {
		t.Fatalf("expected success after retries")
	}
	if n := atomic.LoadInt32(&hits); n != 3 {
		t.Fatalf("expected 3 attempts, got %d", n)
	}
}

func TestDoWithRetry_ExhaustedIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens any more

	c := testClient(srv.URL)
	_, err := c.Verify(context.Background(), "tx-9")

	var gwErr *Error
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if !gwErr.Transient {
		t.Fatalf("transport fault must be transient")
	}
}

func TestMalformedResponseIsTransientAndNotRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Verify(context.Background(), "tx-9")

	var gwErr *Error
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if !gwErr.Transient {
		t.Fatalf("parse fault must be transient")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("parse faults must not be retried, got %d attempts", n)
	}
}
