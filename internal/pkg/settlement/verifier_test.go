package settlement

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v82/webhook"
)

const testSecret = "whsec_test_secret"

func signedHeader(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func TestVerifyWebhook_ValidSucceededEvent(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","amount":1000}}}`)
	header := signedHeader(t, payload, testSecret)

	ev, err := VerifyWebhook(payload, header, testSecret)
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if ev.Kind != EventSucceeded {
		t.Fatalf("expected kind succeeded, got %q", ev.Kind)
	}
	if ev.PaymentID != "pi_123" {
		t.Fatalf("expected payment id pi_123, got %q", ev.PaymentID)
	}
	if ev.AmountMinor != 1000 {
		t.Fatalf("expected amount 1000, got %d", ev.AmountMinor)
	}
	if ev.ProviderEventID != "evt_1" {
		t.Fatalf("expected provider event id evt_1, got %q", ev.ProviderEventID)
	}
}

func TestVerifyWebhook_SingleByteMutationInvalidates(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","amount":1000}}}`)
	header := signedHeader(t, payload, testSecret)

	for i := range payload {
		mutated := append([]byte(nil), payload...)
		mutated[i] ^= 0x01
		if _, err := VerifyWebhook(mutated, header, testSecret); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature after mutating byte %d, got %v", i, err)
		}
	}
}

func TestVerifyWebhook_WrongSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","amount":1000}}}`)
	header := signedHeader(t, payload, "whsec_other_secret")

	if _, err := VerifyWebhook(payload, header, testSecret); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyWebhook_MissingHeaderOrSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)

	if _, err := VerifyWebhook(payload, "", testSecret); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for missing header, got %v", err)
	}
	header := signedHeader(t, payload, testSecret)
	if _, err := VerifyWebhook(payload, header, ""); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for missing secret, got %v", err)
	}
}

func TestVerifyWebhook_MalformedBodyAfterValidSignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded",`)
	header := signedHeader(t, payload, testSecret)

	if _, err := VerifyWebhook(payload, header, testSecret); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestVerifyWebhook_MissingPaymentIntentID(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"amount":1000}}}`)
	header := signedHeader(t, payload, testSecret)

	if _, err := VerifyWebhook(payload, header, testSecret); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestVerifyWebhook_OtherEventKind(t *testing.T) {
	payload := []byte(`{"id":"evt_2","type":"charge.refunded","data":{"object":{"id":"ch_1"}}}`)
	header := signedHeader(t, payload, testSecret)

	ev, err := VerifyWebhook(payload, header, testSecret)
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if ev.Kind != EventOther {
		t.Fatalf("expected kind other, got %q", ev.Kind)
	}
	if ev.PaymentID != "" {
		t.Fatalf("expected empty payment id for other events, got %q", ev.PaymentID)
	}
}

func TestEventKind(t *testing.T) {
	tests := []struct {
		in   string
		want EventKind
	}{
		{in: "payment_intent.succeeded", want: EventSucceeded},
		{in: "payment_intent.created", want: EventCreated},
		{in: "charge.refunded", want: EventOther},
		{in: "", want: EventOther},
	}

	for _, tt := range tests {
		if got := eventKind(tt.in); got != tt.want {
			t.Fatalf("eventKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
