package settlement

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// VerifyWebhook checks the exact unparsed request body against the
// Stripe-Signature header and the shared webhook secret, then maps the event
// envelope into a PaymentEvent. The body must not have been parsed or
// re-serialized before this call, that would invalidate the signature.
//
// Returns ErrInvalidSignature when the signature is missing, expired or does
// not match, and ErrMalformedPayload when the body fails to parse after a
// valid signature. The secret and signature values are never logged.
func VerifyWebhook(rawBody []byte, sigHeader, secret string) (PaymentEvent, error) {
	if strings.TrimSpace(sigHeader) == "" || strings.TrimSpace(secret) == "" {
		return PaymentEvent{}, ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(rawBody, sigHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureError(err) {
			return PaymentEvent{}, ErrInvalidSignature
		}
		return PaymentEvent{}, ErrMalformedPayload
	}

	pe := PaymentEvent{
		Kind:            eventKind(string(event.Type)),
		ProviderEventID: event.ID,
		ProviderType:    string(event.Type),
	}
	if pe.Kind == EventOther {
		return pe, nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil || intent.ID == "" {
		return PaymentEvent{}, ErrMalformedPayload
	}
	pe.PaymentID = intent.ID
	pe.AmountMinor = intent.Amount

	return pe, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld) ||
		errors.Is(err, webhook.ErrInvalidHeader)
}

func eventKind(providerType string) EventKind {
	switch providerType {
	case "payment_intent.succeeded":
		return EventSucceeded
	case "payment_intent.created":
		return EventCreated
	default:
		return EventOther
	}
}
