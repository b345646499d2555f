package bus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnexpectedPayload = errors.New("unexpected bus payload")

// Envelope pairs a request payload with the reply channels of one call.
type Envelope struct {
	SuccessChannel string
	ErrorChannel   string
	Timestamp      time.Time
	Payload        any
}

// NewEnvelope returns an envelope whose reply channels are unique to this
// call: "<tag>.success<id>" and "<tag>.error<id>".
func NewEnvelope(tag string, payload any) Envelope {
	return newEnvelope(tag, newCorrelationID(), payload)
}

// NewKeyedEnvelope derives the reply channels from a natural key such as an
// item identifier. Only use it when calls for the same key never overlap.
func NewKeyedEnvelope(tag, key string, payload any) Envelope {
	return newEnvelope(tag, key, payload)
}

func newEnvelope(tag, id string, payload any) Envelope {
	return Envelope{
		SuccessChannel: tag + ".success" + id,
		ErrorChannel:   tag + ".error" + id,
		Timestamp:      time.Now(),
		Payload:        payload,
	}
}

func newCorrelationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return strings.ReplaceAll(id.String(), "-", "")
}

// HandlerFunc serves one request and returns its reply or error.
type HandlerFunc func(ctx context.Context, env Envelope) (any, error)

// Handle registers fn as the static handler of channel. Its return value is
// published on the envelope's success channel, its error on the error
// channel.
func (b *Bus) Handle(channel string, fn HandlerFunc) func() {
	return b.On(channel, func(ctx context.Context, payload any) {
		env, ok := payload.(Envelope)
		if !ok {
			b.logger.Error("bus handler received foreign payload",
				"channel", channel,
				"type", fmt.Sprintf("%T", payload),
			)
			return
		}

		value, err := fn(ctx, env)
		if err != nil {
			b.Reject(ctx, env, err)
			return
		}
		b.Resolve(ctx, env, value)
	})
}

// Call is Request with a typed reply.
func Call[T any](ctx context.Context, b *Bus, channel string, env Envelope) (T, error) {
	var zero T

	value, err := b.Request(ctx, channel, env)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected reply type %T", channel, value)
	}
	return typed, nil
}

// PayloadAs extracts the typed payload of env.
func PayloadAs[T any](env Envelope) (T, error) {
	typed, ok := env.Payload.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T, got %T", ErrUnexpectedPayload, zero, env.Payload)
	}
	return typed, nil
}
