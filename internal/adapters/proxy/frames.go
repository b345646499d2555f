package proxy

import (
	"errors"
	"fmt"
	"slices"

	jsoniter "github.com/json-iterator/go"

	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrUnknownEvent      = errors.New("event not exposed by the proxy")
	ErrStorageNotExposed = errors.New("storage type not exposed by the proxy")
)

// exposedStorage lists the document types the UI may load. config holds the
// FBS session credentials and stays private.
var exposedStorage = []string{"translation", "offline"}

// request is a frame sent by the kiosk UI: emit Payload on Event and answer on
// Success or Error.
type request struct {
	Event   string              `json:"event"`
	Success string              `json:"success"`
	Error   string              `json:"error"`
	Payload jsoniter.RawMessage `json:"payload"`
}

// reply is published back to the UI on one of the request's reply channels.
type reply struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type decoder func(raw jsoniter.RawMessage) (any, error)

func decodeAs[T any](raw jsoniter.RawMessage) (any, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return v, nil
}

// decoders lists the bus channels reachable from the UI with their payload
// types.
var decoders = map[string]decoder{
	ports.ChannelLogin:        decodeAs[domain.Credentials],
	ports.ChannelStatus:       func(jsoniter.RawMessage) (any, error) { return nil, nil },
	ports.ChannelPatron:       decodeAs[domain.Credentials],
	ports.ChannelPatronStatus: decodeAs[domain.Credentials],
	ports.ChannelCheckout:     decodeAs[domain.ItemRequest],
	ports.ChannelCheckin:      decodeAs[domain.ItemRequest],
	ports.ChannelRenew:        decodeAs[domain.ItemRequest],
	ports.ChannelRenewAll:     decodeAs[domain.Credentials],
	ports.ChannelStorageLoad:  decodeAs[storageRequest],
}

// storageRequest mirrors domain.StorageRequest with the UI's field names.
type storageRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func decodePayload(event string, raw jsoniter.RawMessage) (any, error) {
	decode, ok := decoders[event]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, event)
	}

	payload, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if req, ok := payload.(storageRequest); ok {
		if !slices.Contains(exposedStorage, req.Type) {
			return nil, fmt.Errorf("%w: %q", ErrStorageNotExposed, req.Type)
		}
		return domain.StorageRequest{Type: req.Type, Name: req.Name}, nil
	}
	return payload, nil
}
