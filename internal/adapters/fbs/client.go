// Package fbs talks SIP2 to FBS over HTTP. Every request is gated on the
// reachability probe.
package fbs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
	"github.com/bnema/bibbox-fbs/internal/sip2"
)

const (
	userAgent         = "bibbox"
	contentType       = "application/xml"
	maxReplyBytes     = 1 << 20
	defaultReqTimeout = 30 * time.Second
)

var (
	errEndpointRequired = errors.New("fbs endpoint is required")
	errNilProbe         = errors.New("reachability probe is nil")
)

// Observer receives the outcome of every SIP2 request.
type Observer interface {
	ObserveFBS(command string, result string, elapsed time.Duration)
}

type Client struct {
	config   domain.SessionConfig
	builder  sip2.Builder
	probe    ports.ReachabilityProbe
	renderer *EnvelopeRenderer

	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *slog.Logger
	Observer       Observer
}

var _ ports.Circulation = (*Client)(nil)

func NewClient(cfg domain.SessionConfig, probe ports.ReachabilityProbe, clock ports.Clock) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errEndpointRequired
	}
	if probe == nil {
		return nil, errNilProbe
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	renderer, err := NewEnvelopeRenderer()
	if err != nil {
		return nil, err
	}

	return &Client{
		config:   cfg,
		builder:  sip2.Builder{Agency: cfg.Agency, Location: cfg.Location, Now: clock.Now},
		probe:    probe,
		renderer: renderer,
	}, nil
}

// Send probes the endpoint, posts msg and parses the reply. An endpoint the
// probe reports offline yields domain.ErrOffline without any HTTP traffic; a
// failed probe is returned as is. No retries.
func (c *Client) Send(ctx context.Context, msg sip2.Message) (*sip2.Response, error) {
	started := time.Now()
	res, err := c.send(ctx, msg)
	c.observe(msg.Command, err, started)
	return res, err
}

func (c *Client) send(ctx context.Context, msg sip2.Message) (*sip2.Response, error) {
	online, err := c.probe.Online(ctx, c.config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", c.config.Endpoint, err)
	}
	if !online {
		return nil, domain.ErrOffline
	}

	body, err := c.renderer.Render(c.config.Username, c.config.Password, msg.String())
	if err != nil {
		return nil, err
	}
	c.logger().Debug("FBS send", slog.String("command", string(msg.Command)), slog.String("endpoint", c.config.Endpoint))

	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create fbs request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		c.logger().Error("FBS error", slog.Any("error", err))
		return nil, &domain.TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read reply: %w", err)}
	}
	line := decodeReply(raw)
	c.logger().Debug("FBS response", slog.Int("status", resp.StatusCode), slog.String("command", string(msg.Command)))

	firstField := msg.FirstField()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// A parsable error body beats the bare status.
		if res, parseErr := sip2.Parse(line, firstField); parseErr == nil && res.HasError() {
			err := &domain.RemoteError{Message: res.Error(), StatusCode: resp.StatusCode, Fields: res.Fields()}
			c.logger().Error("FBS error", slog.Any("error", err), slog.Int("status", resp.StatusCode))
			return nil, err
		}
		err := &domain.TransportError{StatusCode: resp.StatusCode}
		c.logger().Error("FBS error", slog.Any("error", err))
		return nil, err
	}

	res, err := sip2.Parse(line, firstField)
	if err != nil {
		c.logger().Error("FBS error", slog.Any("error", err))
		return nil, err
	}
	if err := res.RemoteError(); err != nil {
		c.logger().Error("FBS error", slog.Any("error", err))
		return nil, err
	}

	return res, nil
}

func (c *Client) Status(ctx context.Context) (domain.LibraryStatus, error) {
	res, err := c.Send(ctx, c.builder.SCStatus())
	if err != nil {
		return domain.LibraryStatus{}, fmt.Errorf("library status: %w", err)
	}

	return domain.LibraryStatus{
		InstitutionID: res.Get(sip2.FieldInstitutionID),
		Online:        true,
		Fields:        res.Fields(),
	}, nil
}

// Login validates the patron. When the probe answers that FBS is offline the
// kiosk lets the patron in unauthenticated. A probe that fails, e.g. on a
// canceled context, is an error like any other.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	status, err := c.PatronStatus(ctx, creds)
	if err != nil {
		if errors.Is(err, domain.ErrOffline) {
			c.logger().Warn("FBS offline, allowing unauthenticated login")
			return domain.LoginResult{Username: creds.Username, Allowed: true, Online: false}, nil
		}
		return domain.LoginResult{}, err
	}

	if !status.ValidPatron || !status.ValidPatronPassword {
		return domain.LoginResult{}, &domain.RemoteError{Message: "invalid patron credentials"}
	}

	return domain.LoginResult{
		Username:     creds.Username,
		Allowed:      true,
		Online:       true,
		PersonalName: status.PersonalName,
	}, nil
}

func (c *Client) PatronStatus(ctx context.Context, creds domain.Credentials) (domain.PatronStatus, error) {
	res, err := c.Send(ctx, c.builder.PatronStatus(creds.Username, creds.Password))
	if err != nil {
		return domain.PatronStatus{}, fmt.Errorf("patron status: %w", err)
	}
	return patronStatusFrom(res), nil
}

func (c *Client) Patron(ctx context.Context, creds domain.Credentials) (domain.Patron, error) {
	res, err := c.Send(ctx, c.builder.PatronInformation(creds.Username, creds.Password))
	if err != nil {
		return domain.Patron{}, fmt.Errorf("patron information: %w", err)
	}

	return domain.Patron{
		PatronStatus: patronStatusFrom(res),
		Email:        res.Get(sip2.FieldEmail),
		HomeAddress:  res.Get(sip2.FieldHomeAddress),
		FeeAmount:    res.Get(sip2.FieldFeeAmount),
		ChargedItems: res.Values(sip2.FieldChargedItems),
		HoldItems:    res.Values(sip2.FieldHoldItems),
		OverdueItems: res.Values(sip2.FieldOverdueItems),
		FineItems:    res.Values(sip2.FieldFineItems),
	}, nil
}

func (c *Client) Checkout(ctx context.Context, req domain.ItemRequest) (domain.CirculationResult, error) {
	res, err := c.Send(ctx, c.builder.Checkout(req.Username, req.Password, req.ItemIdentifier))
	if err != nil {
		return domain.CirculationResult{}, fmt.Errorf("checkout %s: %w", req.ItemIdentifier, err)
	}
	return circulationResultFrom(res, req.ItemIdentifier), nil
}

func (c *Client) Checkin(ctx context.Context, itemIdentifier string) (domain.CirculationResult, error) {
	res, err := c.Send(ctx, c.builder.Checkin(itemIdentifier))
	if err != nil {
		return domain.CirculationResult{}, fmt.Errorf("checkin %s: %w", itemIdentifier, err)
	}
	return circulationResultFrom(res, itemIdentifier), nil
}

func (c *Client) Renew(ctx context.Context, req domain.ItemRequest) (domain.CirculationResult, error) {
	res, err := c.Send(ctx, c.builder.Renew(req.Username, req.Password, req.ItemIdentifier))
	if err != nil {
		return domain.CirculationResult{}, fmt.Errorf("renew %s: %w", req.ItemIdentifier, err)
	}
	return circulationResultFrom(res, req.ItemIdentifier), nil
}

func (c *Client) RenewAll(ctx context.Context, creds domain.Credentials) (domain.RenewAllResult, error) {
	res, err := c.Send(ctx, c.builder.RenewAll(creds.Username, creds.Password))
	if err != nil {
		return domain.RenewAllResult{}, fmt.Errorf("renew all: %w", err)
	}

	return domain.RenewAllResult{
		Renewed:   nonEmpty(res.Values(sip2.FieldRenewedItems)),
		Unrenewed: nonEmpty(res.Values(sip2.FieldUnrenewedItems)),
	}, nil
}

func (c *Client) Block(ctx context.Context, req domain.BlockRequest) (domain.PatronStatus, error) {
	res, err := c.Send(ctx, c.builder.BlockPatron(req.Username, req.Reason))
	if err != nil {
		return domain.PatronStatus{}, fmt.Errorf("block patron: %w", err)
	}
	return patronStatusFrom(res), nil
}

func patronStatusFrom(res *sip2.Response) domain.PatronStatus {
	return domain.PatronStatus{
		PatronID:            res.Get(sip2.FieldPatronID),
		PersonalName:        res.Get(sip2.FieldPersonalName),
		ValidPatron:         res.Get(sip2.FieldValidPatron) == "Y",
		ValidPatronPassword: res.Get(sip2.FieldValidPatronPassword) == "Y",
		ScreenMessage:       res.Get(sip2.FieldScreenMessage),
	}
}

func circulationResultFrom(res *sip2.Response, itemIdentifier string) domain.CirculationResult {
	if item := res.Get(sip2.FieldItemID); item != "" {
		itemIdentifier = item
	}

	return domain.CirculationResult{
		ItemIdentifier: itemIdentifier,
		OK:             res.OK(),
		Title:          res.Get(sip2.FieldTitle),
		DueDate:        res.Get(sip2.FieldDueDate),
		ScreenMessage:  res.Get(sip2.FieldScreenMessage),
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

func (c *Client) observe(cmd sip2.Command, err error, started time.Time) {
	if c.Observer == nil {
		return
	}
	c.Observer.ObserveFBS(string(cmd), resultLabel(err), time.Since(started))
}

func resultLabel(err error) string {
	var (
		transportErr *domain.TransportError
		parseErr     *domain.ParseError
		remoteErr    *domain.RemoteError
	)
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrOffline):
		return "offline"
	case errors.As(err, &transportErr):
		return "transport_error"
	case errors.As(err, &parseErr):
		return "parse_error"
	case errors.As(err, &remoteErr):
		return "remote_error"
	default:
		return "error"
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultReqTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
