package botschema

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	j "github.com/goccy/go-json"

	"github.com/reoring/botschema/i18n"
)

// Transport delivers a serialized request for method and returns the raw
// response body. Retries, timeouts and authentication belong to the
// transport.
type Transport interface {
	Send(ctx context.Context, method string, body []byte) ([]byte, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, method string, body []byte) ([]byte, error)

func (f TransportFunc) Send(ctx context.Context, method string, body []byte) ([]byte, error) {
	return f(ctx, method, body)
}

// Payload is implemented by every generated request type.
type Payload interface {
	MethodName() string
	Descriptor() Descriptor
	MarshalJSON() ([]byte, error)
}

// Method is a Payload that knows how to decode its result. Call uses it to
// infer the response type from the payload.
type Method[R any] interface {
	Payload
	DecodeResult(data []byte) (R, error)
}

// Client sends payloads through a Transport and decodes the response
// envelope. It holds no mutable state and is safe for concurrent use when
// the Transport is.
type Client struct {
	transport Transport
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient returns a Client sending through t. Logging is discarded unless
// WithLogger is given.
func NewClient(t Transport, opts ...Option) *Client {
	c := &Client{transport: t, logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Call serializes m, sends it and decodes the result.
//
// Errors: *TransportError when the transport fails, *APIError when the
// envelope reports ok=false, and Issues when the envelope or the result does
// not decode.
func Call[R any](ctx context.Context, c *Client, m Method[R]) (R, error) {
	var zero R
	method := m.MethodName()
	start := time.Now()
	c.logger.DebugContext(ctx, "request started", slog.String("method", method))

	res, err := c.roundTrip(ctx, method, m)
	if err == nil {
		var out R
		out, err = m.DecodeResult(res)
		if err == nil {
			c.logger.DebugContext(ctx, "request completed",
				slog.String("method", method),
				slog.Duration("duration", time.Since(start)),
			)
			return out, nil
		}
		if iss, ok := AsIssues(err); ok {
			err = Root().Field("result").rebase(iss)
		}
	}
	c.logger.ErrorContext(ctx, "request failed",
		slog.String("method", method),
		slog.Duration("duration", time.Since(start)),
		slog.Any("error", err),
	)
	return zero, err
}

// roundTrip returns the raw result member of a successful response.
func (c *Client) roundTrip(ctx context.Context, method string, p Payload) ([]byte, error) {
	body, err := p.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("botschema: %s: %w", method, err)
	}
	raw, err := c.transport.Send(ctx, method, body)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	env, err := envelopeShape.Decode(raw)
	if err != nil {
		return nil, err
	}
	if !env.OK {
		return nil, &APIError{
			Method:      method,
			Code:        env.ErrorCode,
			Description: env.Description,
			Parameters:  env.Parameters,
		}
	}
	result, ok := env.Result.Get()
	if !ok {
		return nil, Issues{Root().Field("result").Issue(CodeMissingField, i18n.T(CodeMissingField, nil))}
	}
	return result, nil
}

// envelope is the outer object of every response.
type envelope struct {
	OK          bool
	Result      Optional[j.RawMessage]
	Description string
	ErrorCode   int
	Parameters  Optional[ResponseParameters]
}

var envelopeShape = ObjectOf(
	Required("ok", func(e *envelope) *bool { return &e.OK }),
	OptionalField("result", func(e *envelope) *Optional[j.RawMessage] { return &e.Result }),
	Lenient("description", func(e *envelope) *string { return &e.Description }, ""),
	Lenient("error_code", func(e *envelope) *int { return &e.ErrorCode }, 0),
	OptionalField("parameters", func(e *envelope) *Optional[ResponseParameters] { return &e.Parameters }),
).MustBuild()

// ResponseParameters explains why a request failed and how it may be
// retried. Absent members are zero.
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

var responseParametersShape = ObjectOf(
	Lenient("migrate_to_chat_id", func(p *ResponseParameters) *int64 { return &p.MigrateToChatID }, 0),
	Lenient("retry_after", func(p *ResponseParameters) *int { return &p.RetryAfter }, 0),
).MustBuild()

func (p *ResponseParameters) UnmarshalJSON(data []byte) error {
	return responseParametersShape.DecodeInto(data, p)
}

// RetryAfterDuration returns RetryAfter as a duration.
func (p ResponseParameters) RetryAfterDuration() time.Duration {
	return time.Duration(p.RetryAfter) * time.Second
}

// APIError is an ok=false response.
type APIError struct {
	Method      string
	Code        int
	Description string
	Parameters  Optional[ResponseParameters]
}

func (e *APIError) Error() string {
	return fmt.Sprintf("botschema: %s: api error %d: %s", e.Method, e.Code, e.Description)
}
