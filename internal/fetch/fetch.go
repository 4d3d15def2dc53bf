package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"techrank/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("techrank/fetch")

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// StatusError is returned when the server answers with a non-2xx status,
// including redirects the client did not follow.
type StatusError struct {
	Url    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.Url, e.Status)
}

type Options struct {
	UserAgent string
	// zero means no timeout
	Timeout time.Duration
	// wraps the transport with a cloudflare challenge bypass
	CloudflareBypass bool
	// receives request/response dumps while debug logging is enabled, may be nil
	Dump restyutil.InstrumentOutput
}

type Client struct {
	http *resty.Client
}

func NewClient(opts Options) *Client {
	client := resty.New()
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	restyutil.InstrumentClient(client, otel.Tracer("techrank/fetch/http"), opts.Dump)

	return &Client{http: client}
}

// Get performs a single GET and returns the body as text, there is no retry.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return "", fmt.Errorf("GET %s: %w", url, err)
	}
	if !res.IsSuccess() {
		err := &StatusError{Url: url, Status: res.StatusCode()}
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	body := res.String()
	slog.DebugContext(ctx, "fetched page", "url", url, "bytes", len(body))
	return body, nil
}
