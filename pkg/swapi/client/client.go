package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/swapi-aggregator/pkg/swapi/errors"
	"github.com/diwise/swapi-aggregator/pkg/swapi/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Fetcher retrieves JSON objects from the catalog, serving repeated
// requests from a cache.
type Fetcher interface {
	Fetch(ctx context.Context, resourceURL string, params map[string]string) (types.Payload, error)
}

type Cache interface {
	Get(key string) (types.Payload, bool)
	Set(key string, payload types.Payload)
}

const DefaultTimeout time.Duration = 5 * time.Second

const (
	TraceAttributeResourceURL string = "resource-url"
	TraceAttributeCacheHit    string = "cache-hit"
)

var tracer = otel.Tracer("swapi-aggregator/client")

var upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "swapi_upstream_requests_total",
	Help: "The number of requests sent to the upstream catalog, by outcome",
}, []string{"outcome"})

type fetcher struct {
	cache      Cache
	httpClient http.Client
	debug      bool
}

func Debug(enabled bool) func(*fetcher) {
	return func(f *fetcher) {
		f.debug = enabled
	}
}

func Timeout(timeout time.Duration) func(*fetcher) {
	return func(f *fetcher) {
		f.httpClient.Timeout = timeout
	}
}

func NewFetcher(cache Cache, options ...func(*fetcher)) Fetcher {
	f := &fetcher{
		cache: cache,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   DefaultTimeout,
		},
	}

	for _, option := range options {
		option(f)
	}

	return f
}

func (f *fetcher) Fetch(ctx context.Context, resourceURL string, params map[string]string) (types.Payload, error) {
	var err error

	if resourceURL == "" {
		return nil, errors.NewInvalidRequestError("a catalog url must be provided to resolve a resource")
	}

	ctx, span := tracer.Start(ctx, "fetch",
		trace.WithAttributes(attribute.String(TraceAttributeResourceURL, resourceURL)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	key := CacheKey(resourceURL, params)

	if cached, ok := f.cache.Get(key); ok {
		span.SetAttributes(attribute.Bool(TraceAttributeCacheHit, true))
		log.Debug("serving resource from cache", "key", key)
		return cached, nil
	}

	span.SetAttributes(attribute.Bool(TraceAttributeCacheHit, false))

	payload, err := f.get(ctx, resourceURL, params)
	if err != nil {
		return nil, err
	}

	f.cache.Set(key, payload)

	return payload, nil
}

func (f *fetcher) get(ctx context.Context, resourceURL string, params map[string]string) (types.Payload, error) {
	endpoint, err := url.Parse(resourceURL)
	if err != nil {
		return nil, errors.NewInvalidRequestError(fmt.Sprintf("failed to parse url %s: %s", resourceURL, err.Error()))
	}

	if len(params) > 0 {
		q := endpoint.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		endpoint.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.NewInvalidRequestError(fmt.Sprintf("failed to create request: %s", err.Error()))
	}

	req.Header.Add("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues("failed").Inc()
		return nil, errors.NewTransportError(fmt.Sprintf("failed to send request: %s", err.Error()))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamRequests.WithLabelValues("failed").Inc()
		return nil, errors.NewTransportError(fmt.Sprintf("failed to read response body: %s", err.Error()))
	}

	upstreamRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if f.debug {
			reqbytes, _ := httputil.DumpRequest(req, false)
			respbytes, _ := httputil.DumpResponse(resp, false)
			logging.GetFromContext(ctx).Error("request failed", "request", string(reqbytes), "response", string(respbytes))
		}

		return nil, errors.NewTransportError(fmt.Sprintf("catalog returned status code %d for %s", resp.StatusCode, endpoint.String()))
	}

	var body any
	err = json.Unmarshal(respBody, &body)
	if err != nil {
		if f.debug && len(respBody) < 1000 {
			return nil, errors.NewMalformedResponseError(fmt.Sprintf("unmarshaling of %s failed with err %s", string(respBody), err.Error()))
		}
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("failed to decode response body: %s", err.Error()))
	}

	obj, ok := body.(map[string]any)
	if !ok {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("catalog returned a %T that cannot be mapped to a resource", body))
	}

	return types.Payload(obj), nil
}

// CacheKey returns the url itself when there are no params, and the url
// followed by the params as a JSON object with sorted keys otherwise.
func CacheKey(resourceURL string, params map[string]string) string {
	if len(params) == 0 {
		return resourceURL
	}

	// encoding/json writes map keys in sorted order
	serialized, err := json.Marshal(params)
	if err != nil {
		return resourceURL
	}

	return resourceURL + "?" + string(serialized)
}
