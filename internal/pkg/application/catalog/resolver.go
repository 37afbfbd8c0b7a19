package catalog

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/swapi-aggregator/pkg/swapi/client"
	"github.com/diwise/swapi-aggregator/pkg/swapi/errors"
	"github.com/diwise/swapi-aggregator/pkg/swapi/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("swapi-aggregator/catalog")

const (
	TraceAttributeKind  string = "kind"
	TraceAttributeCount string = "count"
)

// Resolver resolves a single resource of some kind into its flat record.
type Resolver[F any] interface {
	ResolveOne(ctx context.Context, url string, search map[string]string) (F, error)
}

// resolver turns catalog payloads of one kind into flat records (F) and
// hydrated records (H).
type resolver[F any, H any] struct {
	kind    string
	fetcher client.Fetcher
	decode  func(types.Payload) F
	hydrate func(context.Context, F, Include) (H, error)
	name    func(H) string
}

func newResolver[F any, H any](
	kind string,
	fetcher client.Fetcher,
	decode func(types.Payload) F,
	hydrate func(context.Context, F, Include) (H, error),
	name func(H) string) *resolver[F, H] {

	return &resolver[F, H]{
		kind:    kind,
		fetcher: fetcher,
		decode:  decode,
		hydrate: hydrate,
		name:    name,
	}
}

// ResolveOne fetches a single resource. A collection response resolves to
// its first result, and to ErrNotFound when it has none.
func (r *resolver[F, H]) ResolveOne(ctx context.Context, url string, search map[string]string) (F, error) {
	var record F

	payload, err := r.fetcher.Fetch(ctx, url, search)
	if err != nil {
		return record, err
	}

	results, ok := payload.Results()
	if !ok {
		return r.decode(payload), nil
	}

	if len(results) == 0 {
		return record, errors.NewNotFoundError(fmt.Sprintf("no %s matches the requested filter", r.kind))
	}

	return r.decode(results[0]), nil
}

// List fetches one page of resources, hydrates the relationships that q
// includes and orders the result if q asks for it.
func (r *resolver[F, H]) List(ctx context.Context, url string, q Query) ([]H, error) {
	var err error

	ctx, span := tracer.Start(ctx, "list-"+r.kind,
		trace.WithAttributes(attribute.String(TraceAttributeKind, r.kind)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	payload, err := r.fetcher.Fetch(ctx, url, q.searchParams())
	if err != nil {
		return nil, err
	}

	payloads, ok := payload.Results()
	if !ok {
		payloads = []types.Payload{payload}
	}

	hydrated := make([]H, len(payloads))

	g, gctx := errgroup.WithContext(ctx)
	for idx, p := range payloads {
		g.Go(func() error {
			h, err := r.hydrate(gctx, r.decode(p), q.Include)
			if err != nil {
				return fmt.Errorf("failed to hydrate %s: %w", r.kind, err)
			}
			hydrated[idx] = h
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int(TraceAttributeCount, len(hydrated)))
	logging.GetFromContext(ctx).Debug("resolved resources", "kind", r.kind, "count", len(hydrated))

	if q.Order != "" {
		hydrated = orderBy(hydrated, q.Order, r.name)
	}

	return hydrated, nil
}

// First returns the first record that List would return, or nil.
func (r *resolver[F, H]) First(ctx context.Context, url string, q Query) (*H, error) {
	records, err := r.List(ctx, url, q)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}

	return &records[0], nil
}
