package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/swapi-aggregator/internal/pkg/application/catalog"
	swapierrors "github.com/diwise/swapi-aggregator/pkg/swapi/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("swapi-aggregator/api")

const RequestIDHeader string = "X-Request-ID"

func RegisterHandlers(ctx context.Context, r chi.Router, app catalog.Catalog) {
	r.Get("/health", NewHealthHandler())

	r.Group(func(r chi.Router) {
		r.Use(Logger(logging.GetFromContext(ctx)))

		mount(r, catalog.Films, newListHandler(catalog.Films, "title", false, app.Films))
		mount(r, catalog.People, newListHandler(catalog.People, "name", false, app.People))
		mount(r, catalog.Planets, newListHandler(catalog.Planets, "name", false, app.Planets))
		mount(r, catalog.Species, newListHandler(catalog.Species, "name", false, app.Species))
		mount(r, catalog.Starships, newListHandler(catalog.Starships, "name", true, app.Starships))
		mount(r, catalog.Vehicles, newListHandler(catalog.Vehicles, "name", true, app.Vehicles))
	})
}

func mount(r chi.Router, kind string, h http.HandlerFunc) {
	r.Get("/"+kind, h)
	r.Get("/"+kind+"/", h)
}

// Logger stores a logger that carries the trace and request ids in the
// request context.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), "request_id", requestID)
			w.Header().Set(RequestIDHeader, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}
}

// newListHandler handles GET requests for one kind of resource. textParam
// names the query parameter that carries the text filter for the kind.
func newListHandler[H any](
	kind, textParam string, withModel bool,
	list func(context.Context, catalog.Query) ([]H, error)) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-"+kind)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		log := logging.GetFromContext(ctx)

		q, err := parseQuery(r, kind, textParam, withModel)
		if err != nil {
			log.Info("bad request", "kind", kind, "err", err.Error())
			swapierrors.ReportError(w, err, traceID(ctx))
			return
		}

		records, err := list(ctx, q)
		if err != nil {
			log.Error("failed to list resources", "kind", kind, "err", err.Error())
			swapierrors.ReportError(w, err, traceID(ctx))
			return
		}

		if records == nil {
			records = []H{}
		}

		responseBody, err := json.Marshal(records)
		if err != nil {
			log.Error("failed to marshal resources to json", "kind", kind, "err", err.Error())
			swapierrors.ReportError(w, err, traceID(ctx))
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(responseBody)
	})
}

func parseQuery(r *http.Request, kind, textParam string, withModel bool) (catalog.Query, error) {
	params := r.URL.Query()
	q := catalog.Query{
		Text:    params.Get(textParam),
		Order:   params.Get("order"),
		Include: catalog.Include{},
	}

	if withModel {
		q.Model = params.Get("model")
	}

	if id := params.Get("id"); id != "" {
		n, err := strconv.Atoi(id)
		if err != nil {
			return q, swapierrors.NewBadRequestError(fmt.Sprintf("id must be an integer, not %q", id))
		}
		q.ID = n
	}

	var err error

	if q.All, err = parseFlag(params.Get("all"), "all"); err != nil {
		return q, err
	}

	for _, relation := range catalog.Relations[kind] {
		requested, err := parseFlag(params.Get(relation), relation)
		if err != nil {
			return q, err
		}
		q.Include[relation] = requested
	}

	return q, nil
}

func parseFlag(value, name string) (bool, error) {
	if value == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, swapierrors.NewBadRequestError(fmt.Sprintf("%s must be a boolean, not %q", name, value))
	}

	return b, nil
}

func traceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}
