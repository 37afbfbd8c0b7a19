package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/diwise/swapi-aggregator/internal/pkg/application/catalog"

	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var method = expects.RequestMethod
var path = expects.RequestPath

func TestIntegrateSearchFilmsByTitle(t *testing.T) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/api/films/"),
			expects.QueryParamEquals("search", "hope"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(filmsResponseBody)),
		),
	)
	defer ms.Close()

	ts := newTestServer(is, ms.URL()+"/api")
	defer ts.Close()

	status, body := get(is, ts.URL+"/films?title=hope")
	is.Equal(status, http.StatusOK)

	films := []map[string]any{}
	is.NoErr(json.Unmarshal(body, &films))
	is.Equal(len(films), 1)
	is.Equal(films[0]["title"], "A New Hope")
	is.Equal(films[0]["characters"], []any{"http://swapi.test/api/people/1/"})

	status, _ = get(is, ts.URL+"/films/?title=hope")
	is.Equal(status, http.StatusOK)
	is.Equal(ms.RequestCount(), 1) // second request should be served from the cache
}

func TestIntegrateUpstreamFailureIsBadGateway(t *testing.T) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, expects.AnyInput()),
		Returns(response.Code(http.StatusServiceUnavailable)),
	)
	defer ms.Close()

	ts := newTestServer(is, ms.URL()+"/api")
	defer ts.Close()

	status, _ := get(is, ts.URL+"/people?id=1")
	is.Equal(status, http.StatusBadGateway)
}

func TestIntegrateMetricsAreExposed(t *testing.T) {
	is := is.New(t)

	ts := newTestServer(is, "http://swapi.test/api")
	defer ts.Close()

	status, body := get(is, ts.URL+"/metrics")
	is.Equal(status, http.StatusOK)
	is.True(len(body) > 0)
}

func TestCatalogConfigFromFlags(t *testing.T) {
	is := is.New(t)

	flags := DefaultFlags()
	flags[swapiBaseURL] = "http://lolcathost/api"
	flags[cacheTTL] = "0"
	flags[maxConcurrentFetches] = "4"
	flags[debugMode] = "true"

	cfg, err := newCatalogConfig(flags)
	is.NoErr(err)

	is.Equal(cfg.BaseURL, "http://lolcathost/api")
	is.Equal(cfg.CacheTTLSeconds, 0)
	is.Equal(cfg.RequestTimeoutSeconds, 5)
	is.Equal(cfg.MaxConcurrentFetches, 4)
	is.True(cfg.Debug)
}

func TestCatalogConfigFileIsOverriddenByFlags(t *testing.T) {
	is := is.New(t)

	configFile := filepath.Join(t.TempDir(), "catalog.yaml")
	is.NoErr(os.WriteFile(configFile, []byte("baseURL: http://file/api\nrequestTimeoutSeconds: 2\n"), 0600))

	flags := DefaultFlags()
	flags[configPath] = configFile
	flags[requestTimeout] = "9"

	cfg, err := newCatalogConfig(flags)
	is.NoErr(err)

	is.Equal(cfg.BaseURL, "http://file/api")
	is.Equal(cfg.RequestTimeoutSeconds, 9)
}

func TestCatalogConfigRejectsInvalidNumbers(t *testing.T) {
	is := is.New(t)

	flags := DefaultFlags()
	flags[cacheTTL] = "forever"

	_, err := newCatalogConfig(flags)
	is.True(err != nil)
}

func newTestServer(is *is.I, baseURL string) *httptest.Server {
	cfg := catalog.DefaultConfig()
	cfg.BaseURL = baseURL

	r, err := initialize(context.Background(), &cfg)
	is.NoErr(err)

	return httptest.NewServer(r)
}

func get(is *is.I, url string) (int, []byte) {
	resp, err := http.Get(url)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	is.NoErr(err)

	return resp.StatusCode, body
}

const filmsResponseBody string = `{
	"count": 1,
	"next": null,
	"previous": null,
	"results": [{
		"title": "A New Hope",
		"episode_id": 4,
		"director": "George Lucas",
		"characters": ["http://swapi.test/api/people/1/"],
		"planets": [],
		"starships": [],
		"vehicles": [],
		"species": [],
		"url": "http://swapi.test/api/films/1/"
	}]
}`
