package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/swapi-aggregator/internal/pkg/application/catalog"
	"github.com/diwise/swapi-aggregator/pkg/swapi/errors"
	"github.com/diwise/swapi-aggregator/pkg/swapi/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestHealth(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "/health")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"status":"ok"}`)
}

func TestGetFilmsReturnsHydratedJSON(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.FilmsFunc = func(ctx context.Context, q catalog.Query) ([]types.Film, error) {
		film := types.FilmRecord{
			FilmAttributes: types.FilmAttributes{Title: "A New Hope"},
			Characters:     []string{"http://swapi.test/api/people/1/"},
			Planets:        []string{"http://swapi.test/api/planets/1/"},
		}.Unresolved()
		film.Characters = []types.Ref[types.PersonRecord]{
			types.Resolved(types.PersonRecord{PersonAttributes: types.PersonAttributes{Name: "Luke Skywalker"}}),
		}
		return []types.Film{film}, nil
	}

	resp, body := newTestRequest(is, ts, "/films?characters=true")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/json")

	films := []map[string]any{}
	is.NoErr(json.Unmarshal([]byte(body), &films))
	is.Equal(len(films), 1)
	is.Equal(films[0]["title"], "A New Hope")
	is.Equal(films[0]["planets"], []any{"http://swapi.test/api/planets/1/"}) // unrequested relations stay urls

	characters := films[0]["characters"].([]any)
	is.Equal(characters[0].(map[string]any)["name"], "Luke Skywalker")
}

func TestQueryParametersAreParsed(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "/starships/?name=wing&model=T-65&pilots=1&films=false&order=desc")
	is.Equal(resp.StatusCode, http.StatusOK)

	calls := app.StarshipsCalls()
	is.Equal(len(calls), 1)

	q := calls[0].Q
	is.Equal(q.Text, "wing")
	is.Equal(q.Model, "T-65")
	is.Equal(q.Order, "desc")
	is.True(q.Include.Has("pilots"))
	is.True(!q.Include.Has("films"))
	is.True(!q.All)
}

func TestFilmsAreFilteredByTitle(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	newTestRequest(is, ts, "/films?title=hope&name=ignored&all=true")

	q := app.FilmsCalls()[0].Q
	is.Equal(q.Text, "hope")
	is.True(q.All)
}

func TestModelIsOnlyReadForCraft(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	newTestRequest(is, ts, "/people?model=T-65")
	newTestRequest(is, ts, "/vehicles?model=T-47")

	is.Equal(app.PeopleCalls()[0].Q.Model, "")
	is.Equal(app.VehiclesCalls()[0].Q.Model, "T-47")
}

func TestIDIsParsed(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	newTestRequest(is, ts, "/planets?id=2&homeworld=true")

	q := app.PlanetsCalls()[0].Q
	is.Equal(q.ID, 2)
}

func TestInvalidIDReturnsBadRequest(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "/people?id=luke")

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(resp.Header.Get("Content-Type"), errors.ProblemReportContentType)
	is.Equal(len(app.PeopleCalls()), 0) // catalog should not be called

	problem := map[string]any{}
	is.NoErr(json.Unmarshal([]byte(body), &problem))
	is.True(problem["detail"] != "")
}

func TestInvalidFlagReturnsBadRequest(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "/species?people=maybe")
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, _ = newTestRequest(is, ts, "/species?all=sure")
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestErrorsAreMappedToStatusCodes(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	testCases := []struct {
		err    error
		status int
	}{
		{errors.NewNotFoundError("no people matches"), http.StatusNotFound},
		{errors.NewTransportError("upstream down"), http.StatusBadGateway},
		{errors.NewMalformedResponseError("garbage"), http.StatusInternalServerError},
		{fmt.Errorf("failed to hydrate people: %w", errors.NewTransportError("502")), http.StatusBadGateway},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		app.PeopleFunc = func(context.Context, catalog.Query) ([]types.Person, error) {
			return nil, tc.err
		}

		resp, _ := newTestRequest(is, ts, "/people")
		is.Equal(resp.StatusCode, tc.status)
	}
}

func TestEmptyResultIsAnEmptyArray(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "/vehicles")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, "[]")
}

func TestRequestIDIsEchoed(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/films", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.Header.Get(RequestIDHeader), "abc-123")

	resp, _ = newTestRequest(is, ts, "/films")
	is.True(resp.Header.Get(RequestIDHeader) != "") // a request id should be generated
}

func TestOnlyGetIsRouted(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/films", "application/json", nil)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusMethodNotAllowed)
}

func newTestRequest(is *is.I, ts *httptest.Server, path string) (*http.Response, string) {
	req, _ := http.NewRequest(http.MethodGet, ts.URL+path, nil)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *catalog.CatalogMock) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	app := &catalog.CatalogMock{
		FilmsFunc: func(context.Context, catalog.Query) ([]types.Film, error) {
			return []types.Film{}, nil
		},
		PeopleFunc: func(context.Context, catalog.Query) ([]types.Person, error) {
			return []types.Person{}, nil
		},
		PlanetsFunc: func(context.Context, catalog.Query) ([]types.Planet, error) {
			return []types.Planet{}, nil
		},
		SpeciesFunc: func(context.Context, catalog.Query) ([]types.Species, error) {
			return []types.Species{}, nil
		},
		StarshipsFunc: func(context.Context, catalog.Query) ([]types.Starship, error) {
			return []types.Starship{}, nil
		},
		VehiclesFunc: func(context.Context, catalog.Query) ([]types.Vehicle, error) {
			return nil, nil
		},
	}

	RegisterHandlers(context.Background(), r, app)

	return is, ts, app
}
