package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/swapi-aggregator/pkg/swapi/client"
	"github.com/diwise/swapi-aggregator/pkg/swapi/types"
)

//go:generate moq -rm -out catalog_mock.go . Catalog

type Catalog interface {
	Films(ctx context.Context, q Query) ([]types.Film, error)
	People(ctx context.Context, q Query) ([]types.Person, error)
	Planets(ctx context.Context, q Query) ([]types.Planet, error)
	Species(ctx context.Context, q Query) ([]types.Species, error)
	Starships(ctx context.Context, q Query) ([]types.Starship, error)
	Vehicles(ctx context.Context, q Query) ([]types.Vehicle, error)
}

const (
	Films     string = "films"
	People    string = "people"
	Planets   string = "planets"
	Species   string = "species"
	Starships string = "starships"
	Vehicles  string = "vehicles"
)

// Relations lists the relationship names that can be included for each kind.
var Relations = map[string][]string{
	Films:     {"characters", "planets", "starships", "vehicles", "species"},
	People:    {"homeworld", "films", "species", "starships", "vehicles"},
	Planets:   {"residents", "films"},
	Species:   {"homeworld", "people", "films"},
	Starships: {"films", "pilots"},
	Vehicles:  {"films", "pilots"},
}

type app struct {
	baseURL   string
	resources map[string]string
	limit     int

	films     *resolver[types.FilmRecord, types.Film]
	people    *resolver[types.PersonRecord, types.Person]
	planets   *resolver[types.PlanetRecord, types.Planet]
	species   *resolver[types.SpeciesRecord, types.Species]
	starships *resolver[types.StarshipRecord, types.Starship]
	vehicles  *resolver[types.VehicleRecord, types.Vehicle]
}

// New wires one resolver per kind. The resolvers refer to each other through
// the app, so the cyclic relationships between kinds are bound only when a
// record is hydrated.
func New(cfg Config, fetcher client.Fetcher) (Catalog, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("no catalog base url configured")
	}

	a := &app{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		resources: cfg.resourcePaths(),
		limit:     cfg.MaxConcurrentFetches,
	}

	a.films = newResolver(Films, fetcher, types.NewFilmRecord, a.hydrateFilm,
		func(f types.Film) string { return f.Title })
	a.people = newResolver(People, fetcher, types.NewPersonRecord, a.hydratePerson,
		func(p types.Person) string { return p.Name })
	a.planets = newResolver(Planets, fetcher, types.NewPlanetRecord, a.hydratePlanet,
		func(p types.Planet) string { return p.Name })
	a.species = newResolver(Species, fetcher, types.NewSpeciesRecord, a.hydrateSpecies,
		func(s types.Species) string { return s.Name })
	a.starships = newResolver(Starships, fetcher, types.NewStarshipRecord, a.hydrateStarship,
		func(s types.Starship) string { return s.Name })
	a.vehicles = newResolver(Vehicles, fetcher, types.NewVehicleRecord, a.hydrateVehicle,
		func(v types.Vehicle) string { return v.Name })

	return a, nil
}

func (a *app) Films(ctx context.Context, q Query) ([]types.Film, error) {
	q = q.normalize(Relations[Films])
	return a.films.List(ctx, a.endpoint(Films, q.ID), q)
}

func (a *app) People(ctx context.Context, q Query) ([]types.Person, error) {
	q = q.normalize(Relations[People])
	return a.people.List(ctx, a.endpoint(People, q.ID), q)
}

func (a *app) Planets(ctx context.Context, q Query) ([]types.Planet, error) {
	q = q.normalize(Relations[Planets])
	return a.planets.List(ctx, a.endpoint(Planets, q.ID), q)
}

func (a *app) Species(ctx context.Context, q Query) ([]types.Species, error) {
	q = q.normalize(Relations[Species])
	return a.species.List(ctx, a.endpoint(Species, q.ID), q)
}

func (a *app) Starships(ctx context.Context, q Query) ([]types.Starship, error) {
	q = q.normalize(Relations[Starships])
	return a.starships.List(ctx, a.endpoint(Starships, q.ID), q)
}

func (a *app) Vehicles(ctx context.Context, q Query) ([]types.Vehicle, error) {
	q = q.normalize(Relations[Vehicles])
	return a.vehicles.List(ctx, a.endpoint(Vehicles, q.ID), q)
}

// endpoint returns the collection url for a kind, or the url of a single
// resource when id is set.
func (a *app) endpoint(kind string, id int) string {
	url := a.baseURL + "/" + a.resources[kind] + "/"
	if id != 0 {
		url = fmt.Sprintf("%s%d/", url, id)
	}
	return url
}
