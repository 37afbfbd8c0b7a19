package catalog

import (
	"context"
	"fmt"

	"github.com/diwise/swapi-aggregator/pkg/swapi/types"
	"golang.org/x/sync/errgroup"
)

// Related records are resolved with ResolveOne, which never hydrates, so a
// nested record always holds plain references. This is what keeps cycles
// such as film -> person -> film from recursing.

func (a *app) hydrateFilm(ctx context.Context, f types.FilmRecord, include Include) (types.Film, error) {
	film := f.Unresolved()

	g, ctx := errgroup.WithContext(ctx)
	many(ctx, g, include.Has("characters"), a.people, f.Characters, &film.Characters, a.limit)
	many(ctx, g, include.Has("planets"), a.planets, f.Planets, &film.Planets, a.limit)
	many(ctx, g, include.Has("starships"), a.starships, f.Starships, &film.Starships, a.limit)
	many(ctx, g, include.Has("vehicles"), a.vehicles, f.Vehicles, &film.Vehicles, a.limit)
	many(ctx, g, include.Has("species"), a.species, f.Species, &film.Species, a.limit)

	err := g.Wait()
	return film, err
}

func (a *app) hydratePerson(ctx context.Context, p types.PersonRecord, include Include) (types.Person, error) {
	person := p.Unresolved()

	g, ctx := errgroup.WithContext(ctx)
	one(ctx, g, include.Has("homeworld"), a.planets, p.Homeworld, &person.Homeworld)
	many(ctx, g, include.Has("films"), a.films, p.Films, &person.Films, a.limit)
	many(ctx, g, include.Has("species"), a.species, p.Species, &person.Species, a.limit)
	many(ctx, g, include.Has("starships"), a.starships, p.Starships, &person.Starships, a.limit)
	many(ctx, g, include.Has("vehicles"), a.vehicles, p.Vehicles, &person.Vehicles, a.limit)

	err := g.Wait()
	return person, err
}

func (a *app) hydratePlanet(ctx context.Context, p types.PlanetRecord, include Include) (types.Planet, error) {
	planet := p.Unresolved()

	g, ctx := errgroup.WithContext(ctx)
	many(ctx, g, include.Has("residents"), a.people, p.Residents, &planet.Residents, a.limit)
	many(ctx, g, include.Has("films"), a.films, p.Films, &planet.Films, a.limit)

	err := g.Wait()
	return planet, err
}

func (a *app) hydrateSpecies(ctx context.Context, s types.SpeciesRecord, include Include) (types.Species, error) {
	species := s.Unresolved()

	g, ctx := errgroup.WithContext(ctx)
	one(ctx, g, include.Has("homeworld"), a.planets, s.Homeworld, &species.Homeworld)
	many(ctx, g, include.Has("people"), a.people, s.People, &species.People, a.limit)
	many(ctx, g, include.Has("films"), a.films, s.Films, &species.Films, a.limit)

	err := g.Wait()
	return species, err
}

func (a *app) hydrateStarship(ctx context.Context, s types.StarshipRecord, include Include) (types.Starship, error) {
	starship := s.Unresolved()

	g, ctx := errgroup.WithContext(ctx)
	many(ctx, g, include.Has("films"), a.films, s.Films, &starship.Films, a.limit)
	many(ctx, g, include.Has("pilots"), a.people, s.Pilots, &starship.Pilots, a.limit)

	err := g.Wait()
	return starship, err
}

func (a *app) hydrateVehicle(ctx context.Context, v types.VehicleRecord, include Include) (types.Vehicle, error) {
	vehicle := v.Unresolved()

	g, ctx := errgroup.WithContext(ctx)
	many(ctx, g, include.Has("films"), a.films, v.Films, &vehicle.Films, a.limit)
	many(ctx, g, include.Has("pilots"), a.people, v.Pilots, &vehicle.Pilots, a.limit)

	err := g.Wait()
	return vehicle, err
}

// many replaces dst with the resolved records behind urls when the
// relationship is requested. dst must only be read after g.Wait.
func many[R any](ctx context.Context, g *errgroup.Group, requested bool, r Resolver[R], urls []string, dst *[]types.Ref[R], limit int) {
	if !requested {
		return
	}

	g.Go(func() error {
		refs, err := resolveAll(ctx, r, urls, limit)
		if err != nil {
			return err
		}
		*dst = refs
		return nil
	})
}

// one is the to-one variant of many. An empty url leaves dst nil.
func one[R any](ctx context.Context, g *errgroup.Group, requested bool, r Resolver[R], url string, dst **types.Ref[R]) {
	if !requested || url == "" {
		return
	}

	g.Go(func() error {
		refs, err := resolveAll(ctx, r, []string{url}, 1)
		if err != nil {
			return err
		}
		*dst = &refs[0]
		return nil
	})
}

// resolveAll resolves every url concurrently and returns the records in the
// order of urls. The first failure cancels the remaining fetches.
func resolveAll[R any](ctx context.Context, r Resolver[R], urls []string, limit int) ([]types.Ref[R], error) {
	refs := make([]types.Ref[R], len(urls))
	if len(urls) == 0 {
		return refs, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for idx, url := range urls {
		g.Go(func() error {
			record, err := r.ResolveOne(ctx, url, nil)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", url, err)
			}
			refs[idx] = types.Resolved(record)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return refs, nil
}
