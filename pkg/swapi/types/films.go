package types

type FilmAttributes struct {
	Title        string `json:"title"`
	EpisodeID    *int   `json:"episode_id"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"`
	URL          string `json:"url"`
	Created      string `json:"created"`
	Edited       string `json:"edited"`
}

// FilmRecord is a film as returned by the catalog, with its relationships
// still expressed as resource URLs.
type FilmRecord struct {
	FilmAttributes
	Characters []string `json:"characters"`
	Planets    []string `json:"planets"`
	Starships  []string `json:"starships"`
	Vehicles   []string `json:"vehicles"`
	Species    []string `json:"species"`
}

type Film struct {
	FilmAttributes
	Characters []Ref[PersonRecord]   `json:"characters"`
	Planets    []Ref[PlanetRecord]   `json:"planets"`
	Starships  []Ref[StarshipRecord] `json:"starships"`
	Vehicles   []Ref[VehicleRecord]  `json:"vehicles"`
	Species    []Ref[SpeciesRecord]  `json:"species"`
}

func NewFilmRecord(p Payload) FilmRecord {
	return FilmRecord{
		FilmAttributes: FilmAttributes{
			Title:        p.String("title"),
			EpisodeID:    p.Int("episode_id"),
			OpeningCrawl: p.String("opening_crawl"),
			Director:     p.String("director"),
			Producer:     p.String("producer"),
			ReleaseDate:  p.String("release_date"),
			URL:          p.String("url"),
			Created:      p.String("created"),
			Edited:       p.String("edited"),
		},
		Characters: p.Strings("characters"),
		Planets:    p.Strings("planets"),
		Starships:  p.Strings("starships"),
		Vehicles:   p.Strings("vehicles"),
		Species:    p.Strings("species"),
	}
}

// Unresolved converts the record into a film where every relationship is
// a reference.
func (f FilmRecord) Unresolved() Film {
	return Film{
		FilmAttributes: f.FilmAttributes,
		Characters:     References[PersonRecord](f.Characters),
		Planets:        References[PlanetRecord](f.Planets),
		Starships:      References[StarshipRecord](f.Starships),
		Vehicles:       References[VehicleRecord](f.Vehicles),
		Species:        References[SpeciesRecord](f.Species),
	}
}
