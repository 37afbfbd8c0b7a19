package types

type PersonAttributes struct {
	Name      string `json:"name"`
	BirthYear string `json:"birth_year"`
	EyeColor  string `json:"eye_color"`
	Gender    string `json:"gender"`
	HairColor string `json:"hair_color"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	SkinColor string `json:"skin_color"`
	URL       string `json:"url"`
	Created   string `json:"created"`
	Edited    string `json:"edited"`
}

type PersonRecord struct {
	PersonAttributes
	Homeworld string   `json:"homeworld"`
	Films     []string `json:"films"`
	Species   []string `json:"species"`
	Starships []string `json:"starships"`
	Vehicles  []string `json:"vehicles"`
}

type Person struct {
	PersonAttributes
	Homeworld *Ref[PlanetRecord]    `json:"homeworld"`
	Films     []Ref[FilmRecord]     `json:"films"`
	Species   []Ref[SpeciesRecord]  `json:"species"`
	Starships []Ref[StarshipRecord] `json:"starships"`
	Vehicles  []Ref[VehicleRecord]  `json:"vehicles"`
}

func NewPersonRecord(p Payload) PersonRecord {
	return PersonRecord{
		PersonAttributes: PersonAttributes{
			Name:      p.String("name"),
			BirthYear: p.String("birth_year"),
			EyeColor:  p.String("eye_color"),
			Gender:    p.String("gender"),
			HairColor: p.String("hair_color"),
			Height:    p.String("height"),
			Mass:      p.String("mass"),
			SkinColor: p.String("skin_color"),
			URL:       p.String("url"),
			Created:   p.String("created"),
			Edited:    p.String("edited"),
		},
		Homeworld: p.String("homeworld"),
		Films:     p.Strings("films"),
		Species:   p.Strings("species"),
		Starships: p.Strings("starships"),
		Vehicles:  p.Strings("vehicles"),
	}
}

func (pr PersonRecord) Unresolved() Person {
	return Person{
		PersonAttributes: pr.PersonAttributes,
		Homeworld:        OptionalReference[PlanetRecord](pr.Homeworld),
		Films:            References[FilmRecord](pr.Films),
		Species:          References[SpeciesRecord](pr.Species),
		Starships:        References[StarshipRecord](pr.Starships),
		Vehicles:         References[VehicleRecord](pr.Vehicles),
	}
}
