package types

type SpeciesAttributes struct {
	Name            string `json:"name"`
	Classification  string `json:"classification"`
	Designation     string `json:"designation"`
	AverageHeight   string `json:"average_height"`
	AverageLifespan string `json:"average_lifespan"`
	EyeColors       string `json:"eye_colors"`
	HairColors      string `json:"hair_colors"`
	SkinColors      string `json:"skin_colors"`
	Language        string `json:"language"`
	URL             string `json:"url"`
	Created         string `json:"created"`
	Edited          string `json:"edited"`
}

type SpeciesRecord struct {
	SpeciesAttributes
	Homeworld string   `json:"homeworld"`
	People    []string `json:"people"`
	Films     []string `json:"films"`
}

type Species struct {
	SpeciesAttributes
	Homeworld *Ref[PlanetRecord]  `json:"homeworld"`
	People    []Ref[PersonRecord] `json:"people"`
	Films     []Ref[FilmRecord]   `json:"films"`
}

func NewSpeciesRecord(p Payload) SpeciesRecord {
	return SpeciesRecord{
		SpeciesAttributes: SpeciesAttributes{
			Name:            p.String("name"),
			Classification:  p.String("classification"),
			Designation:     p.String("designation"),
			AverageHeight:   p.String("average_height"),
			AverageLifespan: p.String("average_lifespan"),
			EyeColors:       p.String("eye_colors"),
			HairColors:      p.String("hair_colors"),
			SkinColors:      p.String("skin_colors"),
			Language:        p.String("language"),
			URL:             p.String("url"),
			Created:         p.String("created"),
			Edited:          p.String("edited"),
		},
		Homeworld: p.String("homeworld"),
		People:    p.Strings("people"),
		Films:     p.Strings("films"),
	}
}

func (sr SpeciesRecord) Unresolved() Species {
	return Species{
		SpeciesAttributes: sr.SpeciesAttributes,
		Homeworld:         OptionalReference[PlanetRecord](sr.Homeworld),
		People:            References[PersonRecord](sr.People),
		Films:             References[FilmRecord](sr.Films),
	}
}
