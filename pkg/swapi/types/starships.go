package types

type StarshipAttributes struct {
	Name                 string `json:"name"`
	Model                string `json:"model"`
	StarshipClass        string `json:"starship_class"`
	Manufacturer         string `json:"manufacturer"`
	CostInCredits        string `json:"cost_in_credits"`
	Length               string `json:"length"`
	Crew                 string `json:"crew"`
	Passengers           string `json:"passengers"`
	MaxAtmospheringSpeed string `json:"max_atmosphering_speed"`
	HyperdriveRating     string `json:"hyperdrive_rating"`
	MGLT                 string `json:"MGLT"`
	CargoCapacity        string `json:"cargo_capacity"`
	Consumables          string `json:"consumables"`
	URL                  string `json:"url"`
	Created              string `json:"created"`
	Edited               string `json:"edited"`
}

type StarshipRecord struct {
	StarshipAttributes
	Films  []string `json:"films"`
	Pilots []string `json:"pilots"`
}

type Starship struct {
	StarshipAttributes
	Films  []Ref[FilmRecord]   `json:"films"`
	Pilots []Ref[PersonRecord] `json:"pilots"`
}

func NewStarshipRecord(p Payload) StarshipRecord {
	return StarshipRecord{
		StarshipAttributes: StarshipAttributes{
			Name:                 p.String("name"),
			Model:                p.String("model"),
			StarshipClass:        p.String("starship_class"),
			Manufacturer:         p.String("manufacturer"),
			CostInCredits:        p.String("cost_in_credits"),
			Length:               p.String("length"),
			Crew:                 p.String("crew"),
			Passengers:           p.String("passengers"),
			MaxAtmospheringSpeed: p.String("max_atmosphering_speed"),
			HyperdriveRating:     p.String("hyperdrive_rating"),
			MGLT:                 p.String("MGLT"),
			CargoCapacity:        p.String("cargo_capacity"),
			Consumables:          p.String("consumables"),
			URL:                  p.String("url"),
			Created:              p.String("created"),
			Edited:               p.String("edited"),
		},
		Films:  p.Strings("films"),
		Pilots: p.Strings("pilots"),
	}
}

func (sr StarshipRecord) Unresolved() Starship {
	return Starship{
		StarshipAttributes: sr.StarshipAttributes,
		Films:              References[FilmRecord](sr.Films),
		Pilots:             References[PersonRecord](sr.Pilots),
	}
}
