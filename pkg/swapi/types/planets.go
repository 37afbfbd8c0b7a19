package types

type PlanetAttributes struct {
	Name           string `json:"name"`
	RotationPeriod string `json:"rotation_period"`
	OrbitalPeriod  string `json:"orbital_period"`
	Diameter       string `json:"diameter"`
	Climate        string `json:"climate"`
	Gravity        string `json:"gravity"`
	Terrain        string `json:"terrain"`
	SurfaceWater   string `json:"surface_water"`
	Population     string `json:"population"`
	URL            string `json:"url"`
	Created        string `json:"created"`
	Edited         string `json:"edited"`
}

type PlanetRecord struct {
	PlanetAttributes
	Residents []string `json:"residents"`
	Films     []string `json:"films"`
}

type Planet struct {
	PlanetAttributes
	Residents []Ref[PersonRecord] `json:"residents"`
	Films     []Ref[FilmRecord]   `json:"films"`
}

func NewPlanetRecord(p Payload) PlanetRecord {
	return PlanetRecord{
		PlanetAttributes: PlanetAttributes{
			Name:           p.String("name"),
			RotationPeriod: p.String("rotation_period"),
			OrbitalPeriod:  p.String("orbital_period"),
			Diameter:       p.String("diameter"),
			Climate:        p.String("climate"),
			Gravity:        p.String("gravity"),
			Terrain:        p.String("terrain"),
			SurfaceWater:   p.String("surface_water"),
			Population:     p.String("population"),
			URL:            p.String("url"),
			Created:        p.String("created"),
			Edited:         p.String("edited"),
		},
		Residents: p.Strings("residents"),
		Films:     p.Strings("films"),
	}
}

func (pr PlanetRecord) Unresolved() Planet {
	return Planet{
		PlanetAttributes: pr.PlanetAttributes,
		Residents:        References[PersonRecord](pr.Residents),
		Films:            References[FilmRecord](pr.Films),
	}
}
