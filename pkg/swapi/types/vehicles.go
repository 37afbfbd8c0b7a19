package types

type VehicleAttributes struct {
	Name                 string `json:"name"`
	Model                string `json:"model"`
	VehicleClass         string `json:"vehicle_class"`
	Manufacturer         string `json:"manufacturer"`
	Length               string `json:"length"`
	CostInCredits        string `json:"cost_in_credits"`
	Crew                 string `json:"crew"`
	Passengers           string `json:"passengers"`
	MaxAtmospheringSpeed string `json:"max_atmosphering_speed"`
	CargoCapacity        string `json:"cargo_capacity"`
	Consumables          string `json:"consumables"`
	URL                  string `json:"url"`
	Created              string `json:"created"`
	Edited               string `json:"edited"`
}

type VehicleRecord struct {
	VehicleAttributes
	Films  []string `json:"films"`
	Pilots []string `json:"pilots"`
}

type Vehicle struct {
	VehicleAttributes
	Films  []Ref[FilmRecord]   `json:"films"`
	Pilots []Ref[PersonRecord] `json:"pilots"`
}

func NewVehicleRecord(p Payload) VehicleRecord {
	return VehicleRecord{
		VehicleAttributes: VehicleAttributes{
			Name:                 p.String("name"),
			Model:                p.String("model"),
			VehicleClass:         p.String("vehicle_class"),
			Manufacturer:         p.String("manufacturer"),
			Length:               p.String("length"),
			CostInCredits:        p.String("cost_in_credits"),
			Crew:                 p.String("crew"),
			Passengers:           p.String("passengers"),
			MaxAtmospheringSpeed: p.String("max_atmosphering_speed"),
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

func (vr VehicleRecord) Unresolved() Vehicle {
	return Vehicle{
		VehicleAttributes: vr.VehicleAttributes,
		Films:             References[FilmRecord](vr.Films),
		Pilots:            References[PersonRecord](vr.Pilots),
	}
}
