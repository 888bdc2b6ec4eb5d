package models

// Airport is one entry of the static airport catalog.
type Airport struct {
	Code    string  `json:"code"` // IATA, unique
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// FlightEstimate is the derived distance/duration for an origin/destination
// pair. It is recomputed per request and never persisted.
type FlightEstimate struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DistanceKM    float64 `json:"distance_km"`
	DurationHours float64 `json:"duration_hours"`
	Hours         int     `json:"hours"`
	Minutes       int     `json:"minutes"`
	Formatted     string  `json:"formatted"` // "HH:MM"
}

// MacroSplit is a phase's recommended macro distribution in percent.
type MacroSplit struct {
	ProteinPct int `json:"protein_pct"`
	CarbsPct   int `json:"carbs_pct"`
	FatPct     int `json:"fat_pct"`
}

// Phase is one named time window of a duty day with its nutrition guidance.
type Phase struct {
	TimeLabel   string     `json:"time_label"`
	Name        string     `json:"name"`
	Guidance    string     `json:"guidance"`
	MacroSplit  MacroSplit `json:"macro_split"`
	FoodOptions []string   `json:"food_options"`
}
