package model

// WeatherResponse is the subset of the OpenWeatherMap current weather payload the station displays.
type WeatherResponse struct {
	Weather []Weather `json:"weather"`
	Main    Main      `json:"main"`
	Wind    Wind      `json:"wind"`
	Name    string    `json:"name"`
}

type Weather struct {
	Description string `json:"description"`
}

// Main holds the measurements in whatever units the API returned them.
type Main struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
	Pressure float64 `json:"pressure"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}

// Description returns the first weather description, or an empty string when there is none.
func (r *WeatherResponse) Description() string {
	if len(r.Weather) == 0 {
		return ""
	}
	return r.Weather[0].Description
}
