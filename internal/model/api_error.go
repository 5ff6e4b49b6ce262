package model

// APIError is the body OpenWeatherMap sends with non-2xx responses.
// Cod arrives as a string ("404") or a number (401) depending on the endpoint.
type APIError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
