// Package integrationtest drives the whole weather station session against a stub OpenWeatherMap server.
package integrationtest
