package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/fakhrymubarak/weather-station/internal/model"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// weatherResponseSchema lists the fields the presenter reads. encoding/json alone would
// zero-fill a missing field instead of failing.
const weatherResponseSchema = `{
	"type": "object",
	"required": ["weather", "main", "wind", "name"],
	"properties": {
		"weather": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["description"],
				"properties": {"description": {"type": "string"}}
			}
		},
		"main": {
			"type": "object",
			"required": ["temp", "humidity", "pressure"],
			"properties": {
				"temp": {"type": "number"},
				"humidity": {"type": "number"},
				"pressure": {"type": "number"}
			}
		},
		"wind": {
			"type": "object",
			"required": ["speed"],
			"properties": {"speed": {"type": "number"}}
		},
		"name": {"type": "string"}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func responseSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(weatherResponseSchema))
	})
	return compiledSchema, schemaErr
}

// decodeWeather validates body against the response schema before decoding it.
func decodeWeather(body []byte) (*model.WeatherResponse, error) {
	schema, err := responseSchema()
	if err != nil {
		return nil, errors.Wrap(err, "compile weather response schema")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(msgs, "; "))
	}

	var weather model.WeatherResponse
	if err := json.Unmarshal(body, &weather); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &weather, nil
}
