package request

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Supported document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

type decoder func(data []byte) (Request, error)

var decoders = map[string]decoder{
	FormatJSON: decodeJSON,
	FormatYAML: decodeYAML,
	FormatTOML: decodeTOML,
}

// Decode parses a request document. An empty format detects JSON first and
// then tries YAML and TOML in that order.
func Decode(data []byte, format string) (Request, error) {
	if format != "" {
		dec, ok := decoders[format]
		if !ok {
			return nil, fmt.Errorf("unknown request format: %s", format)
		}
		return dec(data)
	}

	if gjson.ValidBytes(data) {
		return decodeJSON(data)
	}
	req, yamlErr := decodeYAML(data)
	if yamlErr == nil {
		return req, nil
	}
	req, tomlErr := decodeTOML(data)
	if tomlErr == nil {
		return req, nil
	}
	return nil, fmt.Errorf("could not detect request format: %w; %w", yamlErr, tomlErr)
}

// FormatFromPath guesses the document format from a file extension. It
// returns "" when the extension is not recognized.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return ""
	}
}

func decodeJSON(data []byte) (Request, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("json: invalid document")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("json: request must be an object")
	}
	req := make(Request)
	root.ForEach(func(key, value gjson.Result) bool {
		// Numbers keep their literal text so large integers stay exact.
		if value.Type == gjson.Number {
			req[key.String()] = json.Number(value.Raw)
		} else {
			req[key.String()] = value.Value()
		}
		return true
	})
	return req, nil
}

func decodeYAML(data []byte) (Request, error) {
	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if req == nil {
		req = make(Request)
	}
	return req, nil
}

func decodeTOML(data []byte) (Request, error) {
	var req Request
	if err := toml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	if req == nil {
		req = make(Request)
	}
	return req, nil
}
