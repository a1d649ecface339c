package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseCharacterInput maps an arbitrary decoded JSON object onto the recognized
// character fields. Unknown keys are dropped. Integer fields accept JSON numbers and
// numeric strings; "" and null both mean absent.
func ParseCharacterInput(payload map[string]any) (CharacterInput, error) {
	var in CharacterInput

	if !present(payload["name"]) || !present(payload["image_url"]) {
		return in, ErrMissingRequiredFields
	}

	var err error
	if in.Name, err = requiredString(payload, "name"); err != nil {
		return in, err
	}
	if in.ImageURL, err = requiredString(payload, "image_url"); err != nil {
		return in, err
	}
	if in.Age, err = optionalInt(payload, "age"); err != nil {
		return in, err
	}
	if in.HeightCM, err = optionalInt(payload, "height_cm"); err != nil {
		return in, err
	}
	if in.WeightKG, err = optionalInt(payload, "weight_kg"); err != nil {
		return in, err
	}
	if in.NenType, err = optionalString(payload, "nen_type"); err != nil {
		return in, err
	}
	if in.Origin, err = optionalString(payload, "origin"); err != nil {
		return in, err
	}
	if in.Notes, err = optionalString(payload, "notes"); err != nil {
		return in, err
	}

	return in, nil
}

func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	default:
		return true
	}
}

func requiredString(payload map[string]any, field string) (string, error) {
	s, ok := payload[field].(string)
	if !ok {
		return "", &FieldError{Field: field, Want: "a string"}
	}
	return s, nil
}

func optionalString(payload map[string]any, field string) (*string, error) {
	switch val := payload[field].(type) {
	case nil:
		return nil, nil
	case string:
		return &val, nil
	default:
		return nil, &FieldError{Field: field, Want: "a string"}
	}
}

func optionalInt(payload map[string]any, field string) (*int, error) {
	invalid := &FieldError{Field: field, Want: "an integer"}

	var raw string
	switch val := payload[field].(type) {
	case nil:
		return nil, nil
	case json.Number:
		raw = val.String()
	case string:
		raw = strings.TrimSpace(val)
		if raw == "" {
			return nil, nil
		}
	case float64:
		if val != math.Trunc(val) || math.IsInf(val, 0) {
			return nil, invalid
		}
		n := int(val)
		return &n, nil
	case int:
		return &val, nil
	default:
		return nil, invalid
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalid
	}
	return &n, nil
}
