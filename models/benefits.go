package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Benefits stores the ordered benefit list of a service as a JSON text column.
type Benefits []string

// Value implements the driver.Valuer interface
func (b Benefits) Value() (driver.Value, error) {
	if b == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal([]string(b))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (b *Benefits) Scan(value interface{}) error {
	if value == nil {
		*b = Benefits{}
		return nil
	}

	var data string
	switch v := value.(type) {
	case []byte:
		data = string(v)
	case string:
		data = v
	default:
		return fmt.Errorf("failed to scan Benefits: unsupported type %T", value)
	}

	*b = ParseBenefits(data)
	return nil
}

// UnmarshalJSON accepts either a JSON array or a newline separated string.
func (b *Benefits) UnmarshalJSON(data []byte) error {
	var list []interface{}
	if err := json.Unmarshal(data, &list); err == nil {
		*b = cleanBenefits(list)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*b = ParseBenefits(text)
		return nil
	}
	if strings.TrimSpace(string(data)) == "null" {
		*b = Benefits{}
		return nil
	}
	return fmt.Errorf("beneficios must be a list or text")
}

// ParseBenefits decodes the stored representation. Legacy rows hold one benefit per line.
func ParseBenefits(raw string) Benefits {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Benefits{}
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		var list []interface{}
		if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
			return cleanBenefits(list)
		}
	}
	result := Benefits{}
	for _, line := range strings.Split(trimmed, "\n") {
		if item := strings.TrimSpace(line); item != "" {
			result = append(result, item)
		}
	}
	return result
}

func cleanBenefits(list []interface{}) Benefits {
	result := Benefits{}
	for _, item := range list {
		text := strings.TrimSpace(fmt.Sprint(item))
		if item == nil || text == "" {
			continue
		}
		result = append(result, text)
	}
	return result
}
