package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Flag is a boolean that the API may encode as true/false or 0/1.
type Flag bool

// ParseFlag decodes a JSON flag: booleans, numbers (non-zero is true),
// numeric or boolean strings, and null (false).
func ParseFlag(raw []byte) (bool, error) {
	text := strings.TrimSpace(string(raw))
	switch text {
	case "", "null", "false", `""`:
		return false, nil
	case "true":
		return true, nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
		if b, err := strconv.ParseBool(text); err == nil {
			return b, nil
		}
	}
	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return false, fmt.Errorf("invalid flag %s", raw)
	}
	return number != 0, nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	value, err := ParseFlag(data)
	if err != nil {
		return err
	}
	*f = Flag(value)
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

func (f Flag) Bool() bool { return bool(f) }

// Benefits decodes a JSON array, a newline-separated string, or a string
// holding a JSON array. Blank entries are dropped.
type Benefits []string

func (b *Benefits) UnmarshalJSON(data []byte) error {
	var list []interface{}
	if err := json.Unmarshal(data, &list); err == nil {
		*b = cleanBenefits(list)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		*b = Benefits{}
		return nil
	}
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		if err := json.Unmarshal([]byte(text), &list); err == nil {
			*b = cleanBenefits(list)
			return nil
		}
	}
	out := Benefits{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	*b = out
	return nil
}

func cleanBenefits(list []interface{}) Benefits {
	out := Benefits{}
	for _, item := range list {
		text := strings.TrimSpace(fmt.Sprint(item))
		if item != nil && text != "" {
			out = append(out, text)
		}
	}
	return out
}
