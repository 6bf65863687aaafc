package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StatMap is a stat-name -> integer mapping stored as a JSON column.
// It is used both for event stat effects (signed deltas) and for career
// requirements (minimum values).
type StatMap map[string]int

func (m StatMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *StatMap) Scan(value interface{}) error {
	if value == nil {
		*m = StatMap{}
		return nil
	}
	b, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("scan StatMap: %w", err)
	}
	if len(b) == 0 {
		*m = StatMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// StringList is an ordered list of strings stored as a JSON column.
// Appending preserves insertion order, which the life log relies on.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("scan StringList: %w", err)
	}
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

// AgeRange bounds an event's eligibility, inclusive on both ends.
// A nil *AgeRange means the event is eligible at any age.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether age falls inside the range, inclusive.
func (r *AgeRange) Contains(age int) bool {
	if r == nil {
		return true
	}
	return age >= r.Min && age <= r.Max
}

func (r *AgeRange) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *AgeRange) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("scan AgeRange: %w", err)
	}
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, r)
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported JSON column type")
	}
}
