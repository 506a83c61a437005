package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JobLevel qualifies a job title. The zero value means no level.
type JobLevel uint8

const (
	LevelNone JobLevel = iota
	LevelIntern
	LevelContract
)

var jobLevelNames = map[JobLevel]string{
	LevelIntern:   "Intern",
	LevelContract: "Contract",
}

func (l JobLevel) String() string {
	return jobLevelNames[l]
}

// Valid reports whether l is one of the declared levels.
func (l JobLevel) Valid() bool {
	_, ok := jobLevelNames[l]
	return ok || l == LevelNone
}

// ParseJobLevel maps a stored or submitted label back to its level.
// The empty string maps to LevelNone.
func ParseJobLevel(s string) (JobLevel, error) {
	if s == "" {
		return LevelNone, nil
	}
	for level, name := range jobLevelNames {
		if name == s {
			return level, nil
		}
	}
	return LevelNone, fmt.Errorf("unknown job level %q", s)
}

func (l JobLevel) MarshalJSON() ([]byte, error) {
	if l == LevelNone {
		return []byte("null"), nil
	}
	return json.Marshal(l.String())
}

func (l *JobLevel) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*l = LevelNone
		return nil
	}
	level, err := ParseJobLevel(*s)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Value stores the level as its label, or NULL when unset.
func (l JobLevel) Value() (driver.Value, error) {
	if l == LevelNone {
		return nil, nil
	}
	if !l.Valid() {
		return nil, fmt.Errorf("invalid job level %d", l)
	}
	return l.String(), nil
}

func (l *JobLevel) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = LevelNone
		return nil
	case string:
		level, err := ParseJobLevel(v)
		*l = level
		return err
	case []byte:
		level, err := ParseJobLevel(string(v))
		*l = level
		return err
	default:
		return fmt.Errorf("cannot scan %T into JobLevel", value)
	}
}

func (JobLevel) GormDataType() string {
	return "varchar(10)"
}
