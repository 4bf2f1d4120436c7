package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string array as a JSON document in a text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// QuizQuestion represents one multiple-choice question row.
type QuizQuestion struct {
	ID           string      `db:"ID"` // ULID
	Track        string      `db:"TRACK"`
	Question     string      `db:"QUESTION"`
	Options      StringSlice `db:"OPTIONS"`
	AnswerIndex  int         `db:"ANSWER_INDEX"`
	DisplayOrder int         `db:"DISPLAY_ORDER"`
	CreatedAt    time.Time   `db:"CREATED_AT"`
	UpdatedAt    time.Time   `db:"UPDATED_AT"`
}
