package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList is an ordered list of strings stored as a JSON text column.
type StringList []string

// Value implements driver.Valuer. A nil or empty list is stored as NULL.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// Word represents a dictionary entry.
type Word struct {
	ID               string     `json:"id" gorm:"primaryKey;size:36"`
	Word             string     `json:"word" gorm:"not null;index"`
	Definition       string     `json:"definition" gorm:"not null"`
	ShortDescription string     `json:"shortDescription" gorm:"column:short_description;not null"`
	Category         string     `json:"category,omitempty"`
	Origin           string     `json:"origin,omitempty"`
	Examples         StringList `json:"examples,omitempty" gorm:"type:text"`
	Pronunciation    string     `json:"pronunciation,omitempty"`
	SmileCount       int        `json:"smileCount" gorm:"column:smile_count;not null;default:0"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// TableName returns the database table name for the Word model.
func (Word) TableName() string {
	return "words"
}
