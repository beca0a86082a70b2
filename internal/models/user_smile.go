package models

import "time"

// UserSmile records that a user smiled at a word, one row per (user, word).
type UserSmile struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"userId" gorm:"column:user_id;size:36;not null;uniqueIndex:idx_user_word"`
	WordID    string    `json:"wordId" gorm:"column:word_id;size:36;not null;uniqueIndex:idx_user_word"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the database table name for the UserSmile model.
func (UserSmile) TableName() string {
	return "user_smiles"
}
