package models

import "time"

type Answer struct {
	ID         uint      `gorm:"primaryKey"`
	QuestionID uint      `gorm:"not null;index"`
	UserID     string    `gorm:"size:36;not null;index"`
	Text       string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index;autoCreateTime"`
}
