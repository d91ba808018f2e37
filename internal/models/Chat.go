// internal/models/chat.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageFile  MessageType = "file"
	MessageAudio MessageType = "audio"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageText, MessageFile, MessageAudio:
		return true
	}
	return false
}

// Chat belongs to exactly one approved Link and is created lazily on
// first access.
type Chat struct {
	gorm.Model
	LinkID uint `json:"link_id" gorm:"uniqueIndex"`

	Messages []Message `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

type Message struct {
	gorm.Model
	ChatID        uint        `json:"chat_id"`
	UserID        uint        `json:"user_id"`
	Content       string      `json:"content"`
	SentAt        time.Time   `json:"sent_at" gorm:"autoCreateTime"`
	IsRead        bool        `json:"is_read" gorm:"default:false"`
	MessageType   MessageType `json:"message_type" gorm:"default:text"`
	FileURL       string      `json:"file_url,omitempty"`
	ProductLinkID *uint       `json:"product_link_id,omitempty"` // optional product reference

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
