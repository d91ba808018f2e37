package services

import (
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

type MessageInput struct {
	ChatID        uint
	UserID        uint
	Content       string
	MessageType   models.MessageType
	FileURL       string
	ProductLinkID *uint
}

// GetOrCreateChat returns the chat for an approved link, creating it
// lazily on first access. Repeated calls yield the same chat.
func GetOrCreateChat(db *gorm.DB, linkID uint) (*models.Chat, error) {
	link, err := GetLink(db, linkID)
	if err != nil {
		return nil, err
	}
	if link.Status != models.LinkApproved {
		return nil, apperr.New(apperr.Forbidden, "link must be approved to access chat")
	}

	var chat models.Chat
	err = db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("link_id = ?", linkID).First(&chat).Error
	if err == nil {
		return &chat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	chat = models.Chat{LinkID: linkID}
	if err := db.Create(&chat).Error; err != nil {
		if isUniqueViolation(err) {
			// lost the race, the chat exists now
			if err := db.Where("link_id = ?", linkID).First(&chat).Error; err != nil {
				return nil, err
			}
			return &chat, nil
		}
		return nil, err
	}
	return &chat, nil
}

// PostMessage inserts a message. The poster must be staff of the
// link's supplier or consumer.
func PostMessage(db *gorm.DB, in MessageInput) (*models.Message, error) {
	var chat models.Chat
	if err := db.First(&chat, in.ChatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "chat not found")
		}
		return nil, err
	}
	link, err := GetLink(db, chat.LinkID)
	if err != nil {
		return nil, err
	}
	member, err := isChatMember(db, in.UserID, link)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperr.New(apperr.Forbidden, "user is not a member of this chat")
	}

	if in.MessageType == "" {
		in.MessageType = models.MessageText
	}
	if !in.MessageType.Valid() {
		return nil, apperr.New(apperr.BadRequest, "invalid message type")
	}

	message := models.Message{
		ChatID:        in.ChatID,
		UserID:        in.UserID,
		Content:       in.Content,
		MessageType:   in.MessageType,
		FileURL:       in.FileURL,
		ProductLinkID: in.ProductLinkID,
	}
	if err := db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListMessages returns a chat's messages in insertion order.
func ListMessages(db *gorm.DB, chatID uint, skip, limit int) ([]models.Message, error) {
	var chat models.Chat
	if err := db.First(&chat, chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "chat not found")
		}
		return nil, err
	}
	var messages []models.Message
	if err := paginate(db.Where("chat_id = ?", chatID).Order("id ASC"), skip, limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// isChatMember reports whether the user holds a staff record in the
// link's supplier or consumer organization.
func isChatMember(db *gorm.DB, userID uint, link *models.Link) (bool, error) {
	var count int64
	if err := db.Model(&models.SupplierStaff{}).
		Where("user_id = ? AND supplier_id = ?", userID, link.SupplierID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := db.Model(&models.ConsumerStaff{}).
		Where("user_id = ? AND consumer_id = ?", userID, link.ConsumerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
