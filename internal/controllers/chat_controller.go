package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/middleware"
	"marketplace/internal/models"
	"marketplace/internal/services"
)

// GetOrCreateChat opens the chat for an approved link.
func GetOrCreateChat(c *gin.Context) {
	linkID, ok := pathID(c, "link_id")
	if !ok {
		return
	}
	chat, err := services.GetOrCreateChat(requestDB(c), linkID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat": chat})
}

type messageInput struct {
	ChatID        uint               `json:"chat_id" binding:"required"`
	Content       string             `json:"content"`
	MessageType   models.MessageType `json:"message_type"`
	FileURL       string             `json:"file_url"`
	ProductLinkID *uint              `json:"product_link_id"`
}

// PostMessage sends a message as the authenticated user.
func PostMessage(c *gin.Context) {
	var input messageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := services.PostMessage(requestDB(c), services.MessageInput{
		ChatID:        input.ChatID,
		UserID:        middleware.AuthUserID(c),
		Content:       input.Content,
		MessageType:   input.MessageType,
		FileURL:       input.FileURL,
		ProductLinkID: input.ProductLinkID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

func ListMessages(c *gin.Context) {
	chatID, ok := pathID(c, "chat_id")
	if !ok {
		return
	}
	skip, limit := pagination(c)
	messages, err := services.ListMessages(requestDB(c), chatID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": messages})
}
