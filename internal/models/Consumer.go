// internal/models/consumer.go
package models

import "gorm.io/gorm"

type ConsumerType string

const (
	ConsumerRestaurant ConsumerType = "Restaurant"
	ConsumerHotel      ConsumerType = "Hotel"
	ConsumerOther      ConsumerType = "Other"
)

func (t ConsumerType) Valid() bool {
	switch t {
	case ConsumerRestaurant, ConsumerHotel, ConsumerOther:
		return true
	}
	return false
}

// Consumer is an institutional buyer such as a restaurant or hotel.
type Consumer struct {
	gorm.Model
	CompanyName string       `json:"company_name" binding:"required"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Type        ConsumerType `json:"type" gorm:"default:Restaurant"`

	Staff  []ConsumerStaff `gorm:"foreignKey:ConsumerID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
	Links  []Link          `gorm:"foreignKey:ConsumerID;constraint:OnDelete:CASCADE" json:"links,omitempty"`
	Orders []Order         `gorm:"foreignKey:ConsumerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}
