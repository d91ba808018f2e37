// internal/models/link.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type LinkStatus string

const (
	LinkPending  LinkStatus = "Pending"
	LinkApproved LinkStatus = "Approved"
	LinkRejected LinkStatus = "Rejected"
	LinkRemoved  LinkStatus = "Removed"
	LinkBlocked  LinkStatus = "Blocked"
)

func (s LinkStatus) Valid() bool {
	switch s {
	case LinkPending, LinkApproved, LinkRejected, LinkRemoved, LinkBlocked:
		return true
	}
	return false
}

// linkTransitions is the allowed edge set. Rejected, Removed and
// Blocked are terminal.
var linkTransitions = map[LinkStatus][]LinkStatus{
	LinkPending:  {LinkApproved, LinkRejected},
	LinkApproved: {LinkRemoved, LinkBlocked},
}

// CanTransitionTo reports whether the status may move to target.
func (s LinkStatus) CanTransitionTo(target LinkStatus) bool {
	for _, next := range linkTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Link is the approval relationship gating whether a supplier and a
// consumer may transact and chat. At most one link exists per pair.
type Link struct {
	gorm.Model
	SupplierID  uint       `json:"supplier_id" gorm:"uniqueIndex:idx_link_pair"`
	ConsumerID  uint       `json:"consumer_id" gorm:"uniqueIndex:idx_link_pair"`
	Status      LinkStatus `json:"status" gorm:"default:Pending"`
	RequestedAt time.Time  `json:"requested_at" gorm:"autoCreateTime"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`

	Chat *Chat `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE" json:"chat,omitempty"`
}
