package models

import (
	"time"
)

// Rating is a client's 1-5 review of a nunny. Unique per
// (ClientID, NunnyUserID); resubmission overwrites.
type Rating struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ClientID    uint      `gorm:"not null;uniqueIndex:idx_client_nunny" json:"clientId"`
	NunnyUserID uint      `gorm:"not null;uniqueIndex:idx_client_nunny;index" json:"nunnyUserId"`
	Rating      int       `gorm:"not null" json:"rating"`
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Client *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
