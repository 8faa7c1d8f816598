package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatModel is a conversation between one customer and one owner. Removing
// the owner removes the conversation; removing the customer is blocked
// while conversations reference them, which keeps the two account FKs from
// ever cascading into the same message rows.
type ChatModel struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Owner    *OwnerModel    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ChatModel) TableName() string {
	return "chats"
}

// ChatMessageModel is a single message inside a chat. Only the sender FK
// cascades; the receiver and chat FKs stay restrictive so a message is
// deleted through exactly one path.
type ChatMessageModel struct {
	ID         uint      `gorm:"primaryKey"`
	ChatID     uint      `gorm:"not null;index"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body       string    `gorm:"type:text;not null"`
	SentAt     time.Time `gorm:"not null"`

	Chat     *ChatModel     `gorm:"foreignKey:ChatID;constraint:OnDelete:RESTRICT"`
	Sender   *CustomerModel `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Receiver *CustomerModel `gorm:"foreignKey:ReceiverID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
