package models

import "gorm.io/gorm"

// Purchase order states. pending is the only state that transitions;
// approved and rejected are terminal.
const (
	OrderPending  = "pending"
	OrderApproved = "approved"
	OrderRejected = "rejected"
)

// PurchaseOrder is one payment claim for a paid course, awaiting admin
// adjudication. A user may hold several orders for the same course; each is
// judged independently.
type PurchaseOrder struct {
	gorm.Model
	ReceiptImageURL string `json:"receipt_image_url" gorm:"size:300;not null"`
	Status          string `json:"status" gorm:"size:50;not null;default:'pending'"`

	UserID   uint    `json:"user_id" gorm:"index;not null"`
	CourseID uint    `json:"course_id" gorm:"index;not null"`
	User     *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Course   *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
