package models

import "time"

// ReviewStatus is the moderation state of a customer review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// Review is a customer product review awaiting or past moderation.
type Review struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	UserName  string       `json:"userName"`
	ProductID string       `json:"productId"`
	Rating    float64      `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"createdAt"`
	Status    ReviewStatus `json:"status"`
}
