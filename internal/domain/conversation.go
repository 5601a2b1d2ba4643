package domain

import "time"

// ConversationKind distinguishes stored exchanges by the feature that
// produced them.
type ConversationKind string

const (
	ConversationAnalysis ConversationKind = "analysis"
	ConversationChat     ConversationKind = "chat"
	ConversationTips     ConversationKind = "tips"
)

// ConversationRecord is one persisted user/coach exchange.
type ConversationRecord struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Kind        ConversationKind `json:"kind"`
	UserMessage string           `json:"user_message,omitempty"`
	Response    string           `json:"response"`
	RiskLevel   *int             `json:"risk_level,omitempty"` // set for analysis records only
	CreatedAt   time.Time        `json:"created_at"`
}
