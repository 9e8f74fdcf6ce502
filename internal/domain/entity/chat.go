package entity

import "time"

type ChatShape int

const (
	ShapeLegacy ChatShape = iota + 1
	ShapeCurrent
)

func (s ChatShape) String() string {
	switch s {
	case ShapeLegacy:
		return "legacy"
	case ShapeCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// ChatDocument is a decoded chat document. Exactly one of Legacy or Current
// is set, matching Shape.
type ChatDocument struct {
	ID      string
	Shape   ChatShape
	Legacy  *LegacyChat
	Current *CurrentChat
}

// ParticipantInfo is a display name and image as stored on a document.
type ParticipantInfo struct {
	Name  string
	Image string
}

// LegacyChat is the mobile app format. Participants is an ordered id pair and
// display data lives in auxiliary fields.
type LegacyChat struct {
	Participants      []string
	ParticipantNames  map[string]string
	ParticipantImages map[string]string
	ParticipantsData  map[string]ParticipantInfo
	LastMessage       *LegacyLastMessage
	// Participant map of the last element of the embedded messages array.
	LastEmbedded map[string]ParticipantInfo
	CreatedAt    *time.Time
	ProductName  string
	ProductID    string
	ProductImage string
	ProductPrice string
}

type LegacyLastMessage struct {
	SenderID       string
	ReceiverID     string
	SenderName     string
	ReceiverName   string
	SenderAvatar   string
	ReceiverAvatar string
	Text           string
	Read           bool
	CreatedAt      *time.Time
}

// CurrentChat is the web format keyed by participant id.
type CurrentChat struct {
	ChatID            string
	TimeStamp         *time.Time
	LastMessageAt     *time.Time
	ProductName       string
	ProductID         string
	ProductImage      string
	ProductPrice      string
	Message           *ChatMessagePreview
	LastMessageSender string
	LastMessageText   string
	Participants      map[string]CurrentParticipant
	UnreadCount       map[string]int
}

type CurrentParticipant struct {
	Name           string
	DisplayName    string
	Image          string
	SenderAvatar   string
	ReceiverAvatar string
	PhotoURL       string
}

type ChatMessagePreview struct {
	SenderID string `json:"senderId" firestore:"senderId"`
	Text     string `json:"text" firestore:"text"`
}

type Participant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ChatListEntry is the single shape presented for a conversation.
type ChatListEntry struct {
	ID           string                 `json:"id"`
	ChatID       string                 `json:"chatId"`
	TimeStamp    *time.Time             `json:"timeStamp"`
	ProductName  string                 `json:"productName"`
	ProductID    string                 `json:"productId"`
	ProductImage string                 `json:"productImage"`
	ProductPrice string                 `json:"productPrice"`
	Message      ChatMessagePreview     `json:"message"`
	Participants map[string]Participant `json:"participants"`
	UnreadCount  map[string]int         `json:"unreadCount"`
}

// SortTime is the ordering timestamp, the zero epoch when absent.
func (e *ChatListEntry) SortTime() time.Time {
	if e.TimeStamp == nil {
		return time.Unix(0, 0)
	}
	return *e.TimeStamp
}

func (e *ChatListEntry) HasParticipant(userID string) bool {
	_, ok := e.Participants[userID]
	return ok
}
