package domain

// InboundMessage is a gateway-independent projection of one inbound chat
// message, carrying only the fields the moderation workflow looks at.
type InboundMessage struct {
	MessageID int
	ChatID    int64
	SenderID  int64

	Text string

	// Non-empty when the message belongs to a multi-item media group
	MediaGroupID string

	// Photo variant file IDs in wire order (smallest resolution first)
	PhotoIDs    []string
	VideoID     string
	AnimationID string

	Caption         string
	CaptionEntities []CaptionEntity

	// Forward metadata; ForwardDate != 0 means the message is a forward
	ForwardDate       int64
	ForwardFromChatID int64
}

// IsForwarded reports whether the message was forwarded from elsewhere
func (m *InboundMessage) IsForwarded() bool {
	return m.ForwardDate != 0
}

// CallbackAction is the reviewer's choice on a review prompt
type CallbackAction string

const (
	ActionApprove CallbackAction = "approve"
	ActionReject  CallbackAction = "reject"
)

// CallbackEvent is an interactive-prompt response from the gateway.
// Message holds the content of the prompt message the callback is attached to.
type CallbackEvent struct {
	ID        string
	SenderID  int64
	ChatID    int64
	MessageID int
	Action    CallbackAction
	Message   *InboundMessage
}
