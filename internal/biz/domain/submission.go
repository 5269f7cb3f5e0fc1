package domain

// MediaKind identifies the media type of a submission
type MediaKind string

const (
	KindPhoto     MediaKind = "photo"
	KindVideo     MediaKind = "video"
	KindAnimation MediaKind = "animation"
)

// CaptionEntity mirrors a rich-text entity of the source caption
type CaptionEntity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	URL    string `json:"url,omitempty"`
}

// Caption is the optional caption bundle captured from the source message.
// The zero value means "no caption".
type Caption struct {
	Text      string          `json:"text,omitempty"`
	ParseMode string          `json:"parse_mode,omitempty"`
	Entities  []CaptionEntity `json:"entities,omitempty"`
}

// IsEmpty reports whether the caption bundle carries nothing
func (c Caption) IsEmpty() bool {
	return c.Text == "" && c.ParseMode == "" && len(c.Entities) == 0
}

// Submission is a canonical accepted media item, ready for redistribution.
// FileID is the gateway content handle; re-sending it does not re-upload
// bytes. Immutable once created.
type Submission struct {
	Kind    MediaKind `json:"kind"`
	FileID  string    `json:"file_id"`
	Caption Caption   `json:"caption,omitempty"`
}

// QueueRecord is a stored Submission plus its store-assigned identifier
type QueueRecord struct {
	ID         int64
	Submission Submission
}
