package usecase

import (
	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
)

// Encode converts a raw inbound message into a canonical Submission or a
// typed rejection. Exactly one of the two return values is non-nil.
//
// Rules are evaluated in order: media groups are never accepted, then photo,
// video and animation content in that precedence, then text-only and
// unrecognized content are rejected.
func Encode(msg *domain.InboundMessage) (*domain.Submission, *domain.Rejection) {
	if msg == nil {
		return nil, &domain.Rejection{
			Reason:  domain.RejectNoContent,
			Message: "This kind of content is not accepted",
		}
	}
	if msg.MediaGroupID != "" {
		return nil, &domain.Rejection{
			Reason:  domain.RejectGroupedMedia,
			Message: "Albums are not supported, please send items one by one",
		}
	}

	switch {
	case len(msg.PhotoIDs) > 0:
		// Keeps the first photo variant of the wire list
		return &domain.Submission{
			Kind:    domain.KindPhoto,
			FileID:  msg.PhotoIDs[0],
			Caption: pickProps(msg),
		}, nil

	case msg.VideoID != "":
		return &domain.Submission{
			Kind:    domain.KindVideo,
			FileID:  msg.VideoID,
			Caption: pickProps(msg),
		}, nil

	case msg.AnimationID != "":
		return &domain.Submission{
			Kind:    domain.KindAnimation,
			FileID:  msg.AnimationID,
			Caption: pickProps(msg),
		}, nil
	}

	if msg.Text != "" {
		return nil, &domain.Rejection{
			Reason:  domain.RejectTextOnly,
			Message: "Text messages are not accepted, send a photo, video or GIF",
		}
	}

	return nil, &domain.Rejection{
		Reason:  domain.RejectNoContent,
		Message: "This kind of content is not accepted",
	}
}

// pickProps captures the caption bundle from the source message.
// Forwarded messages drop their caption by policy.
func pickProps(msg *domain.InboundMessage) domain.Caption {
	if msg.IsForwarded() {
		return domain.Caption{}
	}
	return domain.Caption{
		Text:     msg.Caption,
		Entities: msg.CaptionEntities,
	}
}
