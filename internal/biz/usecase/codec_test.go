package usecase

import (
	"testing"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
)

func TestEncode_Photo(t *testing.T) {
	msg := &domain.InboundMessage{
		PhotoIDs: []string{"small", "medium", "large"},
		Caption:  "hello",
	}

	sub, rej := Encode(msg)
	if rej != nil {
		t.Fatalf("Unexpected rejection: %v", rej.Reason)
	}
	if sub.Kind != domain.KindPhoto {
		t.Errorf("Expected kind photo, got %s", sub.Kind)
	}
	// First variant of the wire list is kept
	if sub.FileID != "small" {
		t.Errorf("Expected file ID 'small', got '%s'", sub.FileID)
	}
	if sub.Caption.Text != "hello" {
		t.Errorf("Expected caption 'hello', got '%s'", sub.Caption.Text)
	}
}

func TestEncode_Video(t *testing.T) {
	msg := &domain.InboundMessage{VideoID: "vid-1"}

	sub, rej := Encode(msg)
	if rej != nil {
		t.Fatalf("Unexpected rejection: %v", rej.Reason)
	}
	if sub.Kind != domain.KindVideo {
		t.Errorf("Expected kind video, got %s", sub.Kind)
	}
	if sub.FileID != "vid-1" {
		t.Errorf("Expected file ID 'vid-1', got '%s'", sub.FileID)
	}
}

func TestEncode_Animation(t *testing.T) {
	msg := &domain.InboundMessage{AnimationID: "anim-1"}

	sub, rej := Encode(msg)
	if rej != nil {
		t.Fatalf("Unexpected rejection: %v", rej.Reason)
	}
	if sub.Kind != domain.KindAnimation {
		t.Errorf("Expected kind animation, got %s", sub.Kind)
	}
}

func TestEncode_PhotoPrecedesVideo(t *testing.T) {
	msg := &domain.InboundMessage{
		PhotoIDs: []string{"p"},
		VideoID:  "v",
	}

	sub, rej := Encode(msg)
	if rej != nil {
		t.Fatalf("Unexpected rejection: %v", rej.Reason)
	}
	if sub.Kind != domain.KindPhoto {
		t.Errorf("Expected photo to win, got %s", sub.Kind)
	}
}

func TestEncode_MediaGroupRejected(t *testing.T) {
	// The group marker wins even when the message carries a photo
	msg := &domain.InboundMessage{
		MediaGroupID: "group-1",
		PhotoIDs:     []string{"p"},
	}

	sub, rej := Encode(msg)
	if sub != nil {
		t.Fatal("Expected no submission for grouped media")
	}
	if rej.Reason != domain.RejectGroupedMedia {
		t.Errorf("Expected reason %s, got %s", domain.RejectGroupedMedia, rej.Reason)
	}
	if rej.Message == "" {
		t.Error("Expected human-readable rejection message")
	}
}

func TestEncode_TextOnlyRejected(t *testing.T) {
	msg := &domain.InboundMessage{Text: "just words"}

	sub, rej := Encode(msg)
	if sub != nil {
		t.Fatal("Expected no submission for text-only message")
	}
	if rej.Reason != domain.RejectTextOnly {
		t.Errorf("Expected reason %s, got %s", domain.RejectTextOnly, rej.Reason)
	}
}

func TestEncode_NoContentRejected(t *testing.T) {
	msg := &domain.InboundMessage{}

	sub, rej := Encode(msg)
	if sub != nil {
		t.Fatal("Expected no submission for empty message")
	}
	if rej.Reason != domain.RejectNoContent {
		t.Errorf("Expected reason %s, got %s", domain.RejectNoContent, rej.Reason)
	}
}

func TestPickProps_ForwardDropsCaption(t *testing.T) {
	msg := &domain.InboundMessage{
		PhotoIDs:    []string{"p"},
		Caption:     "original caption",
		ForwardDate: 1700000000,
		CaptionEntities: []domain.CaptionEntity{
			{Type: "bold", Offset: 0, Length: 8},
		},
	}

	sub, rej := Encode(msg)
	if rej != nil {
		t.Fatalf("Unexpected rejection: %v", rej.Reason)
	}
	if !sub.Caption.IsEmpty() {
		t.Errorf("Expected empty caption for forwarded message, got %+v", sub.Caption)
	}
}

func TestPickProps_KeepsEntities(t *testing.T) {
	msg := &domain.InboundMessage{
		PhotoIDs: []string{"p"},
		Caption:  "link here",
		CaptionEntities: []domain.CaptionEntity{
			{Type: "text_link", Offset: 0, Length: 4, URL: "https://example.com"},
		},
	}

	sub, rej := Encode(msg)
	if rej != nil {
		t.Fatalf("Unexpected rejection: %v", rej.Reason)
	}
	if len(sub.Caption.Entities) != 1 {
		t.Fatalf("Expected 1 entity, got %d", len(sub.Caption.Entities))
	}
	if sub.Caption.Entities[0].URL != "https://example.com" {
		t.Errorf("Expected entity URL to be kept, got '%s'", sub.Caption.Entities[0].URL)
	}
}
