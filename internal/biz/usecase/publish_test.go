package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
)

func queuedPhotos(n int) []domain.QueueRecord {
	records := make([]domain.QueueRecord, n)
	for i := range records {
		records[i] = domain.QueueRecord{
			ID:         int64(i + 1),
			Submission: domain.Submission{Kind: domain.KindPhoto, FileID: "p"},
		}
	}
	return records
}

func TestPublishBatch_FullBatch(t *testing.T) {
	queue := &mockQueueRepo{records: queuedPhotos(5)}
	gateway := &mockGatewayRepo{}
	uc := NewPublishUsecase(queue, gateway, -1000, 1, false)

	published, err := uc.PublishBatch(context.Background(), 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if published != 3 {
		t.Errorf("Expected 3 published, got %d", published)
	}
	if len(queue.records) != 2 {
		t.Errorf("Expected 2 records left, got %d", len(queue.records))
	}
	for _, chatID := range gateway.sentMediaTo {
		if chatID != -1000 {
			t.Errorf("Expected publish to public chat -1000, got %d", chatID)
		}
	}
}

func TestPublishBatch_DrainsEarlyWithoutError(t *testing.T) {
	queue := &mockQueueRepo{records: queuedPhotos(2)}
	gateway := &mockGatewayRepo{}
	uc := NewPublishUsecase(queue, gateway, -1000, 1, false)

	published, err := uc.PublishBatch(context.Background(), 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if published != 2 {
		t.Errorf("Expected 2 published from a drained queue, got %d", published)
	}
	if len(queue.records) != 0 {
		t.Errorf("Expected empty queue, got %d records", len(queue.records))
	}
}

func TestPublishBatch_EmptyQueueNoop(t *testing.T) {
	queue := &mockQueueRepo{}
	gateway := &mockGatewayRepo{}
	uc := NewPublishUsecase(queue, gateway, -1000, 1, false)

	published, err := uc.PublishBatch(context.Background(), 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if published != 0 {
		t.Errorf("Expected 0 published, got %d", published)
	}
	if len(gateway.sentMedia) != 0 {
		t.Error("Expected nothing sent")
	}
}

func TestPublishBatch_DebugRoutesToOwner(t *testing.T) {
	queue := &mockQueueRepo{records: queuedPhotos(1)}
	gateway := &mockGatewayRepo{}
	uc := NewPublishUsecase(queue, gateway, -1000, 7, true)

	if _, err := uc.PublishBatch(context.Background(), 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(gateway.sentMediaTo) != 1 || gateway.sentMediaTo[0] != 7 {
		t.Errorf("Expected debug publish to owner 7, got %v", gateway.sentMediaTo)
	}
}

func TestPublishBatch_SendFailureContinues(t *testing.T) {
	queue := &mockQueueRepo{records: queuedPhotos(3)}
	gateway := &mockGatewayRepo{sendMediaErr: errors.New("flood limit")}
	uc := NewPublishUsecase(queue, gateway, -1000, 1, false)

	published, err := uc.PublishBatch(context.Background(), 3)
	if err != nil {
		t.Fatalf("Expected send failures absorbed, got error: %v", err)
	}
	if published != 0 {
		t.Errorf("Expected 0 published on send failures, got %d", published)
	}
	// Records were still consumed; delivery is best-effort
	if len(queue.records) != 0 {
		t.Errorf("Expected queue drained, got %d records", len(queue.records))
	}
}
