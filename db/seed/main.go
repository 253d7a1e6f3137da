package main

import (
	"context"
	"log"
	"time"

	"github.com/onurcolak/direct-message-service/environments"
	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/internal/history"
	"github.com/onurcolak/direct-message-service/internal/storage"
)

// Seeds the recent-chats list of the configured backend with sample entries.
func main() {
	cfg := environments.Load()

	backend, name := storage.Open(cfg)
	defer func() {
		if err := backend.Close(); err != nil {
			log.Printf("Failed to close storage: %v", err)
		}
	}()

	if name == storage.BackendMemory {
		log.Printf("Seeding the memory backend has no lasting effect")
	}

	now := time.Now().UTC()
	samples := []domain.HistoryEntry{
		{Key: "+447400123456", DisplayMessage: "Hi, is this a good time to t...", AppVariant: domain.AppPrimary},
		{Key: "+14155552671", DisplayMessage: "Thanks for reaching out.", AppVariant: domain.AppBusiness},
		{Key: "https://wa.me/qr/SAMPLE123", DisplayMessage: "QR code link", AppVariant: domain.AppPrimary},
	}

	store := history.NewStore(backend, cfg.History.MaxSize)
	ctx := context.Background()

	// Oldest first so the first sample ends up on top.
	for i := len(samples) - 1; i >= 0; i-- {
		entry := samples[i]
		entry.Timestamp = now.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339)

		if _, err := store.Record(ctx, entry); err != nil {
			log.Fatalf("Failed to seed history: %v", err)
		}
	}

	log.Printf("Seed completed successfully (%s backend)", name)
}
