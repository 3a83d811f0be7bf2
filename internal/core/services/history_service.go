package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jasonlam510/scount-currency-backend/internal/apperrors"
	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
	portsrepo "github.com/jasonlam510/scount-currency-backend/internal/core/ports/repositories"
	portssvc "github.com/jasonlam510/scount-currency-backend/internal/core/ports/services"
)

// maxHistoryLength bounds the recency history.
const maxHistoryLength = 9

type historyService struct {
	historyRepo portsrepo.HistoryRepository
	logger      *slog.Logger
}

// NewHistoryService creates the history service.
func NewHistoryService(historyRepo portsrepo.HistoryRepository, logger *slog.Logger) portssvc.HistorySvcFacade {
	return &historyService{historyRepo: historyRepo, logger: logger}
}

var _ portssvc.HistorySvcFacade = (*historyService)(nil)

// List returns the device's history, most recent first. Absent or corrupt
// stored data yields an empty list; a read failure is logged, never surfaced.
func (s *historyService) List(ctx context.Context, deviceID string) []string {
	stored, err := s.historyRepo.LoadHistory(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Failed to load currency history",
				slog.String("device_id", deviceID), slog.String("error", err.Error()))
		}
		return []string{}
	}
	return sanitizeHistory(stored)
}

// Record moves code to the front of the history, deduplicated and truncated.
// Persistence is best-effort: a failed write is logged and the updated list is
// still returned, so a storage hiccup never rolls back the selection.
func (s *historyService) Record(ctx context.Context, deviceID, code string) []string {
	norm := domain.NormalizeCurrencyCode(code)
	if norm == "" {
		return s.List(ctx, deviceID)
	}

	current := s.List(ctx, deviceID)
	updated := make([]string, 0, len(current)+1)
	updated = append(updated, norm)
	for _, c := range current {
		if c != norm {
			updated = append(updated, c)
		}
	}
	if len(updated) > maxHistoryLength {
		updated = updated[:maxHistoryLength]
	}

	if err := s.historyRepo.SaveHistory(ctx, deviceID, updated); err != nil {
		s.logger.Warn("Failed to persist currency history",
			slog.String("device_id", deviceID), slog.String("error", err.Error()))
	}
	return updated
}

// Clear removes the device's history.
func (s *historyService) Clear(ctx context.Context, deviceID string) error {
	if err := s.historyRepo.DeleteHistory(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to clear currency history: %w", err)
	}
	return nil
}

// sanitizeHistory normalizes stored entries, dropping empties and duplicates
// while preserving first-seen order, and re-applies the length bound.
func sanitizeHistory(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, v := range raw {
		code := domain.NormalizeCurrencyCode(v)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	if len(out) > maxHistoryLength {
		out = out[:maxHistoryLength]
	}
	return out
}
