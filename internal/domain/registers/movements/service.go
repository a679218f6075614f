package movements

import (
	"context"
	"fmt"
	"time"

	"cartera/internal/core/apperror"
	"cartera/internal/core/id"
	"cartera/internal/core/tx"
	"cartera/pkg/logger"
)

// Service provides business operations for the movement register.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new movement register service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// RecordMovements writes register rows for a document. Rows are validated
// as a batch: one bad row rejects the whole call, the same contract the
// aggregation applies on the read side.
func (s *Service) RecordMovements(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	for i := range records {
		r := &records[i]
		if !r.Kind.ValidForSide(r.Side) {
			return apperror.NewUnknownMovementKind(i, string(r.Kind)).
				WithDetail("side", string(r.Side))
		}
		if r.Date.IsZero() {
			return apperror.NewMalformedMovement(i, r.Reference, "date is missing")
		}
		if r.Amount.IsNegative() {
			return apperror.NewMalformedMovement(i, r.Reference, "amount cannot be negative")
		}
		if id.IsNil(r.AccountID) {
			return apperror.NewMalformedMovement(i, r.Reference, "account is missing")
		}
		if id.IsNil(r.RecorderID) {
			return apperror.NewMalformedMovement(i, r.Reference, "recorder is missing")
		}
		if id.IsNil(r.LineID) {
			r.LineID = id.New()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = time.Now().UTC()
		}
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.CreateRecords(ctx, records)
	})
	if err != nil {
		return fmt.Errorf("create records: %w", err)
	}

	logger.Info(ctx, "recorded movements",
		"count", len(records),
		"recorder_id", records[0].RecorderID,
	)

	return nil
}

// ReplaceMovements atomically swaps a document's register rows. Used when a
// document is edited and re-posted. Every record must carry the recorder
// being replaced: accepting a foreign recorder here would empty one
// document's register while growing another's.
func (s *Service) ReplaceMovements(ctx context.Context, recorderID id.ID, records []Record) error {
	for i := range records {
		if records[i].RecorderID != recorderID {
			return apperror.NewMalformedMovement(i, records[i].Reference,
				"recorder does not match the document being replaced")
		}
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteByRecorder(ctx, recorderID); err != nil {
			return fmt.Errorf("delete records: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		return s.RecordMovements(ctx, records)
	})
}

// ReverseMovements removes a document's register rows (unposting).
func (s *Service) ReverseMovements(ctx context.Context, recorderID id.ID) error {
	if err := s.repo.DeleteByRecorder(ctx, recorderID); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}

	logger.Info(ctx, "reversed movements", "recorder_id", recorderID)

	return nil
}

// GetByRecorder retrieves the rows written by a document.
func (s *Service) GetByRecorder(ctx context.Context, recorderID id.ID) ([]Record, error) {
	return s.repo.GetByRecorder(ctx, recorderID)
}
