package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/models"
	"github.com/mmynk/cashbench/internal/storage"
)

// CaptureProjection saves a snapshot of a workbench's projected balance, or
// a manually entered amount when the request carries one.
func (s *LedgerService) CaptureProjection(ctx context.Context, req *connect.Request[api.CaptureProjectionRequest]) (*connect.Response[api.CaptureProjectionResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CaptureProjection request received", "user_id", userID, "tag", req.Msg.Tag, "manual", req.Msg.Amount != nil)

	capture := &models.Capture{UserID: userID, Note: req.Msg.Note}

	if req.Msg.Amount != nil {
		amount, err := parseAmount("amount", *req.Msg.Amount)
		if err != nil {
			return nil, err
		}
		capture.Amount = amount
	} else {
		cfg, ok := s.workbench(req.Msg.Tag)
		if !ok {
			return nil, invalidArgument(fmt.Errorf("%w: %q", errUnknownWorkbench, req.Msg.Tag))
		}
		txns, err := s.workbenchTransactions(ctx, userID, cfg.Tag, "", "")
		if err != nil {
			return nil, err
		}
		_, totals, err := s.project(ctx, userID, cfg, req.Msg.ExcludedAccountIDs, txns)
		if err != nil {
			return nil, err
		}
		capture.Amount = totals.ProjectedBalance
		capture.Source = cfg.Title
		if capture.Note == "" {
			capture.Note = cfg.Title
		}
	}

	if err := s.store.CreateCapture(ctx, capture); err != nil {
		return nil, storageError("CaptureProjection", err, "user_id", userID)
	}

	slog.Info("Projection captured", "user_id", userID, "capture_id", capture.ID, "amount", capture.Amount, "source", capture.Source)
	return connect.NewResponse(&api.CaptureProjectionResponse{Capture: toAPICapture(*capture)}), nil
}

// ListCaptures returns the caller's captures, newest first.
func (s *LedgerService) ListCaptures(ctx context.Context, _ *connect.Request[api.ListCapturesRequest]) (*connect.Response[api.ListCapturesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListCaptures request received", "user_id", userID)

	captures, err := s.store.ListCaptures(ctx, userID)
	if err != nil {
		return nil, storageError("ListCaptures", err, "user_id", userID)
	}

	out := make([]api.Capture, len(captures))
	for i, c := range captures {
		out[i] = toAPICapture(c)
	}
	return connect.NewResponse(&api.ListCapturesResponse{Captures: out}), nil
}

// UpdateCapture edits a capture's amount or note.
func (s *LedgerService) UpdateCapture(ctx context.Context, req *connect.Request[api.UpdateCaptureRequest]) (*connect.Response[api.UpdateCaptureResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateCapture request received", "user_id", userID, "capture_id", req.Msg.ID)

	captures, err := s.store.ListCaptures(ctx, userID)
	if err != nil {
		return nil, storageError("UpdateCapture", err, "user_id", userID)
	}
	var capture *models.Capture
	for i := range captures {
		if captures[i].ID == req.Msg.ID {
			capture = &captures[i]
			break
		}
	}
	if capture == nil {
		return nil, storageError("UpdateCapture", fmt.Errorf("capture %s: %w", req.Msg.ID, storage.ErrNotFound), "capture_id", req.Msg.ID)
	}

	if req.Msg.Amount != nil {
		amount, err := parseAmount("amount", *req.Msg.Amount)
		if err != nil {
			return nil, err
		}
		capture.Amount = amount
	}
	if req.Msg.Note != nil {
		capture.Note = *req.Msg.Note
	}

	if err := s.store.UpdateCapture(ctx, capture); err != nil {
		return nil, storageError("UpdateCapture", err, "capture_id", capture.ID)
	}
	return connect.NewResponse(&api.UpdateCaptureResponse{Capture: toAPICapture(*capture)}), nil
}

// DeleteCapture removes a capture.
func (s *LedgerService) DeleteCapture(ctx context.Context, req *connect.Request[api.DeleteCaptureRequest]) (*connect.Response[api.DeleteCaptureResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteCapture request received", "user_id", userID, "capture_id", req.Msg.ID)

	if err := s.store.DeleteCapture(ctx, userID, req.Msg.ID); err != nil {
		return nil, storageError("DeleteCapture", err, "capture_id", req.Msg.ID)
	}
	return connect.NewResponse(&api.DeleteCaptureResponse{}), nil
}

// GetNote returns the caller's note; an empty note if none was saved yet.
func (s *LedgerService) GetNote(ctx context.Context, _ *connect.Request[api.GetNoteRequest]) (*connect.Response[api.GetNoteResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	note, err := s.store.GetNote(ctx, userID)
	if err != nil {
		return nil, storageError("GetNote", err, "user_id", userID)
	}
	if note == nil {
		return connect.NewResponse(&api.GetNoteResponse{}), nil
	}
	return connect.NewResponse(&api.GetNoteResponse{Content: note.Content, UpdatedAt: note.UpdatedAt}), nil
}

// SaveNote replaces the caller's note.
func (s *LedgerService) SaveNote(ctx context.Context, req *connect.Request[api.SaveNoteRequest]) (*connect.Response[api.SaveNoteResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SaveNote request received", "user_id", userID, "length", len(req.Msg.Content))

	note := &models.Note{UserID: userID, Content: req.Msg.Content}
	if err := s.store.SaveNote(ctx, note); err != nil {
		return nil, storageError("SaveNote", err, "user_id", userID)
	}
	return connect.NewResponse(&api.SaveNoteResponse{UpdatedAt: note.UpdatedAt}), nil
}
