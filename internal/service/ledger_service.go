// Package service implements the Connect RPC services of cashbench.
//
// Handlers follow one shape: identify the caller, validate input, load the
// caller's rows from storage, hand them to the calculator, persist whatever
// mutation comes back and return the derived figures. Nothing is written
// before validation succeeds.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/calculator"
	"github.com/mmynk/cashbench/internal/calendar"
	"github.com/mmynk/cashbench/internal/middleware"
	"github.com/mmynk/cashbench/internal/models"
	"github.com/mmynk/cashbench/internal/storage"
)

var (
	errNameRequired        = errors.New("name is required")
	errDescriptionRequired = errors.New("description is required")
	errUnknownWorkbench    = errors.New("unknown workbench")
	errNotAuthenticated    = errors.New("not authenticated")
)

// Ensure LedgerService implements the generated handler interface.
var _ api.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerOptions configures a LedgerService.
type LedgerOptions struct {
	// Workbenches lists the configured workbenches. A main workbench is
	// added in front when none of them is untagged.
	Workbenches []models.WorkbenchConfig

	// DueSoonHorizon is the due-soon look-ahead in days.
	DueSoonHorizon int

	// Location decides what "today" is for due-soon flags. Defaults to local time.
	Location *time.Location
}

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	store       storage.Store
	workbenches []models.WorkbenchConfig
	horizon     int
	today       func() calendar.Date
}

// NewLedgerService creates a LedgerService backed by store.
func NewLedgerService(store storage.Store, opts LedgerOptions) *LedgerService {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	horizon := opts.DueSoonHorizon
	if horizon < 0 {
		horizon = calculator.DefaultDueSoonHorizon
	}
	return &LedgerService{
		store:       store,
		workbenches: WithMainWorkbench(opts.Workbenches),
		horizon:     horizon,
		today:       func() calendar.Date { return calendar.Today(loc) },
	}
}

// WithMainWorkbench returns workbenches with an untagged "Main" entry in
// front unless one is already present.
func WithMainWorkbench(workbenches []models.WorkbenchConfig) []models.WorkbenchConfig {
	for _, w := range workbenches {
		if w.IsMain() {
			return workbenches
		}
	}
	return append([]models.WorkbenchConfig{{Title: "Main"}}, workbenches...)
}

// workbench returns the configured workbench for tag.
func (s *LedgerService) workbench(tag string) (models.WorkbenchConfig, bool) {
	for _, w := range s.workbenches {
		if w.Tag == tag {
			return w, true
		}
	}
	return models.WorkbenchConfig{}, false
}

// callerID returns the authenticated user's ID from ctx.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}
	return userID, nil
}

// storageError converts a storage failure into a Connect error, logging it
// under the given operation name.
func storageError(op string, err error, attrs ...any) error {
	if errors.Is(err, storage.ErrNotFound) {
		slog.Warn(op+" failed", append(attrs, "error", err)...)
		return connect.NewError(connect.CodeNotFound, err)
	}
	slog.Error(op+" failed", append(attrs, "error", err)...)
	return connect.NewError(connect.CodeInternal, err)
}

func invalidArgument(err error) error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// parseAmount wraps calculator.ParseAmount with the field name for the error.
func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := calculator.ParseAmount(s)
	if err != nil {
		return decimal.Zero, invalidArgument(fmt.Errorf("%s: %w", field, err))
	}
	return d, nil
}
