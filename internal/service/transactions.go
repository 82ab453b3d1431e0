package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/calculator"
	"github.com/mmynk/cashbench/internal/models"
)

// ListTransactions returns one workbench's entries. Without a sort field the
// saved drag-and-drop order is kept.
func (s *LedgerService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListTransactions request received", "user_id", userID, "tag", req.Msg.Tag)

	txns, err := s.workbenchTransactions(ctx, userID, req.Msg.Tag, req.Msg.SortField, req.Msg.SortOrder)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ListTransactionsResponse{Transactions: toAPITransactions(txns)}), nil
}

// GetWorkbench returns a workbench's entries with its starting balance and
// projected totals.
func (s *LedgerService) GetWorkbench(ctx context.Context, req *connect.Request[api.GetWorkbenchRequest]) (*connect.Response[api.GetWorkbenchResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetWorkbench request received", "user_id", userID, "tag", req.Msg.Tag, "excluded_count", len(req.Msg.ExcludedAccountIDs))

	cfg, ok := s.workbench(req.Msg.Tag)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %q", errUnknownWorkbench, req.Msg.Tag))
	}

	txns, err := s.workbenchTransactions(ctx, userID, cfg.Tag, req.Msg.SortField, req.Msg.SortOrder)
	if err != nil {
		return nil, err
	}
	starting, totals, err := s.project(ctx, userID, cfg, req.Msg.ExcludedAccountIDs, txns)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetWorkbenchResponse{
		Workbench:        toAPIWorkbench(cfg),
		Transactions:     toAPITransactions(txns),
		StartingBalance:  starting,
		Income:           totals.Income,
		Expenses:         totals.Expenses,
		ProjectedBalance: totals.ProjectedBalance,
	}), nil
}

// CreateTransaction appends an entry to a workbench. The amount is entered
// unsigned and signed by IsIncome.
func (s *LedgerService) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateTransaction request received", "user_id", userID, "description", req.Msg.Description, "tag", req.Msg.Tag)

	description := strings.TrimSpace(req.Msg.Description)
	if description == "" {
		return nil, invalidArgument(errDescriptionRequired)
	}
	amount, err := parseAmount("amount", req.Msg.Amount)
	if err != nil {
		return nil, err
	}
	status, err := models.ParseStatus(req.Msg.Status)
	if err != nil {
		return nil, invalidArgument(err)
	}
	if _, ok := s.workbench(req.Msg.Tag); !ok {
		return nil, invalidArgument(fmt.Errorf("%w: %q", errUnknownWorkbench, req.Msg.Tag))
	}

	txn := models.Transaction{
		UserID:      userID,
		Description: description,
		Amount:      calculator.SignedAmount(amount, req.Msg.IsIncome),
		Status:      status,
		IsInCalc:    !req.Msg.ExcludeFromCalc,
		DueDate:     req.Msg.DueDate,
		Tag:         req.Msg.Tag,
	}
	if err := s.appendTransaction(ctx, &txn); err != nil {
		return nil, storageError("CreateTransaction", err, "user_id", userID)
	}

	slog.Info("Transaction created", "user_id", userID, "transaction_id", txn.ID, "amount", txn.Amount)
	return connect.NewResponse(&api.CreateTransactionResponse{Transaction: toAPITransaction(txn)}), nil
}

// ToggleTransactionCalc flips whether an entry counts toward projections.
func (s *LedgerService) ToggleTransactionCalc(ctx context.Context, req *connect.Request[api.ToggleTransactionCalcRequest]) (*connect.Response[api.ToggleTransactionCalcResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ToggleTransactionCalc request received", "user_id", userID, "transaction_id", req.Msg.ID)

	txn, err := s.store.GetTransaction(ctx, userID, req.Msg.ID)
	if err != nil {
		return nil, storageError("ToggleTransactionCalc", err, "transaction_id", req.Msg.ID)
	}
	txn.IsInCalc = !txn.IsInCalc
	if err := s.store.SetTransactionInCalc(ctx, userID, txn.ID, txn.IsInCalc); err != nil {
		return nil, storageError("ToggleTransactionCalc", err, "transaction_id", txn.ID)
	}

	return connect.NewResponse(&api.ToggleTransactionCalcResponse{Transaction: toAPITransaction(*txn)}), nil
}

// DeleteTransaction removes an entry.
func (s *LedgerService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteTransaction request received", "user_id", userID, "transaction_id", req.Msg.ID)

	if err := s.store.DeleteTransaction(ctx, userID, req.Msg.ID); err != nil {
		return nil, storageError("DeleteTransaction", err, "transaction_id", req.Msg.ID)
	}
	return connect.NewResponse(&api.DeleteTransactionResponse{}), nil
}

// ReorderTransactions moves one entry within a workbench and persists the
// workbench's whole new order.
func (s *LedgerService) ReorderTransactions(ctx context.Context, req *connect.Request[api.ReorderTransactionsRequest]) (*connect.Response[api.ReorderTransactionsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ReorderTransactions request received", "user_id", userID, "tag", req.Msg.Tag, "from", req.Msg.From, "to", req.Msg.To)

	txns, err := s.workbenchTransactions(ctx, userID, req.Msg.Tag, "", "")
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.ID
	}

	order, err := calculator.Reorder(ids, req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, invalidArgument(err)
	}
	if err := s.store.SetTransactionOrder(ctx, userID, order); err != nil {
		return nil, storageError("ReorderTransactions", err, "user_id", userID)
	}

	txns, err = s.workbenchTransactions(ctx, userID, req.Msg.Tag, "", "")
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ReorderTransactionsResponse{Transactions: toAPITransactions(txns)}), nil
}

// ListWorkbenches returns the configured workbenches, main first.
func (s *LedgerService) ListWorkbenches(ctx context.Context, _ *connect.Request[api.ListWorkbenchesRequest]) (*connect.Response[api.ListWorkbenchesResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}

	out := make([]api.Workbench, len(s.workbenches))
	for i, w := range s.workbenches {
		out[i] = toAPIWorkbench(w)
	}
	return connect.NewResponse(&api.ListWorkbenchesResponse{Workbenches: out}), nil
}

// workbenchTransactions loads the caller's entries on the workbench for tag,
// sorted by field and order when field is set.
func (s *LedgerService) workbenchTransactions(ctx context.Context, userID, tag, field, order string) ([]models.Transaction, error) {
	var sortField calculator.SortField
	var sortOrder calculator.SortOrder
	if field != "" {
		var err error
		if sortField, err = calculator.ParseSortField(field); err != nil {
			return nil, invalidArgument(err)
		}
		if sortField == calculator.SortFieldFrequency {
			return nil, invalidArgument(fmt.Errorf("%w: transactions have no frequency", calculator.ErrInvalidSortField))
		}
		if sortOrder, err = calculator.ParseSortOrder(order); err != nil {
			return nil, invalidArgument(err)
		}
	}

	all, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, storageError("ListTransactions", err, "user_id", userID)
	}
	txns := calculator.PartitionByTag(all, tag)
	if field != "" {
		txns = calculator.SortTransactions(txns, sortField, sortOrder)
	}
	return txns, nil
}

// project computes the starting balance and totals for a workbench.
func (s *LedgerService) project(ctx context.Context, userID string, cfg models.WorkbenchConfig, excludedIDs []string, txns []models.Transaction) (decimal.Decimal, calculator.Totals, error) {
	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return decimal.Zero, calculator.Totals{}, storageError("ListAccounts", err, "user_id", userID)
	}
	starting := calculator.StartingBalance(cfg, accounts, excludedIDs)
	return starting, calculator.ComputeTotals(starting, txns), nil
}

// appendTransaction inserts txn after the last entry of its workbench.
func (s *LedgerService) appendTransaction(ctx context.Context, txn *models.Transaction) error {
	all, err := s.store.ListTransactions(ctx, txn.UserID)
	if err != nil {
		return err
	}
	onBench := calculator.PartitionByTag(all, txn.Tag)
	orders := make([]int, len(onBench))
	for i, t := range onBench {
		orders[i] = t.SortOrder
	}
	txn.SortOrder = calculator.NextSortOrder(orders)
	return s.store.CreateTransaction(ctx, txn)
}
