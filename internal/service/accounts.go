package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/calculator"
	"github.com/mmynk/cashbench/internal/models"
)

// ListAccounts returns the caller's accounts in display order, flagged with
// whether each one counts toward the workbench.
func (s *LedgerService) ListAccounts(ctx context.Context, req *connect.Request[api.ListAccountsRequest]) (*connect.Response[api.ListAccountsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListAccounts request received", "user_id", userID, "excluded_count", len(req.Msg.ExcludedAccountIDs))

	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return nil, storageError("ListAccounts", err, "user_id", userID)
	}

	accounts = calculator.WithWorkbenchInclusion(accounts, req.Msg.ExcludedAccountIDs)
	return connect.NewResponse(&api.ListAccountsResponse{Accounts: toAPIAccounts(accounts)}), nil
}

// CreateAccount adds an account at the end of the caller's list.
func (s *LedgerService) CreateAccount(ctx context.Context, req *connect.Request[api.CreateAccountRequest]) (*connect.Response[api.CreateAccountResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateAccount request received", "user_id", userID, "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument(errNameRequired)
	}
	balance, err := parseAmount("current_balance", req.Msg.CurrentBalance)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return nil, storageError("CreateAccount", err, "user_id", userID)
	}
	orders := make([]int, len(existing))
	for i, a := range existing {
		orders[i] = a.SortOrder
	}

	account := &models.Account{
		UserID:         userID,
		Name:           name,
		CurrentBalance: balance,
		IsLiability:    req.Msg.IsLiability,
		SortOrder:      calculator.NextSortOrder(orders),
		ColorIndex:     req.Msg.ColorIndex,
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, storageError("CreateAccount", err, "user_id", userID)
	}
	account.IncludeInWorkbench = true

	slog.Info("Account created", "user_id", userID, "account_id", account.ID)
	return connect.NewResponse(&api.CreateAccountResponse{Account: toAPIAccount(*account)}), nil
}

// UpdateAccount changes the fields set in the request.
func (s *LedgerService) UpdateAccount(ctx context.Context, req *connect.Request[api.UpdateAccountRequest]) (*connect.Response[api.UpdateAccountResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateAccount request received", "user_id", userID, "account_id", req.Msg.ID)

	account, err := s.store.GetAccount(ctx, userID, req.Msg.ID)
	if err != nil {
		return nil, storageError("UpdateAccount", err, "account_id", req.Msg.ID)
	}

	if req.Msg.Name != nil {
		name := strings.TrimSpace(*req.Msg.Name)
		if name == "" {
			return nil, invalidArgument(errNameRequired)
		}
		account.Name = name
	}
	if req.Msg.CurrentBalance != nil {
		balance, err := parseAmount("current_balance", *req.Msg.CurrentBalance)
		if err != nil {
			return nil, err
		}
		account.CurrentBalance = balance
	}
	if req.Msg.IsLiability != nil {
		account.IsLiability = *req.Msg.IsLiability
	}
	if req.Msg.ColorIndex != nil {
		account.ColorIndex = req.Msg.ColorIndex
	}

	if err := s.store.UpdateAccount(ctx, account); err != nil {
		return nil, storageError("UpdateAccount", err, "account_id", account.ID)
	}
	account.IncludeInWorkbench = true

	return connect.NewResponse(&api.UpdateAccountResponse{Account: toAPIAccount(*account)}), nil
}

// DeleteAccount removes an account. Workbenches linked to it fall back to a
// zero starting balance.
func (s *LedgerService) DeleteAccount(ctx context.Context, req *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteAccount request received", "user_id", userID, "account_id", req.Msg.ID)

	if err := s.store.DeleteAccount(ctx, userID, req.Msg.ID); err != nil {
		return nil, storageError("DeleteAccount", err, "account_id", req.Msg.ID)
	}
	return connect.NewResponse(&api.DeleteAccountResponse{}), nil
}

// ReorderAccounts moves one account and persists the whole new order.
func (s *LedgerService) ReorderAccounts(ctx context.Context, req *connect.Request[api.ReorderAccountsRequest]) (*connect.Response[api.ReorderAccountsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ReorderAccounts request received", "user_id", userID, "from", req.Msg.From, "to", req.Msg.To)

	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return nil, storageError("ReorderAccounts", err, "user_id", userID)
	}
	ids := make([]string, len(accounts))
	for i, a := range accounts {
		ids[i] = a.ID
	}

	order, err := calculator.Reorder(ids, req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, invalidArgument(err)
	}
	if err := s.store.SetAccountOrder(ctx, userID, order); err != nil {
		return nil, storageError("ReorderAccounts", err, "user_id", userID)
	}

	accounts, err = s.store.ListAccounts(ctx, userID)
	if err != nil {
		return nil, storageError("ReorderAccounts", err, "user_id", userID)
	}
	accounts = calculator.WithWorkbenchInclusion(accounts, nil)
	return connect.NewResponse(&api.ReorderAccountsResponse{Accounts: toAPIAccounts(accounts)}), nil
}

// GetAccountSummary returns net worth over all accounts and over the
// workbench-included ones, plus safe-to-spend.
func (s *LedgerService) GetAccountSummary(ctx context.Context, req *connect.Request[api.GetAccountSummaryRequest]) (*connect.Response[api.GetAccountSummaryResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetAccountSummary request received", "user_id", userID)

	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return nil, storageError("GetAccountSummary", err, "user_id", userID)
	}
	bills, err := s.store.ListBillTemplates(ctx, userID)
	if err != nil {
		return nil, storageError("GetAccountSummary", err, "user_id", userID)
	}

	return connect.NewResponse(&api.GetAccountSummaryResponse{
		NetWorth:          toAPINetWorth(calculator.ComputeNetWorth(accounts)),
		WorkbenchNetWorth: toAPINetWorth(calculator.ComputeWorkbenchNetWorth(accounts, req.Msg.ExcludedAccountIDs)),
		SafeToSpend:       calculator.ComputeSafeToSpend(accounts, bills),
		MonthlyExposure:   calculator.MonthlyExposure(bills),
	}), nil
}

func toAPINetWorth(n calculator.NetWorth) api.NetWorth {
	return api.NetWorth{
		TotalAssets:      n.TotalAssets,
		TotalLiabilities: n.TotalLiabilities,
		NetWorth:         n.NetWorth,
	}
}
