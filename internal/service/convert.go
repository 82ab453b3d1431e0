package service

import (
	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/models"
)

func toAPIAccount(a models.Account) api.Account {
	return api.Account{
		ID:                 a.ID,
		Name:               a.Name,
		CurrentBalance:     a.CurrentBalance,
		IsLiability:        a.IsLiability,
		SortOrder:          a.SortOrder,
		ColorIndex:         a.ColorIndex,
		IncludeInWorkbench: a.IncludeInWorkbench,
	}
}

func toAPIAccounts(accounts []models.Account) []api.Account {
	out := make([]api.Account, len(accounts))
	for i, a := range accounts {
		out[i] = toAPIAccount(a)
	}
	return out
}

func toAPIBillTemplate(t models.BillTemplate) api.BillTemplate {
	return api.BillTemplate{
		ID:             t.ID,
		Name:           t.Name,
		DefaultAmount:  t.DefaultAmount,
		Frequency:      string(t.Frequency),
		NextDueDate:    t.NextDueDate,
		LastAdvancedAt: t.LastAdvancedAt,
	}
}

func toAPITransaction(t models.Transaction) api.Transaction {
	return api.Transaction{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Status:      string(t.Status),
		IsInCalc:    t.IsInCalc,
		DueDate:     t.DueDate,
		SortOrder:   t.SortOrder,
		Tag:         t.Tag,
		CreatedAt:   t.CreatedAt,
	}
}

func toAPITransactions(txns []models.Transaction) []api.Transaction {
	out := make([]api.Transaction, len(txns))
	for i, t := range txns {
		out[i] = toAPITransaction(t)
	}
	return out
}

func toAPIWorkbench(w models.WorkbenchConfig) api.Workbench {
	return api.Workbench{Title: w.Title, Tag: w.Tag, LinkedAccountID: w.LinkedAccountID}
}

func toAPICapture(c models.Capture) api.Capture {
	return api.Capture{
		ID:        c.ID,
		Amount:    c.Amount,
		Note:      c.Note,
		Source:    c.Source,
		CreatedAt: c.CreatedAt,
	}
}

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
