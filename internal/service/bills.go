package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/calculator"
	"github.com/mmynk/cashbench/internal/calendar"
	"github.com/mmynk/cashbench/internal/models"
)

// ListBillTemplates returns the caller's bill templates sorted and filtered
// as requested, each flagged when it is due soon.
func (s *LedgerService) ListBillTemplates(ctx context.Context, req *connect.Request[api.ListBillTemplatesRequest]) (*connect.Response[api.ListBillTemplatesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListBillTemplates request received",
		"user_id", userID,
		"sort_field", req.Msg.SortField,
		"sort_order", req.Msg.SortOrder,
		"hide_annual", req.Msg.HideAnnual,
	)

	field, err := calculator.ParseSortField(req.Msg.SortField)
	if err != nil {
		return nil, invalidArgument(err)
	}
	order, err := calculator.ParseSortOrder(req.Msg.SortOrder)
	if err != nil {
		return nil, invalidArgument(err)
	}

	templates, err := s.store.ListBillTemplates(ctx, userID)
	if err != nil {
		return nil, storageError("ListBillTemplates", err, "user_id", userID)
	}

	today := req.Msg.Today
	if today.IsZero() {
		today = s.today()
	}

	visible := calculator.SortTemplates(calculator.FilterAnnual(templates, !req.Msg.HideAnnual), field, order)
	out := make([]api.BillTemplate, len(visible))
	for i, t := range visible {
		out[i] = toAPIBillTemplate(t)
		out[i].DueSoon = calculator.IsDueSoon(t.NextDueDate, today, s.horizon)
	}

	return connect.NewResponse(&api.ListBillTemplatesResponse{
		Templates:       out,
		MonthlyExposure: calculator.MonthlyExposure(templates),
	}), nil
}

// CreateBillTemplate stores a new template. The amount is kept as a magnitude.
func (s *LedgerService) CreateBillTemplate(ctx context.Context, req *connect.Request[api.CreateBillTemplateRequest]) (*connect.Response[api.CreateBillTemplateResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateBillTemplate request received", "user_id", userID, "name", req.Msg.Name, "frequency", req.Msg.Frequency)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument(errNameRequired)
	}
	amount, err := parseAmount("default_amount", req.Msg.DefaultAmount)
	if err != nil {
		return nil, err
	}
	freq, err := parseFrequency(req.Msg.Frequency)
	if err != nil {
		return nil, err
	}

	tmpl := &models.BillTemplate{
		UserID:        userID,
		Name:          name,
		DefaultAmount: amount.Abs(),
		Frequency:     freq,
		NextDueDate:   req.Msg.NextDueDate,
	}
	if err := s.store.CreateBillTemplate(ctx, tmpl); err != nil {
		return nil, storageError("CreateBillTemplate", err, "user_id", userID)
	}

	slog.Info("Bill template created", "user_id", userID, "template_id", tmpl.ID)
	return connect.NewResponse(&api.CreateBillTemplateResponse{Template: s.billTemplate(*tmpl)}), nil
}

// UpdateBillTemplate applies a manual edit. Changing the due date by hand
// clears the last-advanced date.
func (s *LedgerService) UpdateBillTemplate(ctx context.Context, req *connect.Request[api.UpdateBillTemplateRequest]) (*connect.Response[api.UpdateBillTemplateResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateBillTemplate request received", "user_id", userID, "template_id", req.Msg.ID)

	var edit calculator.TemplateEdit
	if req.Msg.Name != nil {
		name := strings.TrimSpace(*req.Msg.Name)
		if name == "" {
			return nil, invalidArgument(errNameRequired)
		}
		edit.Name = &name
	}
	if req.Msg.DefaultAmount != nil {
		amount, err := parseAmount("default_amount", *req.Msg.DefaultAmount)
		if err != nil {
			return nil, err
		}
		edit.DefaultAmount = &amount
	}
	if req.Msg.Frequency != nil {
		freq, err := parseFrequency(*req.Msg.Frequency)
		if err != nil {
			return nil, err
		}
		edit.Frequency = &freq
	}
	switch {
	case req.Msg.ClearNextDueDate:
		edit.NextDueDate = &calendar.Date{}
	case req.Msg.NextDueDate != nil:
		edit.NextDueDate = req.Msg.NextDueDate
	}

	current, err := s.store.GetBillTemplate(ctx, userID, req.Msg.ID)
	if err != nil {
		return nil, storageError("UpdateBillTemplate", err, "template_id", req.Msg.ID)
	}
	updated := calculator.ApplyTemplateEdit(*current, edit)
	if err := s.store.UpdateBillTemplate(ctx, &updated); err != nil {
		return nil, storageError("UpdateBillTemplate", err, "template_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.UpdateBillTemplateResponse{Template: s.billTemplate(updated)}), nil
}

// DeleteBillTemplate removes a template. Transactions created from it stay.
func (s *LedgerService) DeleteBillTemplate(ctx context.Context, req *connect.Request[api.DeleteBillTemplateRequest]) (*connect.Response[api.DeleteBillTemplateResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteBillTemplate request received", "user_id", userID, "template_id", req.Msg.ID)

	if err := s.store.DeleteBillTemplate(ctx, userID, req.Msg.ID); err != nil {
		return nil, storageError("DeleteBillTemplate", err, "template_id", req.Msg.ID)
	}
	return connect.NewResponse(&api.DeleteBillTemplateResponse{}), nil
}

// AdvanceBillTemplate marks the current due date paid and moves to the next
// one. A template without a due date is returned unchanged.
func (s *LedgerService) AdvanceBillTemplate(ctx context.Context, req *connect.Request[api.AdvanceBillTemplateRequest]) (*connect.Response[api.AdvanceBillTemplateResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AdvanceBillTemplate request received", "user_id", userID, "template_id", req.Msg.ID)

	tmpl, err := s.store.GetBillTemplate(ctx, userID, req.Msg.ID)
	if err != nil {
		return nil, storageError("AdvanceBillTemplate", err, "template_id", req.Msg.ID)
	}

	adv, ok := calculator.Advance(*tmpl)
	if !ok {
		slog.Info("Bill template not advanced", "template_id", tmpl.ID, "frequency", tmpl.Frequency, "next_due_date", tmpl.NextDueDate)
		return connect.NewResponse(&api.AdvanceBillTemplateResponse{Template: s.billTemplate(*tmpl)}), nil
	}

	if err := s.store.SetBillTemplateDates(ctx, userID, adv.TemplateID, adv.NextDueDate, adv.LastAdvancedAt); err != nil {
		return nil, storageError("AdvanceBillTemplate", err, "template_id", tmpl.ID)
	}

	advanced := adv.Apply(*tmpl)
	slog.Info("Bill template advanced", "template_id", tmpl.ID, "paid_on", adv.LastAdvancedAt, "next_due_date", adv.NextDueDate)
	return connect.NewResponse(&api.AdvanceBillTemplateResponse{
		Template: s.billTemplate(advanced),
		Advanced: true,
	}), nil
}

// AddBillToWorkbench appends the template as a planned expense on the
// workbench identified by tag.
func (s *LedgerService) AddBillToWorkbench(ctx context.Context, req *connect.Request[api.AddBillToWorkbenchRequest]) (*connect.Response[api.AddBillToWorkbenchResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddBillToWorkbench request received", "user_id", userID, "template_id", req.Msg.TemplateID, "tag", req.Msg.Tag)

	if _, ok := s.workbench(req.Msg.Tag); !ok {
		return nil, invalidArgument(fmt.Errorf("%w: %q", errUnknownWorkbench, req.Msg.Tag))
	}

	tmpl, err := s.store.GetBillTemplate(ctx, userID, req.Msg.TemplateID)
	if err != nil {
		return nil, storageError("AddBillToWorkbench", err, "template_id", req.Msg.TemplateID)
	}

	txn := calculator.TemplateToTransaction(*tmpl, req.Msg.Tag)
	if err := s.appendTransaction(ctx, &txn); err != nil {
		return nil, storageError("AddBillToWorkbench", err, "template_id", tmpl.ID)
	}

	slog.Info("Bill added to workbench", "template_id", tmpl.ID, "transaction_id", txn.ID, "tag", txn.Tag)
	return connect.NewResponse(&api.AddBillToWorkbenchResponse{Transaction: toAPITransaction(txn)}), nil
}

// billTemplate converts t, flagging it against today's date.
func (s *LedgerService) billTemplate(t models.BillTemplate) api.BillTemplate {
	out := toAPIBillTemplate(t)
	out.DueSoon = calculator.IsDueSoon(t.NextDueDate, s.today(), s.horizon)
	return out
}

// parseFrequency defaults an empty frequency to monthly.
func parseFrequency(s string) (models.Frequency, error) {
	if s == "" {
		return models.FrequencyMonthly, nil
	}
	freq, err := models.ParseFrequency(strings.ToLower(s))
	if err != nil {
		return "", invalidArgument(fmt.Errorf("%w: %v", calculator.ErrUnknownFrequency, err))
	}
	return freq, nil
}
