package api

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/cashbench/internal/calendar"
)

// Money is serialized as a decimal string ("1234.56") and dates as
// "YYYY-MM-DD" or null. Request amounts are plain strings so the server can
// reject malformed input with a precise error.

type Account struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
	IsLiability        bool            `json:"is_liability"`
	SortOrder          int             `json:"sort_order"`
	ColorIndex         *int            `json:"color_index,omitempty"`
	IncludeInWorkbench bool            `json:"include_in_workbench"`
}

type NetWorth struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorth         decimal.Decimal `json:"net_worth"`
}

type BillTemplate struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	DefaultAmount  decimal.Decimal `json:"default_amount"`
	Frequency      string          `json:"frequency"`
	NextDueDate    calendar.Date   `json:"next_due_date"`
	LastAdvancedAt calendar.Date   `json:"last_advanced_at"`
	DueSoon        bool            `json:"due_soon"`
}

type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	IsInCalc    bool            `json:"is_in_calc"`
	DueDate     calendar.Date   `json:"due_date"`
	SortOrder   int             `json:"sort_order"`
	Tag         string          `json:"tag,omitempty"`
	CreatedAt   int64           `json:"created_at"`
}

type Workbench struct {
	Title           string `json:"title"`
	Tag             string `json:"tag,omitempty"`
	LinkedAccountID string `json:"linked_account_id,omitempty"`
}

type Capture struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	Source    string          `json:"source,omitempty"`
	CreatedAt int64           `json:"created_at"`
}

// Accounts

type ListAccountsRequest struct {
	ExcludedAccountIDs []string `json:"excluded_account_ids,omitempty"`
}

type ListAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

type CreateAccountRequest struct {
	Name           string `json:"name"`
	CurrentBalance string `json:"current_balance"`
	IsLiability    bool   `json:"is_liability"`
	ColorIndex     *int   `json:"color_index,omitempty"`
}

type CreateAccountResponse struct {
	Account Account `json:"account"`
}

// UpdateAccountRequest changes only the fields that are set.
type UpdateAccountRequest struct {
	ID             string  `json:"id"`
	Name           *string `json:"name,omitempty"`
	CurrentBalance *string `json:"current_balance,omitempty"`
	IsLiability    *bool   `json:"is_liability,omitempty"`
	ColorIndex     *int    `json:"color_index,omitempty"`
}

type UpdateAccountResponse struct {
	Account Account `json:"account"`
}

type DeleteAccountRequest struct {
	ID string `json:"id"`
}

type DeleteAccountResponse struct{}

// ReorderAccountsRequest moves the account at index From to index To.
type ReorderAccountsRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type ReorderAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

type GetAccountSummaryRequest struct {
	ExcludedAccountIDs []string `json:"excluded_account_ids,omitempty"`
}

type GetAccountSummaryResponse struct {
	NetWorth          NetWorth        `json:"net_worth"`
	WorkbenchNetWorth NetWorth        `json:"workbench_net_worth"`
	SafeToSpend       decimal.Decimal `json:"safe_to_spend"`
	MonthlyExposure   decimal.Decimal `json:"monthly_exposure"`
}

// Bill templates

type ListBillTemplatesRequest struct {
	// SortField is one of name, amount, due_date, frequency. Default due_date.
	SortField string `json:"sort_field,omitempty"`
	// SortOrder is asc or desc. Default asc.
	SortOrder  string `json:"sort_order,omitempty"`
	HideAnnual bool   `json:"hide_annual,omitempty"`
	// Today overrides the server's date for due-soon flags.
	Today calendar.Date `json:"today"`
}

type ListBillTemplatesResponse struct {
	Templates       []BillTemplate  `json:"templates"`
	MonthlyExposure decimal.Decimal `json:"monthly_exposure"`
}

type CreateBillTemplateRequest struct {
	Name          string        `json:"name"`
	DefaultAmount string        `json:"default_amount"`
	Frequency     string        `json:"frequency"`
	NextDueDate   calendar.Date `json:"next_due_date"`
}

type CreateBillTemplateResponse struct {
	Template BillTemplate `json:"template"`
}

// UpdateBillTemplateRequest changes only the fields that are set.
// ClearNextDueDate removes the due date and wins over NextDueDate.
type UpdateBillTemplateRequest struct {
	ID               string         `json:"id"`
	Name             *string        `json:"name,omitempty"`
	DefaultAmount    *string        `json:"default_amount,omitempty"`
	Frequency        *string        `json:"frequency,omitempty"`
	NextDueDate      *calendar.Date `json:"next_due_date,omitempty"`
	ClearNextDueDate bool           `json:"clear_next_due_date,omitempty"`
}

type UpdateBillTemplateResponse struct {
	Template BillTemplate `json:"template"`
}

type DeleteBillTemplateRequest struct {
	ID string `json:"id"`
}

type DeleteBillTemplateResponse struct{}

type AdvanceBillTemplateRequest struct {
	ID string `json:"id"`
}

type AdvanceBillTemplateResponse struct {
	Template BillTemplate `json:"template"`
	Advanced bool         `json:"advanced"`
}

type AddBillToWorkbenchRequest struct {
	TemplateID string `json:"template_id"`
	Tag        string `json:"tag,omitempty"`
}

type AddBillToWorkbenchResponse struct {
	Transaction Transaction `json:"transaction"`
}

// Transactions and workbenches

// ListTransactionsRequest lists one workbench's entries. Without a SortField
// entries come back in their saved drag-and-drop order.
type ListTransactionsRequest struct {
	Tag       string `json:"tag,omitempty"`
	SortField string `json:"sort_field,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type GetWorkbenchRequest struct {
	Tag                string   `json:"tag,omitempty"`
	ExcludedAccountIDs []string `json:"excluded_account_ids,omitempty"`
	SortField          string   `json:"sort_field,omitempty"`
	SortOrder          string   `json:"sort_order,omitempty"`
}

type GetWorkbenchResponse struct {
	Workbench        Workbench       `json:"workbench"`
	Transactions     []Transaction   `json:"transactions"`
	StartingBalance  decimal.Decimal `json:"starting_balance"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	ProjectedBalance decimal.Decimal `json:"projected_balance"`
}

// CreateTransactionRequest takes an unsigned amount; IsIncome picks the sign.
type CreateTransactionRequest struct {
	Description string        `json:"description"`
	Amount      string        `json:"amount"`
	IsIncome    bool          `json:"is_income"`
	Status      string        `json:"status,omitempty"`
	DueDate     calendar.Date `json:"due_date"`
	Tag         string        `json:"tag,omitempty"`
	// ExcludeFromCalc creates the entry with IsInCalc false.
	ExcludeFromCalc bool `json:"exclude_from_calc,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type ToggleTransactionCalcRequest struct {
	ID string `json:"id"`
}

type ToggleTransactionCalcResponse struct {
	Transaction Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	ID string `json:"id"`
}

type DeleteTransactionResponse struct{}

type ReorderTransactionsRequest struct {
	Tag  string `json:"tag,omitempty"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

type ReorderTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type ListWorkbenchesRequest struct{}

type ListWorkbenchesResponse struct {
	Workbenches []Workbench `json:"workbenches"`
}

// Captures and notes

// CaptureProjectionRequest snapshots a workbench's projected balance. When
// Amount is set the capture is manual: no workbench is computed and Source is
// left empty.
type CaptureProjectionRequest struct {
	Tag                string   `json:"tag,omitempty"`
	ExcludedAccountIDs []string `json:"excluded_account_ids,omitempty"`
	Note               string   `json:"note,omitempty"`
	Amount             *string  `json:"amount,omitempty"`
}

type CaptureProjectionResponse struct {
	Capture Capture `json:"capture"`
}

type ListCapturesRequest struct{}

type ListCapturesResponse struct {
	Captures []Capture `json:"captures"`
}

type UpdateCaptureRequest struct {
	ID     string  `json:"id"`
	Amount *string `json:"amount,omitempty"`
	Note   *string `json:"note,omitempty"`
}

type UpdateCaptureResponse struct {
	Capture Capture `json:"capture"`
}

type DeleteCaptureRequest struct {
	ID string `json:"id"`
}

type DeleteCaptureResponse struct{}

type GetNoteRequest struct{}

type GetNoteResponse struct {
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updated_at"`
}

type SaveNoteRequest struct {
	Content string `json:"content"`
}

type SaveNoteResponse struct {
	UpdatedAt int64 `json:"updated_at"`
}

// Auth

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User User `json:"user"`
}
