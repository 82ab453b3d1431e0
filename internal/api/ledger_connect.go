package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// LedgerServiceName is the fully-qualified name of the LedgerService.
const LedgerServiceName = "cashbench.v1.LedgerService"

// Procedure paths, in the form "/service/method".
const (
	LedgerServiceListAccountsProcedure          = "/" + LedgerServiceName + "/ListAccounts"
	LedgerServiceCreateAccountProcedure         = "/" + LedgerServiceName + "/CreateAccount"
	LedgerServiceUpdateAccountProcedure         = "/" + LedgerServiceName + "/UpdateAccount"
	LedgerServiceDeleteAccountProcedure         = "/" + LedgerServiceName + "/DeleteAccount"
	LedgerServiceReorderAccountsProcedure       = "/" + LedgerServiceName + "/ReorderAccounts"
	LedgerServiceGetAccountSummaryProcedure     = "/" + LedgerServiceName + "/GetAccountSummary"
	LedgerServiceListBillTemplatesProcedure     = "/" + LedgerServiceName + "/ListBillTemplates"
	LedgerServiceCreateBillTemplateProcedure    = "/" + LedgerServiceName + "/CreateBillTemplate"
	LedgerServiceUpdateBillTemplateProcedure    = "/" + LedgerServiceName + "/UpdateBillTemplate"
	LedgerServiceDeleteBillTemplateProcedure    = "/" + LedgerServiceName + "/DeleteBillTemplate"
	LedgerServiceAdvanceBillTemplateProcedure   = "/" + LedgerServiceName + "/AdvanceBillTemplate"
	LedgerServiceAddBillToWorkbenchProcedure    = "/" + LedgerServiceName + "/AddBillToWorkbench"
	LedgerServiceListTransactionsProcedure      = "/" + LedgerServiceName + "/ListTransactions"
	LedgerServiceGetWorkbenchProcedure          = "/" + LedgerServiceName + "/GetWorkbench"
	LedgerServiceCreateTransactionProcedure     = "/" + LedgerServiceName + "/CreateTransaction"
	LedgerServiceToggleTransactionCalcProcedure = "/" + LedgerServiceName + "/ToggleTransactionCalc"
	LedgerServiceDeleteTransactionProcedure     = "/" + LedgerServiceName + "/DeleteTransaction"
	LedgerServiceReorderTransactionsProcedure   = "/" + LedgerServiceName + "/ReorderTransactions"
	LedgerServiceListWorkbenchesProcedure       = "/" + LedgerServiceName + "/ListWorkbenches"
	LedgerServiceCaptureProjectionProcedure     = "/" + LedgerServiceName + "/CaptureProjection"
	LedgerServiceListCapturesProcedure          = "/" + LedgerServiceName + "/ListCaptures"
	LedgerServiceUpdateCaptureProcedure         = "/" + LedgerServiceName + "/UpdateCapture"
	LedgerServiceDeleteCaptureProcedure         = "/" + LedgerServiceName + "/DeleteCapture"
	LedgerServiceGetNoteProcedure               = "/" + LedgerServiceName + "/GetNote"
	LedgerServiceSaveNoteProcedure              = "/" + LedgerServiceName + "/SaveNote"
)

// LedgerServiceHandler is implemented by the server side of the LedgerService.
// Every procedure requires an authenticated caller.
type LedgerServiceHandler interface {
	ListAccounts(context.Context, *connect.Request[ListAccountsRequest]) (*connect.Response[ListAccountsResponse], error)
	CreateAccount(context.Context, *connect.Request[CreateAccountRequest]) (*connect.Response[CreateAccountResponse], error)
	UpdateAccount(context.Context, *connect.Request[UpdateAccountRequest]) (*connect.Response[UpdateAccountResponse], error)
	DeleteAccount(context.Context, *connect.Request[DeleteAccountRequest]) (*connect.Response[DeleteAccountResponse], error)
	ReorderAccounts(context.Context, *connect.Request[ReorderAccountsRequest]) (*connect.Response[ReorderAccountsResponse], error)
	GetAccountSummary(context.Context, *connect.Request[GetAccountSummaryRequest]) (*connect.Response[GetAccountSummaryResponse], error)
	ListBillTemplates(context.Context, *connect.Request[ListBillTemplatesRequest]) (*connect.Response[ListBillTemplatesResponse], error)
	CreateBillTemplate(context.Context, *connect.Request[CreateBillTemplateRequest]) (*connect.Response[CreateBillTemplateResponse], error)
	UpdateBillTemplate(context.Context, *connect.Request[UpdateBillTemplateRequest]) (*connect.Response[UpdateBillTemplateResponse], error)
	DeleteBillTemplate(context.Context, *connect.Request[DeleteBillTemplateRequest]) (*connect.Response[DeleteBillTemplateResponse], error)
	AdvanceBillTemplate(context.Context, *connect.Request[AdvanceBillTemplateRequest]) (*connect.Response[AdvanceBillTemplateResponse], error)
	AddBillToWorkbench(context.Context, *connect.Request[AddBillToWorkbenchRequest]) (*connect.Response[AddBillToWorkbenchResponse], error)
	ListTransactions(context.Context, *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error)
	GetWorkbench(context.Context, *connect.Request[GetWorkbenchRequest]) (*connect.Response[GetWorkbenchResponse], error)
	CreateTransaction(context.Context, *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error)
	ToggleTransactionCalc(context.Context, *connect.Request[ToggleTransactionCalcRequest]) (*connect.Response[ToggleTransactionCalcResponse], error)
	DeleteTransaction(context.Context, *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error)
	ReorderTransactions(context.Context, *connect.Request[ReorderTransactionsRequest]) (*connect.Response[ReorderTransactionsResponse], error)
	ListWorkbenches(context.Context, *connect.Request[ListWorkbenchesRequest]) (*connect.Response[ListWorkbenchesResponse], error)
	CaptureProjection(context.Context, *connect.Request[CaptureProjectionRequest]) (*connect.Response[CaptureProjectionResponse], error)
	ListCaptures(context.Context, *connect.Request[ListCapturesRequest]) (*connect.Response[ListCapturesResponse], error)
	UpdateCapture(context.Context, *connect.Request[UpdateCaptureRequest]) (*connect.Response[UpdateCaptureResponse], error)
	DeleteCapture(context.Context, *connect.Request[DeleteCaptureRequest]) (*connect.Response[DeleteCaptureResponse], error)
	GetNote(context.Context, *connect.Request[GetNoteRequest]) (*connect.Response[GetNoteResponse], error)
	SaveNote(context.Context, *connect.Request[SaveNoteRequest]) (*connect.Response[SaveNoteResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for every procedure of svc and
// returns the path prefix to mount it on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	mux := procedureMux{
		LedgerServiceListAccountsProcedure:          connect.NewUnaryHandler(LedgerServiceListAccountsProcedure, svc.ListAccounts, opts...),
		LedgerServiceCreateAccountProcedure:         connect.NewUnaryHandler(LedgerServiceCreateAccountProcedure, svc.CreateAccount, opts...),
		LedgerServiceUpdateAccountProcedure:         connect.NewUnaryHandler(LedgerServiceUpdateAccountProcedure, svc.UpdateAccount, opts...),
		LedgerServiceDeleteAccountProcedure:         connect.NewUnaryHandler(LedgerServiceDeleteAccountProcedure, svc.DeleteAccount, opts...),
		LedgerServiceReorderAccountsProcedure:       connect.NewUnaryHandler(LedgerServiceReorderAccountsProcedure, svc.ReorderAccounts, opts...),
		LedgerServiceGetAccountSummaryProcedure:     connect.NewUnaryHandler(LedgerServiceGetAccountSummaryProcedure, svc.GetAccountSummary, opts...),
		LedgerServiceListBillTemplatesProcedure:     connect.NewUnaryHandler(LedgerServiceListBillTemplatesProcedure, svc.ListBillTemplates, opts...),
		LedgerServiceCreateBillTemplateProcedure:    connect.NewUnaryHandler(LedgerServiceCreateBillTemplateProcedure, svc.CreateBillTemplate, opts...),
		LedgerServiceUpdateBillTemplateProcedure:    connect.NewUnaryHandler(LedgerServiceUpdateBillTemplateProcedure, svc.UpdateBillTemplate, opts...),
		LedgerServiceDeleteBillTemplateProcedure:    connect.NewUnaryHandler(LedgerServiceDeleteBillTemplateProcedure, svc.DeleteBillTemplate, opts...),
		LedgerServiceAdvanceBillTemplateProcedure:   connect.NewUnaryHandler(LedgerServiceAdvanceBillTemplateProcedure, svc.AdvanceBillTemplate, opts...),
		LedgerServiceAddBillToWorkbenchProcedure:    connect.NewUnaryHandler(LedgerServiceAddBillToWorkbenchProcedure, svc.AddBillToWorkbench, opts...),
		LedgerServiceListTransactionsProcedure:      connect.NewUnaryHandler(LedgerServiceListTransactionsProcedure, svc.ListTransactions, opts...),
		LedgerServiceGetWorkbenchProcedure:          connect.NewUnaryHandler(LedgerServiceGetWorkbenchProcedure, svc.GetWorkbench, opts...),
		LedgerServiceCreateTransactionProcedure:     connect.NewUnaryHandler(LedgerServiceCreateTransactionProcedure, svc.CreateTransaction, opts...),
		LedgerServiceToggleTransactionCalcProcedure: connect.NewUnaryHandler(LedgerServiceToggleTransactionCalcProcedure, svc.ToggleTransactionCalc, opts...),
		LedgerServiceDeleteTransactionProcedure:     connect.NewUnaryHandler(LedgerServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...),
		LedgerServiceReorderTransactionsProcedure:   connect.NewUnaryHandler(LedgerServiceReorderTransactionsProcedure, svc.ReorderTransactions, opts...),
		LedgerServiceListWorkbenchesProcedure:       connect.NewUnaryHandler(LedgerServiceListWorkbenchesProcedure, svc.ListWorkbenches, opts...),
		LedgerServiceCaptureProjectionProcedure:     connect.NewUnaryHandler(LedgerServiceCaptureProjectionProcedure, svc.CaptureProjection, opts...),
		LedgerServiceListCapturesProcedure:          connect.NewUnaryHandler(LedgerServiceListCapturesProcedure, svc.ListCaptures, opts...),
		LedgerServiceUpdateCaptureProcedure:         connect.NewUnaryHandler(LedgerServiceUpdateCaptureProcedure, svc.UpdateCapture, opts...),
		LedgerServiceDeleteCaptureProcedure:         connect.NewUnaryHandler(LedgerServiceDeleteCaptureProcedure, svc.DeleteCapture, opts...),
		LedgerServiceGetNoteProcedure:               connect.NewUnaryHandler(LedgerServiceGetNoteProcedure, svc.GetNote, opts...),
		LedgerServiceSaveNoteProcedure:              connect.NewUnaryHandler(LedgerServiceSaveNoteProcedure, svc.SaveNote, opts...),
	}
	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient is a typed client for the LedgerService.
type LedgerServiceClient interface {
	ListAccounts(context.Context, *connect.Request[ListAccountsRequest]) (*connect.Response[ListAccountsResponse], error)
	CreateAccount(context.Context, *connect.Request[CreateAccountRequest]) (*connect.Response[CreateAccountResponse], error)
	UpdateAccount(context.Context, *connect.Request[UpdateAccountRequest]) (*connect.Response[UpdateAccountResponse], error)
	DeleteAccount(context.Context, *connect.Request[DeleteAccountRequest]) (*connect.Response[DeleteAccountResponse], error)
	ReorderAccounts(context.Context, *connect.Request[ReorderAccountsRequest]) (*connect.Response[ReorderAccountsResponse], error)
	GetAccountSummary(context.Context, *connect.Request[GetAccountSummaryRequest]) (*connect.Response[GetAccountSummaryResponse], error)
	ListBillTemplates(context.Context, *connect.Request[ListBillTemplatesRequest]) (*connect.Response[ListBillTemplatesResponse], error)
	CreateBillTemplate(context.Context, *connect.Request[CreateBillTemplateRequest]) (*connect.Response[CreateBillTemplateResponse], error)
	UpdateBillTemplate(context.Context, *connect.Request[UpdateBillTemplateRequest]) (*connect.Response[UpdateBillTemplateResponse], error)
	DeleteBillTemplate(context.Context, *connect.Request[DeleteBillTemplateRequest]) (*connect.Response[DeleteBillTemplateResponse], error)
	AdvanceBillTemplate(context.Context, *connect.Request[AdvanceBillTemplateRequest]) (*connect.Response[AdvanceBillTemplateResponse], error)
	AddBillToWorkbench(context.Context, *connect.Request[AddBillToWorkbenchRequest]) (*connect.Response[AddBillToWorkbenchResponse], error)
	ListTransactions(context.Context, *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error)
	GetWorkbench(context.Context, *connect.Request[GetWorkbenchRequest]) (*connect.Response[GetWorkbenchResponse], error)
	CreateTransaction(context.Context, *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error)
	ToggleTransactionCalc(context.Context, *connect.Request[ToggleTransactionCalcRequest]) (*connect.Response[ToggleTransactionCalcResponse], error)
	DeleteTransaction(context.Context, *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error)
	ReorderTransactions(context.Context, *connect.Request[ReorderTransactionsRequest]) (*connect.Response[ReorderTransactionsResponse], error)
	ListWorkbenches(context.Context, *connect.Request[ListWorkbenchesRequest]) (*connect.Response[ListWorkbenchesResponse], error)
	CaptureProjection(context.Context, *connect.Request[CaptureProjectionRequest]) (*connect.Response[CaptureProjectionResponse], error)
	ListCaptures(context.Context, *connect.Request[ListCapturesRequest]) (*connect.Response[ListCapturesResponse], error)
	UpdateCapture(context.Context, *connect.Request[UpdateCaptureRequest]) (*connect.Response[UpdateCaptureResponse], error)
	DeleteCapture(context.Context, *connect.Request[DeleteCaptureRequest]) (*connect.Response[DeleteCaptureResponse], error)
	GetNote(context.Context, *connect.Request[GetNoteRequest]) (*connect.Response[GetNoteResponse], error)
	SaveNote(context.Context, *connect.Request[SaveNoteRequest]) (*connect.Response[SaveNoteResponse], error)
}

// NewLedgerServiceClient returns a client for the LedgerService served at baseURL
// (e.g. "http://localhost:8080").
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &ledgerServiceClient{
		listAccounts:          connect.NewClient[ListAccountsRequest, ListAccountsResponse](httpClient, baseURL+LedgerServiceListAccountsProcedure, opts...),
		createAccount:         connect.NewClient[CreateAccountRequest, CreateAccountResponse](httpClient, baseURL+LedgerServiceCreateAccountProcedure, opts...),
		updateAccount:         connect.NewClient[UpdateAccountRequest, UpdateAccountResponse](httpClient, baseURL+LedgerServiceUpdateAccountProcedure, opts...),
		deleteAccount:         connect.NewClient[DeleteAccountRequest, DeleteAccountResponse](httpClient, baseURL+LedgerServiceDeleteAccountProcedure, opts...),
		reorderAccounts:       connect.NewClient[ReorderAccountsRequest, ReorderAccountsResponse](httpClient, baseURL+LedgerServiceReorderAccountsProcedure, opts...),
		getAccountSummary:     connect.NewClient[GetAccountSummaryRequest, GetAccountSummaryResponse](httpClient, baseURL+LedgerServiceGetAccountSummaryProcedure, opts...),
		listBillTemplates:     connect.NewClient[ListBillTemplatesRequest, ListBillTemplatesResponse](httpClient, baseURL+LedgerServiceListBillTemplatesProcedure, opts...),
		createBillTemplate:    connect.NewClient[CreateBillTemplateRequest, CreateBillTemplateResponse](httpClient, baseURL+LedgerServiceCreateBillTemplateProcedure, opts...),
		updateBillTemplate:    connect.NewClient[UpdateBillTemplateRequest, UpdateBillTemplateResponse](httpClient, baseURL+LedgerServiceUpdateBillTemplateProcedure, opts...),
		deleteBillTemplate:    connect.NewClient[DeleteBillTemplateRequest, DeleteBillTemplateResponse](httpClient, baseURL+LedgerServiceDeleteBillTemplateProcedure, opts...),
		advanceBillTemplate:   connect.NewClient[AdvanceBillTemplateRequest, AdvanceBillTemplateResponse](httpClient, baseURL+LedgerServiceAdvanceBillTemplateProcedure, opts...),
		addBillToWorkbench:    connect.NewClient[AddBillToWorkbenchRequest, AddBillToWorkbenchResponse](httpClient, baseURL+LedgerServiceAddBillToWorkbenchProcedure, opts...),
		listTransactions:      connect.NewClient[ListTransactionsRequest, ListTransactionsResponse](httpClient, baseURL+LedgerServiceListTransactionsProcedure, opts...),
		getWorkbench:          connect.NewClient[GetWorkbenchRequest, GetWorkbenchResponse](httpClient, baseURL+LedgerServiceGetWorkbenchProcedure, opts...),
		createTransaction:     connect.NewClient[CreateTransactionRequest, CreateTransactionResponse](httpClient, baseURL+LedgerServiceCreateTransactionProcedure, opts...),
		toggleTransactionCalc: connect.NewClient[ToggleTransactionCalcRequest, ToggleTransactionCalcResponse](httpClient, baseURL+LedgerServiceToggleTransactionCalcProcedure, opts...),
		deleteTransaction:     connect.NewClient[DeleteTransactionRequest, DeleteTransactionResponse](httpClient, baseURL+LedgerServiceDeleteTransactionProcedure, opts...),
		reorderTransactions:   connect.NewClient[ReorderTransactionsRequest, ReorderTransactionsResponse](httpClient, baseURL+LedgerServiceReorderTransactionsProcedure, opts...),
		listWorkbenches:       connect.NewClient[ListWorkbenchesRequest, ListWorkbenchesResponse](httpClient, baseURL+LedgerServiceListWorkbenchesProcedure, opts...),
		captureProjection:     connect.NewClient[CaptureProjectionRequest, CaptureProjectionResponse](httpClient, baseURL+LedgerServiceCaptureProjectionProcedure, opts...),
		listCaptures:          connect.NewClient[ListCapturesRequest, ListCapturesResponse](httpClient, baseURL+LedgerServiceListCapturesProcedure, opts...),
		updateCapture:         connect.NewClient[UpdateCaptureRequest, UpdateCaptureResponse](httpClient, baseURL+LedgerServiceUpdateCaptureProcedure, opts...),
		deleteCapture:         connect.NewClient[DeleteCaptureRequest, DeleteCaptureResponse](httpClient, baseURL+LedgerServiceDeleteCaptureProcedure, opts...),
		getNote:               connect.NewClient[GetNoteRequest, GetNoteResponse](httpClient, baseURL+LedgerServiceGetNoteProcedure, opts...),
		saveNote:              connect.NewClient[SaveNoteRequest, SaveNoteResponse](httpClient, baseURL+LedgerServiceSaveNoteProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	listAccounts          *connect.Client[ListAccountsRequest, ListAccountsResponse]
	createAccount         *connect.Client[CreateAccountRequest, CreateAccountResponse]
	updateAccount         *connect.Client[UpdateAccountRequest, UpdateAccountResponse]
	deleteAccount         *connect.Client[DeleteAccountRequest, DeleteAccountResponse]
	reorderAccounts       *connect.Client[ReorderAccountsRequest, ReorderAccountsResponse]
	getAccountSummary     *connect.Client[GetAccountSummaryRequest, GetAccountSummaryResponse]
	listBillTemplates     *connect.Client[ListBillTemplatesRequest, ListBillTemplatesResponse]
	createBillTemplate    *connect.Client[CreateBillTemplateRequest, CreateBillTemplateResponse]
	updateBillTemplate    *connect.Client[UpdateBillTemplateRequest, UpdateBillTemplateResponse]
	deleteBillTemplate    *connect.Client[DeleteBillTemplateRequest, DeleteBillTemplateResponse]
	advanceBillTemplate   *connect.Client[AdvanceBillTemplateRequest, AdvanceBillTemplateResponse]
	addBillToWorkbench    *connect.Client[AddBillToWorkbenchRequest, AddBillToWorkbenchResponse]
	listTransactions      *connect.Client[ListTransactionsRequest, ListTransactionsResponse]
	getWorkbench          *connect.Client[GetWorkbenchRequest, GetWorkbenchResponse]
	createTransaction     *connect.Client[CreateTransactionRequest, CreateTransactionResponse]
	toggleTransactionCalc *connect.Client[ToggleTransactionCalcRequest, ToggleTransactionCalcResponse]
	deleteTransaction     *connect.Client[DeleteTransactionRequest, DeleteTransactionResponse]
	reorderTransactions   *connect.Client[ReorderTransactionsRequest, ReorderTransactionsResponse]
	listWorkbenches       *connect.Client[ListWorkbenchesRequest, ListWorkbenchesResponse]
	captureProjection     *connect.Client[CaptureProjectionRequest, CaptureProjectionResponse]
	listCaptures          *connect.Client[ListCapturesRequest, ListCapturesResponse]
	updateCapture         *connect.Client[UpdateCaptureRequest, UpdateCaptureResponse]
	deleteCapture         *connect.Client[DeleteCaptureRequest, DeleteCaptureResponse]
	getNote               *connect.Client[GetNoteRequest, GetNoteResponse]
	saveNote              *connect.Client[SaveNoteRequest, SaveNoteResponse]
}

func (c *ledgerServiceClient) ListAccounts(ctx context.Context, req *connect.Request[ListAccountsRequest]) (*connect.Response[ListAccountsResponse], error) {
	return c.listAccounts.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateAccount(ctx context.Context, req *connect.Request[CreateAccountRequest]) (*connect.Response[CreateAccountResponse], error) {
	return c.createAccount.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateAccount(ctx context.Context, req *connect.Request[UpdateAccountRequest]) (*connect.Response[UpdateAccountResponse], error) {
	return c.updateAccount.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteAccount(ctx context.Context, req *connect.Request[DeleteAccountRequest]) (*connect.Response[DeleteAccountResponse], error) {
	return c.deleteAccount.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ReorderAccounts(ctx context.Context, req *connect.Request[ReorderAccountsRequest]) (*connect.Response[ReorderAccountsResponse], error) {
	return c.reorderAccounts.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetAccountSummary(ctx context.Context, req *connect.Request[GetAccountSummaryRequest]) (*connect.Response[GetAccountSummaryResponse], error) {
	return c.getAccountSummary.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListBillTemplates(ctx context.Context, req *connect.Request[ListBillTemplatesRequest]) (*connect.Response[ListBillTemplatesResponse], error) {
	return c.listBillTemplates.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateBillTemplate(ctx context.Context, req *connect.Request[CreateBillTemplateRequest]) (*connect.Response[CreateBillTemplateResponse], error) {
	return c.createBillTemplate.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateBillTemplate(ctx context.Context, req *connect.Request[UpdateBillTemplateRequest]) (*connect.Response[UpdateBillTemplateResponse], error) {
	return c.updateBillTemplate.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteBillTemplate(ctx context.Context, req *connect.Request[DeleteBillTemplateRequest]) (*connect.Response[DeleteBillTemplateResponse], error) {
	return c.deleteBillTemplate.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AdvanceBillTemplate(ctx context.Context, req *connect.Request[AdvanceBillTemplateRequest]) (*connect.Response[AdvanceBillTemplateResponse], error) {
	return c.advanceBillTemplate.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddBillToWorkbench(ctx context.Context, req *connect.Request[AddBillToWorkbenchRequest]) (*connect.Response[AddBillToWorkbenchResponse], error) {
	return c.addBillToWorkbench.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListTransactions(ctx context.Context, req *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetWorkbench(ctx context.Context, req *connect.Request[GetWorkbenchRequest]) (*connect.Response[GetWorkbenchResponse], error) {
	return c.getWorkbench.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ToggleTransactionCalc(ctx context.Context, req *connect.Request[ToggleTransactionCalcRequest]) (*connect.Response[ToggleTransactionCalcResponse], error) {
	return c.toggleTransactionCalc.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ReorderTransactions(ctx context.Context, req *connect.Request[ReorderTransactionsRequest]) (*connect.Response[ReorderTransactionsResponse], error) {
	return c.reorderTransactions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListWorkbenches(ctx context.Context, req *connect.Request[ListWorkbenchesRequest]) (*connect.Response[ListWorkbenchesResponse], error) {
	return c.listWorkbenches.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CaptureProjection(ctx context.Context, req *connect.Request[CaptureProjectionRequest]) (*connect.Response[CaptureProjectionResponse], error) {
	return c.captureProjection.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListCaptures(ctx context.Context, req *connect.Request[ListCapturesRequest]) (*connect.Response[ListCapturesResponse], error) {
	return c.listCaptures.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateCapture(ctx context.Context, req *connect.Request[UpdateCaptureRequest]) (*connect.Response[UpdateCaptureResponse], error) {
	return c.updateCapture.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteCapture(ctx context.Context, req *connect.Request[DeleteCaptureRequest]) (*connect.Response[DeleteCaptureResponse], error) {
	return c.deleteCapture.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetNote(ctx context.Context, req *connect.Request[GetNoteRequest]) (*connect.Response[GetNoteResponse], error) {
	return c.getNote.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SaveNote(ctx context.Context, req *connect.Request[SaveNoteRequest]) (*connect.Response[SaveNoteResponse], error) {
	return c.saveNote.CallUnary(ctx, req)
}
