package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gamestation-backend/internal/security"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Console *ConsoleHandler
	Session *SessionHandler
	Member  *MemberHandler
	Product *ProductHandler
	Pricing *PricingHandler
	History *HistoryHandler
	Expense *ExpenseHandler
}

// NewRouter mounts all routes under /api/v1. Everything except login and
// health requires a valid bearer token; admin-only routes are additionally
// gated by capability.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	// Consoles.
	authed.HandleFunc("/consoles", h.Console.List).Methods(http.MethodGet)
	authed.HandleFunc("/consoles", RequireAction(security.ActionManageConsoles, h.Console.Create)).Methods(http.MethodPost)
	authed.HandleFunc("/consoles/{id}", h.Console.Get).Methods(http.MethodGet)
	authed.HandleFunc("/consoles/{id}", RequireAction(security.ActionManageConsoles, h.Console.Update)).Methods(http.MethodPut)
	authed.HandleFunc("/consoles/{id}", RequireAction(security.ActionManageConsoles, h.Console.Delete)).Methods(http.MethodDelete)

	// Sessions.
	authed.HandleFunc("/sessions", RequireAction(security.ActionOpenSession, h.Session.Open)).Methods(http.MethodPost)
	authed.HandleFunc("/sessions/active", h.Session.ListActive).Methods(http.MethodGet)
	authed.HandleFunc("/sessions/{id}", h.Session.Get).Methods(http.MethodGet)
	authed.HandleFunc("/sessions/{id}/items", RequireAction(security.ActionAddItem, h.Session.AddItem)).Methods(http.MethodPost)
	authed.HandleFunc("/sessions/{id}/tick", h.Session.Tick).Methods(http.MethodPost)
	authed.HandleFunc("/sessions/{id}/close", RequireAction(security.ActionCloseSession, h.Session.Close)).Methods(http.MethodPost)

	// Members and packages.
	authed.HandleFunc("/members", h.Member.List).Methods(http.MethodGet)
	authed.HandleFunc("/members", RequireAction(security.ActionManageMembers, h.Member.Create)).Methods(http.MethodPost)
	authed.HandleFunc("/members/{id}", h.Member.Get).Methods(http.MethodGet)
	authed.HandleFunc("/members/{id}", RequireAction(security.ActionManageMembers, h.Member.Update)).Methods(http.MethodPut)
	authed.HandleFunc("/members/{id}/packages", RequireAction(security.ActionSellPackage, h.Member.PurchasePackage)).Methods(http.MethodPost)

	// Catalog.
	authed.HandleFunc("/products", h.Product.List).Methods(http.MethodGet)
	authed.HandleFunc("/products", RequireAction(security.ActionManageCatalog, h.Product.Create)).Methods(http.MethodPost)
	authed.HandleFunc("/products/{id}", h.Product.Get).Methods(http.MethodGet)
	authed.HandleFunc("/products/{id}", RequireAction(security.ActionManageCatalog, h.Product.Update)).Methods(http.MethodPut)
	authed.HandleFunc("/products/{id}", RequireAction(security.ActionManageCatalog, h.Product.Delete)).Methods(http.MethodDelete)
	authed.HandleFunc("/products/{id}/stock", RequireAction(security.ActionManageCatalog, h.Product.AdjustStock)).Methods(http.MethodPost)

	// Pricing.
	authed.HandleFunc("/pricing", h.Pricing.List).Methods(http.MethodGet)
	authed.HandleFunc("/pricing", RequireAction(security.ActionManagePricing, h.Pricing.SetRate)).Methods(http.MethodPut)

	// History and expenses.
	authed.HandleFunc("/history", h.History.Summary).Methods(http.MethodGet)
	authed.HandleFunc("/expenses", h.Expense.List).Methods(http.MethodGet)
	authed.HandleFunc("/expenses", RequireAction(security.ActionRecordExpense, h.Expense.Create)).Methods(http.MethodPost)

	// Staff accounts.
	authed.HandleFunc("/staff", RequireAction(security.ActionManageStaff, h.Auth.ListStaff)).Methods(http.MethodGet)
	authed.HandleFunc("/staff", RequireAction(security.ActionManageStaff, h.Auth.CreateStaff)).Methods(http.MethodPost)
	authed.HandleFunc("/staff/{id}", RequireAction(security.ActionManageStaff, h.Auth.UpdateStaff)).Methods(http.MethodPut)
	authed.HandleFunc("/staff/{id}", RequireAction(security.ActionManageStaff, h.Auth.DeleteStaff)).Methods(http.MethodDelete)

	return r
}
