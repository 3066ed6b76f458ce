package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tallybook/tallybook/internal/store"
)

// NewRouter assembles the full REST surface over the store.
func NewRouter(s *store.Store) chi.Router {
	accounts := NewAccountsHandler(s)
	vouchers := NewVouchersHandler(s)
	reconciliation := NewReconciliationHandler(s)
	bankRecords := NewBankRecordsHandler(s)
	customers := NewCustomersHandler(s)
	suppliers := NewSuppliersHandler(s)
	employees := NewEmployeesHandler(s)
	purchaseOrders := NewPurchaseOrdersHandler(s)
	salesInvoices := NewSalesInvoicesHandler(s)
	expenses := NewExpensesHandler(s)
	taxRecords := NewTaxRecordsHandler(s)
	periods := NewPeriodsHandler(s)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", accounts.List)
			r.Post("/", accounts.Create)
			r.Put("/{id}", accounts.Update)
			r.Delete("/{id}", accounts.Delete)
			r.Get("/{id}/ledger", accounts.Ledger)
		})

		r.Route("/vouchers", func(r chi.Router) {
			r.Get("/", vouchers.List)
			r.Post("/", vouchers.Create)
			r.Get("/pending", vouchers.ListPending)
			r.Get("/posted", vouchers.ListPosted)
			r.Post("/post-batch", vouchers.PostBatch)
			r.Put("/{id}", vouchers.UpdateStatus)
		})

		r.Get("/reconciliation/internal-check", reconciliation.InternalCheck)

		r.Route("/bank-records", func(r chi.Router) {
			r.Get("/", bankRecords.List)
			r.Post("/", bankRecords.Create)
			r.Put("/{id}/match", bankRecords.Match)
			r.Delete("/{id}", bankRecords.Delete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customers.List)
			r.Post("/", customers.Create)
			r.Put("/{id}", customers.Update)
			r.Delete("/{id}", customers.Delete)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", suppliers.List)
			r.Post("/", suppliers.Create)
			r.Put("/{id}", suppliers.Update)
			r.Delete("/{id}", suppliers.Delete)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employees.List)
			r.Post("/", employees.Create)
			r.Put("/{id}", employees.Update)
			r.Delete("/{id}", employees.Delete)
		})

		r.Route("/purchase-orders", func(r chi.Router) {
			r.Get("/", purchaseOrders.List)
			r.Post("/", purchaseOrders.Create)
			r.Put("/{id}", purchaseOrders.UpdateStatus)
		})

		r.Route("/sales-invoices", func(r chi.Router) {
			r.Get("/", salesInvoices.List)
			r.Post("/", salesInvoices.Create)
			r.Put("/{id}", salesInvoices.UpdateStatus)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", expenses.List)
			r.Post("/", expenses.Create)
			r.Put("/{id}", expenses.UpdateStatus)
		})

		r.Route("/tax-records", func(r chi.Router) {
			r.Get("/", taxRecords.List)
			r.Post("/", taxRecords.Create)
			r.Put("/{id}", taxRecords.UpdateStatus)
		})

		r.Route("/periods", func(r chi.Router) {
			r.Get("/", periods.List)
			r.Post("/", periods.Create)
			r.Post("/{id}/close", periods.Close)
			r.Post("/{id}/reopen", periods.Reopen)
		})

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}
