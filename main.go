package main

import (
	"log"
	"net/http"

	"homeledger-go/audit"
	"homeledger-go/config"
	"homeledger-go/controllers"
	"homeledger-go/database"
	"homeledger-go/handlers"
	"homeledger-go/middleware"
	"homeledger-go/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize config
	cfg := config.Load()

	// Validate configuration
	config.ValidateConfig(cfg)

	// Initialize JWT
	if err := utils.InitializeJWT(cfg.JWTSecret); err != nil {
		log.Fatal("Failed to initialize JWT:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Wire the dependency context explicitly: tracker, controllers, handlers
	tracker := audit.NewTracker(db)
	ctrl := controllers.New(db)
	h := handlers.NewHandlers(ctrl, cfg)

	recordCall := middleware.RecordApiCall(tracker)

	// Initialize router
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.CORS)
	r.Use(middleware.RateLimit)

	// Per-method route registrations never match OPTIONS, and r.Use
	// middleware only runs on matched routes. Preflights need their own
	// matcher to reach the CORS middleware.
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	// Public routes; registration gets an ApiCall row of its own
	r.Handle("/api/register", recordCall(http.HandlerFunc(h.Register))).Methods("POST")
	r.HandleFunc("/api/login", h.Login).Methods("POST")
	r.HandleFunc("/api/health", h.HealthCheck).Methods("GET")

	// Protected routes: JWT first, then one ApiCall row per request
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.JWTAuth)
	protected.Use(recordCall)

	// User and household routes
	protected.HandleFunc("/user/profile", h.GetProfile).Methods("GET")
	protected.HandleFunc("/user/profile", h.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/household", h.GetHousehold).Methods("GET")
	protected.HandleFunc("/household", h.UpdateHousehold).Methods("PUT")

	// Household member routes
	protected.HandleFunc("/members", h.ListHouseholdMembers).Methods("GET")
	protected.HandleFunc("/members", h.CreateHouseholdMember).Methods("POST")
	protected.HandleFunc("/members/{uuid}", h.GetHouseholdMember).Methods("GET")
	protected.HandleFunc("/members/{uuid}", h.UpdateHouseholdMember).Methods("PUT")
	protected.HandleFunc("/members/{uuid}", h.DeleteHouseholdMember).Methods("DELETE")

	// Category routes
	protected.HandleFunc("/categories", h.ListCategories).Methods("GET")
	protected.HandleFunc("/categories", h.CreateCategory).Methods("POST")
	protected.HandleFunc("/categories/{uuid}", h.GetCategory).Methods("GET")
	protected.HandleFunc("/categories/{uuid}", h.UpdateCategory).Methods("PUT")
	protected.HandleFunc("/categories/{uuid}", h.DeleteCategory).Methods("DELETE")

	// Subcategory routes
	protected.HandleFunc("/subcategories", h.ListSubcategories).Methods("GET")
	protected.HandleFunc("/subcategories", h.CreateSubcategory).Methods("POST")
	protected.HandleFunc("/subcategories/{uuid}", h.GetSubcategory).Methods("GET")
	protected.HandleFunc("/subcategories/{uuid}", h.UpdateSubcategory).Methods("PUT")
	protected.HandleFunc("/subcategories/{uuid}", h.DeleteSubcategory).Methods("DELETE")

	// Budget routes
	protected.HandleFunc("/budgets", h.ListBudgets).Methods("GET")
	protected.HandleFunc("/budgets", h.CreateBudget).Methods("POST")
	protected.HandleFunc("/budgets/{uuid}", h.GetBudget).Methods("GET")
	protected.HandleFunc("/budgets/{uuid}", h.UpdateBudget).Methods("PUT")
	protected.HandleFunc("/budgets/{uuid}", h.DeleteBudget).Methods("DELETE")

	// Vendor routes
	protected.HandleFunc("/vendors", h.ListVendors).Methods("GET")
	protected.HandleFunc("/vendors", h.CreateVendor).Methods("POST")
	protected.HandleFunc("/vendors/{uuid}", h.GetVendor).Methods("GET")
	protected.HandleFunc("/vendors/{uuid}", h.UpdateVendor).Methods("PUT")
	protected.HandleFunc("/vendors/{uuid}", h.DeleteVendor).Methods("DELETE")

	// Expense routes
	protected.HandleFunc("/expenses", h.ListExpenses).Methods("GET")
	protected.HandleFunc("/expenses", h.CreateExpense).Methods("POST")
	protected.HandleFunc("/expenses/{uuid}", h.GetExpense).Methods("GET")
	protected.HandleFunc("/expenses/{uuid}", h.UpdateExpense).Methods("PUT")
	protected.HandleFunc("/expenses/{uuid}", h.DeleteExpense).Methods("DELETE")

	// Income routes
	protected.HandleFunc("/incomes", h.ListIncomes).Methods("GET")
	protected.HandleFunc("/incomes", h.CreateIncome).Methods("POST")
	protected.HandleFunc("/incomes/{uuid}", h.GetIncome).Methods("GET")
	protected.HandleFunc("/incomes/{uuid}", h.UpdateIncome).Methods("PUT")
	protected.HandleFunc("/incomes/{uuid}", h.DeleteIncome).Methods("DELETE")

	// Fund and deposit routes
	protected.HandleFunc("/funds", h.ListFunds).Methods("GET")
	protected.HandleFunc("/funds", h.CreateFund).Methods("POST")
	protected.HandleFunc("/funds/{uuid}", h.GetFund).Methods("GET")
	protected.HandleFunc("/funds/{uuid}", h.UpdateFund).Methods("PUT")
	protected.HandleFunc("/funds/{uuid}", h.DeleteFund).Methods("DELETE")
	protected.HandleFunc("/deposits", h.ListDeposits).Methods("GET")
	protected.HandleFunc("/deposits", h.CreateDeposit).Methods("POST")
	protected.HandleFunc("/deposits/{uuid}", h.GetDeposit).Methods("GET")
	protected.HandleFunc("/deposits/{uuid}", h.UpdateDeposit).Methods("PUT")
	protected.HandleFunc("/deposits/{uuid}", h.DeleteDeposit).Methods("DELETE")

	// Audit trail routes
	protected.HandleFunc("/audit-logs", h.GetAuditLogs).Methods("GET")
	protected.HandleFunc("/api-calls", h.GetApiCalls).Methods("GET")

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", cfg.Environment)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
