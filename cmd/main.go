package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/injaz-systems/office-api/internal/activity"
	"github.com/injaz-systems/office-api/internal/auth"
	"github.com/injaz-systems/office-api/internal/client"
	"github.com/injaz-systems/office-api/internal/config"
	"github.com/injaz-systems/office-api/internal/contract"
	"github.com/injaz-systems/office-api/internal/dashboard"
	"github.com/injaz-systems/office-api/internal/document"
	"github.com/injaz-systems/office-api/internal/employee"
	"github.com/injaz-systems/office-api/internal/followup"
	"github.com/injaz-systems/office-api/internal/logging"
	"github.com/injaz-systems/office-api/internal/payment"
	"github.com/injaz-systems/office-api/internal/permission"
	"github.com/injaz-systems/office-api/internal/quotation"
	"github.com/injaz-systems/office-api/internal/role"
	"github.com/injaz-systems/office-api/internal/sequence"
	"github.com/injaz-systems/office-api/internal/street"
	"github.com/injaz-systems/office-api/internal/task"
	"github.com/injaz-systems/office-api/internal/transaction"
	"github.com/injaz-systems/office-api/internal/transactiontype"
	"github.com/injaz-systems/office-api/internal/utils/db"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)
	auth.Init(cfg.JWTSecret)

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	migrations := []func(*gorm.DB) error{
		sequence.Migrate,
		activity.Migrate,
		client.Migrate,
		employee.Migrate,
		permission.Migrate,
		role.Migrate,
		transactiontype.Migrate,
		transaction.Migrate,
		payment.Migrate,
		task.Migrate,
		followup.Migrate,
		contract.Migrate,
		quotation.Migrate,
		document.Migrate,
		street.Migrate,
	}
	for _, m := range migrations {
		if err := m(conn); err != nil {
			log.Fatal().Err(err).Msg("migrate")
		}
	}

	employees := employee.NewHandler(conn, log)
	clients := client.NewHandler(conn, log)
	types := transactiontype.NewHandler(conn)
	transactions := transaction.NewHandler(conn, log)
	payments := payment.NewHandler(conn, log)
	tasks := task.NewHandler(conn, log)
	agents := followup.NewHandler(conn, log)
	contracts := contract.NewHandler(conn, log)
	quotations := quotation.NewHandler(conn, log)
	documents := document.NewHandler(conn, log)
	streets := street.NewHandler(conn, log)
	permissions := permission.NewHandler(conn, log)
	roles := role.NewHandler(conn, log)
	board := dashboard.NewHandler(conn, log)

	r := mux.NewRouter()
	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")

	// Public auth routes
	r.HandleFunc("/api/auth/register", employees.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", employees.Login).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware)

	api.HandleFunc("/employees/me", employees.Me).Methods("GET")
	api.HandleFunc("/employees", employees.List).Methods("GET")
	api.HandleFunc("/employees/{id}", employees.Get).Methods("GET")
	api.HandleFunc("/employees/{id}", employees.Update).Methods("PUT")
	api.HandleFunc("/employees/{id}", employees.Delete).Methods("DELETE")
	api.HandleFunc("/employees/{id}/permissions", roles.EmployeePermissions).Methods("GET")

	api.HandleFunc("/clients", clients.Create).Methods("POST")
	api.HandleFunc("/clients", clients.List).Methods("GET")
	api.HandleFunc("/clients/simple", clients.ListSimple).Methods("GET")
	api.HandleFunc("/clients/{id}", clients.Get).Methods("GET")
	api.HandleFunc("/clients/{id}", clients.Update).Methods("PUT")
	api.HandleFunc("/clients/{id}", clients.Delete).Methods("DELETE")

	// Type routes are registered before /transactions/{id} so "types" never
	// resolves as a transaction id.
	api.HandleFunc("/transactions/types", types.Create).Methods("POST")
	api.HandleFunc("/transactions/types", types.ListSimple).Methods("GET")
	api.HandleFunc("/transactions/types/full", types.ListFull).Methods("GET")
	api.HandleFunc("/transactions/types/{id}/template-fees", types.TemplateFees).Methods("GET")
	api.HandleFunc("/transactions/types/{id}", types.Update).Methods("PUT")
	api.HandleFunc("/transactions/types/{id}", types.Delete).Methods("DELETE")

	api.HandleFunc("/transactions", transactions.Create).Methods("POST")
	api.HandleFunc("/transactions", transactions.List).Methods("GET")
	api.HandleFunc("/transactions/{id}", transactions.Get).Methods("GET")
	api.HandleFunc("/transactions/{id}", transactions.Update).Methods("PUT")
	api.HandleFunc("/transactions/{id}", transactions.Delete).Methods("DELETE")
	api.HandleFunc("/transactions/{id}/staff", transactions.UpdateStaff).Methods("PUT")

	api.HandleFunc("/payments/cash", payments.CreateCash).Methods("POST")
	api.HandleFunc("/payments/cash", payments.ListCash).Methods("GET")
	api.HandleFunc("/payments/transaction/{ref}", payments.ListByTransaction).Methods("GET")

	api.HandleFunc("/tasks", tasks.Create).Methods("POST")
	api.HandleFunc("/tasks", tasks.List).Methods("GET")
	api.HandleFunc("/tasks/mine", tasks.Mine).Methods("GET")
	api.HandleFunc("/tasks/{id}", tasks.Get).Methods("GET")
	api.HandleFunc("/tasks/{id}", tasks.Update).Methods("PUT")
	api.HandleFunc("/tasks/{id}", tasks.Delete).Methods("DELETE")

	api.HandleFunc("/follow-up-agents", agents.Create).Methods("POST")
	api.HandleFunc("/follow-up-agents", agents.List).Methods("GET")
	api.HandleFunc("/follow-up-agents/{id}", agents.Get).Methods("GET")
	api.HandleFunc("/follow-up-agents/{id}", agents.Update).Methods("PUT")
	api.HandleFunc("/follow-up-agents/{id}", agents.Delete).Methods("DELETE")

	api.HandleFunc("/contracts", contracts.Create).Methods("POST")
	api.HandleFunc("/contracts", contracts.List).Methods("GET")
	api.HandleFunc("/contracts/{id}", contracts.Get).Methods("GET")
	api.HandleFunc("/contracts/{id}", contracts.Update).Methods("PUT")
	api.HandleFunc("/contracts/{id}", contracts.Delete).Methods("DELETE")

	api.HandleFunc("/quotations", quotations.Create).Methods("POST")
	api.HandleFunc("/quotations", quotations.List).Methods("GET")
	api.HandleFunc("/quotations/{id}", quotations.Get).Methods("GET")
	api.HandleFunc("/quotations/{id}", quotations.Update).Methods("PUT")
	api.HandleFunc("/quotations/{id}", quotations.Delete).Methods("DELETE")

	api.HandleFunc("/documents", documents.Create).Methods("POST")
	api.HandleFunc("/documents", documents.List).Methods("GET")
	api.HandleFunc("/documents/{id}", documents.Get).Methods("GET")
	api.HandleFunc("/documents/{id}", documents.Update).Methods("PUT")
	api.HandleFunc("/documents/{id}", documents.Delete).Methods("DELETE")

	api.HandleFunc("/streets", streets.Create).Methods("POST")
	api.HandleFunc("/streets", streets.List).Methods("GET")
	api.HandleFunc("/streets/{id}", streets.Get).Methods("GET")
	api.HandleFunc("/streets/{id}", streets.Update).Methods("PUT")
	api.HandleFunc("/streets/{id}", streets.Delete).Methods("DELETE")

	api.HandleFunc("/permissions", permissions.Create).Methods("POST")
	api.HandleFunc("/permissions", permissions.List).Methods("GET")
	api.HandleFunc("/permissions/{id}", permissions.Update).Methods("PUT")
	api.HandleFunc("/permissions/{id}", permissions.Delete).Methods("DELETE")

	api.HandleFunc("/roles", roles.Create).Methods("POST")
	api.HandleFunc("/roles", roles.List).Methods("GET")
	api.HandleFunc("/roles/{id}", roles.Get).Methods("GET")
	api.HandleFunc("/roles/{id}", roles.Update).Methods("PUT")
	api.HandleFunc("/roles/{id}", roles.Delete).Methods("DELETE")
	api.HandleFunc("/roles/{id}/assign", roles.AssignEmployee).Methods("POST")

	api.HandleFunc("/dashboard", board.Summary).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(logging.RequestLogger(log)(r))

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
