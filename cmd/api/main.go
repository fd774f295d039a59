package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/boxline/boxline-backend-go/internal/config"
	appHTTP "github.com/boxline/boxline-backend-go/internal/handler/http"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/boxline/boxline-backend-go/internal/pkg/jwt"
	"github.com/boxline/boxline-backend-go/internal/repository/postgresql"
	authService "github.com/boxline/boxline-backend-go/internal/service/auth"
	clientService "github.com/boxline/boxline-backend-go/internal/service/client"
	dashboardService "github.com/boxline/boxline-backend-go/internal/service/dashboard"
	deliveryService "github.com/boxline/boxline-backend-go/internal/service/delivery"
	employeeService "github.com/boxline/boxline-backend-go/internal/service/employee"
	manufacturingService "github.com/boxline/boxline-backend-go/internal/service/manufacturing"
	orderService "github.com/boxline/boxline-backend-go/internal/service/order"
	payrollService "github.com/boxline/boxline-backend-go/internal/service/payroll"
	quoteService "github.com/boxline/boxline-backend-go/internal/service/quote"
	timeRecordService "github.com/boxline/boxline-backend-go/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	quoteRepo := postgresql.NewQuoteRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	moRepo := postgresql.NewMORepository(db)
	deliveryRepo := postgresql.NewDeliveryRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	clientSvc := clientService.NewClientService(clientRepo)
	quoteSvc := quoteService.NewQuoteService(db, quoteRepo, orderRepo, clientRepo)
	orderSvc := orderService.NewOrderService(orderRepo, clientRepo)
	moSvc := manufacturingService.NewMOService(db, moRepo, orderRepo)
	deliverySvc := deliveryService.NewDeliveryService(db, deliveryRepo, orderRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	timeRecordSvc := timeRecordService.NewTimeRecordService(timeRecordRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, timeRecordRepo, cfg.Company.Name)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	handlers := appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(authSvc, jwtService),
		Client:        appHTTP.NewClientHandler(clientSvc),
		Quote:         appHTTP.NewQuoteHandler(quoteSvc),
		Order:         appHTTP.NewOrderHandler(orderSvc),
		Manufacturing: appHTTP.NewManufacturingHandler(moSvc),
		Delivery:      appHTTP.NewDeliveryHandler(deliverySvc),
		Employee:      appHTTP.NewEmployeeHandler(employeeSvc),
		TimeRecord:    appHTTP.NewTimeRecordHandler(timeRecordSvc),
		Payroll:       appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:     appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
