package main

import (
	"fmt"
	"net/http"

	"github.com/bersihkilat/erp-backend-go/internal/config"
	appHTTP "github.com/bersihkilat/erp-backend-go/internal/handler/http"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/database"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/jwt"
	"github.com/bersihkilat/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/bersihkilat/erp-backend-go/internal/service/attendance"
	authService "github.com/bersihkilat/erp-backend-go/internal/service/auth"
	commissionService "github.com/bersihkilat/erp-backend-go/internal/service/commission"
	payrollService "github.com/bersihkilat/erp-backend-go/internal/service/payroll"
	productionService "github.com/bersihkilat/erp-backend-go/internal/service/production"
	userService "github.com/bersihkilat/erp-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	productionRepo := postgresql.NewProductionRepository(db)
	commissionRepo := postgresql.NewCommissionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, auditRepo, userRepo)
	productionSvc := productionService.NewProductionService(productionRepo)
	commissionSvc := commissionService.NewCommissionService(commissionRepo, productionRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, userRepo, attendanceRepo, productionRepo, commissionRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	productionHandler := appHTTP.NewProductionHandler(productionSvc)
	commissionHandler := appHTTP.NewCommissionHandler(commissionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		userHandler,
		attendanceHandler,
		productionHandler,
		commissionHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
