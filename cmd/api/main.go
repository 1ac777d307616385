package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/MyResearchRoom/mrrhr/internal/config"
	appHTTP "github.com/MyResearchRoom/mrrhr/internal/handler/http"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/crypto"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/database"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/jwt"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/storage"
	"github.com/MyResearchRoom/mrrhr/internal/repository/postgresql"
	attendanceService "github.com/MyResearchRoom/mrrhr/internal/service/attendance"
	authService "github.com/MyResearchRoom/mrrhr/internal/service/auth"
	employeeService "github.com/MyResearchRoom/mrrhr/internal/service/employee"
	expenseService "github.com/MyResearchRoom/mrrhr/internal/service/expense"
	holidayService "github.com/MyResearchRoom/mrrhr/internal/service/holiday"
	leaveService "github.com/MyResearchRoom/mrrhr/internal/service/leave"
	payrollService "github.com/MyResearchRoom/mrrhr/internal/service/payroll"
	payslipService "github.com/MyResearchRoom/mrrhr/internal/service/payslip"
	salaryService "github.com/MyResearchRoom/mrrhr/internal/service/salary"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "mrrhr"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	codec, err := crypto.NewCodec(cfg.Crypto.EncryptionSecret)
	if err != nil {
		log.Fatal("Failed to initialize field encryption:", err)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	structureRepo := postgresql.NewSalaryStructureRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	claimRepo := postgresql.NewExpenseClaimRepository(db)
	slipRepo := postgresql.NewPaymentSlipRepository(db)

	inTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calendar := holidayService.NewCachedCalendar(holidayRepo, cfg.Payroll.HolidayCacheTTL)

	auth := authService.NewService(userRepo, jwtService, logger)
	employees := employeeService.NewService(employeeRepo, userRepo, codec, employeeService.TxRunner(inTx), logger)
	attendances := attendanceService.NewService(attendanceRepo, logger)
	leaves := leaveService.NewService(leaveRepo, logger)
	holidays := holidayService.NewService(holidayRepo, calendar, logger)
	structures := salaryService.NewService(structureRepo, employeeRepo, logger)
	payrolls := payrollService.NewService(
		payrollRepo, employeeRepo, attendanceRepo, leaveRepo, structureRepo,
		calendar, codec, payrollService.TxRunner(inTx), logger,
	)
	claims := expenseService.NewService(claimRepo, fileStorage, logger)
	slips := payslipService.NewService(slipRepo, payrollRepo, employeeRepo, fileStorage, logger)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:  jwtService,
		Logger:      logger,
		Auth:        appHTTP.NewAuthHandler(auth, jwtService),
		Employee:    appHTTP.NewEmployeeHandler(employees),
		Attendance:  appHTTP.NewAttendanceHandler(attendances),
		Leave:       appHTTP.NewLeaveHandler(leaves),
		Payroll:     appHTTP.NewPayrollHandler(payrolls, structures),
		Expense:     appHTTP.NewExpenseHandler(claims),
		Payslip:     appHTTP.NewPayslipHandler(slips),
		Holiday:     appHTTP.NewHolidayHandler(holidays),
		FrontendURL: cfg.App.FrontendURL,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server starting", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
