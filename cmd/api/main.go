package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/Jaswanth86/Credit/internal/adapter/http"
	mw "github.com/Jaswanth86/Credit/internal/adapter/middleware"
	"github.com/Jaswanth86/Credit/internal/adapter/repository/mysql"
	"github.com/Jaswanth86/Credit/internal/config"
	"github.com/Jaswanth86/Credit/internal/infrastructure/cache"
	"github.com/Jaswanth86/Credit/internal/infrastructure/db"
	"github.com/Jaswanth86/Credit/internal/logging"
	adminuc "github.com/Jaswanth86/Credit/internal/usecase/admin"
	loanuc "github.com/Jaswanth86/Credit/internal/usecase/loan"
	"github.com/Jaswanth86/Credit/internal/usecase/stats"
	"github.com/Jaswanth86/Credit/pkg/metrics"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	collector := metrics.NewCollector()

	bounds := loanuc.Bounds{MinAmount: cfg.LoanMinAmount, MaxAmount: cfg.LoanMaxAmount}
	loanUC := loanuc.NewUsecase(loans, users, uow, bounds, logger)
	statsSvc := stats.NewService(loans, users, cache.NewStatsCache(rdb),
		time.Duration(cfg.StatsTTLSecs)*time.Second, logger)
	adminUC := adminuc.NewUsecase(users, logger)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC, collector)
	statsH := httpadp.NewStatsHandler(statsSvc)
	adminH := httpadp.NewAdminHandler(adminUC, loanUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(collector.Handler()))

	api := e.Group("", mw.ActorMiddleware())
	idem := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api.POST("/loans", loanH.SubmitLoan, idem)
	api.GET("/loans", loanH.ListLoans)
	api.GET("/loans/:loan_id", loanH.GetLoan)
	api.POST("/loans/:loan_id/verify", loanH.VerifyLoan, idem)
	api.POST("/loans/:loan_id/approve", loanH.ApproveLoan, idem)
	api.POST("/loans/:loan_id/reject", loanH.RejectLoan, idem)

	api.GET("/stats", statsH.GetStats)

	api.GET("/admin/users", adminH.ListUsers)
	api.GET("/admin/users/:user_id/loans", adminH.ListUserLoans)
	api.PATCH("/admin/users/:user_id/status", adminH.UpdateUserStatus, idem)
	api.PATCH("/admin/users/:user_id/role", adminH.UpdateUserRole, idem)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
