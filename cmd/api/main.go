package main

import (
	"fmt"
	"net/http"

	"github.com/staffpulse/attendance-backend-go/internal/config"
	appHTTP "github.com/staffpulse/attendance-backend-go/internal/handler/http"
	"github.com/staffpulse/attendance-backend-go/internal/pkg/database"
	"github.com/staffpulse/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffpulse/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffpulse/attendance-backend-go/internal/service/attendance"
	authService "github.com/staffpulse/attendance-backend-go/internal/service/auth"
	leaveService "github.com/staffpulse/attendance-backend-go/internal/service/leave"
	statsService "github.com/staffpulse/attendance-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Println("Error resolving timezone:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, loc)
	statsSvc := statsService.NewStatsService(attendanceRepo, leaveRequestRepo, cfg.Leave.AnnualAllowance, loc)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(statsSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		dashboardHandler,
		leaveHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
