package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/config"
	appHTTP "github.com/cmlabs-hris/timesheet-engine-go/internal/handler/http"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/cron"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/timesheet-engine-go/internal/service/attendance"
	policyService "github.com/cmlabs-hris/timesheet-engine-go/internal/service/policy"
	timesheetService "github.com/cmlabs-hris/timesheet-engine-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	snapshotRepo := postgresql.NewSnapshotRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	policySvc := policyService.NewPolicyService(policyRepo, holidayRepo)
	timesheetSvc := timesheetService.NewTimesheetService(
		employeeRepo,
		shiftRepo,
		attendanceRepo,
		policyRepo,
		holidayRepo,
		leaveRepo,
		snapshotRepo,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		policyHandler,
		timesheetHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
