package router

import (
	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"
	"hrm/backend/internal/middleware"
	"hrm/backend/internal/pkg/repository/postgresql"

	"hrm/backend/internal/repository/postgres/attendance"
	"hrm/backend/internal/repository/postgres/department"
	"hrm/backend/internal/repository/postgres/employee"
	"hrm/backend/internal/repository/postgres/leave"
	"hrm/backend/internal/repository/postgres/location"
	"hrm/backend/internal/repository/postgres/project"
	"hrm/backend/internal/repository/postgres/user"

	attendance_controller "hrm/backend/internal/controller/http/v1/attendance"
	auth_controller "hrm/backend/internal/controller/http/v1/auth"
	department_controller "hrm/backend/internal/controller/http/v1/department"
	employee_controller "hrm/backend/internal/controller/http/v1/employee"
	"hrm/backend/internal/controller/http/v1/file"
	leave_controller "hrm/backend/internal/controller/http/v1/leave"
	location_controller "hrm/backend/internal/controller/http/v1/location"
	project_controller "hrm/backend/internal/controller/http/v1/project"

	"github.com/redis/go-redis/v9"
)

type Router struct {
	*web.App
	postgresDB     *postgresql.Database
	redisDB        *redis.Client
	port           string
	auth           *auth.Auth
	privateKeyPath string
	mediaBasePath  string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	privateKeyPath string,
	mediaBasePath string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		privateKeyPath,
		mediaBasePath,
	}
}

func (r Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CORSMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	employeePostgres := employee.NewRepository(r.postgresDB)
	departmentPostgres := department.NewRepository(r.postgresDB)
	locationPostgres := location.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)
	leavePostgres := leave.NewRepository(r.postgresDB)
	projectPostgres := project.NewRepository(r.postgresDB)

	// controller
	authController := auth_controller.NewController(userPostgres, r.redisDB, r.privateKeyPath)
	employeeController := employee_controller.NewController(employeePostgres)
	departmentController := department_controller.NewController(departmentPostgres)
	locationController := location_controller.NewController(locationPostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres)
	leaveController := leave_controller.NewController(leavePostgres)
	projectController := project_controller.NewController(projectPostgres)

	fileC := file.NewController(r.mediaBasePath)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	r.GET("/media/*filepath", fileC.File)
	r.HEAD("/media/*filepath", fileC.File)
	r.Post("/api/v1/media/upload", fileC.Upload, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Post("/api/v1/attendance/action", attendanceController.RecordAction, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/v1/attendance/self", attendanceController.GetSelfList, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/v1/attendance/list", attendanceController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/attendance", attendanceController.UpsertAdmin, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/attendance/export", attendanceController.Export, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/attendance/report", attendanceController.Report, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #leave
	r.Post("/api/v1/leave", leaveController.Request, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/v1/leave/self", leaveController.GetSelfList, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Put("/api/v1/leave", leaveController.OwnerUpdate, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Delete("/api/v1/leave", leaveController.OwnerCancel, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/v1/leave/list", leaveController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/leave/admin", leaveController.AdminCreate, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/leave", leaveController.AdminDecide, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #employee
	r.Get("/api/v1/employee/list", employeeController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/profile", employeeController.GetProfile, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/v1/employee/export", employeeController.Export, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/:id/badge", employeeController.Badge, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/employee/create", employeeController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/employee/:id", employeeController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #department
	r.Get("/api/v1/department/list", departmentController.GetList, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/v1/department/:id", departmentController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/department/create", departmentController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/department/:id", departmentController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/department/:id", departmentController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #location
	r.Get("/api/v1/location/list", locationController.GetList, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/v1/location/:id", locationController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/location/create", locationController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/location/:id", locationController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/location/:id", locationController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #project
	r.Get("/api/v1/project/list", projectController.GetList, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/v1/project/:id", projectController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/project/create", projectController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/project/:id", projectController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/project/:id", projectController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.port)
}
