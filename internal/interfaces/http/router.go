package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/auth"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/i18n"
	"github.com/jhoicas/busfleet-console/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Gate        *auth.Gate
	DashboardUC *usecase.DashboardUseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	VehicleUC   *usecase.VehicleUseCase
	RouteUC     *usecase.RouteUseCase
	RouteSheet  *usecase.RouteSheetUseCase
	Translator  *i18n.Translator
	Log         *logger.Logger
	Cookie      SessionCookie
	PollSeconds int
}

// Router registra las páginas de la consola y el endpoint de sondeo de sesión.
func Router(app *fiber.App, deps RouterDeps) {
	p := &pages{
		tr:          deps.Translator,
		auth:        deps.AuthUC,
		cookie:      deps.Cookie,
		pollSeconds: deps.PollSeconds,
		log:         deps.Log,
	}

	// Auth (público)
	authHandler := NewAuthHandler(p, deps.AuthUC)
	app.Get("/", authHandler.Landing)
	app.Get("/login", authHandler.ProviderLogin)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/password/forgot", authHandler.ForgotForm)
	app.Post("/password/forgot", authHandler.Forgot)
	app.Get("/password/reset", authHandler.ResetForm)
	app.Post("/password/reset", authHandler.Reset)

	sessionHandler := NewSessionHandler(deps.Gate, deps.Cookie)
	app.Get("/api/session", sessionHandler.Status)

	// Panel (requiere sesión verificada y rol con acceso)
	dashboard := app.Group("/dashboard", AuthGate(deps.Gate, deps.Cookie), ResolveScope(deps.DashboardUC, p))
	dashboard.Get("/", NewDashboardHandler().Index)

	// Companies: solo el alcance global las modifica.
	global := RequireGlobalScope(p)
	companies := dashboard.Group("/companies")
	companyHandler := NewCompanyHandler(p, deps.CompanyUC, deps.DashboardUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/new", global, companyHandler.New)
	companies.Post("/", global, companyHandler.Create)
	companies.Get("/:id", companyHandler.Show)
	companies.Get("/:id/edit", global, companyHandler.Edit)
	companies.Post("/:id", global, companyHandler.Update)
	companies.Get("/:id/delete", global, companyHandler.ConfirmDelete)
	companies.Post("/:id/delete", global, companyHandler.Delete)

	users := dashboard.Group("/users")
	userHandler := NewUserHandler(p, deps.UserUC, deps.DashboardUC)
	users.Get("/", userHandler.List)
	users.Get("/new", userHandler.New)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.Show)
	users.Get("/:id/edit", userHandler.Edit)
	users.Post("/:id", userHandler.Update)
	users.Get("/:id/delete", userHandler.ConfirmDelete)
	users.Post("/:id/delete", userHandler.Delete)

	vehicles := dashboard.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(p, deps.VehicleUC, deps.DashboardUC)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/new", vehicleHandler.New)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/:id", vehicleHandler.Show)
	vehicles.Get("/:id/edit", vehicleHandler.Edit)
	vehicles.Post("/:id", vehicleHandler.Update)
	vehicles.Post("/:id/status", vehicleHandler.UpdateStatus)
	vehicles.Get("/:id/delete", vehicleHandler.ConfirmDelete)
	vehicles.Post("/:id/delete", vehicleHandler.Delete)

	routes := dashboard.Group("/routes")
	routeHandler := NewRouteHandler(p, deps.RouteUC, deps.VehicleUC, deps.RouteSheet, deps.DashboardUC)
	routes.Get("/", routeHandler.List)
	routes.Get("/new", routeHandler.New)
	routes.Post("/", routeHandler.Create)
	routes.Get("/:id", routeHandler.Show)
	routes.Get("/:id/edit", routeHandler.Edit)
	routes.Get("/:id/sheet.pdf", routeHandler.Sheet)
	routes.Post("/:id", routeHandler.Update)
	routes.Post("/:id/status", routeHandler.UpdateStatus)
	routes.Get("/:id/delete", routeHandler.ConfirmDelete)
	routes.Post("/:id/delete", routeHandler.Delete)

	profileHandler := NewProfileHandler(p, deps.UserUC)
	dashboard.Get("/profile", profileHandler.Show)
	dashboard.Post("/profile", profileHandler.Update)
}
