package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/attendance"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/auth"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/notification"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/stock"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/usecase"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/visit"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// RouterDeps dependensi untuk router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	ProductUC      *usecase.ProductUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	UserUC         *usecase.UserUseCase
	StockTransfer  *stock.TransferUseCase
	StockQuery     *stock.QueryUseCase
	VisitSubmit    *visit.SubmitUseCase
	VisitQuery     *visit.QueryUseCase
	AttendanceUC   *attendance.UseCase
	NotificationUC *notification.UseCase
	CustomerRepo   repository.CustomerRepository
	JWTSecret      string
}

// Router mendaftarkan rute API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (publik)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rute terproteksi (wajib Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	backOffice := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	// Products: tulis khusus admin, baca semua role
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Deactivate)

	// Warehouses: tulis khusus admin
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Delete)

	// Users: manajemen khusus admin
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Deactivate)

	// Stocks: penyesuaian khusus admin, kueri sesuai peran
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockTransfer, deps.StockQuery)
	stocks.Post("/adjust", adminOnly, stockHandler.Adjust)
	stocks.Get("/mine", stockHandler.MyStock)
	stocks.Get("/warehouse/:id", backOffice, stockHandler.WarehouseStock)
	stocks.Get("/sales/:id", backOffice, stockHandler.SalesStock)
	stocks.Get("/movements/product/:id", backOffice, stockHandler.MovementsByProduct)
	stocks.Get("/movements/warehouse/:id", backOffice, stockHandler.MovementsByWarehouse)

	// Visits: pelaporan oleh sales, pemantauan oleh admin/supervisor
	visits := protected.Group("/visits")
	visitHandler := NewVisitHandler(deps.VisitSubmit, deps.VisitQuery, deps.StockQuery)
	visits.Post("/", visitHandler.Submit)
	visits.Get("/mine", visitHandler.ListMine)
	visits.Get("/user/:id", backOffice, visitHandler.ListByUser)
	visits.Get("/:id", visitHandler.GetByID)
	visits.Get("/:id/movements", visitHandler.Movements)

	// Attendance
	att := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	att.Post("/check-in", attendanceHandler.CheckIn)
	att.Post("/check-out", attendanceHandler.CheckOut)
	att.Get("/today", attendanceHandler.Today)
	att.Get("/history", attendanceHandler.History)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerRepo)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Notifications
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
}
