package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tponsmiquel/almacen/internal/application/auth"
	"github.com/tponsmiquel/almacen/internal/application/orders"
	"github.com/tponsmiquel/almacen/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticleUC   *usecase.ArticleUseCase
	ClientUC    *usecase.ClientUseCase
	EntryUC     *usecase.EntryUseCase
	ExitUC      *usecase.ExitUseCase
	SubmitBatch *orders.SubmitBatchUseCase
	AuthorizeUC *orders.AuthorizeOrderUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Articles (protegido)
	articles := protected.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC)
	articles.Post("/", articleHandler.Create)
	articles.Get("/", articleHandler.List)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Put("/:id", articleHandler.Update)
	articles.Delete("/:id", articleHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Entries (protegido)
	entries := protected.Group("/entries")
	entryHandler := NewEntryHandler(deps.EntryUC)
	entries.Post("/", entryHandler.Create)
	entries.Get("/", entryHandler.List)
	entries.Get("/:id", entryHandler.GetByID)
	entries.Put("/:id", entryHandler.Update)
	entries.Delete("/:id", entryHandler.Delete)

	// Exits (protegido): CRUD, pedido múltiple y autorización
	exits := protected.Group("/exits")
	exitHandler := NewExitHandler(deps.ExitUC, deps.SubmitBatch, deps.AuthorizeUC)
	exits.Post("/create_multiple", exitHandler.CreateMultiple)
	exits.Post("/", exitHandler.Create)
	exits.Get("/", exitHandler.List)
	exits.Get("/:id/authorize", exitHandler.Authorize)
	exits.Get("/:id", exitHandler.GetByID)
	exits.Put("/:id", exitHandler.Update)
	exits.Delete("/:id", exitHandler.Delete)
}
