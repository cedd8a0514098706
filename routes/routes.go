package routes

import (
	"net/http"
	"strings"

	"storefront/usecases"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Dependencies struct {
	Products    *usecases.ProductUseCases
	Categories  *usecases.ProductCategoryUseCases
	Events      http.Handler
	UploadDir   string
	CORSOrigins []string
	AccessLog   bool
	Log         *zap.Logger
}

// NewApp builds the fiber application with middleware and every route
// mounted.
func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "storefront",
		ErrorHandler: ErrorHandler(deps.Log),
	})

	// Middleware
	app.Use(recover.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{AllowOrigins: strings.Join(deps.CORSOrigins, ",")}))

	// Serve uploaded images
	app.Static("/uploads", deps.UploadDir)

	SetupRoutes(app, deps)
	return app
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	pc := &productController{products: deps.Products, categories: deps.Categories, log: deps.Log}
	cc := &categoryController{categories: deps.Categories}
	fc := &formController{products: deps.Products, categories: deps.Categories}
	uc := &uploadController{dir: deps.UploadDir, log: deps.Log}

	if deps.Events != nil {
		app.Get("/ws/products", adaptor.HTTPHandler(deps.Events))
	}

	// Image upload route
	app.Post("/upload", uc.upload)

	// Product routes
	products := app.Group("/products")
	products.Post("/", pc.create)
	products.Post("/pagination", pc.pagination)
	products.Get("/launchesAndBestSeller", pc.launchesAndBestSeller)
	products.Get("/listAll", pc.listAll)
	products.Get("/:id", pc.getByID)
	products.Put("/:id", pc.update)
	products.Delete("/:id", pc.delete)

	// Product category routes
	categories := app.Group("/product-categories")
	categories.Post("/", cc.create)
	categories.Get("/list", cc.list)
	categories.Get("/:id", cc.getByID)
	categories.Get("/:id/subcategories", cc.subcategories)
	categories.Put("/:id", cc.update)
	categories.Delete("/:id", cc.delete)

	subcategories := app.Group("/subcategories")
	subcategories.Post("/", cc.createSubcategory)
	subcategories.Put("/:id", cc.updateSubcategory)
	subcategories.Delete("/:id", cc.deleteSubcategory)

	// Admin product form
	app.Get("/system/produto/form/:id", fc.show)
	app.Post("/system/produto/form/:id", fc.submit)
	app.Post("/api/list-subcategories-by-category", fc.listSubcategories)
}
