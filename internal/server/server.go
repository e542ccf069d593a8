package server

import (
	"context"
	"net/http"

	"jikgusignalstore/internal/handler"
	appmiddleware "jikgusignalstore/internal/middleware"
	"jikgusignalstore/internal/service"
	"jikgusignalstore/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	adminHandler    *handler.AdminHandler
	webhookHandler  *handler.WebhookHandler
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
}

func NewServer(
	logger *zap.Logger,
	checkoutService service.CheckoutService,
	statsService service.StatsService,
	webhookService service.WebhookService,
	catalogService service.CatalogService,
	orderQueryService service.OrderQueryService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())
	// all origins, methods and headers on purpose
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		adminHandler:    handler.NewAdminHandler(statsService),
		webhookHandler:  handler.NewWebhookHandler(webhookService),
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		orderHandler:    handler.NewOrderHandler(orderQueryService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "ok",
			"service": "jikgusignalstore",
		})
	})

	api.POST("/checkout", s.checkoutHandler.Checkout)
	api.GET("/admin/stats", s.adminHandler.Stats)

	// -------- payment webhooks --------
	api.POST("/webhooks/payment", s.webhookHandler.PaymentWebhook)

	// -------- read-only browsing --------
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:id", s.catalogHandler.GetProduct)
	api.GET("/orders", s.orderHandler.ListOrders)
	api.GET("/orders/:id", s.orderHandler.GetOrder)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}
