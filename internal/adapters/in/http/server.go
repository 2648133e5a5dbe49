// Package http exposes the order lifecycle over a JSON API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order API.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	dispatchOrdersHandler commands.DispatchOrdersCommandHandler

	// Query handlers
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler

	dispatchSettings ports.DispatchSettings

	// seedEnabled exposes the sample-data endpoint. Development only.
	seedEnabled bool
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	dispatchOrdersHandler commands.DispatchOrdersCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	dispatchSettings ports.DispatchSettings,
	seedEnabled bool,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		dispatchOrdersHandler:    dispatchOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		dispatchSettings:         dispatchSettings,
		seedEnabled:              seedEnabled,
	}
}

// RegisterRoutes attaches the API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/dispatch", s.DispatchOrders)

	if s.seedEnabled {
		api.POST("/orders/seed", s.SeedOrders)
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines, err := linesFromRequest(request.Lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(request.ExternalID, request.CustomerID, lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	snapshot, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromProjection(snapshot))
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQueryResponse(result))
}

// GetOrdersByStatus handles GET /api/v1/orders?status= - lists orders in one
// lifecycle status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown status filter",
		})
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	results, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(results))
	for i, result := range results {
		response[i] = orderFromQueryResponse(result)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel - cancels a pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request CancelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, request.Justification)
	if err != nil {
		return errorResponse(ctx, err)
	}

	snapshot, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromProjection(snapshot))
}

// DispatchOrders handles POST /api/v1/orders/dispatch - runs one dispatch cycle
// immediately instead of waiting for the scheduled job.
func (s *Server) DispatchOrders(ctx echo.Context) error {
	cmd, err := commands.NewDispatchOrdersCommand(s.dispatchSettings.MaxDeliveryAttempts())
	if err != nil {
		return errorResponse(ctx, err)
	}

	delivered, err := s.dispatchOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DispatchResponse{Delivered: delivered})
}

// SeedOrders handles POST /api/v1/orders/seed - creates a batch of sample orders.
// Registered only when seeding is enabled.
func (s *Server) SeedOrders(ctx echo.Context) error {
	seeded := make([]Order, 0, len(seedRequests))

	for _, request := range seedRequests {
		lines, err := linesFromRequest(request.Lines)
		if err != nil {
			return errorResponse(ctx, err)
		}

		cmd, err := commands.NewCreateOrderCommand(request.ExternalID, request.CustomerID, lines)
		if err != nil {
			return errorResponse(ctx, err)
		}

		snapshot, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return errorResponse(ctx, err)
		}

		seeded = append(seeded, orderFromProjection(snapshot))
	}

	return ctx.JSON(http.StatusCreated, seeded)
}

// seedRequests is the fixed sample batch behind the seed endpoint.
var seedRequests = []CreateOrderRequest{
	{ExternalID: 9001, CustomerID: 1, Lines: []OrderLineRequest{
		{ProductID: 500, Quantity: 2, PriceCents: 5000},
	}},
	{ExternalID: 9002, CustomerID: 2, Lines: []OrderLineRequest{
		{ProductID: 501, Quantity: 1, PriceCents: 12999},
		{ProductID: 502, Quantity: 3, PriceCents: 250},
	}},
	{ExternalID: 9003, CustomerID: 3, Lines: []OrderLineRequest{
		{ProductID: 503, Quantity: 5, PriceCents: 1999},
	}},
}

// linesFromRequest builds domain line items from transport line items.
func linesFromRequest(requests []OrderLineRequest) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(requests))

	for _, request := range requests {
		price, err := kernel.NewMoney(request.PriceCents)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(request.ProductID, request.Quantity, price)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
