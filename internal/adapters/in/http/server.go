// Package http exposes the dashboard operations over HTTP using echo.
// Request bodies are validated with go-playground/validator before reaching
// the application layer; business errors map to HTTP status codes here.
package http

import (
	"errors"
	"net/http"

	"zepta/internal/core/application/usecases/commands"
	"zepta/internal/core/application/usecases/queries"
	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/model/order"
	"zepta/internal/core/domain/services"
	"zepta/internal/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	validate *validator.Validate

	// Command handlers
	createStoreHandler         commands.CreateStoreCommandHandler
	createAgentHandler         commands.CreateAgentCommandHandler
	updateAgentLocationHandler commands.UpdateAgentLocationCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	assignAgentHandler         commands.AssignAgentCommandHandler
	bulkAssignHandler          commands.BulkAssignAgentsCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler
	getAgentsHandler queries.GetAgentsQueryHandler
	getStoresHandler queries.GetStoresQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createStoreHandler commands.CreateStoreCommandHandler,
	createAgentHandler commands.CreateAgentCommandHandler,
	updateAgentLocationHandler commands.UpdateAgentLocationCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	bulkAssignHandler commands.BulkAssignAgentsCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getAgentsHandler queries.GetAgentsQueryHandler,
	getStoresHandler queries.GetStoresQueryHandler,
) *Server {
	return &Server{
		validate:                   validator.New(),
		createStoreHandler:         createStoreHandler,
		createAgentHandler:         createAgentHandler,
		updateAgentLocationHandler: updateAgentLocationHandler,
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		assignAgentHandler:         assignAgentHandler,
		bulkAssignHandler:          bulkAssignHandler,
		getOrdersHandler:           getOrdersHandler,
		getAgentsHandler:           getAgentsHandler,
		getStoresHandler:           getStoresHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/stores", s.CreateStore)
	api.GET("/stores", s.GetStores)

	api.POST("/agents", s.CreateAgent)
	api.GET("/agents", s.GetAgents)
	api.PATCH("/agents/:id/location", s.UpdateAgentLocation)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/assign", s.AssignAgent)
	api.POST("/orders/assignments", s.BulkAssignAgents)
}

// Request and response bodies.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createStoreRequest struct {
	Name      string   `json:"name" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type createAgentRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateAgentLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

type createOrderRequest struct {
	StoreID string `json:"storeId" validate:"required,uuid"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type assignResponse struct {
	OrderID string `json:"orderId"`
	AgentID string `json:"agentId"`
}

type bulkAssignResponse struct {
	Assigned int `json:"assigned"`
	Failed   int `json:"failed"`
}

type storeResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type agentResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Active    bool     `json:"active"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type orderResponse struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	StoreID   string  `json:"storeId"`
	StoreName string  `json:"storeName"`
	AgentID   *string `json:"agentId"`
	AgentName *string `json:"agentName"`
}

// CreateStore handles POST /api/v1/stores.
func (s *Server) CreateStore(ctx echo.Context) error {
	var req createStoreRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return badRequest(ctx, errors.New("latitude and longitude must be provided together"))
	}

	var location *kernel.GeoPoint
	if req.Latitude != nil {
		point, err := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
		if err != nil {
			return badRequest(ctx, err)
		}
		location = &point
	}

	storeID := kernel.NewUUID()
	cmd, err := commands.NewCreateStoreCommand(storeID, req.Name, location)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createStoreHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to create store")
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: storeID.String()})
}

// GetStores handles GET /api/v1/stores.
func (s *Server) GetStores(ctx echo.Context) error {
	stores, err := s.getStoresHandler.Handle(ctx.Request().Context(), queries.NewGetStoresQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve stores")
	}

	response := make([]storeResponse, len(stores))
	for i, st := range stores {
		response[i] = storeResponse{
			ID:   st.ID.String(),
			Name: st.Name,
		}
		if st.Location != nil {
			latitude := st.Location.Latitude()
			longitude := st.Location.Longitude()
			response[i].Latitude = &latitude
			response[i].Longitude = &longitude
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAgent handles POST /api/v1/agents.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var req createAgentRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAgentCommand(agentID, req.Name)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to create agent")
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: agentID.String()})
}

// GetAgents handles GET /api/v1/agents.
func (s *Server) GetAgents(ctx echo.Context) error {
	agents, err := s.getAgentsHandler.Handle(ctx.Request().Context(), queries.NewGetAgentsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve agents")
	}

	response := make([]agentResponse, len(agents))
	for i, a := range agents {
		response[i] = agentResponse{
			ID:     a.ID.String(),
			Name:   a.Name,
			Active: a.Active,
		}
		if a.Location != nil {
			latitude := a.Location.Latitude()
			longitude := a.Location.Longitude()
			response[i].Latitude = &latitude
			response[i].Longitude = &longitude
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateAgentLocation handles PATCH /api/v1/agents/:id/location.
func (s *Server) UpdateAgentLocation(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updateAgentLocationRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	point, err := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateAgentLocationCommand(agentID, point)
	if err != nil {
		return badRequest(ctx, err)
	}

	err = s.updateAgentLocationHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrAgentNotFound) {
		return notFound(ctx, "Agent not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to update agent location")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, storeID)
	if err != nil {
		return badRequest(ctx, err)
	}

	err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrStoreNotFound) {
		return notFound(ctx, "Store not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			ID:        o.ID.String(),
			Status:    o.Status,
			StoreID:   o.StoreID.String(),
			StoreName: o.StoreName,
			AgentName: o.AgentName,
		}
		if o.AgentID != nil {
			agentID := o.AgentID.String()
			response[i].AgentID = &agentID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updateOrderStatusRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrOrderNotFound) {
		return notFound(ctx, "Order not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignAgent(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignAgentCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	agentID, err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, commands.ErrOrderNotAssignable):
		return conflict(ctx, "Order is not eligible for assignment")
	case errors.Is(err, services.ErrNoAgentAvailable):
		metrics.AssignmentsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		return conflict(ctx, "No active agents available")
	case err != nil:
		metrics.AssignmentsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		return internalError(ctx, "Failed to assign agent")
	}

	metrics.AssignmentsTotal.WithLabelValues(metrics.ResultAssigned).Inc()
	return ctx.JSON(http.StatusOK, assignResponse{
		OrderID: orderID.String(),
		AgentID: agentID.String(),
	})
}

// BulkAssignAgents handles POST /api/v1/orders/assignments - the dashboard
// "Auto-Assign All" action.
func (s *Server) BulkAssignAgents(ctx echo.Context) error {
	cmd := commands.NewBulkAssignAgentsCommand()

	result, err := s.bulkAssignHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrNoEligibleOrders):
		return conflict(ctx, "No orders eligible for assignment")
	case errors.Is(err, commands.ErrNoActiveAgents):
		return conflict(ctx, "No active agents available")
	case err != nil:
		return internalError(ctx, "Assignment sweep failed")
	}

	metrics.RecordSweep(result.Assigned, result.Failed)
	return ctx.JSON(http.StatusOK, bulkAssignResponse{
		Assigned: result.Assigned,
		Failed:   result.Failed,
	})
}

// bind decodes and validates a request body.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errors.New("invalid request body")
	}
	return s.validate.Struct(req)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, errorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, errorResponse{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
