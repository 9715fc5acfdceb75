// Package http exposes the label subsystem over a REST API.
package http

import (
	"errors"
	"net/http"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/application/usecases/queries"
	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/services"
	"shiplabel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	generateLabelHandler    commands.GenerateLabelCommandHandler
	generateLabelsHandler   commands.GenerateLabelsCommandHandler
	repeatLabelHandler      commands.RepeatLabelCommandHandler
	cancelExpeditionHandler commands.CancelExpeditionCommandHandler

	// Query handlers
	getExpeditionsHandler queries.GetExpeditionsQueryHandler
	getExpeditionHandler  queries.GetExpeditionQueryHandler

	catalog *catalog.Catalog
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	generateLabelHandler commands.GenerateLabelCommandHandler,
	generateLabelsHandler commands.GenerateLabelsCommandHandler,
	repeatLabelHandler commands.RepeatLabelCommandHandler,
	cancelExpeditionHandler commands.CancelExpeditionCommandHandler,
	getExpeditionsHandler queries.GetExpeditionsQueryHandler,
	getExpeditionHandler queries.GetExpeditionQueryHandler,
	serviceCatalog *catalog.Catalog,
) *Server {
	return &Server{
		generateLabelHandler:    generateLabelHandler,
		generateLabelsHandler:   generateLabelsHandler,
		repeatLabelHandler:      repeatLabelHandler,
		cancelExpeditionHandler: cancelExpeditionHandler,
		getExpeditionsHandler:   getExpeditionsHandler,
		getExpeditionHandler:    getExpeditionHandler,
		catalog:                 serviceCatalog,
	}
}

// RegisterRoutes mounts the API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/labels", s.GenerateLabels)
	api.POST("/labels/repeat", s.RepeatLabel)
	api.POST("/expeditions/cancel", s.CancelExpedition)
	api.GET("/expeditions", s.GetExpeditions)
	api.GET("/expeditions/:orderRef", s.GetExpedition)
	api.GET("/barcode-raw/:code", s.GetBarcodeRaw)
	api.GET("/services", s.GetServices)
}

// GenerateLabels handles POST /api/v1/labels - generates labels for one or
// more orders. A single order id answers with one label result; several
// order ids answer with a batch result.
func (s *Server) GenerateLabels(ctx echo.Context) error {
	var req GenerateLabelsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderIDs := req.OrderIDs
	if len(orderIDs) == 0 && req.OrderID != "" {
		orderIDs = []string{req.OrderID}
	}

	options := req.Options.toLabelOptions()

	if len(orderIDs) == 1 {
		cmd, err := commands.NewGenerateLabelCommand(orderIDs[0], req.Service, options)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid label request: " + err.Error(),
			})
		}

		result, _ := s.generateLabelHandler.Handle(ctx.Request().Context(), cmd)
		return ctx.JSON(statusForLabel(result), toLabelResponse(result))
	}

	cmd, err := commands.NewGenerateLabelsCommand(orderIDs, req.Service, options)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid label request: " + err.Error(),
		})
	}

	batch, err := s.generateLabelsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid label request: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, toBatchResponse(batch))
}

// RepeatLabel handles POST /api/v1/labels/repeat - rerenders the label of a
// stored expedition without changing the shipment. The expedition is picked
// by order reference, or by carrier code when the body carries one (reprint
// from a barcode scan).
func (s *Server) RepeatLabel(ctx echo.Context) error {
	var req OrderRefRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := newRepeatLabelCommand(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid reprint request: " + err.Error(),
		})
	}

	result, err := s.repeatLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "No label was ever generated for this order",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to repeat label",
		})
	}

	return ctx.JSON(http.StatusOK, toLabelResponse(result))
}

// CancelExpedition handles POST /api/v1/expeditions/cancel - cancels a
// shipment if its status still allows it.
func (s *Server) CancelExpedition(ctx echo.Context) error {
	var req OrderRefRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCancelExpeditionCommand(req.OrderRef)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancel request: " + err.Error(),
		})
	}

	if handleErr := s.cancelExpeditionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "No label was ever generated for this order",
			})
		}
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Expedition can no longer be cancelled: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetExpeditions handles GET /api/v1/expeditions - lists expeditions,
// optionally filtered by status.
func (s *Server) GetExpeditions(ctx echo.Context) error {
	query := queries.NewGetExpeditionsQuery(ctx.QueryParam("status"))

	expeditions, err := s.getExpeditionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve expeditions",
		})
	}

	return ctx.JSON(http.StatusOK, expeditions)
}

// GetExpedition handles GET /api/v1/expeditions/:orderRef - retrieves the
// expedition generated for an order.
func (s *Server) GetExpedition(ctx echo.Context) error {
	query, err := queries.NewGetExpeditionQuery(ctx.Param("orderRef"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order reference",
		})
	}

	expedition, err := s.getExpeditionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "No expedition for this order reference",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve expedition",
		})
	}

	return ctx.JSON(http.StatusOK, expedition)
}

// GetBarcodeRaw handles GET /api/v1/barcode-raw/:code - answers with the raw
// printer command stream for an expedition code. The printer query parameter
// selects the command language (zpl, tpcl, laser).
func (s *Server) GetBarcodeRaw(ctx echo.Context) error {
	code, err := kernel.ExpeditionCodeFromString(ctx.Param("code"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid expedition code: " + err.Error(),
		})
	}

	lang := services.ParsePrinterLanguage(ctx.QueryParam("printer"))

	return ctx.String(http.StatusOK, services.BarcodeCommands(code, lang))
}

// GetServices handles GET /api/v1/services - lists the shipping services the
// catalog knows about.
func (s *Server) GetServices(ctx echo.Context) error {
	definitions := s.catalog.All()

	response := make([]ServiceResponse, len(definitions))
	for i, def := range definitions {
		response[i] = ServiceResponse{
			Code:          def.Code,
			Name:          def.Name,
			LabelName:     def.LabelName,
			Family:        def.Family.String(),
			Zones:         def.Zones,
			DeliveryLimit: def.DeliveryLimit,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func newRepeatLabelCommand(req OrderRefRequest) (commands.RepeatLabelCommand, error) {
	if req.Code != "" {
		return commands.NewRepeatLabelCommandForCode(req.Code)
	}
	return commands.NewRepeatLabelCommand(req.OrderRef)
}

func statusForLabel(result commands.LabelResult) int {
	if result.Success {
		return http.StatusOK
	}
	if errors.Is(result.Err, errs.ErrObjectNotFound) {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}
