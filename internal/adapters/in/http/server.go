package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	releaseItemHandler         commands.ReleaseItemCommandHandler
	applyItemTransitionHandler commands.ApplyItemTransitionCommandHandler
	advanceOrderStatusHandler  commands.AdvanceOrderStatusCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	recordLedgerEntryHandler   commands.RecordLedgerEntryCommandHandler
	transferCreditHandler      commands.TransferCreditCommandHandler

	// Query handlers
	getOrderBalanceHandler queries.GetOrderBalanceQueryHandler
	getOrderLedgerHandler  queries.GetOrderLedgerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	releaseItemHandler commands.ReleaseItemCommandHandler,
	applyItemTransitionHandler commands.ApplyItemTransitionCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordLedgerEntryHandler commands.RecordLedgerEntryCommandHandler,
	transferCreditHandler commands.TransferCreditCommandHandler,
	getOrderBalanceHandler queries.GetOrderBalanceQueryHandler,
	getOrderLedgerHandler queries.GetOrderLedgerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		releaseItemHandler:         releaseItemHandler,
		applyItemTransitionHandler: applyItemTransitionHandler,
		advanceOrderStatusHandler:  advanceOrderStatusHandler,
		cancelOrderHandler:         cancelOrderHandler,
		recordLedgerEntryHandler:   recordLedgerEntryHandler,
		transferCreditHandler:      transferCreditHandler,
		getOrderBalanceHandler:     getOrderBalanceHandler,
		getOrderLedgerHandler:      getOrderLedgerHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - reserves a cart of units as a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := actorFromRequest(newOrder.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	selections := make([]commands.UnitSelection, 0, len(newOrder.Selections))
	for _, selection := range newOrder.Selections {
		unitID, unitErr := kernel.UUIDFromBytes(selection.UnitId[:])
		if unitErr != nil {
			return badRequest(ctx, "Invalid unit id: "+unitErr.Error())
		}
		unitPrice, priceErr := kernel.NewMoneyFromString(selection.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+priceErr.Error())
		}
		selections = append(selections, commands.UnitSelection{UnitID: unitID, UnitPrice: unitPrice})
	}

	shipping, err := shippingFromRequest(newOrder.Shipping)
	if err != nil {
		return badRequest(ctx, "Invalid shipping: "+err.Error())
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	companyID, err := kernel.UUIDFromBytes(newOrder.CompanyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid company id: "+err.Error())
	}
	locationID, err := kernel.UUIDFromBytes(newOrder.LocationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid location id: "+err.Error())
	}

	var relatedOrderID *kernel.UUID
	if newOrder.RelatedOrderId != nil {
		related, relatedErr := kernel.UUIDFromBytes(newOrder.RelatedOrderId[:])
		if relatedErr != nil {
			return badRequest(ctx, "Invalid related order id: "+relatedErr.Error())
		}
		relatedOrderID = &related
	}

	serviceOrder := newOrder.ServiceOrder != nil && *newOrder.ServiceOrder

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, companyID, locationID,
		actor, selections, shipping, serviceOrder, relatedOrderID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// ReleaseItem handles POST /api/v1/items/{itemId}/release - releases a held unit.
func (s *Server) ReleaseItem(ctx echo.Context, itemID openapi_types.UUID) error {
	var release servers.Release
	if err := ctx.Bind(&release); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := actorFromRequest(release.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	unitID, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return badRequest(ctx, "Invalid item id: "+err.Error())
	}

	cmd, err := commands.NewReleaseItemCommand(unitID, actor, noteFromRequest(release.Note))
	if err != nil {
		return badRequest(ctx, "Invalid release data: "+err.Error())
	}

	if handleErr := s.releaseItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to release item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyItemTransition handles POST /api/v1/items/{itemId}/transitions - moves a unit
// through a graph-validated state change.
func (s *Server) ApplyItemTransition(ctx echo.Context, itemID openapi_types.UUID) error {
	var transition servers.NewItemTransition
	if err := ctx.Bind(&transition); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := actorFromRequest(transition.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	unitID, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return badRequest(ctx, "Invalid item id: "+err.Error())
	}

	cmd, err := commands.NewApplyItemTransitionCommand(
		unitID, item.State(transition.ToState), actor, noteFromRequest(transition.Note),
	)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.applyItemTransitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to apply transition")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/status - moves an order
// to the next fulfilment status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error {
	var statusChange servers.StatusChange
	if err := ctx.Bind(&statusChange); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := actorFromRequest(statusChange.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	status, err := order.StatusFromString(string(statusChange.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(id, status, actor, noteFromRequest(statusChange.Note))
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to advance order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an order and
// releases every unit it holds.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	var cancellation servers.Cancellation
	if err := ctx.Bind(&cancellation); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := actorFromRequest(cancellation.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(id, actor, noteFromRequest(cancellation.Note))
	if err != nil {
		return badRequest(ctx, "Invalid cancellation: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordLedgerEntry handles POST /api/v1/orders/{orderId}/payments - appends one
// typed entry to the order's ledger.
func (s *Server) RecordLedgerEntry(ctx echo.Context, orderID openapi_types.UUID) error {
	var newEntry servers.NewLedgerEntry
	if err := ctx.Bind(&newEntry); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := actorFromRequest(newEntry.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	kind, err := ledger.KindFromString(string(newEntry.Kind))
	if err != nil {
		return badRequest(ctx, "Invalid kind: "+err.Error())
	}

	amount, err := kernel.NewMoneyFromString(newEntry.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRecordLedgerEntryCommand(
		id, kind, amount, ledger.PaymentMethod(newEntry.Method), actor, noteFromRequest(newEntry.Note),
	)
	if err != nil {
		return badRequest(ctx, "Invalid ledger entry: "+err.Error())
	}

	entryID, handleErr := s.recordLedgerEntryHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr, "Failed to record ledger entry")
	}

	return ctx.JSON(http.StatusCreated, servers.LedgerEntryCreated{Id: entryID.Bytes()})
}

// TransferCredit handles POST /api/v1/orders/{orderId}/transfers - moves credit
// from this order to another order of the same customer.
func (s *Server) TransferCredit(ctx echo.Context, orderID openapi_types.UUID) error {
	var transfer servers.NewTransfer
	if err := ctx.Bind(&transfer); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := actorFromRequest(transfer.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	amount, err := kernel.NewMoneyFromString(transfer.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	sourceOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	destinationOrderID, err := kernel.UUIDFromBytes(transfer.DestinationOrderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid destination order id: "+err.Error())
	}

	cmd, err := commands.NewTransferCreditCommand(
		sourceOrderID, destinationOrderID, amount, actor, noteFromRequest(transfer.Note),
	)
	if err != nil {
		return badRequest(ctx, "Invalid transfer: "+err.Error())
	}

	if _, _, handleErr := s.transferCreditHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to transfer credit")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderBalance handles GET /api/v1/orders/{orderId}/balance - returns the
// order's folded ledger totals.
func (s *Server) GetOrderBalance(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderBalanceQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	balance, err := s.getOrderBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order balance",
		})
	}

	return ctx.JSON(http.StatusOK, servers.OrderBalance{
		OrderId:    balance.OrderID.Bytes(),
		Balance:    balance.Balance.String(),
		PaidAmount: balance.PaidAmount.String(),
	})
}

// GetOrderLedger handles GET /api/v1/orders/{orderId}/ledger - returns the
// order's ledger entries, oldest first.
func (s *Server) GetOrderLedger(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderLedgerQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	entries, err := s.getOrderLedgerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order ledger",
		})
	}

	response := make([]servers.LedgerEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.LedgerEntry{
			Id:        entry.ID.Bytes(),
			Kind:      entry.Kind.String(),
			Amount:    entry.Amount.String(),
			Method:    entry.Method.String(),
			CreatedAt: entry.CreatedAt,
		}
		if entry.RelatedEntryID != nil {
			related := entry.RelatedEntryID.Bytes()
			response[i].RelatedEntryId = &related
		}
		if entry.Note != "" {
			note := entry.Note
			response[i].Note = &note
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorFromRequest converts the wire actor to the domain value object.
func actorFromRequest(wire servers.Actor) (kernel.Actor, error) {
	id, err := kernel.UUIDFromBytes(wire.Id[:])
	if err != nil {
		return kernel.Actor{}, err
	}
	class, err := kernel.ActorClassFromString(string(wire.Class))
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, class)
}

// shippingFromRequest converts the optional wire shipping block. A missing
// block is a pickup order.
func shippingFromRequest(wire *servers.Shipping) (order.Shipping, error) {
	if wire == nil {
		return order.Shipping{}, nil
	}

	shipping := order.Shipping{Fee: kernel.ZeroMoney()}
	if wire.Address != nil {
		shipping.Address = *wire.Address
	}
	if wire.ReceiverName != nil {
		shipping.ReceiverName = *wire.ReceiverName
	}
	if wire.ReceiverPhone != nil {
		shipping.ReceiverPhone = *wire.ReceiverPhone
	}
	if wire.ReceiverEmail != nil {
		shipping.ReceiverEmail = *wire.ReceiverEmail
	}
	if wire.Fee != nil {
		fee, err := kernel.NewMoneyFromString(*wire.Fee)
		if err != nil {
			return order.Shipping{}, err
		}
		shipping.Fee = fee
	}
	return shipping, nil
}

func noteFromRequest(note *string) string {
	if note == nil {
		return ""
	}
	return *note
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a use case failure to the HTTP status the contract
// promises: 404 for missing aggregates, 409 for state machine and balance
// conflicts, 400 for rejected values, 500 otherwise.
func domainError(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, commands.ErrUnitsNotFound):
		status = http.StatusNotFound
	case errors.Is(err, item.ErrIllegalTransition) ||
		errors.Is(err, item.ErrConcurrentModification) ||
		errors.Is(err, ledger.ErrInsufficientBalance) ||
		errors.Is(err, commands.ErrLocationMismatch) ||
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message + ": " + err.Error(),
	})
}
