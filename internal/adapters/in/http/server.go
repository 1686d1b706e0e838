// Package http adapts the REST API to the application's commands and queries.
package http

import (
	"errors"
	"net/http"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/domain/model/cs"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"
	"settlement/internal/generated/servers"
	"settlement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	confirmOrdersHandler      commands.ConfirmOrdersCommandHandler
	confirmPaymentHandler     commands.ConfirmPaymentCommandHandler
	sendToVendorHandler       commands.SendToVendorCommandHandler
	registerTrackingHandler   commands.RegisterTrackingCommandHandler
	updateTrackingHandler     commands.UpdateTrackingCommandHandler
	recallTrackingHandler     commands.RecallTrackingCommandHandler
	requestCancelHandler      commands.RequestCancelCommandHandler
	approveCancelHandler      commands.ApproveCancelCommandHandler
	rejectCancelHandler       commands.RejectCancelCommandHandler
	completeRefundHandler     commands.CompleteRefundCommandHandler
	submitCSResolutionHandler commands.SubmitCSResolutionCommandHandler

	// Query handlers
	getOrdersHandler     queries.GetOrdersQueryHandler
	getOrderStatsHandler queries.GetOrderStatsQueryHandler
	getBatchesHandler    queries.GetConfirmationBatchesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrdersHandler commands.ConfirmOrdersCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	sendToVendorHandler commands.SendToVendorCommandHandler,
	registerTrackingHandler commands.RegisterTrackingCommandHandler,
	updateTrackingHandler commands.UpdateTrackingCommandHandler,
	recallTrackingHandler commands.RecallTrackingCommandHandler,
	requestCancelHandler commands.RequestCancelCommandHandler,
	approveCancelHandler commands.ApproveCancelCommandHandler,
	rejectCancelHandler commands.RejectCancelCommandHandler,
	completeRefundHandler commands.CompleteRefundCommandHandler,
	submitCSResolutionHandler commands.SubmitCSResolutionCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	getBatchesHandler queries.GetConfirmationBatchesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		confirmOrdersHandler:      confirmOrdersHandler,
		confirmPaymentHandler:     confirmPaymentHandler,
		sendToVendorHandler:       sendToVendorHandler,
		registerTrackingHandler:   registerTrackingHandler,
		updateTrackingHandler:     updateTrackingHandler,
		recallTrackingHandler:     recallTrackingHandler,
		requestCancelHandler:      requestCancelHandler,
		approveCancelHandler:      approveCancelHandler,
		rejectCancelHandler:       rejectCancelHandler,
		completeRefundHandler:     completeRefundHandler,
		submitCSResolutionHandler: submitCSResolutionHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderStatsHandler:      getOrderStatsHandler,
		getBatchesHandler:         getBatchesHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - registers a manually entered order.
// Manual entries always land on the platform channel.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var organizationID *kernel.UUID
	if body.OrganizationId != nil {
		id, err := kernel.UUIDFromBytes(body.OrganizationId[:])
		if err != nil {
			return badRequest(ctx, "Invalid organization id")
		}
		organizationID = &id
	}

	recipient := order.Recipient{Name: body.Recipient.Name}
	if body.Recipient.Phone != nil {
		recipient.Phone = *body.Recipient.Phone
	}
	if body.Recipient.Address != nil {
		recipient.Address = *body.Recipient.Address
	}

	var cashUsed kernel.Money
	if body.CashUsed != nil {
		cashUsed = kernel.Money(*body.CashUsed)
	}

	var optionName string
	if body.OptionName != nil {
		optionName = *body.OptionName
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		order.ChannelPlatform,
		body.MarketName,
		optionName,
		recipient,
		body.Quantity,
		kernel.Money(body.SettlementAmount),
		cashUsed,
		organizationID,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	number, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{Number: number.String()})
}

// ConfirmOrders handles POST /api/v1/orders/confirm.
func (s *Server) ConfirmOrders(ctx echo.Context) error {
	return s.handleSelection(ctx, func(ids []kernel.UUID) (services.OperationResult, error) {
		cmd, err := commands.NewConfirmOrdersCommand(ids)
		if err != nil {
			return services.OperationResult{}, err
		}
		return s.confirmOrdersHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmPayment handles POST /api/v1/orders/confirm-payment.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var body servers.ConfirmPaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids, err := toKernelIDs(body.OrderIds)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	executorID, err := kernel.UUIDFromBytes(body.ExecutorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid executor id")
	}

	cmd, err := commands.NewConfirmPaymentCommand(ids, body.DepositorName, executorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationResult(result))
}

// SendOrdersToVendor handles POST /api/v1/orders/send-to-vendor.
func (s *Server) SendOrdersToVendor(ctx echo.Context) error {
	var body servers.SendToVendorRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids, err := toKernelIDs(body.OrderIds)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var fallbackVendor string
	if body.VendorNameIfMissing != nil {
		fallbackVendor = *body.VendorNameIfMissing
	}

	cmd, err := commands.NewSendToVendorCommand(ids, fallbackVendor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.sendToVendorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationResult(result))
}

// RegisterTracking handles POST /api/v1/orders/tracking/register.
func (s *Server) RegisterTracking(ctx echo.Context) error {
	ids, tracking, err := bindTrackingRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRegisterTrackingCommand(ids, tracking)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.registerTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationResult(result))
}

// UpdateTracking handles POST /api/v1/orders/tracking/update.
func (s *Server) UpdateTracking(ctx echo.Context) error {
	ids, tracking, err := bindTrackingRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateTrackingCommand(ids, tracking)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.updateTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationResult(result))
}

// RecallTracking handles POST /api/v1/orders/tracking/recall.
func (s *Server) RecallTracking(ctx echo.Context) error {
	return s.handleSelection(ctx, func(ids []kernel.UUID) (services.OperationResult, error) {
		cmd, err := commands.NewRecallTrackingCommand(ids)
		if err != nil {
			return services.OperationResult{}, err
		}
		return s.recallTrackingHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RequestCancel handles POST /api/v1/orders/cancel/request.
func (s *Server) RequestCancel(ctx echo.Context) error {
	return s.handleSelection(ctx, func(ids []kernel.UUID) (services.OperationResult, error) {
		cmd, err := commands.NewRequestCancelCommand(ids)
		if err != nil {
			return services.OperationResult{}, err
		}
		return s.requestCancelHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ApproveCancel handles POST /api/v1/orders/cancel/approve.
func (s *Server) ApproveCancel(ctx echo.Context) error {
	return s.handleSelection(ctx, func(ids []kernel.UUID) (services.OperationResult, error) {
		cmd, err := commands.NewApproveCancelCommand(ids)
		if err != nil {
			return services.OperationResult{}, err
		}
		return s.approveCancelHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectCancel handles POST /api/v1/orders/cancel/reject.
func (s *Server) RejectCancel(ctx echo.Context) error {
	return s.handleSelection(ctx, func(ids []kernel.UUID) (services.OperationResult, error) {
		cmd, err := commands.NewRejectCancelCommand(ids)
		if err != nil {
			return services.OperationResult{}, err
		}
		return s.rejectCancelHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteRefund handles POST /api/v1/orders/refund/complete.
func (s *Server) CompleteRefund(ctx echo.Context) error {
	var body servers.CompleteRefundRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids, err := toKernelIDs(body.OrderIds)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	variant, err := order.ParseVariant(string(body.Variant))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteRefundCommand(ids, variant)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.completeRefundHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationResult(result))
}

// SubmitCSResolution handles POST /api/v1/cs/resolutions. A resolution applies
// to exactly one order; multi-order selections are rejected before any work.
func (s *Server) SubmitCSResolution(ctx echo.Context) error {
	var body servers.CSResolutionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if len(body.OrderIds) != 1 {
		return badRequest(ctx, "Customer-service resolutions apply to exactly one order")
	}

	orderID, err := kernel.UUIDFromBytes(body.OrderIds[0][:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	resolution, err := parseResolutionType(body.ResolutionType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var refundAccount *cs.RefundAccount
	if body.RefundAccount != nil {
		refundAccount = &cs.RefundAccount{
			BankName:      body.RefundAccount.BankName,
			AccountHolder: body.RefundAccount.AccountHolder,
			AccountNumber: body.RefundAccount.AccountNumber,
		}
	}

	var refundPercent int
	if body.RefundPercent != nil {
		refundPercent = *body.RefundPercent
	}

	var resend *order.ResendSpec
	if body.Resend != nil {
		spec := order.ResendSpec{Quantity: body.Resend.Quantity}
		if body.Resend.AdditionalAmount != nil {
			spec.AdditionalAmount = kernel.Money(*body.Resend.AdditionalAmount)
		}
		if body.Resend.Recipient != nil {
			recipient := order.Recipient{Name: body.Resend.Recipient.Name}
			if body.Resend.Recipient.Phone != nil {
				recipient.Phone = *body.Resend.Recipient.Phone
			}
			if body.Resend.Recipient.Address != nil {
				recipient.Address = *body.Resend.Recipient.Address
			}
			spec.Recipient = &recipient
		}
		resend = &spec
	}

	var content string
	if body.Content != nil {
		content = *body.Content
	}

	cmd, err := commands.NewSubmitCSResolutionCommand(
		orderID, body.Category, content, resolution, refundAccount, refundPercent, resend,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.submitCSResolutionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := servers.CSResolutionResult{
		RecordId: result.RecordID.Bytes(),
	}
	if result.ResendOrderID != nil {
		resendID := result.ResendOrderID.Bytes()
		resendNumber := result.ResendOrderNumber.String()
		response.ResendOrderId = &resendID
		response.ResendOrderNumber = &resendNumber
	}
	if len(result.DuplicateCaseIDs) > 0 {
		duplicates := make([]openapi_types.UUID, 0, len(result.DuplicateCaseIDs))
		for _, id := range result.DuplicateCaseIDs {
			duplicates = append(duplicates, id.Bytes())
		}
		response.DuplicateCaseIds = &duplicates
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOrders handles GET /api/v1/organizations/{organizationId}/orders.
func (s *Server) GetOrders(
	ctx echo.Context, organizationId openapi_types.UUID, params servers.GetOrdersParams,
) error {
	organizationID, err := kernel.UUIDFromBytes(organizationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}

	var statuses []string
	if params.Status != nil {
		statuses = *params.Status
	}

	query, err := queries.NewGetOrdersQuery(organizationID, statuses, params.ConfirmedFrom, params.ConfirmedTo)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, len(rows))
	for i, row := range rows {
		response[i] = servers.Order{
			Id:               row.ID.Bytes(),
			Number:           row.Number,
			Channel:          row.Channel,
			Status:           row.Status,
			Quantity:         row.Quantity,
			SettlementAmount: row.SettlementAmount,
			CashUsed:         row.CashUsed,
			MarketName:       optional(row.MarketName),
			VendorName:       optional(row.VendorName),
			OptionName:       optional(row.OptionName),
			RecipientName:    optional(row.RecipientName),
			CourierCompany:   optional(row.CourierCompany),
			TrackingNumber:   optional(row.TrackingNumber),
			ConfirmedAt:      row.ConfirmedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/v1/organizations/{organizationId}/stats.
func (s *Server) GetOrderStats(
	ctx echo.Context, organizationId openapi_types.UUID, params servers.GetOrderStatsParams,
) error {
	organizationID, err := kernel.UUIDFromBytes(organizationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}

	variant, err := order.ParseVariant(string(params.Variant))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderStatsQuery(organizationID, variant)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	report, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatsReport{
		Total:           toDimensionStat(report.Total),
		PerVendor:       toDimensionStats(report.PerVendor),
		PerOrganization: toDimensionStats(report.PerOrganization),
		PerOption:       toDimensionStats(report.PerOption),
	})
}

// GetConfirmationBatches handles GET /api/v1/organizations/{organizationId}/batches.
func (s *Server) GetConfirmationBatches(ctx echo.Context, organizationId openapi_types.UUID) error {
	organizationID, err := kernel.UUIDFromBytes(organizationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}

	query, err := queries.NewGetConfirmationBatchesQuery(organizationID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getBatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := servers.BatchReport{
		Batches: make([]servers.Batch, len(result.Batches)),
	}
	for i, b := range result.Batches {
		response.Batches[i] = servers.Batch{
			OrganizationId:     b.Key.OrganizationID.Bytes(),
			ConfirmedAt:        b.Key.ConfirmedAt,
			OrderCount:         b.OrderCount,
			TotalAmount:        b.TotalAmount.Int64(),
			CashUsed:           b.CashUsed.Int64(),
			FinalDepositAmount: b.FinalDepositAmount.Int64(),
			PaymentConfirmed:   b.PaymentConfirmed,
			DepositorName:      optional(b.DepositorName),
		}
		if b.ExecutorID != nil {
			executorID := b.ExecutorID.Bytes()
			response.Batches[i].ExecutorId = &executorID
		}
	}
	if len(result.Warnings) > 0 {
		warnings := make([]string, 0, len(result.Warnings))
		for _, w := range result.Warnings {
			warnings = append(warnings, w.Message)
		}
		response.Warnings = &warnings
	}

	return ctx.JSON(http.StatusOK, response)
}

// handleSelection binds an order-id selection body and runs the given
// operation over it.
func (s *Server) handleSelection(
	ctx echo.Context, run func(ids []kernel.UUID) (services.OperationResult, error),
) error {
	var body servers.OrderSelection
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids, err := toKernelIDs(body.OrderIds)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := run(ids)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationResult(result))
}

// bindTrackingRequest converts wire tracking entries into the id list and
// staged tracking values the commands expect. Absent fields stay empty so the
// domain reports them as missing.
func bindTrackingRequest(ctx echo.Context) ([]kernel.UUID, map[kernel.UUID]services.Tracking, error) {
	var body servers.TrackingRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, nil, errors.New("invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(body.Entries))
	tracking := make(map[kernel.UUID]services.Tracking, len(body.Entries))
	for _, entry := range body.Entries {
		id, err := kernel.UUIDFromBytes(entry.OrderId[:])
		if err != nil {
			return nil, nil, errors.New("invalid order id")
		}
		ids = append(ids, id)

		var t services.Tracking
		if entry.CourierCompany != nil {
			t.CourierCompany = *entry.CourierCompany
		}
		if entry.TrackingNumber != nil {
			t.TrackingNumber = *entry.TrackingNumber
		}
		tracking[id] = t
	}

	return ids, tracking, nil
}

// toKernelIDs converts wire UUIDs into domain identifiers.
func toKernelIDs(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	result := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		kernelID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, errors.New("invalid order id")
		}
		result = append(result, kernelID)
	}
	return result, nil
}

// toOperationResult maps a lifecycle outcome onto the wire shape.
func toOperationResult(result services.OperationResult) servers.OperationResult {
	response := servers.OperationResult{
		Applied:         result.Applied,
		RejectedCount:   result.RejectedCount,
		UpdatedOrderIds: make([]openapi_types.UUID, 0, len(result.UpdatedOrderIDs)),
	}
	for _, id := range result.UpdatedOrderIDs {
		response.UpdatedOrderIds = append(response.UpdatedOrderIds, id.Bytes())
	}
	if len(result.RejectedOrders) > 0 {
		rejected := make([]servers.RejectedOrder, 0, len(result.RejectedOrders))
		for _, r := range result.RejectedOrders {
			rejected = append(rejected, servers.RejectedOrder{
				OrderId:     r.ID.Bytes(),
				OrderNumber: optional(r.Number.String()),
				Reason:      r.Reason,
			})
		}
		response.RejectedOrders = &rejected
	}
	return response
}

func toDimensionStat(stat services.DimensionStat) servers.DimensionStat {
	byStatus := make(map[string]servers.StatusTally, len(stat.ByStatus))
	for status, tally := range stat.ByStatus {
		byStatus[status] = servers.StatusTally{Count: tally.Count, Quantity: tally.Quantity}
	}
	return servers.DimensionStat{
		Key:                   stat.Key,
		ByStatus:              byStatus,
		TotalAmount:           stat.TotalAmount.Int64(),
		RefundPendingAmount:   stat.RefundPendingAmount.Int64(),
		RefundCompletedAmount: stat.RefundCompletedAmount.Int64(),
	}
}

func toDimensionStats(stats []services.DimensionStat) []servers.DimensionStat {
	result := make([]servers.DimensionStat, len(stats))
	for i, stat := range stats {
		result[i] = toDimensionStat(stat)
	}
	return result
}

// optional returns a pointer for non-empty strings, nil otherwise.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseResolutionType maps the wire resolution name onto the domain enum.
func parseResolutionType(t servers.CSResolutionRequestResolutionType) (cs.ResolutionType, error) {
	switch t {
	case servers.CSResolutionRequestResolutionTypeExchange:
		return cs.Exchange, nil
	case servers.CSResolutionRequestResolutionTypeReturn:
		return cs.Return, nil
	case servers.CSResolutionRequestResolutionTypeFullRefund:
		return cs.FullRefund, nil
	case servers.CSResolutionRequestResolutionTypePartialRefund:
		return cs.PartialRefund, nil
	case servers.CSResolutionRequestResolutionTypeFullResend:
		return cs.FullResend, nil
	case servers.CSResolutionRequestResolutionTypePartialResend:
		return cs.PartialResend, nil
	case servers.CSResolutionRequestResolutionTypeOtherAction:
		return cs.OtherAction, nil
	default:
		return cs.ResolutionUnknown, errors.New("unknown resolution type")
	}
}

// badRequest writes a 400 with the API error shape.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses: missing objects to
// 404, invalid or required values to 400, anything else to 500.
func writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &invalid) || errors.As(err, &required) || errors.As(err, &outOfRange) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
