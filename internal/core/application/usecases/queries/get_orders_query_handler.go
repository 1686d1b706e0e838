package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

// GetOrdersQueryHandler reads the order list view straight from the database.
// The list is a projection for display; lifecycle commands never consume it.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the list query. Results are sorted newest confirmation
// first, unconfirmed orders last.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			channel,
			status,
			market_name,
			vendor_name,
			option_name,
			recipient_name,
			quantity,
			settlement_amount,
			cash_used,
			courier_company,
			tracking_number,
			confirmed_at,
			shipped_at
		FROM orders
		WHERE organization_id = ?
	`
	args := []any{query.OrganizationID().String()}

	if statuses := query.Statuses(); len(statuses) > 0 {
		codes := make([]int, 0, len(statuses))
		for _, status := range statuses {
			codes = append(codes, int(status))
		}
		sql += " AND status IN ?"
		args = append(args, codes)
	}
	if from := query.ConfirmedFrom(); from != nil {
		sql += " AND confirmed_at >= ?"
		args = append(args, *from)
	}
	if to := query.ConfirmedTo(); to != nil {
		sql += " AND confirmed_at <= ?"
		args = append(args, *to)
	}
	sql += " ORDER BY confirmed_at DESC NULLS LAST, number"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var channel, status int

		err = rows.Scan(
			&id,
			&resp.Number,
			&channel,
			&status,
			&resp.MarketName,
			&resp.VendorName,
			&resp.OptionName,
			&resp.RecipientName,
			&resp.Quantity,
			&resp.SettlementAmount,
			&resp.CashUsed,
			&resp.CourierCompany,
			&resp.TrackingNumber,
			&resp.ConfirmedAt,
			&resp.ShippedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.Channel = order.Channel(channel).String()
		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
