package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetExpeditionQueryHandler retrieves a single expedition read model from
// the database.
type GetExpeditionQueryHandler struct {
	db *gorm.DB
}

// NewGetExpeditionQueryHandler creates a handler for single-expedition
// queries. Requires a GORM database connection for query execution.
func NewGetExpeditionQueryHandler(db *gorm.DB) GetExpeditionQueryHandler {
	return GetExpeditionQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no label
// was ever generated for the order reference.
func (h GetExpeditionQueryHandler) Handle(
	ctx context.Context,
	query GetExpeditionQuery,
) (ExpeditionResponse, error) {
	if err := query.Validate(); err != nil {
		return ExpeditionResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_ref,
			code,
			status,
			service_code,
			service_name,
			recipient_name,
			city,
			postal_code,
			country,
			agency,
			parcels,
			route_id,
			route_color,
			route_zone,
			shipment_date,
			created_at
		FROM expeditions
		WHERE order_ref = ?
	`, query.OrderRef()).Row()

	var response ExpeditionResponse
	var status int

	err := row.Scan(
		&response.OrderRef,
		&response.Code,
		&status,
		&response.ServiceCode,
		&response.ServiceName,
		&response.RecipientName,
		&response.City,
		&response.PostalCode,
		&response.Country,
		&response.Agency,
		&response.Parcels,
		&response.RouteID,
		&response.RouteColor,
		&response.RouteZone,
		&response.ShipmentDate,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ExpeditionResponse{}, errs.NewObjectNotFoundError("orderRef", query.OrderRef())
	}
	if err != nil {
		return ExpeditionResponse{}, err
	}

	response.Status = expedition.Status(status).String()
	response.SecondaryCode = secondaryCode(response.Code)

	return response, nil
}
