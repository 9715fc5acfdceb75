package queries

import (
	"context"

	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetExpeditionsQueryHandler retrieves expedition read models from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetExpeditionsQueryHandler struct {
	db *gorm.DB
}

// NewGetExpeditionsQueryHandler creates a handler for expedition listing
// queries. Requires a GORM database connection for query execution.
func NewGetExpeditionsQueryHandler(db *gorm.DB) GetExpeditionsQueryHandler {
	return GetExpeditionsQueryHandler{db: db}
}

// Handle executes the query to retrieve expeditions, newest first.
// An unknown status filter matches nothing rather than failing.
func (h GetExpeditionsQueryHandler) Handle(
	ctx context.Context,
	query GetExpeditionsQuery,
) ([]ExpeditionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
	`
	args := make([]any, 0, 1)
	if query.Status() != "" {
		sql += ` WHERE status = ?`
		args = append(args, statusValue(query.Status()))
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expeditions := make([]ExpeditionResponse, 0)

	for rows.Next() {
		var response ExpeditionResponse
		var status int

		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}

		response.Status = expedition.Status(status).String()
		response.SecondaryCode = secondaryCode(response.Code)
		expeditions = append(expeditions, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return expeditions, nil
}

// statusValue maps a status name back to its stored value. Unknown names map
// to the zero value, which no stored expedition carries.
func statusValue(name string) int {
	for _, s := range []expedition.Status{
		expedition.Pending,
		expedition.InTransit,
		expedition.OutForDelivery,
		expedition.Delivered,
		expedition.Incident,
		expedition.Cancelled,
	} {
		if s.String() == name {
			return int(s)
		}
	}
	return int(expedition.StatusUnknown)
}

// secondaryCode derives the code-128 band code from the stored primary code.
func secondaryCode(code string) string {
	parsed, err := kernel.ExpeditionCodeFromString(code)
	if err != nil {
		return ""
	}
	return parsed.Secondary()
}
