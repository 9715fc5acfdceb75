// Package expeditionrepo provides data transfer objects and mapping functions
// for expedition persistence. This package implements the repository pattern
// for the expedition domain aggregate, handling the conversion between domain
// entities and database representations.
package expeditionrepo

import (
	"time"

	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ExpeditionDTO represents the database structure for persisting expedition
// aggregates. The surrogate id stays internal to the table; lookups run on
// the unique order reference and the carrier code.
type ExpeditionDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderRef string    `gorm:"uniqueIndex"`
	Code     string    `gorm:"uniqueIndex"`
	Status   int       `gorm:"index"`

	ServiceCode   string
	ServiceName   string
	ServiceFamily int

	Recipient RecipientDTO `gorm:"embedded"`

	Agency       string
	Department   string
	ShipmentDate time.Time
	Parcels      int

	Packaging           string
	Payer               string
	CashOnDelivery      string
	CashAmount          string
	Prealert            string
	PrealertMode        string
	PrealertDestination string
	PrealertMessage     string
	ReturnFlag          string
	Insurance           string
	InsuranceAmount     string
	Observations        pq.StringArray `gorm:"type:text[]"`
	Instructions        pq.StringArray `gorm:"type:text[]"`
	Contents            string
	DeclaredValue       string

	RouteID    string
	RouteColor string
	RouteZone  string

	CreatedAt time.Time
}

// TableName specifies the database table name for expedition entities.
// Overrides GORM's default naming convention to use "expeditions".
func (ExpeditionDTO) TableName() string {
	return "expeditions"
}

// RecipientDTO represents the embedded recipient columns within the
// expeditions table.
type RecipientDTO struct {
	RecipientName string
	Address       string
	City          string
	PostalCode    string
	Country       string
	Phone         string
	Email         string
}

// fromDomain converts an expedition domain aggregate to its database
// representation. A fresh surrogate id is assigned; Add and Update preserve
// the stored one where it exists.
func fromDomain(aggregate *expedition.Expedition) ExpeditionDTO {
	rec := aggregate.Recipient()
	opts := aggregate.Options()
	route := aggregate.Route()

	return ExpeditionDTO{
		ID:       uuid.New(),
		OrderRef: aggregate.OrderRef(),
		Code:     aggregate.Code().String(),
		Status:   int(aggregate.Status()),

		ServiceCode:   aggregate.Service().Code,
		ServiceName:   aggregate.Service().Name,
		ServiceFamily: int(aggregate.Service().Family),

		Recipient: RecipientDTO{
			RecipientName: rec.Name,
			Address:       rec.Address,
			City:          rec.City,
			PostalCode:    rec.PostalCode,
			Country:       rec.Country,
			Phone:         rec.Phone,
			Email:         rec.Email,
		},

		Agency:       aggregate.Agency().String(),
		Department:   aggregate.Department().String(),
		ShipmentDate: aggregate.ShipmentDate(),
		Parcels:      aggregate.Parcels(),

		Packaging:           opts.Packaging,
		Payer:               opts.Payer,
		CashOnDelivery:      opts.CashOnDelivery,
		CashAmount:          opts.CashAmount,
		Prealert:            opts.Prealert,
		PrealertMode:        opts.PrealertMode,
		PrealertDestination: opts.PrealertDestination,
		PrealertMessage:     opts.PrealertMessage,
		ReturnFlag:          opts.Return,
		Insurance:           opts.Insurance,
		InsuranceAmount:     opts.InsuranceAmount,
		Observations:        pq.StringArray(opts.Observations),
		Instructions:        pq.StringArray(opts.Instructions),
		Contents:            opts.Contents,
		DeclaredValue:       opts.DeclaredValue,

		RouteID:    route.ID,
		RouteColor: route.Color,
		RouteZone:  route.Zone,

		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an expedition domain aggregate.
// Reconstructs the complete aggregate including its status using
// RestoreExpedition.
func toDomain(dto ExpeditionDTO) (*expedition.Expedition, error) {
	agency, err := kernel.NewAgency(dto.Agency)
	if err != nil {
		return nil, err
	}

	department, err := kernel.NewDepartment(dto.Department)
	if err != nil {
		return nil, err
	}

	code, err := kernel.ExpeditionCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	return expedition.RestoreExpedition(expedition.NewExpeditionParams{
		OrderRef: dto.OrderRef,
		Code:     code,
		Recipient: expedition.Recipient{
			Name:       dto.Recipient.RecipientName,
			Address:    dto.Recipient.Address,
			City:       dto.Recipient.City,
			PostalCode: dto.Recipient.PostalCode,
			Country:    dto.Recipient.Country,
			Phone:      dto.Recipient.Phone,
			Email:      dto.Recipient.Email,
		},
		Service: expedition.ServiceInfo{
			Code:   dto.ServiceCode,
			Name:   dto.ServiceName,
			Family: catalog.Family(dto.ServiceFamily),
		},
		Agency:       agency,
		Department:   department,
		ShipmentDate: dto.ShipmentDate,
		Parcels:      dto.Parcels,
		Options: expedition.Options{
			Packaging:           dto.Packaging,
			Payer:               dto.Payer,
			CashOnDelivery:      dto.CashOnDelivery,
			CashAmount:          dto.CashAmount,
			Prealert:            dto.Prealert,
			PrealertMode:        dto.PrealertMode,
			PrealertDestination: dto.PrealertDestination,
			PrealertMessage:     dto.PrealertMessage,
			Return:              dto.ReturnFlag,
			Insurance:           dto.Insurance,
			InsuranceAmount:     dto.InsuranceAmount,
			Observations:        []string(dto.Observations),
			Instructions:        []string(dto.Instructions),
			Contents:            dto.Contents,
			DeclaredValue:       dto.DeclaredValue,
		},
		Route: expedition.Route{
			ID:    dto.RouteID,
			Color: dto.RouteColor,
			Zone:  dto.RouteZone,
		},
	}, expedition.Status(dto.Status), dto.CreatedAt)
}
