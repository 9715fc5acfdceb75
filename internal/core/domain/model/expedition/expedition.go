package expedition

import (
	"errors"
	"fmt"
	"time"

	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/pkg/errs"
)

var (
	// ErrExpeditionIsNotConstructed is returned when an Expedition instance was not
	// created through NewExpedition or RestoreExpedition. This ensures all
	// expeditions are properly validated.
	ErrExpeditionIsNotConstructed = errors.New("Expedition must be created via NewExpedition or RestoreExpedition")
)

// customerRefPrefix is the carrier-mandated prefix of the customer reference
// string attached to every expedition.
const customerRefPrefix = "pedido_"

// Recipient holds the delivery address block printed on the label.
type Recipient struct {
	Name       string
	Address    string
	City       string
	PostalCode string
	Country    string
	Phone      string
	Email      string
}

// ServiceInfo holds the resolved service identity of an expedition. The code
// is guaranteed to exist in the service catalog at build time.
type ServiceInfo struct {
	Code   string
	Name   string
	Family catalog.Family
}

// Options holds the configurable option fields of an expedition. Every field
// with a validation rule has already been resolved against the owning
// service's accepted set by the builder; free-text fields are carried as
// supplied.
type Options struct {
	Packaging           string
	Payer               string
	CashOnDelivery      string
	CashAmount          string
	Prealert            string
	PrealertMode        string
	PrealertDestination string
	PrealertMessage     string
	Return              string
	Insurance           string
	InsuranceAmount     string
	Observations        []string
	Instructions        []string
	Contents            string
	DeclaredValue       string
}

// Route holds the delivery route assignment resolved for an expedition.
type Route struct {
	ID    string
	Color string
	Zone  string
}

// Expedition represents a carrier-facing shipment record derived from an
// order. It is the aggregate root of the label domain.
//
// Expedition follows these invariants:
//   - The carrier code is a valid 15-digit expedition code
//   - Every option field with a validation rule holds a member of the owning
//     service's accepted set
//   - Status transitions follow the defined state machine; expeditions are
//     always created in Pending
//   - Can only be created through NewExpedition or RestoreExpedition
//
// After creation the only mutation the aggregate permits is a status
// transition, performed on behalf of the external tracking collaborator.
type Expedition struct {
	orderRef     string
	code         kernel.ExpeditionCode
	recipient    Recipient
	service      ServiceInfo
	agency       kernel.Agency
	department   kernel.Department
	shipmentDate time.Time
	parcels      int
	options      Options
	route        Route
	status       Status
	createdAt    time.Time
	customerRef  string

	isConstructed bool
}

// NewExpeditionParams carries the validated inputs assembled by the builder.
type NewExpeditionParams struct {
	OrderRef     string
	Code         kernel.ExpeditionCode
	Recipient    Recipient
	Service      ServiceInfo
	Agency       kernel.Agency
	Department   kernel.Department
	ShipmentDate time.Time
	Parcels      int
	Options      Options
	Route        Route
}

// NewExpedition creates a new Expedition in Pending status. This is the only
// way (besides persistence restoration) to create a valid Expedition, ensuring
// all business invariants are maintained.
//
// Returns a validation error if the order reference or recipient name is
// missing, the code/agency/department are not properly constructed, the
// service identity is incomplete, or the parcel count is not positive.
func NewExpedition(p NewExpeditionParams) (*Expedition, error) {
	e := &Expedition{
		status:        Pending,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setOrderRef(p.OrderRef),
		e.setCode(p.Code),
		e.setRecipient(p.Recipient),
		e.setService(p.Service),
		e.setAgency(p.Agency),
		e.setDepartment(p.Department),
		e.setShipmentDate(p.ShipmentDate),
		e.setParcels(p.Parcels),
	); err != nil {
		return nil, err
	}

	e.options = p.Options
	e.route = p.Route
	return e, nil
}

// RestoreExpedition reconstructs an Expedition from persistence, including its
// stored status and creation timestamp. The same construction invariants are
// enforced; a stored row that no longer satisfies them is surfaced as an
// error instead of producing a half-valid aggregate.
func RestoreExpedition(p NewExpeditionParams, status Status, createdAt time.Time) (*Expedition, error) {
	e, err := NewExpedition(p)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	e.status = status
	e.createdAt = createdAt
	return e, nil
}

// Validate ensures the Expedition instance was properly constructed.
// Returns ErrExpeditionIsNotConstructed otherwise. This method should be
// called when reconstructing expeditions from persistence to ensure data
// integrity.
func (e *Expedition) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExpeditionIsNotConstructed
	}
	return nil
}

// IsEqual compares two expeditions by their carrier code.
func (e *Expedition) IsEqual(other *Expedition) bool {
	return other != nil && e.code.IsEqual(other.code)
}

// OrderRef returns the reference of the order the expedition was built from.
func (e *Expedition) OrderRef() string {
	return e.orderRef
}

// Code returns the carrier expedition code.
func (e *Expedition) Code() kernel.ExpeditionCode {
	return e.code
}

// Recipient returns the delivery address block.
func (e *Expedition) Recipient() Recipient {
	return e.recipient
}

// Service returns the resolved service identity.
func (e *Expedition) Service() ServiceInfo {
	return e.service
}

// Agency returns the issuing agency.
func (e *Expedition) Agency() kernel.Agency {
	return e.agency
}

// Department returns the issuing department.
func (e *Expedition) Department() kernel.Department {
	return e.department
}

// ShipmentDate returns the shipment date.
func (e *Expedition) ShipmentDate() time.Time {
	return e.shipmentDate
}

// Parcels returns the parcel count.
func (e *Expedition) Parcels() int {
	return e.parcels
}

// Options returns the resolved option fields.
func (e *Expedition) Options() Options {
	return e.options
}

// Route returns the delivery route assignment.
func (e *Expedition) Route() Route {
	return e.route
}

// Status returns the current status of the expedition.
func (e *Expedition) Status() Status {
	return e.status
}

// CreatedAt returns the creation timestamp.
func (e *Expedition) CreatedAt() time.Time {
	return e.createdAt
}

// CustomerRef returns the carrier customer reference string.
func (e *Expedition) CustomerRef() string {
	return e.customerRef
}

// MarkInTransit transitions the expedition to InTransit.
func (e *Expedition) MarkInTransit() error {
	return e.transition(InTransit)
}

// MarkOutForDelivery transitions the expedition to OutForDelivery.
func (e *Expedition) MarkOutForDelivery() error {
	return e.transition(OutForDelivery)
}

// MarkDelivered transitions the expedition to Delivered, a terminal state.
func (e *Expedition) MarkDelivered() error {
	return e.transition(Delivered)
}

// MarkIncident transitions the expedition to Incident. Allowed from every
// non-terminal state.
func (e *Expedition) MarkIncident() error {
	return e.transition(Incident)
}

// Cancel transitions the expedition to Cancelled, a terminal state. Allowed
// from every non-terminal state.
func (e *Expedition) Cancel() error {
	return e.transition(Cancelled)
}

// ApplyStatus transitions the expedition to the status reported by the
// tracking collaborator.
func (e *Expedition) ApplyStatus(target Status) error {
	return e.transition(target)
}

func (e *Expedition) transition(target Status) error {
	newStatus, err := e.status.TransitionTo(target)
	if err != nil {
		return err
	}
	e.status = newStatus
	return nil
}

func (e *Expedition) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return errs.NewValueIsRequiredError("order reference")
	}
	e.orderRef = orderRef
	e.customerRef = customerRefPrefix + orderRef
	return nil
}

func (e *Expedition) setCode(code kernel.ExpeditionCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	e.code = code
	return nil
}

func (e *Expedition) setRecipient(r Recipient) error {
	if r.Name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	e.recipient = r
	return nil
}

func (e *Expedition) setService(s ServiceInfo) error {
	if s.Code == "" {
		return errs.NewValueIsRequiredError("service code")
	}
	if err := s.Family.Validate(); err != nil {
		return err
	}
	e.service = s
	return nil
}

func (e *Expedition) setAgency(a kernel.Agency) error {
	if err := a.Validate(); err != nil {
		return err
	}
	e.agency = a
	return nil
}

func (e *Expedition) setDepartment(d kernel.Department) error {
	if err := d.Validate(); err != nil {
		return err
	}
	e.department = d
	return nil
}

func (e *Expedition) setShipmentDate(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("shipment date")
	}
	e.shipmentDate = t
	return nil
}

func (e *Expedition) setParcels(parcels int) error {
	if parcels < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcels is invalid",
			fmt.Errorf("%d is not greater than 0", parcels),
		)
	}
	e.parcels = parcels
	return nil
}
