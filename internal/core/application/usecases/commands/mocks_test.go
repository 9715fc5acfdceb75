package commands_test

import (
	"context"
	"testing"
	"time"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/services"
	"shiplabel/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storedExpedition builds a persisted-looking expedition for handler tests.
func storedExpedition(t *testing.T, orderRef string) *expedition.Expedition {
	t.Helper()

	agency, err := kernel.NewAgency("0001/001")
	require.NoError(t, err)
	code, err := kernel.GenerateExpeditionCode(agency, 1234567)
	require.NoError(t, err)

	e, err := expedition.NewExpedition(expedition.NewExpeditionParams{
		OrderRef: orderRef,
		Code:     code,
		Recipient: expedition.Recipient{
			Name:       "Juan Garcia Lopez",
			Address:    "Calle Gran Via, 45 3o B",
			City:       "Madrid",
			PostalCode: "28013",
			Country:    "ES",
			Phone:      "+34612345678",
			Email:      "juan@example.com",
		},
		Service: expedition.ServiceInfo{
			Code:   "04",
			Name:   "NACEX 19:00H",
			Family: catalog.FamilyStandard,
		},
		Agency:       agency,
		Department:   kernel.DefaultDepartment(),
		ShipmentDate: time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC),
		Parcels:      1,
		Options: expedition.Options{
			Packaging:      "2",
			Payer:          "O",
			CashOnDelivery: "N",
			Prealert:       "E",
			Return:         "N",
			Insurance:      "N",
		},
		Route: expedition.Route{ID: "R015", Color: "#00B050", Zone: "NACIONAL"},
	})
	require.NoError(t, err)
	return e
}

type MockExpeditionRepository struct{ mock.Mock }

func (m *MockExpeditionRepository) Add(ctx context.Context, e *expedition.Expedition) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExpeditionRepository) Update(ctx context.Context, e *expedition.Expedition) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExpeditionRepository) GetByOrderRef(ctx context.Context, orderRef string) (*expedition.Expedition, error) {
	args := m.Called(ctx, orderRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*expedition.Expedition), args.Error(1)
}

func (m *MockExpeditionRepository) GetByCode(ctx context.Context, code kernel.ExpeditionCode) (*expedition.Expedition, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*expedition.Expedition), args.Error(1)
}

func (m *MockExpeditionRepository) GetAllActive(ctx context.Context) ([]*expedition.Expedition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*expedition.Expedition), args.Error(1)
}

type MockExpeditionUoW struct{ mock.Mock }

func (m *MockExpeditionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpeditionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpeditionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpeditionUoW) ExpeditionRepository() ports.ExpeditionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExpeditionRepository)
}

type MockExpeditionUoWFactory struct{ mock.Mock }

func (m *MockExpeditionUoWFactory) Create() commands.ExpeditionUoW {
	args := m.Called()
	return args.Get(0).(commands.ExpeditionUoW)
}

type MockOrderProvider struct{ mock.Mock }

func (m *MockOrderProvider) GetOrder(ctx context.Context, id string) (ports.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Order), args.Error(1)
}

type MockSequenceSource struct{ mock.Mock }

func (m *MockSequenceSource) Next(ctx context.Context, agency kernel.Agency) (int, error) {
	args := m.Called(ctx, agency)
	return args.Int(0), args.Error(1)
}

type MockRouteResolver struct{ mock.Mock }

func (m *MockRouteResolver) Resolve(postalCode string, family catalog.Family) expedition.Route {
	args := m.Called(postalCode, family)
	return args.Get(0).(expedition.Route)
}

type MockRasterEncoder struct{ mock.Mock }

func (m *MockRasterEncoder) Encode(ctx context.Context, code kernel.ExpeditionCode, symbology services.Symbology) ([]byte, error) {
	args := m.Called(ctx, code, symbology)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockTrackingProvider struct{ mock.Mock }

func (m *MockTrackingProvider) Track(ctx context.Context, code kernel.ExpeditionCode) (expedition.Status, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(expedition.Status), args.Error(1)
}
