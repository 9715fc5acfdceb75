package commands_test

import (
	"errors"
	"testing"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/services"
	"shiplabel/internal/core/ports"
	"shiplabel/internal/pkg/bus"
	"shiplabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAgency(t *testing.T) kernel.Agency {
	t.Helper()
	agency, err := kernel.NewAgency("0001/001")
	require.NoError(t, err)
	return agency
}

func testOrder() ports.Order {
	return ports.Order{
		ID:           "1042",
		CustomerName: "Juan Garcia Lopez",
		Email:        "juan@example.com",
		Phone:        "+34612345678",
		Address:      "Calle Gran Via, 45 3o B",
		City:         "Madrid",
		PostalCode:   "28013",
		Country:      "ES",
		Total:        "49.90",
		ServiceCode:  "04",
		Parcels:      1,
	}
}

func newGenerateLabelHandler(
	t *testing.T,
	factory commands.ExpeditionUoWFactory,
	orders ports.OrderProvider,
	sequences ports.SequenceSource,
	routes ports.RouteResolver,
	encoder ports.RasterEncoder,
	publish bus.Publish,
) commands.GenerateLabelCommandHandler {
	t.Helper()
	return commands.NewGenerateLabelCommandHandler(
		factory,
		orders,
		catalog.NewCatalog(),
		sequences,
		routes,
		encoder,
		services.NewLabelRenderer(),
		commands.CarrierConfig{
			Agency:     testAgency(t),
			Department: kernel.DefaultDepartment(),
		},
		publish,
	)
}

func TestGenerateLabelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agency := testAgency(t)
	cmd, _ := commands.NewGenerateLabelCommand("1042", "", commands.LabelOptions{})

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, "1042").Return(testOrder(), nil).Once()

	sequences := new(MockSequenceSource)
	sequences.On("Next", ctx, agency).Return(1234567, nil).Once()

	routes := new(MockRouteResolver)
	routes.On("Resolve", "28013", catalog.FamilyStandard).
		Return(expedition.Route{ID: "R015", Color: "#00B050", Zone: "NACIONAL"}).Once()

	encoder := new(MockRasterEncoder)
	encoder.On("Encode", ctx, mock.Anything, services.Interleaved2of5).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()
	encoder.On("Encode", ctx, mock.Anything, services.Code128).
		Return([]byte{0xC1, 0x28}, nil).Once()

	repo := new(MockExpeditionRepository)
	uow := new(MockExpeditionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExpeditionRepository").Return(repo).Once(),
		repo.On("GetByOrderRef", ctx, "1042").
			Return(nil, errs.NewObjectNotFoundError("orderRef", "1042")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*expedition.Expedition")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpeditionUoWFactory)
	factory.On("Create").Return(uow).Once()

	recorder := bus.NewRecordingBus(nil)

	h := newGenerateLabelHandler(t, factory, orders, sequences, routes, encoder, recorder.Publish)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "840000112345679", result.Code)
	assert.Equal(t, "R015", result.RouteID)
	assert.Equal(t, "#00B050", result.RouteColor)
	assert.Contains(t, result.LabelHTML, "data:image/png;base64,")
	assert.Contains(t, result.LabelHTML, "Juan Garcia Lopez")
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, result.BarcodePNG)
	assert.Equal(t, []byte{0xC1, 0x28}, result.SecondaryPNG)
	assert.Contains(t, result.LabelZPL, "^XA")
	assert.Contains(t, result.LabelZPL, "840000112345679")

	require.Len(t, recorder.History(), 1)
	event := recorder.History()[0].(commands.LabelGeneratedEvent)
	assert.Equal(t, "1042", event.OrderRef)
	assert.Equal(t, "840000112345679", event.Code)

	orders.AssertExpectations(t)
	sequences.AssertExpectations(t)
	routes.AssertExpectations(t)
	encoder.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestGenerateLabelCommandHandler_Handle_EncoderFailureFallsBack(t *testing.T) {
	ctx := t.Context()
	agency := testAgency(t)
	cmd, _ := commands.NewGenerateLabelCommand("1042", "", commands.LabelOptions{})

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, "1042").Return(testOrder(), nil).Once()

	sequences := new(MockSequenceSource)
	sequences.On("Next", ctx, agency).Return(1234567, nil).Once()

	routes := new(MockRouteResolver)
	routes.On("Resolve", "28013", catalog.FamilyStandard).
		Return(expedition.Route{ID: "R015", Color: "#00B050", Zone: "NACIONAL"}).Once()

	encoder := new(MockRasterEncoder)
	encoder.On("Encode", ctx, mock.Anything, services.Interleaved2of5).
		Return(nil, errs.NewRenderFailedError("interleaved2of5")).Once()
	encoder.On("Encode", ctx, mock.Anything, services.Code128).
		Return(nil, errs.NewRenderFailedError("code128")).Once()

	repo := new(MockExpeditionRepository)
	uow := new(MockExpeditionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExpeditionRepository").Return(repo).Once(),
		repo.On("GetByOrderRef", ctx, "1042").
			Return(nil, errs.NewObjectNotFoundError("orderRef", "1042")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*expedition.Expedition")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpeditionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGenerateLabelHandler(t, factory, orders, sequences, routes, encoder, nil)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotContains(t, result.LabelHTML, "<img")
	assert.Contains(t, result.LabelHTML, "840000112345679")
	assert.Nil(t, result.BarcodePNG)
	assert.Nil(t, result.SecondaryPNG)
}

func TestGenerateLabelCommandHandler_Handle_UnknownService(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewGenerateLabelCommand("1042", "99", commands.LabelOptions{})

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, "1042").Return(testOrder(), nil).Once()

	factory := new(MockExpeditionUoWFactory)

	h := newGenerateLabelHandler(t, factory, orders, new(MockSequenceSource), new(MockRouteResolver), new(MockRasterEncoder), nil)
	result, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrServiceIsUnknown)
	assert.False(t, result.Success)
	assert.Equal(t, "1042", result.OrderID)
	assert.ErrorIs(t, result.Err, errs.ErrServiceIsUnknown)
	factory.AssertNotCalled(t, "Create")
}

func TestGenerateLabelCommandHandler_Handle_CoercesUnsupportedOptions(t *testing.T) {
	ctx := t.Context()
	agency := testAgency(t)
	// Service 31 only ships origin-paid: a "D" payer is coerced, not rejected.
	cmd, _ := commands.NewGenerateLabelCommand("1042", "31", commands.LabelOptions{Payer: "D"})

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, "1042").Return(testOrder(), nil).Once()

	sequences := new(MockSequenceSource)
	sequences.On("Next", ctx, agency).Return(1, nil).Once()

	routes := new(MockRouteResolver)
	routes.On("Resolve", "28013", catalog.FamilyShop).
		Return(expedition.Route{ID: "R001", Color: "#FF5000", Zone: "NACIONAL"}).Once()

	encoder := new(MockRasterEncoder)
	encoder.On("Encode", ctx, mock.Anything, services.Interleaved2of5).Return([]byte{1}, nil).Once()
	encoder.On("Encode", ctx, mock.Anything, services.Code128).Return([]byte{2}, nil).Once()

	var persisted *expedition.Expedition
	repo := new(MockExpeditionRepository)
	uow := new(MockExpeditionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExpeditionRepository").Return(repo).Once(),
		repo.On("GetByOrderRef", ctx, "1042").
			Return(nil, errs.NewObjectNotFoundError("orderRef", "1042")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*expedition.Expedition")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*expedition.Expedition)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpeditionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGenerateLabelHandler(t, factory, orders, sequences, routes, encoder, nil)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, "O", persisted.Options().Payer)
	assert.Equal(t, "31", persisted.Service().Code)
}

func TestGenerateLabelCommandHandler_Handle_UsesShortServiceNameOnLabel(t *testing.T) {
	ctx := t.Context()
	agency := testAgency(t)
	// Service 01 has a long catalog name; the label carries the short form.
	cmd, _ := commands.NewGenerateLabelCommand("1042", "01", commands.LabelOptions{})

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, "1042").Return(testOrder(), nil).Once()

	sequences := new(MockSequenceSource)
	sequences.On("Next", ctx, agency).Return(1234567, nil).Once()

	routes := new(MockRouteResolver)
	routes.On("Resolve", "28013", catalog.FamilyStandard).
		Return(expedition.Route{ID: "R002", Color: "#0070C0", Zone: "NACIONAL"}).Once()

	encoder := new(MockRasterEncoder)
	encoder.On("Encode", ctx, mock.Anything, services.Interleaved2of5).Return([]byte{1}, nil).Once()
	encoder.On("Encode", ctx, mock.Anything, services.Code128).Return([]byte{2}, nil).Once()

	var persisted *expedition.Expedition
	repo := new(MockExpeditionRepository)
	uow := new(MockExpeditionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExpeditionRepository").Return(repo).Once(),
		repo.On("GetByOrderRef", ctx, "1042").
			Return(nil, errs.NewObjectNotFoundError("orderRef", "1042")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*expedition.Expedition")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*expedition.Expedition)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpeditionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGenerateLabelHandler(t, factory, orders, sequences, routes, encoder, nil)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, "NACEX 10:00H", persisted.Service().Name)
	assert.Contains(t, result.LabelHTML, "NACEX 10:00H")
	assert.NotContains(t, result.LabelHTML, "ISLAS AZORES")
	assert.Contains(t, result.LabelZPL, "NACEX 10:00H")
	assert.NotContains(t, result.LabelZPL, "ISLAS AZORES")
}

func TestGenerateLabelCommandHandler_Handle_ReplacesExistingExpedition(t *testing.T) {
	ctx := t.Context()
	agency := testAgency(t)
	cmd, _ := commands.NewGenerateLabelCommand("1042", "", commands.LabelOptions{})

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, "1042").Return(testOrder(), nil).Once()

	sequences := new(MockSequenceSource)
	sequences.On("Next", ctx, agency).Return(7654321, nil).Once()

	routes := new(MockRouteResolver)
	routes.On("Resolve", "28013", catalog.FamilyStandard).
		Return(expedition.Route{ID: "R015", Color: "#00B050", Zone: "NACIONAL"}).Once()

	encoder := new(MockRasterEncoder)
	encoder.On("Encode", ctx, mock.Anything, services.Interleaved2of5).Return([]byte{1}, nil).Once()
	encoder.On("Encode", ctx, mock.Anything, services.Code128).Return([]byte{2}, nil).Once()

	repo := new(MockExpeditionRepository)
	uow := new(MockExpeditionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExpeditionRepository").Return(repo).Once(),
		repo.On("GetByOrderRef", ctx, "1042").
			Return(&expedition.Expedition{}, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*expedition.Expedition")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpeditionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGenerateLabelHandler(t, factory, orders, sequences, routes, encoder, nil)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Success)
	repo.AssertExpectations(t)
}

func TestGenerateLabelCommandHandler_Handle_SequenceError(t *testing.T) {
	ctx := t.Context()
	agency := testAgency(t)
	cmd, _ := commands.NewGenerateLabelCommand("1042", "", commands.LabelOptions{})

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, "1042").Return(testOrder(), nil).Once()

	sequences := new(MockSequenceSource)
	sequences.On("Next", ctx, agency).Return(0, errors.New("sequence exhausted")).Once()

	h := newGenerateLabelHandler(t, new(MockExpeditionUoWFactory), orders, sequences, new(MockRouteResolver), new(MockRasterEncoder), nil)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.False(t, result.Success)
}

func TestGenerateLabelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.GenerateLabelCommand{} // not constructed properly

	h := newGenerateLabelHandler(t, new(MockExpeditionUoWFactory), new(MockOrderProvider), new(MockSequenceSource), new(MockRouteResolver), new(MockRasterEncoder), nil)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
