package commands_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grameego/internal/core/application/usecases/commands"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
)

func TestAcceptDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	d := fixtureDelivery(t, kernel.NewUUID())
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAcceptDeliveryCommand(d.ID(), driverID)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)

	require.NoError(t, d.Assign(driverID))
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Assign", ctx, d.ID(), driverID).Return(d, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptDeliveryCommandHandler(factory)
	accepted, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, accepted)
	assert.True(t, accepted.AssignedDriver().IsEqual(driverID))
	uow.AssertExpectations(t)
}

func TestAcceptDeliveryCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Assign", ctx, deliveryID, mock.Anything).
			Return(nil, errs.NewAlreadyAssignedError(deliveryID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptDeliveryCommandHandler_Handle_ConcurrentAccepts(t *testing.T) {
	ctx := t.Context()

	store := newInMemoryDeliveryStore()
	d := fixtureDelivery(t, kernel.NewUUID())
	require.NoError(t, store.Add(ctx, d))

	handler := commands.NewAcceptDeliveryCommandHandler(&inMemoryDeliveryUoWFactory{store: store})

	drivers := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	errsByDriver := make([]error, len(drivers))

	var wg sync.WaitGroup
	for i, driverID := range drivers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewAcceptDeliveryCommand(d.ID(), driverID)
			require.NoError(t, cmdErr)
			_, errsByDriver[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	winners := 0
	for i, driverID := range drivers {
		if errsByDriver[i] == nil {
			winners++
			assert.True(t, d.AssignedDriver().IsEqual(driverID))
		} else {
			assert.ErrorIs(t, errsByDriver[i], errs.ErrAlreadyAssigned)
		}
	}
	assert.Equal(t, 1, winners)
	assert.True(t, d.IsAssigned())
}
