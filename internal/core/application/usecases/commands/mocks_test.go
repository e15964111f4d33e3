package commands_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"grameego/internal/core/application/usecases/commands"
	"grameego/internal/core/domain/model/account"
	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/core/domain/model/shop"
	"grameego/internal/core/ports"
	"grameego/internal/pkg/errs"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Assign(ctx context.Context, id, driverID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllPendingUnassignedBefore(ctx context.Context, cutoff time.Time) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByMobile(ctx context.Context, mobile string) (*account.Account, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Get(ctx context.Context, id kernel.UUID) (shop.Shop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(shop.Shop), args.Error(1)
}

func (m *MockShopRepository) GetAll(ctx context.Context) ([]shop.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Shop), args.Error(1)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockCheckoutUoW) ShopRepository() ports.ShopRepository {
	args := m.Called()
	return args.Get(0).(ports.ShopRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

// plainHasher keeps handler tests independent of the real argon2 parameters.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, encoded string) (bool, error) {
	return encoded == "hashed:"+password, nil
}

// inMemoryDeliveryStore backs the concurrency tests: a mutex-guarded store
// whose Assign has the same atomic semantics as the conditional update the
// real repository issues.
type inMemoryDeliveryStore struct {
	mu         sync.Mutex
	deliveries map[string]*delivery.Delivery
}

func newInMemoryDeliveryStore() *inMemoryDeliveryStore {
	return &inMemoryDeliveryStore{deliveries: make(map[string]*delivery.Delivery)}
}

func (s *inMemoryDeliveryStore) Add(_ context.Context, d *delivery.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries[d.ID().String()] = d
	return nil
}

func (s *inMemoryDeliveryStore) Update(_ context.Context, d *delivery.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.deliveries[d.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("deliveryID", d.ID().String())
	}
	s.deliveries[d.ID().String()] = d
	return nil
}

func (s *inMemoryDeliveryStore) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deliveries[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryID", id.String())
	}
	return d, nil
}

func (s *inMemoryDeliveryStore) Assign(_ context.Context, id, driverID kernel.UUID) (*delivery.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deliveries[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryID", id.String())
	}
	if err := d.Assign(driverID); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *inMemoryDeliveryStore) GetAllPendingUnassignedBefore(_ context.Context, cutoff time.Time) ([]*delivery.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*delivery.Delivery
	for _, d := range s.deliveries {
		if d.Status() == delivery.StatusPending && !d.IsAssigned() &&
			d.NeedBy() != nil && d.NeedBy().Before(cutoff) {
			out = append(out, d)
		}
	}
	return out, nil
}

type inMemoryDeliveryUoW struct {
	store *inMemoryDeliveryStore
}

func (u *inMemoryDeliveryUoW) Begin(context.Context) error    { return nil }
func (u *inMemoryDeliveryUoW) Commit(context.Context) error   { return nil }
func (u *inMemoryDeliveryUoW) Rollback(context.Context) error { return nil }

func (u *inMemoryDeliveryUoW) DeliveryRepository() ports.DeliveryRepository { return u.store }

type inMemoryDeliveryUoWFactory struct {
	store *inMemoryDeliveryStore
}

func (f *inMemoryDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return &inMemoryDeliveryUoW{store: f.store}
}
