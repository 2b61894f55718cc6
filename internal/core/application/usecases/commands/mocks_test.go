package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/partner"
	"shiptrack/internal/core/domain/model/seller"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetAllOverdue(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetByEmail(ctx context.Context, email string) (*partner.Partner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAllServingZipCode(
	ctx context.Context, zip kernel.ZipCode,
) ([]*partner.Partner, error) {
	args := m.Called(ctx, zip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

type MockSellerRepository struct{ mock.Mock }

func (m *MockSellerRepository) Add(ctx context.Context, s *seller.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSellerRepository) Update(ctx context.Context, s *seller.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSellerRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetByEmail(ctx context.Context, email string) (*seller.Seller, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) SellerRepository() ports.SellerRepository {
	args := m.Called()
	return args.Get(0).(ports.SellerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

type MockSellerUoWFactory struct{ mock.Mock }

func (m *MockSellerUoWFactory) Create() commands.SellerUoW {
	args := m.Called()
	return args.Get(0).(commands.SellerUoW)
}

// recordingNotifier captures notifications on a channel so tests can wait for
// the background dispatch without sleeping.
type recordingNotifier struct {
	notifications chan ports.StatusNotification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{notifications: make(chan ports.StatusNotification, 8)}
}

func (n *recordingNotifier) NotifyStatusChange(_ context.Context, notification ports.StatusNotification) error {
	n.notifications <- notification
	return nil
}

func (n *recordingNotifier) await(t *testing.T) ports.StatusNotification {
	t.Helper()
	select {
	case notification := <-n.notifications:
		return notification
	case <-time.After(2 * time.Second):
		t.Fatal("expected a status notification")
		return ports.StatusNotification{}
	}
}

func (n *recordingNotifier) assertSilent(t *testing.T) {
	t.Helper()
	select {
	case notification := <-n.notifications:
		t.Fatalf("unexpected notification for status %s", notification.Status)
	case <-time.After(100 * time.Millisecond):
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func zipOf(t *testing.T, value int) kernel.ZipCode {
	t.Helper()
	zip, err := kernel.NewZipCode(value)
	require.NoError(t, err)
	return zip
}

func testSeller(t *testing.T, zip *int) *seller.Seller {
	t.Helper()
	var zipCode *kernel.ZipCode
	if zip != nil {
		z := zipOf(t, *zip)
		zipCode = &z
	}
	s, err := seller.RestoreSeller(
		kernel.NewUUID(), "Acme Store", "shop@acme.example.com", "hash", true, zipCode,
		time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return s
}

func testSellerUnverified(t *testing.T) *seller.Seller {
	t.Helper()
	s, err := seller.NewSeller(
		kernel.NewUUID(), "Acme Store", "shop@acme.example.com", "hash", nil,
		time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return s
}

func testPartnerUnverified(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(
		kernel.NewUUID(), "Speedy Couriers", "ops@speedy.example.com", "hash",
		[]kernel.ZipCode{zipOf(t, 10001)}, 5,
		time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func testPartner(t *testing.T, maxCapacity, activeShipments int, zipValues ...int) *partner.Partner {
	t.Helper()
	zips := make([]kernel.ZipCode, 0, len(zipValues))
	for _, value := range zipValues {
		zips = append(zips, zipOf(t, value))
	}
	p, err := partner.RestorePartner(
		kernel.NewUUID(), "Speedy Couriers", "ops@speedy.example.com", "hash", true,
		zips, maxCapacity, activeShipments, time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func testAssignedShipment(t *testing.T, sellerID, partnerID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), "ceramic mug set", 2.5, zipOf(t, 10001),
		"client@example.com", nil, sellerID,
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, s.AssignPartner(partnerID))
	_, err = s.RecordEvent(
		kernel.NewUUID(), shipment.StatusPlaced, nil, "assigned to partner Speedy Couriers",
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return s
}
