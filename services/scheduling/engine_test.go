package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickserve/models"
	"quickserve/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVendorRepo struct {
	vendor       *models.Vendor
	committed    []models.Interval
	committedErr error
}

func (f *fakeVendorRepo) GetByID(id string) (*models.Vendor, error) {
	if f.vendor == nil || f.vendor.ID != id {
		return nil, errors.New("not found")
	}
	return f.vendor, nil
}

func (f *fakeVendorRepo) GetCommittedIntervals(vendorID, date string) ([]models.Interval, error) {
	return f.committed, f.committedErr
}

func (f *fakeVendorRepo) ResolvePincode(pincode string) (*models.GeoPoint, error) {
	return &models.GeoPoint{Type: "Point", Coordinates: []float64{77.6, 12.97}}, nil
}

func (f *fakeVendorRepo) CountActive(pincode, category string) (int, error) {
	return 5, nil
}

type fakeCatalogRepo struct {
	service *models.Service
}

func (f *fakeCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, errors.New("not found")
	}
	return f.service, nil
}

func (f *fakeCatalogRepo) ListServices() ([]models.Service, error) {
	if f.service == nil {
		return nil, nil
	}
	return []models.Service{*f.service}, nil
}

type fakeEstimator struct {
	estimate models.TravelEstimate
}

func (f *fakeEstimator) Estimate(ctx context.Context, origin models.GeoPoint, destPincode string) models.TravelEstimate {
	return f.estimate
}

type fakePricer struct{}

func (f *fakePricer) GetDynamicPrice(ctx context.Context, serviceID, pincode string, scheduledAt *time.Time) (*models.PricingResult, error) {
	return f.PriceForVendor(ctx, models.Service{ID: serviceID}, pincode, time.Time{}, nil), nil
}

func (f *fakePricer) PriceForVendor(ctx context.Context, service models.Service, pincode string, at time.Time, vendor *models.Vendor) *models.PricingResult {
	return &models.PricingResult{
		ServiceID:       service.ID,
		Pincode:         pincode,
		BasePriceMinor:  service.BasePriceMinor,
		FinalPriceMinor: service.BasePriceMinor,
		TotalMultiplier: 1.0,
	}
}

func testVendor() *models.Vendor {
	return &models.Vendor{
		ID:      "vendor-001",
		Name:    "Test Vendor",
		Pincode: "560001",
		WorkingHours: map[string]models.WorkingHours{
			"thursday": {Start: 480, End: 1080},
		},
		Categories: []string{"cleaning"},
		Active:     true,
	}
}

func testEngine(vendors *fakeVendorRepo, now time.Time) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		VendorRepo: vendors,
		CatalogRepo: &fakeCatalogRepo{service: &models.Service{
			ID: "svc-clean-std", Category: "cleaning",
			BasePriceMinor: 8000, Currency: "INR", DurationMinutes: 120,
		}},
		Travel:      &fakeEstimator{estimate: testTravel},
		Pricing:     &fakePricer{},
		Buffers:     testBufferPolicy(),
		Scorer:      testScorerConfig(),
		StepMinutes: 30,
		Now:         func() time.Time { return now },
	}
}

// 2026-09-03 is a Thursday.
var testNow = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)

func TestGetAvailableSlots(t *testing.T) {
	engine := testEngine(&fakeVendorRepo{vendor: testVendor()}, testNow)

	result, err := engine.GetAvailableSlots(context.Background(), "vendor-001", "svc-clean-std", "560001", "2026-09-03")
	require.NoError(t, err)
	require.NotZero(t, result.TotalSlots)
	assert.Len(t, result.Slots, result.TotalSlots)

	for i, slot := range result.Slots {
		assert.Equal(t, "vendor-001", slot.VendorID)
		assert.Equal(t, "2026-09-03", slot.Date)
		require.NotNil(t, slot.Pricing, "every slot carries a price")
		assert.Equal(t, "svc-clean-std", slot.Pricing.ServiceID)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Slots[i-1].OptimizationScore, slot.OptimizationScore,
				"slots must be ordered best-first")
		}
	}
}

func TestGetAvailableSlotsSameDayStartsAfterNow(t *testing.T) {
	// Noon on the requested date itself.
	now := time.Date(2026, time.September, 3, 12, 0, 0, 0, time.Local)
	engine := testEngine(&fakeVendorRepo{vendor: testVendor()}, now)

	result, err := engine.GetAvailableSlots(context.Background(), "vendor-001", "svc-clean-std", "560001", "2026-09-03")
	require.NoError(t, err)
	for _, slot := range result.Slots {
		assert.GreaterOrEqual(t, slot.Start, 720, "slot starts in the past")
	}
}

func TestGetAvailableSlotsDayOff(t *testing.T) {
	vendor := testVendor()
	delete(vendor.WorkingHours, "thursday")
	engine := testEngine(&fakeVendorRepo{vendor: vendor}, testNow)

	result, err := engine.GetAvailableSlots(context.Background(), "vendor-001", "svc-clean-std", "560001", "2026-09-03")
	require.NoError(t, err, "a day off is an empty day, not an error")
	assert.Zero(t, result.TotalSlots)
	assert.NotNil(t, result.Slots)
}

func TestGetAvailableSlotsCommitmentsUnavailable(t *testing.T) {
	repo := &fakeVendorRepo{vendor: testVendor(), committedErr: errors.New("store down")}
	engine := testEngine(repo, testNow)

	result, err := engine.GetAvailableSlots(context.Background(), "vendor-001", "svc-clean-std", "560001", "2026-09-03")
	require.NoError(t, err)
	assert.Zero(t, result.TotalSlots, "unknown commitments must not offer any slot")
}

func TestGetAvailableSlotsUnknownTravelUsesWorstCaseBuffers(t *testing.T) {
	engine := testEngine(&fakeVendorRepo{vendor: testVendor()}, testNow)
	engine.Travel = &fakeEstimator{estimate: models.TravelEstimate{
		DurationMinutes: 30,
		Source:          models.TravelSourceEstimated,
		Confidence:      0,
	}}

	result, err := engine.GetAvailableSlots(context.Background(), "vendor-001", "svc-clean-std", "560001", "2026-09-03")
	require.NoError(t, err)
	require.NotZero(t, result.TotalSlots)
	for _, slot := range result.Slots {
		assert.Equal(t, 30, slot.Buffer.BeforeMinutes, "cleaning ceiling applies when travel is unknown")
		assert.NotEmpty(t, slot.Caveat)
	}
}

func TestGetAvailableSlotsValidation(t *testing.T) {
	engine := testEngine(&fakeVendorRepo{vendor: testVendor()}, testNow)
	ctx := context.Background()

	cases := []struct {
		name                               string
		vendorID, serviceID, pincode, date string
		field                              string
	}{
		{"empty vendor", "", "svc-clean-std", "560001", "2026-09-03", "vendorId"},
		{"empty service", "vendor-001", "", "560001", "2026-09-03", "serviceId"},
		{"bad pincode", "vendor-001", "svc-clean-std", "56a", "2026-09-03", "pincode"},
		{"bad date", "vendor-001", "svc-clean-std", "560001", "03-09-2026", "date"},
		{"past date", "vendor-001", "svc-clean-std", "560001", "2026-08-31", "date"},
		{"unknown vendor", "vendor-999", "svc-clean-std", "560001", "2026-09-03", "vendorId"},
		{"unknown service", "vendor-001", "svc-nope", "560001", "2026-09-03", "serviceId"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.GetAvailableSlots(ctx, tc.vendorID, tc.serviceID, tc.pincode, tc.date)
			var verr *utils.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestGetOptimalSlot(t *testing.T) {
	engine := testEngine(&fakeVendorRepo{vendor: testVendor()}, testNow)

	best, err := engine.GetOptimalSlot(context.Background(), "vendor-001", "svc-clean-std", "560001", "2026-09-03")
	require.NoError(t, err)
	require.True(t, best.Available)
	require.NotNil(t, best.Slot)

	all, err := engine.GetAvailableSlots(context.Background(), "vendor-001", "svc-clean-std", "560001", "2026-09-03")
	require.NoError(t, err)
	assert.Equal(t, all.Slots[0].ID, best.Slot.ID)
}

func TestGetOptimalSlotNoneAvailable(t *testing.T) {
	repo := &fakeVendorRepo{
		vendor:    testVendor(),
		committed: []models.Interval{{Start: 0, End: 1440}},
	}
	engine := testEngine(repo, testNow)

	best, err := engine.GetOptimalSlot(context.Background(), "vendor-001", "svc-clean-std", "560001", "2026-09-03")
	require.NoError(t, err, "a fully booked day is not an error")
	assert.False(t, best.Available)
	assert.Nil(t, best.Slot)
}
