package scheduling

import (
	"context"
	"regexp"
	"strings"
	"time"

	"quickserve/config"
	catalogRepo "quickserve/database/repository/catalog"
	vendorRepo "quickserve/database/repository/vendor"
	"quickserve/models"
	"quickserve/services/pricing"
	"quickserve/services/travel"
	"quickserve/utils"

	"go.uber.org/zap"
)

var pincodePattern = regexp.MustCompile(`^[0-9]{4,10}$`)

// DefaultSchedulingEngine is the production scheduling engine: it combines
// the travel estimator, buffer policy, slot generator, scorer and pricing
// engine into the two slot operations.
type DefaultSchedulingEngine struct {
	VendorRepo  vendorRepo.VendorRepository
	CatalogRepo catalogRepo.CatalogRepository
	Travel      travel.Estimator
	Pricing     pricing.PricingEngine
	Buffers     BufferPolicy
	Scorer      ScorerConfig
	StepMinutes int

	// Now supplies the clock so identical inputs with a fixed "now" always
	// yield identical output.
	Now func() time.Time
}

// NewDefaultSchedulingEngine wires an engine with the configured policies.
func NewDefaultSchedulingEngine(
	vendors vendorRepo.VendorRepository,
	catalog catalogRepo.CatalogRepository,
	estimator travel.Estimator,
	pricer pricing.PricingEngine,
) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		VendorRepo:  vendors,
		CatalogRepo: catalog,
		Travel:      estimator,
		Pricing:     pricer,
		Buffers:     DefaultBufferPolicy(),
		Scorer:      DefaultScorerConfig(),
		StepMinutes: config.AppConfig.SlotStepMinutes,
		Now:         time.Now,
	}
}

func (se *DefaultSchedulingEngine) GetAvailableSlots(ctx context.Context, vendorID, serviceID, pincode, date string) (*models.AvailableSlotsResult, error) {
	logger := utils.GetLogger()

	vendor, service, day, err := se.validate(vendorID, serviceID, pincode, date)
	if err != nil {
		return nil, err
	}

	result := &models.AvailableSlotsResult{
		Slots:     []models.TimeSlot{},
		Date:      date,
		VendorID:  vendorID,
		ServiceID: serviceID,
	}

	weekday := strings.ToLower(day.Weekday().String())
	hours, ok := vendor.WorkingHours[weekday]
	if !ok || hours.End <= hours.Start {
		return result, nil
	}

	committed, err := se.VendorRepo.GetCommittedIntervals(vendorID, date)
	if err != nil {
		// Without the commitment list any slot could double-book, so the
		// conservative degradation is an empty day, not a failed request.
		logger.Error("scheduling: commitments unavailable, returning no slots",
			zap.String("vendorID", vendorID), zap.String("date", date), zap.Error(err))
		return result, nil
	}

	estimate := se.Travel.Estimate(ctx, vendor.LocationGeo, pincode)
	buffer := se.Buffers.Window(service.Category, estimate.DurationMinutes)
	if estimate.Confidence == 0 {
		buffer = se.Buffers.WorstCase(service.Category)
	}

	// On the target date itself, candidates must not start in the past.
	earliest := 0
	now := se.Now()
	if date == now.Format("2006-01-02") {
		earliest = now.Hour()*60 + now.Minute()
	}

	slots := GenerateSlots(
		vendorID, serviceID, date,
		hours, committed,
		service.DurationMinutes,
		estimate, buffer,
		se.StepMinutes, earliest,
	)
	slots = ScoreSlots(slots, se.Scorer)

	for i := range slots {
		at := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
			Add(time.Duration(slots[i].Start) * time.Minute)
		slots[i].Pricing = se.Pricing.PriceForVendor(ctx, *service, pincode, at, vendor)
	}

	result.Slots = slots
	result.TotalSlots = len(slots)
	return result, nil
}

func (se *DefaultSchedulingEngine) GetOptimalSlot(ctx context.Context, vendorID, serviceID, pincode, date string) (*OptimalSlotResult, error) {
	slotsResult, err := se.GetAvailableSlots(ctx, vendorID, serviceID, pincode, date)
	if err != nil {
		return nil, err
	}
	if slotsResult.TotalSlots == 0 {
		return &OptimalSlotResult{Available: false}, nil
	}
	best := slotsResult.Slots[0]
	return &OptimalSlotResult{Available: true, Slot: &best}, nil
}

// validate rejects malformed inputs before any computation, naming the field.
func (se *DefaultSchedulingEngine) validate(vendorID, serviceID, pincode, date string) (*models.Vendor, *models.Service, time.Time, error) {
	if vendorID == "" {
		return nil, nil, time.Time{}, utils.InvalidField("vendorId", "must not be empty")
	}
	if serviceID == "" {
		return nil, nil, time.Time{}, utils.InvalidField("serviceId", "must not be empty")
	}
	if !pincodePattern.MatchString(pincode) {
		return nil, nil, time.Time{}, utils.InvalidField("pincode", "must be a 4-10 digit code")
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, nil, time.Time{}, utils.InvalidField("date", "must be formatted YYYY-MM-DD")
	}
	today := se.Now().Format("2006-01-02")
	if date < today {
		return nil, nil, time.Time{}, utils.InvalidField("date", "must not be in the past")
	}

	vendor, err := se.VendorRepo.GetByID(vendorID)
	if err != nil {
		return nil, nil, time.Time{}, utils.InvalidField("vendorId", "unknown vendor")
	}
	service, err := se.CatalogRepo.GetServiceByID(serviceID)
	if err != nil {
		return nil, nil, time.Time{}, utils.InvalidField("serviceId", "unknown service")
	}
	return vendor, service, day, nil
}
