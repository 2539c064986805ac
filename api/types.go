package api

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

const (
	PayNowMoveNow     = "pay_now_move_now"
	PayNowMoveLater   = "pay_now_move_later"
	PayLaterMoveLater = "pay_later_move_later"
)

// PaymentOptions lists the fulfillment modes in the order the booking
// form offers them; the first entry is the form default.
var PaymentOptions = []string{PayNowMoveNow, PayNowMoveLater, PayLaterMoveLater}

type VirtualUnit struct {
	ID             string   `json:"id"`
	PhysicalUnitID string   `json:"physical_unit_id"`
	UnitType       string   `json:"unit_type"`
	DisplaySize    string   `json:"display_size"`
	DisplayName    string   `json:"display_name"`
	DailyPrice     float64  `json:"daily_price"`
	WeeklyPrice    float64  `json:"weekly_price"`
	MonthlyPrice   float64  `json:"monthly_price"`
	Amenities      []string `json:"amenities"`
	ImageURL       string   `json:"image_url"`
	Description    string   `json:"description"`
}

type FilterOptions struct {
	UnitTypes      []string   `json:"unit_types"`
	Amenities      []string   `json:"amenities"`
	SizeCategories []string   `json:"size_categories"`
	PricingPeriods []string   `json:"pricing_periods"`
	PaymentOptions []string   `json:"payment_options"`
	PriceRange     PriceRange `json:"price_range"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type BookingRequest struct {
	VirtualUnitID   string `json:"virtual_unit_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	PaymentOption   string `json:"payment_option"`
	PricingPeriod   string `json:"pricing_period"`
	StartDate       string `json:"start_date"`
	MoveInDate      string `json:"move_in_date"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type Booking struct {
	ID              string  `json:"id"`
	VirtualUnitID   string  `json:"virtual_unit_id"`
	PhysicalUnitID  string  `json:"physical_unit_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	PaymentOption   string  `json:"payment_option"`
	PricingPeriod   string  `json:"pricing_period"`
	StartDate       string  `json:"start_date"`
	MoveInDate      string  `json:"move_in_date"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests"`
	CreatedAt       string  `json:"created_at"`
}

type Customer struct {
	ID                string `json:"id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Company           string `json:"company"`
	CustomerType      string `json:"customer_type"`
	AcquisitionSource string `json:"acquisition_source"`
	LoyaltyTier       string `json:"loyalty_tier"`
	LoyaltyPoints     int    `json:"loyalty_points"`
	CreatedAt         string `json:"created_at"`
}

type LoyaltyAccount struct {
	CustomerID string         `json:"customer_id"`
	Points     int            `json:"points"`
	Tier       string         `json:"tier"`
	History    []LoyaltyEntry `json:"history"`
}

type LoyaltyEntry struct {
	ID          string `json:"id"`
	Points      int    `json:"points"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type Location struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Address          string            `json:"address"`
	City             string            `json:"city"`
	State            string            `json:"state"`
	ZipCode          string            `json:"zip_code"`
	Phone            string            `json:"phone"`
	Email            string            `json:"email"`
	ManagerName      string            `json:"manager_name"`
	Description      string            `json:"description"`
	Amenities        []string          `json:"amenities"`
	HoursOfOperation map[string]string `json:"hours_of_operation"`
}

type ImageAsset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Category    string   `json:"category"` // hero, unit, feature, gallery
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
}

// Banner targets one or more funnel stages; an empty FunnelStages set
// means the banner applies to every stage.
type Banner struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	CTAText      string   `json:"cta_text"`
	CTAURL       string   `json:"cta_url"`
	FunnelStages []string `json:"funnel_stages"`
	Style        string   `json:"style"`
	Active       bool     `json:"active"`
}

type ContentBlock struct {
	ID        string `json:"id"`
	Section   string `json:"section"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"image_url"`
	UpdatedAt string `json:"updated_at"`
}

type APIKey struct {
	ID          string `json:"id"`
	Service     string `json:"service"` // stripe, twilio, sendgrid
	KeyName     string `json:"key_name"`
	KeyValue    string `json:"key_value,omitempty"`
	MaskedValue string `json:"masked_value"`
	Environment string `json:"environment"` // test or live
	CreatedAt   string `json:"created_at"`
}

type FunnelEvent struct {
	SessionID string         `json:"session_id"`
	EventType string         `json:"event_type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type FunnelUser struct {
	SessionID   string `json:"session_id"`
	Stage       string `json:"stage"`
	LastEventAt string `json:"last_event_at"`
}

type IntegrationService struct {
	Configured bool `json:"configured"`
	TestMode   bool `json:"test_mode"`
}

type IntegrationStatus map[string]IntegrationService
