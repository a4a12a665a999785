package models

// PricePosture positions the offer on the price spectrum
type PricePosture string

const (
	PosturePremium    PricePosture = "premium"
	PostureValue      PricePosture = "value"
	PostureAccessible PricePosture = "accessible"
)

// ValidPostures lists every accepted price posture
var ValidPostures = []PricePosture{PosturePremium, PostureValue, PostureAccessible}

// DeliveryModel describes how the service is fulfilled
type DeliveryModel string

const (
	DeliveryRetainer       DeliveryModel = "retainer"
	DeliveryProject        DeliveryModel = "one_time_project"
	DeliveryGroupProgram   DeliveryModel = "group_program"
	DeliveryDigitalProduct DeliveryModel = "digital_product"
	DeliveryHybrid         DeliveryModel = "hybrid"
)

// ValidDeliveryModels lists every accepted delivery model
var ValidDeliveryModels = []DeliveryModel{
	DeliveryRetainer, DeliveryProject, DeliveryGroupProgram, DeliveryDigitalProduct, DeliveryHybrid,
}

// Scalable reports whether the model grows without linear founder hours
func (d DeliveryModel) Scalable() bool {
	switch d {
	case DeliveryGroupProgram, DeliveryDigitalProduct, DeliveryHybrid:
		return true
	}
	return false
}

// ContractStyle describes the commitment term sold with the offer
type ContractStyle string

const (
	ContractMonthToMonth ContractStyle = "month_to_month"
	ContractQuarterly    ContractStyle = "quarterly"
	ContractSixMonth     ContractStyle = "six_month"
	ContractAnnual       ContractStyle = "annual"
	ContractProject      ContractStyle = "project"
)

// ValidContractStyles lists every accepted contract style
var ValidContractStyles = []ContractStyle{
	ContractMonthToMonth, ContractQuarterly, ContractSixMonth, ContractAnnual, ContractProject,
}

// GuaranteeKind describes the risk-reversal attached to the offer
type GuaranteeKind string

const (
	GuaranteeResults     GuaranteeKind = "results"
	GuaranteeRefund      GuaranteeKind = "refund"
	GuaranteePerformance GuaranteeKind = "performance"
	GuaranteeNone        GuaranteeKind = "none"
)

// ValidGuarantees lists every accepted guarantee kind
var ValidGuarantees = []GuaranteeKind{GuaranteeResults, GuaranteeRefund, GuaranteePerformance, GuaranteeNone}

// ValuePeriod qualifies the contract value figure
type ValuePeriod string

const (
	PeriodAnnual  ValuePeriod = "annual"
	PeriodMonthly ValuePeriod = "monthly"
)

// FounderSection captures the founder's track record and capabilities
type FounderSection struct {
	SignatureResults []string `json:"signature_results"`
	CoreStrengths    []string `json:"core_strengths"`
	Processes        []string `json:"processes"`
	Industries       []string `json:"industries"`
	ProofAssets      []string `json:"proof_assets"`
}

// MarketSection captures who the offer is sold to and why they buy
type MarketSection struct {
	TargetMarket string   `json:"target_market"`
	BuyerRole    string   `json:"buyer_role"`
	Pains        []string `json:"pains"`
	Outcomes     []string `json:"outcomes"`
}

// BusinessSection captures delivery capacity and economics
type BusinessSection struct {
	DeliveryModels   []DeliveryModel `json:"delivery_models"`
	Capacity         int             `json:"capacity"`
	MonthlyHours     int             `json:"monthly_hours"`
	ContractValue    int             `json:"contract_value"`
	ValuePeriod      ValuePeriod     `json:"value_period"`
	FulfillmentStack []string        `json:"fulfillment_stack"`
}

// PricingSection captures the founder's pricing posture
type PricingSection struct {
	PricePosture  PricePosture  `json:"price_posture"`
	ContractStyle ContractStyle `json:"contract_style"`
	GuaranteeKind GuaranteeKind `json:"guarantee_kind"`
}

// VoiceSection captures brand voice and positioning
type VoiceSection struct {
	BrandTone        string   `json:"brand_tone"`
	PositioningAngle string   `json:"positioning_angle"`
	Differentiators  []string `json:"differentiators"`
}

// BusinessProfile is the immutable input record for offer generation.
// It is owned by the caller and never mutated by the engine.
type BusinessProfile struct {
	Founder  FounderSection  `json:"founder"`
	Market   MarketSection   `json:"market"`
	Business BusinessSection `json:"business"`
	Pricing  PricingSection  `json:"pricing"`
	Voice    VoiceSection    `json:"voice"`
}

// HoursPerClient derives the per-client monthly hour budget.
// Callers must validate capacity > 0 first.
func (p *BusinessProfile) HoursPerClient() float64 {
	if p.Business.Capacity <= 0 {
		return 0
	}
	return float64(p.Business.MonthlyHours) / float64(p.Business.Capacity)
}

// PrimaryStrength returns the founder's first declared strength, or "" when absent
func (p *BusinessProfile) PrimaryStrength() string {
	if len(p.Founder.CoreStrengths) == 0 {
		return ""
	}
	return p.Founder.CoreStrengths[0]
}
