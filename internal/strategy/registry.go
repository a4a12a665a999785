// Package strategy holds the deterministic offer synthesis path. The
// registry is the single source of phrasing truth: the fallback
// synthesizer assembles packages from it directly, and the generation
// prompts borrow its example phrasing so both paths speak the same way.
package strategy

import "strings"

// Strength is the closed set of founder strength archetypes the
// registry knows how to package.
type Strength string

const (
	StrengthSales      Strength = "sales"
	StrengthMarketing  Strength = "marketing"
	StrengthOperations Strength = "operations"
	StrengthConsulting Strength = "consulting"
	StrengthCoaching   Strength = "coaching"
)

// Template carries every phrasing fragment needed to assemble a
// three-tier package for one strength archetype. Scope and milestone
// entries may reference {pain}, {outcome}, {market} and {buyer}.
type Template struct {
	Strength       Strength
	Label          string
	TierNames      [3]string
	Promises       [3]string
	StarterScope   []string
	CoreScope      []string
	PremiumScope   []string
	Milestones     []string
	ExpectedLifts  [3]string
	Requirements   []string
	// ExamplePhrases seed the generation prompt with the archetype's voice
	ExamplePhrases []string
}

var registry = map[Strength]Template{
	StrengthSales: {
		Strength:  StrengthSales,
		Label:     "Revenue Acceleration",
		TierNames: [3]string{"Pipeline Starter", "Revenue Engine", "Market Dominator"},
		Promises: [3]string{
			"A working outbound motion that turns {market} conversations into booked calls",
			"A predictable pipeline that solves {pain} for good",
			"A sales organization that compounds toward {outcome}",
		},
		StarterScope: []string{
			"Outbound playbook tuned to {buyer} conversations",
			"Weekly pipeline review and deal coaching",
			"Objection library built from {pain}",
		},
		CoreScope: []string{
			"Full-funnel sales process design and installation",
			"Bi-weekly deal strategy sessions with the founder",
			"Proposal and pricing frameworks aimed at {outcome}",
			"CRM hygiene and forecasting cadence",
		},
		PremiumScope: []string{
			"Embedded revenue leadership across the whole funnel",
			"Weekly executive sessions plus on-call deal support",
			"Hiring scorecards and ramp plans for the first sales hires",
			"Quarterly revenue architecture reviews",
		},
		Milestones: []string{
			"Week 2: outbound motion live",
			"Day 30: first sourced opportunities in pipeline",
			"Day 60: repeatable close process documented",
			"Day 90: forecast accuracy within 20%",
		},
		ExpectedLifts: [3]string{
			"15-25% more qualified conversations",
			"30-50% pipeline growth inside two quarters",
			"2x close rate on sourced opportunities",
		},
		Requirements: []string{
			"Access to CRM and call recordings",
			"Founder availability for weekly sessions",
		},
		ExamplePhrases: []string{
			"turns conversations into booked revenue",
			"a pipeline you can forecast, not hope about",
		},
	},
	StrengthMarketing: {
		Strength:  StrengthMarketing,
		Label:     "Demand Generation",
		TierNames: [3]string{"Demand Foundations", "Growth Engine", "Category Leader"},
		Promises: [3]string{
			"A positioning and channel plan that makes {market} pay attention",
			"A demand engine that replaces {pain} with predictable inbound",
			"Category-defining presence that compounds toward {outcome}",
		},
		StarterScope: []string{
			"Positioning narrative and messaging hierarchy",
			"One primary channel playbook with weekly iteration",
			"Baseline analytics and attribution setup",
		},
		CoreScope: []string{
			"Multi-channel demand program design and operation",
			"Monthly campaign sprints aimed at {outcome}",
			"Content engine with {buyer}-level editorial standards",
			"Funnel conversion audits and fixes",
		},
		PremiumScope: []string{
			"Full growth leadership across brand, demand and product marketing",
			"Weekly growth councils with the founding team",
			"Category design program including analyst and community motion",
			"Marketing hiring plan and team onboarding",
		},
		Milestones: []string{
			"Week 2: positioning narrative approved",
			"Day 30: primary channel live with baseline metrics",
			"Day 60: first campaign sprint retrospective",
			"Day 90: cost-per-opportunity trending down",
		},
		ExpectedLifts: [3]string{
			"20-30% lift in qualified traffic",
			"40-60% more inbound opportunities inside two quarters",
			"3x share of voice in the category conversation",
		},
		Requirements: []string{
			"Access to analytics and ad accounts",
			"A subject-matter voice for content review",
		},
		ExamplePhrases: []string{
			"demand that shows up before the sales team does",
			"positioning sharp enough to cut through a crowded feed",
		},
	},
	StrengthOperations: {
		Strength:  StrengthOperations,
		Label:     "Operational Excellence",
		TierNames: [3]string{"Ops Baseline", "Scale System", "Operating Partner"},
		Promises: [3]string{
			"Documented systems that stop {pain} from eating the week",
			"An operating cadence that lets {market} teams scale without chaos",
			"An operating partner accountable for {outcome}",
		},
		StarterScope: []string{
			"Process audit across delivery and back office",
			"Top-3 bottleneck elimination plan",
			"SOP library for the core workflows",
		},
		CoreScope: []string{
			"End-to-end operating system design and rollout",
			"KPI tree and weekly scorecard cadence",
			"Automation of the highest-friction handoffs",
			"Capacity model tied to hiring triggers",
		},
		PremiumScope: []string{
			"Fractional COO engagement across every function",
			"Weekly leadership operating reviews",
			"Vendor and tooling rationalization program",
			"Annual planning and budget architecture",
		},
		Milestones: []string{
			"Week 2: process audit complete",
			"Day 30: top bottleneck removed",
			"Day 60: scorecard cadence running",
			"Day 90: capacity model driving hiring decisions",
		},
		ExpectedLifts: [3]string{
			"10-20% of founder hours returned",
			"25-40% throughput gain at flat headcount",
			"Scale-ready operations audited to investor standard",
		},
		Requirements: []string{
			"Access to current tooling and process docs",
			"An internal owner for each rolled-out system",
		},
		ExamplePhrases: []string{
			"systems that run without the founder in the room",
			"an operating cadence instead of a weekly fire drill",
		},
	},
	StrengthConsulting: {
		Strength:  StrengthConsulting,
		Label:     "Strategic Advisory",
		TierNames: [3]string{"Advisory Access", "Strategic Partner", "Executive Counsel"},
		Promises: [3]string{
			"Senior judgment on tap for decisions that touch {pain}",
			"A structured advisory partnership aimed squarely at {outcome}",
			"Board-level counsel embedded with the {market} leadership team",
		},
		StarterScope: []string{
			"Monthly strategy sessions with written follow-ups",
			"Async access for time-sensitive decisions",
			"Quarterly priorities review",
		},
		CoreScope: []string{
			"Bi-weekly working sessions with the leadership team",
			"Decision memos for the calls that matter",
			"Roadmap aimed at {outcome} with owner-level accountability",
			"Introductions from the operator network where relevant",
		},
		PremiumScope: []string{
			"Weekly embedded advisory across strategy and execution",
			"Board meeting preparation and attendance",
			"Scenario planning for the next funding or exit window",
			"On-call counsel for negotiations and key hires",
		},
		Milestones: []string{
			"Week 2: priorities aligned and documented",
			"Day 30: first decision memo delivered",
			"Day 60: roadmap checkpoints reviewed",
			"Day 90: measurable movement on the headline goal",
		},
		ExpectedLifts: [3]string{
			"Faster, better-documented decisions",
			"Leadership alignment on one measurable roadmap",
			"Investor-grade strategic narrative",
		},
		Requirements: []string{
			"Pre-read materials 48 hours before sessions",
			"A single accountable owner per roadmap item",
		},
		ExamplePhrases: []string{
			"judgment earned in rooms like yours",
			"advice that comes with homework attached",
		},
	},
	StrengthCoaching: {
		Strength:  StrengthCoaching,
		Label:     "Performance Coaching",
		TierNames: [3]string{"Momentum", "Transformation", "Inner Circle"},
		Promises: [3]string{
			"A coaching cadence that turns {pain} into a plan",
			"A structured transformation program pointed at {outcome}",
			"High-touch partnership for {buyer} leaders who want the ceiling raised",
		},
		StarterScope: []string{
			"Bi-weekly 1:1 coaching sessions",
			"Goal architecture and accountability tracking",
			"Session notes with committed next actions",
		},
		CoreScope: []string{
			"Weekly 1:1 coaching with between-session support",
			"Leadership 360 assessment and development plan",
			"Quarterly deep-dive intensives",
			"Progress scorecard reviewed monthly",
		},
		PremiumScope: []string{
			"Founder and leadership-team coaching combined",
			"Unlimited async access between sessions",
			"Two in-person intensives per year",
			"Succession and delegation architecture",
		},
		Milestones: []string{
			"Week 2: goal architecture locked",
			"Day 30: first accountability cycle complete",
			"Day 60: 360 feedback integrated",
			"Day 90: headline goal checkpoint",
		},
		ExpectedLifts: [3]string{
			"Consistent weekly execution on stated goals",
			"Measurable leadership behavior change",
			"A leadership bench that runs without the founder",
		},
		Requirements: []string{
			"Committed session attendance",
			"Willingness to share real numbers and real blockers",
		},
		ExamplePhrases: []string{
			"accountability that survives a busy quarter",
			"growth plans written down, then actually done",
		},
	},
}

// aliases maps free-text strength declarations onto registry archetypes
var aliases = map[string]Strength{
	"sales":       StrengthSales,
	"selling":     StrengthSales,
	"revenue":     StrengthSales,
	"bd":          StrengthSales,
	"marketing":   StrengthMarketing,
	"growth":      StrengthMarketing,
	"demand":      StrengthMarketing,
	"brand":       StrengthMarketing,
	"operations":  StrengthOperations,
	"ops":         StrengthOperations,
	"systems":     StrengthOperations,
	"process":     StrengthOperations,
	"consulting":  StrengthConsulting,
	"strategy":    StrengthConsulting,
	"advisory":    StrengthConsulting,
	"coaching":    StrengthCoaching,
	"coach":       StrengthCoaching,
	"mentoring":   StrengthCoaching,
	"leadership":  StrengthCoaching,
}

// aliasOrder fixes the substring scan order so ambiguous declarations
// resolve the same way every time.
var aliasOrder = []string{
	"sales", "selling", "revenue", "bd",
	"marketing", "growth", "demand", "brand",
	"operations", "ops", "systems", "process",
	"consulting", "strategy", "advisory",
	"coaching", "coach", "mentoring", "leadership",
}

// Lookup resolves a declared strength to its template. Unmatched
// strengths fall back to the consulting archetype, so Lookup never fails.
func Lookup(declared string) Template {
	normalized := strings.ToLower(strings.TrimSpace(declared))
	if s, ok := aliases[normalized]; ok {
		return registry[s]
	}
	for _, alias := range aliasOrder {
		if strings.Contains(normalized, alias) {
			return registry[aliases[alias]]
		}
	}
	return registry[StrengthConsulting]
}

// Templates returns every registered template, for prompt construction
func Templates() map[Strength]Template {
	return registry
}
