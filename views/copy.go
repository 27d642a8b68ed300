package views

// PricingAnchor is the id of the pricing section. Every "Start Free Trial"
// link on the page points at it.
const PricingAnchor = "pricing"

// Site-wide copy shared by the head and the page body.
const (
	SiteName = "FashFlow"
	Tagline  = "Human‑Like Automation for Depop Sellers"
	Pitch    = "Automatically relist and like items to boost your visibility — safely and naturally, just like a real person."
)

// Section headings, in document order.
const (
	HeadingHero       = Tagline
	HeadingProblem    = "Selling on Depop Takes Time You Don’t Have"
	HeadingSolution   = "Let Our Tool Do the Work — Just Like You Would"
	HeadingHowItWorks = "How It Works"
	HeadingProof      = "Loved by Busy Sellers"
	HeadingPricing    = "Simple, Affordable Pricing"
	HeadingSafety     = "Safe, Human‑Like Automation"
	HeadingFinalCTA   = "Spend Less Time Clicking — and More Time Selling"
)

// SectionHeadings lists every section heading in the order Home renders them.
var SectionHeadings = []string{
	HeadingHero,
	HeadingProblem,
	HeadingSolution,
	HeadingHowItWorks,
	HeadingProof,
	HeadingPricing,
	HeadingSafety,
	HeadingFinalCTA,
}

const (
	labelStartTrial  = "Start Free Trial"
	labelGetStarted  = "Get Started"
	solutionSubcopy  = "Our automation mimics real human behavior — with realistic timing and patterns — so it’s safe for your account."
	safetySubcopy    = "We use realistic delays, randomization, and human‑like patterns to keep your account safe. No password sharing — your data stays secure."
	testimonialQuote = "“I went from 2 sales a week to 6 — without spending more time online.”"
	testimonialName  = "Placeholder Name"
)

var trustBadges = []string{"Safe to Use", "No Password Sharing", "Cancel Anytime"}

var painPoints = []string{
	"Manually relisting items every day is exhausting",
	"Liking items to get noticed takes hours",
	"Falling behind means fewer sales",
}

type feature struct {
	Title string
	Body  string
}

var features = []feature{
	{Title: "Automatic Relisting", Body: "Keep your items at the top of search results — without constant manual work."},
	{Title: "Auto‑Like", Body: "Engage with buyers and boost visibility — in a natural, human‑like way."},
}

var steps = []feature{
	{Title: "Sign up and connect your Depop account", Body: "Create your account in minutes."},
	{Title: "Set your relisting and liking preferences", Body: "Choose timing and limits that match your pace."},
	{Title: "Watch your items climb the search results", Body: "We handle the repetitive clicks for you."},
}

type plan struct {
	Name     string
	Summary  string
	Action   string
	Featured bool
}

var plans = []plan{
	{Name: "Free", Summary: "10 relists/day, 10 likes/day", Action: labelGetStarted},
	{Name: "Pro", Summary: "Unlimited relists & likes, priority support", Action: labelStartTrial, Featured: true},
}

var safetyClaims = []string{"Realistic delays", "Randomized patterns", "No password sharing"}

type illustration struct {
	File  string
	Alt   string
	Sizes string
}

var (
	heroImage     = illustration{File: "hero-relist.png", Alt: "Relisting automation preview", Sizes: "(min-width: 768px) 540px, 100vw"}
	problemImage  = illustration{File: "problem.png", Alt: "Common time drains for Depop sellers", Sizes: "(min-width: 768px) 768px, 100vw"}
	solutionImage = illustration{File: "solution.png", Alt: "Human-like automation: relisting and liking", Sizes: "(min-width: 768px) 768px, 100vw"}
)

// Images lists the illustrative images the page references.
func Images() []string {
	return []string{heroImage.File, problemImage.File, solutionImage.File}
}
