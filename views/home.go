package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomePage is the full landing page document.
func HomePage(p Page) g.Node {
	return Layout(p, Home(p))
}

// Home renders the marketing sections in document order. Sections are
// independent; the only link between them is PricingAnchor.
func Home(p Page) g.Node {
	return h.Main(h.Class("min-h-screen bg-white text-gray-900"),
		heroSection(p),
		problemSection(p),
		solutionSection(p),
		howItWorksSection(),
		proofSection(),
		pricingSection(),
		safetySection(),
		finalCTASection(),
	)
}

func heroSection(p Page) g.Node {
	badges := g.Group{}
	for i, b := range trustBadges {
		if i > 0 {
			badges = append(badges, h.Span(g.Text("•")))
		}
		badges = append(badges, h.Span(g.Text(b)))
	}
	return h.Section(h.Class("relative overflow-hidden"),
		h.Div(h.Class("mx-auto max-w-6xl px-6 py-24 md:py-28"),
			h.Div(h.Class("grid items-center gap-10 md:grid-cols-2"),
				h.Div(
					h.H1(h.Class("text-4xl font-semibold tracking-tight md:text-5xl"), g.Text(HeadingHero)),
					h.P(h.Class("mt-4 text-lg text-gray-600"), g.Text(Pitch)),
					h.Div(h.Class("mt-8 flex items-center gap-4"),
						startTrial("inline-flex items-center justify-center rounded-lg bg-black px-5 py-3 text-white shadow hover:opacity-90"),
						h.Div(h.Class("flex items-center gap-3 text-sm text-gray-500"), badges),
					),
				),
				h.Div(h.Class("w-full"), frame(p, heroImage, "bg-gray-50", true)),
			),
		),
	)
}

func problemSection(p Page) g.Node {
	return h.Section(h.Class("bg-gray-50"),
		container("",
			sectionHeading(HeadingProblem),
			h.Div(h.Class("mt-6 grid gap-6 md:grid-cols-3"),
				g.Map(painPoints, func(point string) g.Node {
					return h.Div(h.Class("rounded-xl border border-gray-200 bg-white p-5"),
						h.P(h.Class("text-gray-700"), g.Text(point)),
					)
				}),
			),
			h.Div(h.Class("mt-10 mx-auto w-full max-w-4xl"), frame(p, problemImage, "bg-white", false)),
		),
	)
}

func solutionSection(p Page) g.Node {
	return h.Section(
		container("",
			sectionHeading(HeadingSolution),
			h.P(h.Class("mt-3 text-gray-600 max-w-2xl"), g.Text(solutionSubcopy)),
			h.Div(h.Class("mt-8 grid gap-6 md:grid-cols-2"),
				g.Map(features, func(f feature) g.Node {
					return h.Div(h.Class("rounded-xl border border-gray-200 p-6"),
						h.H3(h.Class("text-xl font-medium"), g.Text(f.Title)),
						h.P(h.Class("mt-2 text-gray-600"), g.Text(f.Body)),
					)
				}),
			),
			h.Div(h.Class("mt-10 mx-auto w-full max-w-4xl"), frame(p, solutionImage, "bg-white", false)),
		),
	)
}

func howItWorksSection() g.Node {
	cards := make(g.Group, 0, len(steps))
	for i, s := range steps {
		cards = append(cards, h.Div(h.Class("rounded-xl border border-gray-200 bg-white p-6"),
			h.Div(h.Class("text-sm text-gray-500"), g.Text("Step "+strconv.Itoa(i+1))),
			h.H3(h.Class("mt-1 text-lg font-medium"), g.Text(s.Title)),
			h.P(h.Class("mt-1 text-gray-600"), g.Text(s.Body)),
		))
	}
	return h.Section(h.Class("bg-gray-50"),
		container("",
			sectionHeading(HeadingHowItWorks),
			h.Div(h.Class("mt-8 grid gap-6 md:grid-cols-3"), cards),
			Placeholder("How it works image placeholder"),
		),
	)
}

func proofSection() g.Node {
	quotes := make(g.Group, 0, 3)
	for i := 0; i < 3; i++ {
		quotes = append(quotes, h.Div(h.Class("rounded-xl border border-gray-200 p-6"),
			h.P(h.Class("text-gray-700"), g.Text(testimonialQuote)),
			h.Div(h.Class("mt-3 text-sm text-gray-500"), g.Text(testimonialName)),
		))
	}
	return h.Section(
		container("",
			sectionHeading(HeadingProof),
			h.Div(h.Class("mt-8 grid gap-6 md:grid-cols-3"), quotes),
			Placeholder("Social proof image placeholder"),
		),
	)
}

func pricingSection() g.Node {
	return h.Section(h.ID(PricingAnchor), h.Class("bg-gray-50"),
		container("",
			sectionHeading(HeadingPricing),
			h.Div(h.Class("mt-8 grid gap-6 md:grid-cols-2"),
				g.Map(plans, pricingCard),
			),
			Placeholder("Pricing section image placeholder"),
		),
	)
}

func pricingCard(pl plan) g.Node {
	card := "rounded-2xl border border-gray-200 bg-white p-6"
	button := "mt-6 w-full rounded-lg border border-gray-300 px-4 py-3 text-gray-900 hover:bg-gray-100"
	if pl.Featured {
		card = "rounded-2xl border-2 border-black bg-white p-6"
		button = "mt-6 w-full rounded-lg bg-black px-4 py-3 text-white shadow hover:opacity-90"
	}
	return h.Div(h.Class(card),
		h.H3(h.Class("text-xl font-medium"), g.Text(pl.Name)),
		h.P(h.Class("mt-1 text-gray-600"), g.Text(pl.Summary)),
		h.Button(h.Type("button"), h.Class(button), g.Text(pl.Action)),
	)
}

func safetySection() g.Node {
	return h.Section(
		container("",
			sectionHeading(HeadingSafety),
			h.P(h.Class("mt-3 max-w-2xl text-gray-600"), g.Text(safetySubcopy)),
			h.Div(h.Class("mt-6 grid gap-6 md:grid-cols-3"),
				g.Map(safetyClaims, func(claim string) g.Node {
					return h.Div(h.Class("rounded-xl border border-gray-200 p-6"),
						h.P(h.Class("text-gray-700"), g.Text(claim)),
					)
				}),
			),
			Placeholder("Safety section image placeholder"),
		),
	)
}

func finalCTASection() g.Node {
	return h.Section(h.Class("bg-gray-900 text-white"),
		container("text-center",
			sectionHeading(HeadingFinalCTA),
			Placeholder("Final CTA image placeholder", Dark),
			startTrial("mt-6 inline-flex items-center justify-center rounded-lg bg-white px-5 py-3 font-medium text-gray-900 shadow hover:opacity-90"),
		),
	)
}
