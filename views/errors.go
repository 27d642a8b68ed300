package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound is the 404 page.
func NotFound(p Page) g.Node {
	p.Meta.Title = "Page not found — " + SiteName
	return Layout(p, errorBody("404", "This page doesn’t exist.", "The landing page is one click away."))
}

// ServerError is the 500 page.
func ServerError(p Page) g.Node {
	p.Meta.Title = "Something went wrong — " + SiteName
	return Layout(p, errorBody("500", "Something went wrong on our side.", "Please try again in a moment."))
}

func errorBody(code, heading, detail string) g.Node {
	return h.Main(h.Class("grid min-h-screen place-items-center bg-white px-6 text-gray-900"),
		h.Div(h.Class("text-center"),
			h.P(h.Class("text-sm font-semibold text-gray-500"), g.Text(code)),
			h.H1(h.Class("mt-2 text-3xl font-semibold tracking-tight"), g.Text(heading)),
			h.P(h.Class("mt-4 text-gray-600"), g.Text(detail)),
			h.A(h.Href("/"), h.Class("mt-8 inline-flex items-center justify-center rounded-lg bg-black px-5 py-3 text-white shadow hover:opacity-90"), g.Text("Back to "+SiteName)),
		),
	)
}
