package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Variant selects the placeholder colour scheme.
type Variant string

const (
	Light Variant = "light"
	Dark  Variant = "dark"
)

// PlaceholderClasses returns the box and label classes for v. Anything other
// than Dark is treated as Light.
func PlaceholderClasses(v Variant) (box, label string) {
	box = "aspect-[4/3] w-full overflow-hidden rounded-xl "
	label = "grid h-full place-items-center text-sm "
	if v == Dark {
		return box + "border border-white/20 bg-white/5", label + "text-white/70"
	}
	return box + "border border-gray-200 bg-gray-50", label + "text-gray-500"
}

// Placeholder renders a fixed-ratio box with label centred inside, standing
// in for an illustration that has not been supplied yet. The variant
// defaults to Light.
func Placeholder(label string, variant ...Variant) g.Node {
	v := Light
	if len(variant) > 0 {
		v = variant[0]
	}
	box, text := PlaceholderClasses(v)
	return h.Div(h.Class("mt-10 mx-auto w-full max-w-4xl"),
		h.Div(h.Class(box),
			h.Div(h.Class(text), g.Text(label)),
		),
	)
}
