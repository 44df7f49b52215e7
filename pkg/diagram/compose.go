package diagram

// Option configures diagram composition.
type Option func(*composer)

type composer struct {
	concept string
}

// WithConcept overlays the route paths of an offensive concept.
// Unknown concept keys leave the route layer empty.
func WithConcept(key string) Option {
	return func(c *composer) { c.concept = key }
}

// Compose builds the element list for a formation/coverage pair.
// Layer order, back to front: field, coverage zones, soft spots,
// offensive markers, defensive markers, routes. Unknown formation keys
// fall back to the 4-3; unknown coverage keys yield empty zone and spot
// layers with unadjusted safeties.
func Compose(formation, coverage string, opts ...Option) *Diagram {
	var c composer
	for _, opt := range opts {
		opt(&c)
	}

	d := &Diagram{}
	d.Append(fieldElements()...)
	d.Append(zoneElements(coverage)...)
	d.Append(spotElements(coverage)...)
	d.Append(offenseElements()...)
	d.Append(defenseElements(formation, coverage)...)
	if c.concept != "" {
		d.Append(routeElements(c.concept)...)
	}
	return d
}

// Render composes and serializes a diagram in one call.
func Render(formation, coverage string, opts ...Option) []byte {
	return Compose(formation, coverage, opts...).SVG()
}
