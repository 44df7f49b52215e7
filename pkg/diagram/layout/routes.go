package layout

// Route is one receiver path in an offensive concept.
type Route struct {
	From, To Point
	Kind     string
}

// routes maps concept key → route paths drawn over the diagram.
// Origins line up with the fixed pro-formation receiver spots.
var routes = map[string][]Route{
	"four_verticals": {
		{Point{50, 150}, Point{50, 20}, "go"},
		{Point{100, 150}, Point{130, 20}, "seam"},
		{Point{290, 150}, Point{270, 20}, "seam"},
		{Point{350, 150}, Point{350, 20}, "go"},
	},
	"curl_flat": {
		{Point{50, 150}, Point{70, 80}, "curl"},
		{Point{100, 150}, Point{50, 110}, "flat"},
	},
	"smash": {
		{Point{50, 150}, Point{60, 110}, "hitch"},
		{Point{100, 150}, Point{40, 40}, "corner"},
	},
	"mesh": {
		{Point{50, 150}, Point{250, 110}, "cross"},
		{Point{350, 150}, Point{150, 110}, "cross"},
	},
	"levels": {
		{Point{50, 150}, Point{200, 115}, "shallow"},
		{Point{350, 150}, Point{200, 80}, "dig"},
	},
	"flood": {
		{Point{50, 150}, Point{30, 20}, "clear"},
		{Point{100, 150}, Point{60, 50}, "corner"},
		{Point{200, 200}, Point{40, 120}, "flat"},
	},
	"slant_flat": {
		{Point{50, 150}, Point{120, 100}, "slant"},
		{Point{100, 150}, Point{50, 120}, "flat"},
	},
}

// RoutesFor returns the route paths for a concept key.
// Unknown keys return an empty slice.
func RoutesFor(concept string) []Route {
	return routes[concept]
}
