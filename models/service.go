package models

// Service is an item from the studio's fixed treatment catalog. The catalog
// is reference data loaded at startup, never derived from bookings.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"duration" json:"duration"` // multiple of the slot granularity
	Price           float64 `bson:"price" json:"price"`       // DKK
	Emoji           string  `bson:"emoji" json:"emoji"`
}

// DefaultCatalog is the studio's offering. Prices in DKK.
var DefaultCatalog = []Service{
	{ID: "quick-fix-polish", Name: "Quick Fix Polish", DurationMinutes: 15, Price: 150, Emoji: "💅"},
	{ID: "gel-manicure", Name: "Gel Manicure", DurationMinutes: 45, Price: 450, Emoji: "✨"},
	{ID: "spa-pedicure", Name: "Spa Pedicure", DurationMinutes: 60, Price: 550, Emoji: "🦶"},
	{ID: "nail-art", Name: "Nail Art", DurationMinutes: 30, Price: 250, Emoji: "🎨"},
	{ID: "polish-change", Name: "Polish Change", DurationMinutes: 30, Price: 200, Emoji: "💖"},
	{ID: "gel-removal", Name: "Gel Removal", DurationMinutes: 15, Price: 100, Emoji: "🧼"},
	{ID: "lash-lift", Name: "Lash Lift", DurationMinutes: 60, Price: 400, Emoji: "👁"},
	{ID: "eyebrow-lamination", Name: "Eyebrow Lamination", DurationMinutes: 45, Price: 350, Emoji: "🤩"},
}

// TotalDuration sums the duration of a service set in minutes.
func TotalDuration(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}

// TotalPrice sums the price of a service set.
func TotalPrice(services []Service) float64 {
	total := 0.0
	for _, s := range services {
		total += s.Price
	}
	return total
}
