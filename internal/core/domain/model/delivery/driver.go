package delivery

// Driver is the profile of the driver assigned when matching completes.
// Matching is simulated, so every flow gets the same driver.
type Driver struct {
	Name    string
	Vehicle string
	Plate   string
	Rating  float64
	Trips   int
}

// Quote is the estimate shown with the matched driver.
type Quote struct {
	EstimatedTime string
	// PriceCents is the price in cents of Currency.
	PriceCents int
	Currency   string
}

// MatchedDriver returns the driver every completed matching assigns.
func MatchedDriver() Driver {
	return Driver{
		Name:    "John D.",
		Vehicle: "Honda Civic",
		Plate:   "GFD321",
		Rating:  4.8,
		Trips:   150,
	}
}

// StandardQuote returns the estimate offered with MatchedDriver.
func StandardQuote() Quote {
	return Quote{
		EstimatedTime: "30-45 mins",
		PriceCents:    1250,
		Currency:      "USD",
	}
}
