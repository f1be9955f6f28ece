package delivery

// Notification is a transient user-facing message. Destructive marks errors.
type Notification struct {
	Title       string
	Description string
	Destructive bool
}

// MissingInformation is emitted when a delivery is requested without both addresses.
func MissingInformation() Notification {
	return Notification{
		Title:       "Missing Information",
		Description: "Please enter both pickup and delivery addresses.",
		Destructive: true,
	}
}

// InvalidAddress is emitted when an address is present but too long.
func InvalidAddress() Notification {
	return Notification{
		Title:       "Invalid Address",
		Description: "Addresses must be at most 256 characters long.",
		Destructive: true,
	}
}

// AssessmentFailedNotification is emitted when the reliability assessment could not complete.
func AssessmentFailedNotification() Notification {
	return Notification{
		Title:       "Assessment Failed",
		Description: "Could not assess driver reliability at this time.",
		Destructive: true,
	}
}
