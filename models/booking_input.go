package models

// Booking creation inputs, one per vertical. The requesting user id comes from
// the auth middleware, not from the body.

type TaxiBookingInput struct {
	TaxiID    string `json:"taxiId"`
	Pickup    string `json:"pickup"`
	Dropoff   string `json:"dropoff"`
	Date      string `json:"date"`
	TimeLabel string `json:"time,omitempty"`
	// QuoteRequest starts the booking in the contacted state ("request a
	// quote") instead of pending.
	QuoteRequest bool `json:"quoteRequest,omitempty"`
}

type StayBookingInput struct {
	StayID    string `json:"stayId"`
	RoomID    string `json:"roomId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type GuideBookingInput struct {
	GuideID  string `json:"guideId"`
	Date     string `json:"date"`
	Slot     string `json:"slot"`
	Requests string `json:"requests,omitempty"`
}

type RentalBookingInput struct {
	VehicleID  string `json:"vehicleId"`
	PickupDate string `json:"pickupDate"`
	ReturnDate string `json:"returnDate"`
	Area       string `json:"area"`
}
