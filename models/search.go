package models

// Search criteria per vertical. Zero values mean "no filter" for the optional
// fields; required fields are validated in the booking service.

type TaxiSearch struct {
	Date        string   `form:"date" json:"date"`
	Pickup      string   `form:"pickup" json:"pickup"`
	VehicleType string   `form:"vehicleType" json:"vehicleType"`
	MinPrice    *float64 `form:"minPrice" json:"minPrice,omitempty"`
	MaxPrice    *float64 `form:"maxPrice" json:"maxPrice,omitempty"`
}

type StaySearch struct {
	StartDate     string   `form:"startDate" json:"startDate"`
	EndDate       string   `form:"endDate" json:"endDate"`
	Location      string   `form:"location" json:"location"`
	MinPrice      *float64 `form:"minPrice" json:"minPrice,omitempty"`
	MaxPrice      *float64 `form:"maxPrice" json:"maxPrice,omitempty"`
	NumberOfGuest int      `form:"numberOfGuest" json:"numberOfGuest"`
	NumberOfRooms int      `form:"numberOfRooms" json:"numberOfRooms"`
	Facilities    []string `form:"facilities" json:"facilities,omitempty"`
	RoomFeatures  []string `form:"roomFeatures" json:"roomFeatures,omitempty"`
}

type GuideSearch struct {
	Date           string   `form:"date" json:"date"`
	Slot           string   `form:"slot" json:"slot"`
	City           string   `form:"city" json:"city"`
	MinPrice       *float64 `form:"minPrice" json:"minPrice,omitempty"`
	MaxPrice       *float64 `form:"maxPrice" json:"maxPrice,omitempty"`
	Languages      []string `form:"languages" json:"languages,omitempty"`
	SpecializeArea string   `form:"specializeArea" json:"specializeArea,omitempty"`
}

type RentalSearch struct {
	PickupDate  string   `form:"pickupDate" json:"pickupDate"`
	ReturnDate  string   `form:"returnDate" json:"returnDate"`
	Area        string   `form:"area" json:"area"`
	VehicleType string   `form:"vehicleType" json:"vehicleType"`
	MinPrice    *float64 `form:"minPrice" json:"minPrice,omitempty"`
	MaxPrice    *float64 `form:"maxPrice" json:"maxPrice,omitempty"`
}

// StayAvailability is the per-stay search result: the rooms still free for the
// requested range, how many there are, and the cheapest of them as the
// "starting from" price. SelectedRooms is the capacity-first pick covering the
// requested room count.
type StayAvailability struct {
	Stay                Stay       `json:"stay"`
	AvailableRooms      []RoomUnit `json:"availableRooms"`
	SelectedRooms       []RoomUnit `json:"selectedRooms"`
	TotalAvailableRooms int        `json:"totalAvailableRooms"`
	StartingFrom        float64    `json:"startingFrom"`
}

// UserBookings groups a user's booking history across verticals.
type UserBookings struct {
	Taxi   []Booking `json:"taxi"`
	Stay   []Booking `json:"stay"`
	Guide  []Booking `json:"guide"`
	Rental []Booking `json:"rental"`
}
