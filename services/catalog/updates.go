package catalog

// Partial-update inputs. Nil/empty fields are left untouched; scheduling
// attributes (rates, capacity, locality) outside these sets are immutable
// after registration.

type TaxiProfileUpdate struct {
	DriverName string   `json:"driverName,omitempty"`
	Contact    []string `json:"contact,omitempty"`
	Website    string   `json:"website,omitempty"`
	ProfilePic string   `json:"profilePic,omitempty"`
	City       string   `json:"city,omitempty"`
}

type StayProfileUpdate struct {
	Name        string   `json:"name,omitempty"`
	Location    string   `json:"location,omitempty"`
	Contact     []string `json:"contact,omitempty"`
	Website     string   `json:"website,omitempty"`
	Facilities  []string `json:"facilities,omitempty"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description,omitempty"`
	ProfilePic  string   `json:"profilePic,omitempty"`
}

type RoomUpdate struct {
	RoomType string   `json:"roomType,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	MaxGuest *int     `json:"maxGuest,omitempty"`
	BedType  string   `json:"bedType,omitempty"`
	Features []string `json:"features,omitempty"`
	Images   []string `json:"images,omitempty"`
}

type GuideProfileUpdate struct {
	Name           string   `json:"name,omitempty"`
	Contact        []string `json:"contact,omitempty"`
	ProfilePic     string   `json:"profilePic,omitempty"`
	Images         []string `json:"images,omitempty"`
	SpecializeArea []string `json:"specializeArea,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Province       string   `json:"province,omitempty"`
	District       string   `json:"district,omitempty"`
	City           string   `json:"city,omitempty"`
}

type VehicleUpdate struct {
	Images   []string `json:"images,omitempty"`
	Province string   `json:"province,omitempty"`
	Area     string   `json:"area,omitempty"`
	PerDay   *float64 `json:"perDay,omitempty"`
}
