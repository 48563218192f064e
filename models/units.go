package models

import "time"

// TaxiUnit is a single driver+vehicle registration; the whole unit is booked
// per calendar day.
type TaxiUnit struct {
	ID          string   `bson:"id" json:"id"`
	ProviderID  string   `bson:"provider_id" json:"providerId"`
	DriverName  string   `bson:"driver_name" json:"driverName"`
	DriverBio   string   `bson:"driver_bio,omitempty" json:"driverBio,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	NIC         string   `bson:"nic" json:"nic"`
	DrivingID   string   `bson:"driving_id" json:"drivingId"`
	Contact     []string `bson:"contact,omitempty" json:"contact,omitempty"`
	Website     string   `bson:"website,omitempty" json:"website,omitempty"`
	ProfilePic  string   `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
	Images      []string `bson:"images,omitempty" json:"images,omitempty"`
	ChassisNo   string   `bson:"chassis_no" json:"chassisNo"`
	VehicleNo   string   `bson:"vehicle_no" json:"vehicleNo"`
	Province    string   `bson:"province,omitempty" json:"province,omitempty"`
	City        string   `bson:"city" json:"city"`
	VehicleType string   `bson:"vehicle_type" json:"vehicleType"`
	Model       string   `bson:"model,omitempty" json:"model,omitempty"`
	FuelType    string   `bson:"fuel_type,omitempty" json:"fuelType,omitempty"`
	// PerKm is the fare rate; taxi amounts are DistanceKm × PerKm.
	PerKm     float64   `bson:"per_km" json:"perKm"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Stay is a lodging registration owning a set of rooms.
type Stay struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"provider_id" json:"providerId"`
	Name        string    `bson:"name" json:"name"`
	Location    string    `bson:"location" json:"location"`
	Contact     []string  `bson:"contact,omitempty" json:"contact,omitempty"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	Facilities  []string  `bson:"facilities,omitempty" json:"facilities,omitempty"`
	RoomIDs     []string  `bson:"room_ids" json:"roomIds"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ProfilePic  string    `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// RoomUnit is the bookable unit inside a stay; booked per half-open date range.
type RoomUnit struct {
	ID       string   `bson:"id" json:"id"`
	StayID   string   `bson:"stay_id" json:"stayId"`
	RoomType string   `bson:"room_type" json:"roomType"`
	Price    float64  `bson:"price" json:"price"`
	MaxGuest int      `bson:"max_guest" json:"maxGuest"`
	BedType  string   `bson:"bed_type" json:"bedType"`
	Features []string `bson:"features,omitempty" json:"features,omitempty"`
	Images   []string `bson:"images,omitempty" json:"images,omitempty"`
}

// GuideUnit is a tour guide; booked per date + time-slot label.
type GuideUnit struct {
	ID             string    `bson:"id" json:"id"`
	ProviderID     string    `bson:"provider_id" json:"providerId"`
	Name           string    `bson:"name" json:"name"`
	NIC            string    `bson:"nic" json:"nic"`
	Contact        []string  `bson:"contact" json:"contact"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	ProfilePic     string    `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
	Images         []string  `bson:"images,omitempty" json:"images,omitempty"`
	SpecializeArea []string  `bson:"specialize_area,omitempty" json:"specializeArea,omitempty"`
	Languages      []string  `bson:"languages,omitempty" json:"languages,omitempty"`
	Province       string    `bson:"province" json:"province"`
	District       string    `bson:"district" json:"district"`
	City           string    `bson:"city" json:"city"`
	LicenceImg     string    `bson:"licence_img,omitempty" json:"licenceImg,omitempty"`
	Price          float64   `bson:"price" json:"price"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// RentalCompany is a vehicle-rental registration owning many vehicles.
type RentalCompany struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	Name       string    `bson:"name" json:"name"`
	Contact    []string  `bson:"contact,omitempty" json:"contact,omitempty"`
	ProfilePic string    `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
	NIC        string    `bson:"nic" json:"nic"`
	VehicleIDs []string  `bson:"vehicle_ids" json:"vehicleIds"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// RentalVehicleUnit is the bookable unit of a rental company; booked per
// half-open date range.
type RentalVehicleUnit struct {
	ID          string   `bson:"id" json:"id"`
	CompanyID   string   `bson:"company_id" json:"companyId"`
	Images      []string `bson:"images,omitempty" json:"images,omitempty"`
	ChassisNo   string   `bson:"chassis_no" json:"chassisNo"`
	VehicleNo   string   `bson:"vehicle_no" json:"vehicleNo"`
	Province    string   `bson:"province" json:"province"`
	VehicleType string   `bson:"vehicle_type" json:"vehicleType"`
	Area        string   `bson:"area" json:"area"`
	PerDay      float64  `bson:"per_day" json:"perDay"`
}
