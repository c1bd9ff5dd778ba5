package model

// Traveler is one flight passenger record. Role is fixed when the roster is built.
type Traveler struct {
	Role           Role   `json:"role"`
	Title          string `json:"title"           validate:"notblank"`
	FirstName      string `json:"first_name"      validate:"notblank"`
	LastName       string `json:"last_name"       validate:"notblank"`
	Gender         string `json:"gender"          validate:"notblank"`
	BirthDate      string `json:"birth_date"      validate:"notblank"`
	Nationality    string `json:"nationality"     validate:"notblank"`
	PassportNumber string `json:"passport_number" validate:"notblank"`
	PassportExpiry string `json:"passport_expiry" validate:"notblank"`
}

// Guest is one hotel guest record.
type Guest struct {
	FirstName      string `json:"first_name"      validate:"notblank"`
	LastName       string `json:"last_name"       validate:"notblank"`
	Email          string `json:"email"           validate:"notblank"`
	Phone          string `json:"phone"           validate:"notblank"`
	Nationality    string `json:"nationality"     validate:"notblank"`
	IDType         string `json:"id_type"         validate:"notblank"`
	IDNumber       string `json:"id_number"       validate:"notblank"`
	SpecialRequest string `json:"special_request"`
}

// RoleAt tags position i: adults first, then children, then infants.
func RoleAt(i int, counts PassengerCounts) Role {
	switch {
	case i < counts.Adults:
		return RoleAdult
	case i < counts.Adults+counts.Children:
		return RoleChild
	default:
		return RoleInfant
	}
}

// BuildTravelerRoster allocates one blank traveler per passenger.
func BuildTravelerRoster(counts PassengerCounts) []Traveler {
	roster := make([]Traveler, counts.Total())
	for i := range roster {
		roster[i].Role = RoleAt(i, counts)
	}

	return roster
}

// BuildGuestRoster allocates n blank guest records.
func BuildGuestRoster(n int) []Guest {
	return make([]Guest, max(n, 0))
}
