package domain

// PropertyStatus is the listing lifecycle state.
type PropertyStatus string

const (
	PropertyDraft  PropertyStatus = "Draft"
	PropertyActive PropertyStatus = "Active"
	PropertySold   PropertyStatus = "Sold"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyDraft, PropertyActive, PropertySold:
		return true
	}
	return false
}

// PropertyType is the kind of unit being listed.
type PropertyType string

const (
	TypeApartment  PropertyType = "Apartment"
	TypeHouse      PropertyType = "House"
	TypeCommercial PropertyType = "Commercial"
	TypeLand       PropertyType = "Land"
)

func (t PropertyType) Valid() bool {
	switch t {
	case TypeApartment, TypeHouse, TypeCommercial, TypeLand:
		return true
	}
	return false
}

// Property is a real-estate unit for sale, independent of the lead pipeline.
// Properties carry no audit trail.
type Property struct {
	ID          string
	Title       string
	Address     string
	Price       float64
	Image       string
	Beds        float64
	Baths       float64
	Sqft        float64
	Type        PropertyType
	Status      PropertyStatus
	Description string
}

// PropertyPatch is a partial update to a property. Nil fields are untouched.
type PropertyPatch struct {
	Title       *string
	Address     *string
	Price       *float64
	Image       *string
	Beds        *float64
	Baths       *float64
	Sqft        *float64
	Type        *PropertyType
	Status      *PropertyStatus
	Description *string
}
