package model

// Location is an event venue. Identity is determined by ID alone; Name and
// Building are display and clustering attributes.
type Location struct {
	ID       string
	Name     string
	Building string
}

func (location Location) Equal(other Location) bool {
	return location.ID == other.ID
}

// TravelTimes maps an unordered pair of location IDs to the travel time in
// minutes between them. Lookups are symmetric and absent pairs mean zero.
type TravelTimes map[[2]string]int

// Between returns the travel time in minutes between two locations.
// Same-location pairs are always zero regardless of table content.
func (travelTimes TravelTimes) Between(a, b Location) int {
	if a.ID == b.ID {
		return 0
	}
	if minutes, ok := travelTimes[[2]string{a.ID, b.ID}]; ok {
		return minutes
	}
	return travelTimes[[2]string{b.ID, a.ID}]
}
