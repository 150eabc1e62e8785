package auth

// Zone is a coarse API area guarded by the role policy.
type Zone string

const (
	ZoneRevenue    Zone = "revenue"
	ZoneProperties Zone = "properties"
	ZoneOwners     Zone = "owners"
)

const (
	RoleAdmin         = "admin"
	RoleGM            = "gm"
	RoleHotelDirector = "hotel_director"
	RoleRevenue       = "revenue_manager"
	RoleOwnerManager  = "owner_manager"
)

// Policy maps a staff role to the zones it may enter. It is built once at
// startup and passed into the API service; there is no global role state.
type Policy map[string][]Zone

func DefaultPolicy() Policy {
	return Policy{
		RoleAdmin:         {ZoneRevenue, ZoneProperties, ZoneOwners},
		RoleGM:            {ZoneRevenue, ZoneProperties, ZoneOwners},
		RoleHotelDirector: {ZoneProperties},
		RoleRevenue:       {ZoneRevenue},
		RoleOwnerManager:  {ZoneOwners, ZoneProperties},
	}
}

func (p Policy) Allows(role string, zone Zone) bool {
	for _, z := range p[role] {
		if z == zone {
			return true
		}
	}
	return false
}
