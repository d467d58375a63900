package entity

import "strings"

const (
	RoleAdmin            = "Admin"
	RoleBarangayCaptain  = "Barangay Captain"
	RoleCityOfficer      = "City Officer"
	RoleGarbageCollector = "Garbage Collector"
	RoleBarangayMember   = "Barangay Member"
)

// SystemBarangay is the barangay assigned to system-scope roles that are not
// tied to a locality.
const SystemBarangay = "System"

// RolePolicy captures every role-dependent behavior in one place: whether the
// role must present an external identifier, whether it is queued for admin
// approval before activation, whether it registers under a barangay, and which
// mirror file its accounts are logged to.
type RolePolicy struct {
	RequiresIdentifier bool
	RequiresApproval   bool
	UsesBarangay       bool
	MirrorFile         string
}

var rolePolicies = map[string]RolePolicy{
	RoleAdmin:            {MirrorFile: "admin.txt"},
	RoleBarangayCaptain:  {UsesBarangay: true, MirrorFile: "barangaycaptain.txt"},
	RoleCityOfficer:      {RequiresIdentifier: true, RequiresApproval: true, MirrorFile: "cityofficer.txt"},
	RoleGarbageCollector: {RequiresIdentifier: true, RequiresApproval: true, MirrorFile: "garbagecollector.txt"},
	RoleBarangayMember:   {UsesBarangay: true, MirrorFile: "barangaymember.txt"},
}

// PolicyFor returns the policy for a role. Unrecognized roles register
// directly under a barangay and get a derived mirror file name.
func PolicyFor(role string) RolePolicy {
	if policy, ok := rolePolicies[role]; ok {
		return policy
	}
	slug := strings.ReplaceAll(strings.ToLower(role), " ", "_")
	return RolePolicy{UsesBarangay: true, MirrorFile: "data_" + slug + ".txt"}
}

// KnownRoles lists the roles the registration form offers.
func KnownRoles() []string {
	return []string{
		RoleAdmin,
		RoleBarangayCaptain,
		RoleCityOfficer,
		RoleGarbageCollector,
		RoleBarangayMember,
	}
}
