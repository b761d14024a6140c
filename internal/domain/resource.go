package domain

// ResourceType is a bookable category of units at a cafe: a console family,
// gaming PCs, VR rigs or billiard tables. The enumeration is closed at the
// application level; each cafe configures its own physical capacity per type.
type ResourceType string

const (
	ResourcePS5       ResourceType = "ps5"
	ResourceXbox      ResourceType = "xbox"
	ResourcePC        ResourceType = "pc"
	ResourceVR        ResourceType = "vr"
	ResourceBilliards ResourceType = "billiards"
)

// AllResourceTypes перечень всех типов ресурсов в фиксированном порядке
var AllResourceTypes = []ResourceType{
	ResourcePS5,
	ResourceXbox,
	ResourcePC,
	ResourceVR,
	ResourceBilliards,
}

// Valid returns true if the resource type belongs to the closed enumeration
func (r ResourceType) Valid() bool {
	switch r {
	case ResourcePS5, ResourceXbox, ResourcePC, ResourceVR, ResourceBilliards:
		return true
	}
	return false
}

// DisplayName returns the human-readable name used in client-facing messages
func (r ResourceType) DisplayName() string {
	switch r {
	case ResourcePS5:
		return "PlayStation 5"
	case ResourceXbox:
		return "Xbox Series X"
	case ResourcePC:
		return "Gaming PC"
	case ResourceVR:
		return "VR Station"
	case ResourceBilliards:
		return "Billiard Table"
	default:
		return string(r)
	}
}
