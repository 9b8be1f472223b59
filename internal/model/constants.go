package model

// Values copied from the SwitchyOmega export format. Changing any of them
// breaks import into the extension.
const (
	SchemaVersion = 2

	// GeneratedRevision stamps every "+m<N>" profile.
	GeneratedRevision = "190a4bca575"

	// GroupRevision stamps the static "+proxy" profile.
	GroupRevision = "1908e30c31b"

	GeneratedColor  = "#ca0"
	AutoSwitchColor = "#99dd99"
	GroupColor      = "#99ccee"

	AutoSwitchKey  = "+auto switch"
	AutoSwitchName = "auto switch"
	GroupKey       = "+proxy"
	GroupName      = "proxy"
	DirectProfile  = "direct"

	GeneratedKeyPrefix = "+m"

	SchemeHTTP = "http"

	ProfileTypeFixed  = "FixedProfile"
	ProfileTypeSwitch = "SwitchProfile"

	ConditionBypass       = "BypassCondition"
	ConditionHostWildcard = "HostWildcardCondition"
)

var bypassPatterns = []string{"127.0.0.1", "::1", "localhost"}

// BypassList returns a fresh copy of the loopback bypass conditions.
func BypassList() []Condition {
	list := make([]Condition, 0, len(bypassPatterns))
	for _, p := range bypassPatterns {
		list = append(list, Condition{ConditionType: ConditionBypass, Pattern: p})
	}
	return list
}
