package model

// Profile is one named entry of the configuration document.
type Profile interface {
	Type() string
	ProfileName() string
}

type Condition struct {
	ConditionType string `json:"conditionType"`
	Pattern       string `json:"pattern"`
}

type ProxyServer struct {
	Scheme string `json:"scheme"`
	Host   string `json:"host"`
	Port   int    `json:"port"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Auth struct {
	FallbackProxy Credentials `json:"fallbackProxy"`
}

// FixedProfile forwards everything except the bypass list to one proxy.
type FixedProfile struct {
	ProfileType   string      `json:"profileType"`
	Name          string      `json:"name"`
	BypassList    []Condition `json:"bypassList"`
	Color         string      `json:"color"`
	Revision      string      `json:"revision"`
	FallbackProxy ProxyServer `json:"fallbackProxy"`
	Auth          *Auth       `json:"auth,omitempty"`
}

func (p *FixedProfile) Type() string        { return p.ProfileType }
func (p *FixedProfile) ProfileName() string { return p.Name }

// GroupProfile is a FixedProfile without credentials, laid out the way the
// extension exports its built-in "proxy" profile.
type GroupProfile struct {
	ProfileType   string      `json:"profileType"`
	Name          string      `json:"name"`
	Color         string      `json:"color"`
	Revision      string      `json:"revision"`
	BypassList    []Condition `json:"bypassList"`
	FallbackProxy ProxyServer `json:"fallbackProxy"`
}

func (p *GroupProfile) Type() string        { return p.ProfileType }
func (p *GroupProfile) ProfileName() string { return p.Name }

type SwitchRule struct {
	Condition   Condition `json:"condition"`
	ProfileName string    `json:"profileName"`
}

type SwitchProfile struct {
	ProfileType        string       `json:"profileType"`
	Name               string       `json:"name"`
	Color              string       `json:"color"`
	DefaultProfileName string       `json:"defaultProfileName"`
	Rules              []SwitchRule `json:"rules"`
}

func (p *SwitchProfile) Type() string        { return p.ProfileType }
func (p *SwitchProfile) ProfileName() string { return p.Name }
