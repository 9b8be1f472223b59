package parser

// Record is one validated line of the proxy list.
type Record struct {
	Address  string // IPv4 or IPv6 literal, as written
	Port     int
	Username string
	Password string
}
