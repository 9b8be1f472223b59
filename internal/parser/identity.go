package parser

import (
	"net/netip"
	"strconv"
	"strings"
)

// Key identifies the endpoint and account a record points at. Two records
// with the same key produce interchangeable profiles.
func (r *Record) Key() string {
	addr := r.Address
	if a, err := netip.ParseAddr(r.Address); err == nil {
		addr = a.Unmap().String()
	}
	return strings.Join([]string{addr, strconv.Itoa(r.Port), r.Username}, "|")
}
