package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestBypassList_FreshCopy(t *testing.T) {
	a := BypassList()
	b := BypassList()
	a[0].Pattern = "mutated"
	if b[0].Pattern != "127.0.0.1" {
		t.Fatalf("bypass lists share storage: %+v", b)
	}
	want := []Condition{
		{ConditionBypass, "127.0.0.1"},
		{ConditionBypass, "::1"},
		{ConditionBypass, "localhost"},
	}
	if !slices.Equal(b, want) {
		t.Fatalf("bypass=%+v, want %+v", b, want)
	}
}

func TestConfiguration_AddRejectsDuplicates(t *testing.T) {
	c := NewConfiguration()
	if err := c.Add("+m1", &FixedProfile{ProfileType: ProfileTypeFixed, Name: "+m1"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add("+m1", &FixedProfile{ProfileType: ProfileTypeFixed, Name: "+m1"}); err == nil {
		t.Fatalf("expected duplicate key error")
	}
	if err := c.Add("+m2", &FixedProfile{Name: "+m2"}); err == nil {
		t.Fatalf("expected error for profile without a type")
	}
	if err := c.Add("+m3", nil); err == nil {
		t.Fatalf("expected error for nil profile")
	}
	if err := c.Add("schemaVersion", &FixedProfile{}); err == nil {
		t.Fatalf("expected reserved key error")
	}
	if got := c.Keys(); !slices.Equal(got, []string{"+m1", "schemaVersion"}) {
		t.Fatalf("keys=%q", got)
	}
}

func TestConfiguration_GetAfterManyAdds(t *testing.T) {
	c := NewConfiguration()
	const n = 50000
	for i := 1; i <= n; i++ {
		key := fmt.Sprintf("+m%d", i)
		if err := c.Add(key, &FixedProfile{ProfileType: ProfileTypeFixed, Name: key}); err != nil {
			t.Fatalf("Add(%s): %v", key, err)
		}
	}
	if got := len(c.Profiles); got != n {
		t.Fatalf("profiles=%d, want %d", got, n)
	}
	for _, key := range []string{"+m1", "+m25000", "+m50000"} {
		p, ok := c.Get(key)
		if !ok {
			t.Fatalf("Get(%s) missing", key)
		}
		if p.ProfileName() != key || p.Type() != ProfileTypeFixed {
			t.Fatalf("Get(%s)=%s/%s", key, p.ProfileName(), p.Type())
		}
	}
	if err := c.Add("+m25000", &FixedProfile{ProfileType: ProfileTypeFixed}); err == nil {
		t.Fatalf("expected duplicate key error after many adds")
	}
	if _, ok := c.Get("+m50001"); ok {
		t.Fatalf("Get found a key that was never added")
	}
}

func TestEncode_OrderIndentAndEscaping(t *testing.T) {
	c := NewConfiguration()
	_ = c.Add("+z", &FixedProfile{
		ProfileType:   ProfileTypeFixed,
		Name:          "+z",
		BypassList:    []Condition{},
		Color:         GeneratedColor,
		Revision:      GeneratedRevision,
		FallbackProxy: ProxyServer{Scheme: SchemeHTTP, Host: "10.0.0.1", Port: 80},
		Auth:          &Auth{FallbackProxy: Credentials{Username: "ünï", Password: "<a&b>"}},
	})
	_ = c.Add("+a", &GroupProfile{
		ProfileType:   ProfileTypeFixed,
		Name:          "a",
		Color:         GroupColor,
		Revision:      GroupRevision,
		BypassList:    []Condition{},
		FallbackProxy: ProxyServer{Scheme: SchemeHTTP, Host: "127.0.0.1", Port: 80},
	})

	data, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `{
    "+z": {
        "profileType": "FixedProfile",
        "name": "+z",
        "bypassList": [],
        "color": "#ca0",
        "revision": "190a4bca575",
        "fallbackProxy": {
            "scheme": "http",
            "host": "10.0.0.1",
            "port": 80
        },
        "auth": {
            "fallbackProxy": {
                "username": "ünï",
                "password": "<a&b>"
            }
        }
    },
    "+a": {
        "profileType": "FixedProfile",
        "name": "a",
        "color": "#99ccee",
        "revision": "1908e30c31b",
        "bypassList": [],
        "fallbackProxy": {
            "scheme": "http",
            "host": "127.0.0.1",
            "port": 80
        }
    },
    "schemaVersion": 2
}`
	if got := string(data); got != want {
		t.Fatalf("Encode mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncode_ValidJSON(t *testing.T) {
	c := NewConfiguration()
	_ = c.Add("+s", &SwitchProfile{
		ProfileType:        ProfileTypeSwitch,
		Name:               "s",
		Color:              AutoSwitchColor,
		DefaultProfileName: DirectProfile,
		Rules: []SwitchRule{{
			Condition:   Condition{ConditionHostWildcard, "*.example.com"},
			ProfileName: GroupName,
		}},
	})
	data, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.HasSuffix(string(data), "\n") {
		t.Fatalf("document ends with a newline")
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}
	if decoded["schemaVersion"] != float64(SchemaVersion) {
		t.Fatalf("schemaVersion=%v", decoded["schemaVersion"])
	}
}
