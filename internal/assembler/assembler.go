package assembler

import (
	"fmt"
	"strconv"

	"proxyconv/internal/model"
	"proxyconv/internal/parser"
)

// GeneratedKey returns the key of the i-th accepted record, 1-based.
func GeneratedKey(i int) string {
	return model.GeneratedKeyPrefix + strconv.Itoa(i)
}

// Build assembles the document: the two static profiles, then one
// "+m<i>" profile per record in order. Numbering is dense over records,
// so rejected input lines never leave gaps.
func Build(records []parser.Record) (*model.Configuration, error) {
	cfg := model.NewConfiguration()
	if err := cfg.Add(model.AutoSwitchKey, AutoSwitch()); err != nil {
		return nil, err
	}
	if err := cfg.Add(model.GroupKey, ProxyGroup()); err != nil {
		return nil, err
	}
	for i, rec := range records {
		key := GeneratedKey(i + 1)
		if err := cfg.Add(key, Generated(key, rec)); err != nil {
			return nil, fmt.Errorf("adding record %d: %w", i+1, err)
		}
	}
	return cfg, nil
}

func AutoSwitch() *model.SwitchProfile {
	return &model.SwitchProfile{
		ProfileType:        model.ProfileTypeSwitch,
		Name:               model.AutoSwitchName,
		Color:              model.AutoSwitchColor,
		DefaultProfileName: model.DirectProfile,
		Rules: []model.SwitchRule{
			{
				Condition:   model.Condition{ConditionType: model.ConditionHostWildcard, Pattern: "internal.example.com"},
				ProfileName: model.DirectProfile,
			},
			{
				Condition:   model.Condition{ConditionType: model.ConditionHostWildcard, Pattern: "*.example.com"},
				ProfileName: model.GroupName,
			},
		},
	}
}

func ProxyGroup() *model.GroupProfile {
	return &model.GroupProfile{
		ProfileType:   model.ProfileTypeFixed,
		Name:          model.GroupName,
		Color:         model.GroupColor,
		Revision:      model.GroupRevision,
		BypassList:    model.BypassList(),
		FallbackProxy: model.ProxyServer{Scheme: model.SchemeHTTP, Host: "127.0.0.1", Port: 80},
	}
}

// Generated builds the fixed profile for one accepted record.
func Generated(key string, rec parser.Record) *model.FixedProfile {
	return &model.FixedProfile{
		ProfileType: model.ProfileTypeFixed,
		Name:        key,
		BypassList:  model.BypassList(),
		Color:       model.GeneratedColor,
		Revision:    model.GeneratedRevision,
		FallbackProxy: model.ProxyServer{
			Scheme: model.SchemeHTTP,
			Host:   rec.Address,
			Port:   rec.Port,
		},
		Auth: &model.Auth{
			FallbackProxy: model.Credentials{
				Username: rec.Username,
				Password: rec.Password,
			},
		},
	}
}
