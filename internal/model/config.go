package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Entry struct {
	Key     string
	Profile Profile
}

// Configuration is the root of the exported document. Profiles keep their
// insertion order on the wire; schemaVersion always comes last.
type Configuration struct {
	Profiles      []Entry
	SchemaVersion int

	index map[string]int // key -> position in Profiles
}

func NewConfiguration() *Configuration {
	return &Configuration{SchemaVersion: SchemaVersion}
}

func (c *Configuration) Add(key string, p Profile) error {
	if key == "schemaVersion" {
		return fmt.Errorf("profile key %q is reserved", key)
	}
	if p == nil || p.Type() == "" {
		return fmt.Errorf("profile %q has no profile type", key)
	}
	if _, ok := c.Get(key); ok {
		return fmt.Errorf("duplicate profile key %q", key)
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[key] = len(c.Profiles)
	c.Profiles = append(c.Profiles, Entry{Key: key, Profile: p})
	return nil
}

func (c *Configuration) Get(key string) (Profile, bool) {
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.Profiles[i].Profile, true
}

func (c *Configuration) Keys() []string {
	keys := make([]string, 0, len(c.Profiles)+1)
	for _, e := range c.Profiles {
		keys = append(keys, e.Key)
	}
	return append(keys, "schemaVersion")
}

func (c *Configuration) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, e := range c.Profiles {
		key, err := marshalRaw(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := marshalRaw(e.Profile)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		buf.WriteByte(',')
	}
	fmt.Fprintf(&buf, `"schemaVersion":%d}`, c.SchemaVersion)
	return buf.Bytes(), nil
}

// Encode renders the document with 4-space indentation. HTML characters
// and non-ASCII text are written literally. There is no trailing newline.
func Encode(c *Configuration) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
