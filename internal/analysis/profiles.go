package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Profiles holds artist profiles in the order their groups were first
// encountered. Keys stay structured until the document is encoded.
type Profiles struct {
	keys  []ProfileKey
	byKey map[ProfileKey]*Profile
}

func newProfiles(size int) *Profiles {
	return &Profiles{
		keys:  make([]ProfileKey, 0, size),
		byKey: make(map[ProfileKey]*Profile, size),
	}
}

func (p *Profiles) add(key ProfileKey, profile *Profile) {
	if _, ok := p.byKey[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.byKey[key] = profile
}

func (p *Profiles) Len() int {
	return len(p.keys)
}

// Keys returns the profile keys in document order.
func (p *Profiles) Keys() []ProfileKey {
	return append([]ProfileKey(nil), p.keys...)
}

func (p *Profiles) Get(artist, country string) (*Profile, bool) {
	profile, ok := p.byKey[ProfileKey{Artist: artist, Country: country}]
	return profile, ok
}

// MarshalJSON encodes the profiles as an object keyed by "Artist (Country)".
func (p *Profiles) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key.String())
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.byKey[key])
		if err != nil {
			return nil, fmt.Errorf("encoding profile %s: %w", key, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *Profiles) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range p.keys {
		value := &yaml.Node{}
		if err := value.Encode(p.byKey[key]); err != nil {
			return nil, fmt.Errorf("encoding profile %s: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key.String()},
			value,
		)
	}
	return node, nil
}
