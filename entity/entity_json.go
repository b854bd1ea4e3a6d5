package entity

import (
	"encoding/json"
	"fmt"
)

type leafJSON struct {
	Kind  Kind   `json:"kind"`
	Token string `json:"token"`
}

type keyValJSON struct {
	Kind  Kind   `json:"kind"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type sequenceJSON struct {
	Kind     Kind      `json:"kind"`
	Elements []*Entity `json:"elements"`
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case LeafKind:
		return json.Marshal(leafJSON{Kind: e.Kind, Token: e.Token})
	case KeyValKind:
		return json.Marshal(keyValJSON{Kind: e.Kind, Key: e.Key, Value: e.Value})
	case SequenceKind:
		elts := e.Elements
		if elts == nil {
			elts = []*Entity{}
		}
		return json.Marshal(sequenceJSON{Kind: e.Kind, Elements: elts})
	}
	return nil, fmt.Errorf("%w: %d", ErrKind, int(e.Kind))
}

func (e *Entity) UnmarshalJSON(d []byte) error {
	type C struct {
		Kind     *Kind     `json:"kind"`
		Token    string    `json:"token"`
		Key      string    `json:"key"`
		Value    string    `json:"value"`
		Elements []*Entity `json:"elements"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	if tmp.Kind == nil {
		return fmt.Errorf("%w: missing kind", ErrKind)
	}
	*e = Entity{Kind: *tmp.Kind}
	switch e.Kind {
	case LeafKind:
		e.Token = tmp.Token
	case KeyValKind:
		e.Key = tmp.Key
		e.Value = tmp.Value
	case SequenceKind:
		e.Elements = tmp.Elements
		if e.Elements == nil {
			e.Elements = []*Entity{}
		}
		for i, elt := range e.Elements {
			if elt == nil {
				return fmt.Errorf("%w: null element %d", ErrInvalid, i)
			}
		}
	}
	return nil
}

// ToJSON returns the JSON encoding of e.
func ToJSON(e *Entity) ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an entity tree from its JSON encoding.
func FromJSON(d []byte) (*Entity, error) {
	res := &Entity{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	return res, nil
}
