package model

import (
	"encoding/json"
	"fmt"
)

// Venue is where an event takes place. It has no identity of its own and is
// persisted as the positional triple [name, capacity, location].
type Venue struct {
	Name     string
	Capacity int
	Location string
}

var (
	_ json.Marshaler   = Venue{}
	_ json.Unmarshaler = (*Venue)(nil)
)

func (v Venue) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{v.Name, v.Capacity, v.Location})
}

func (v *Venue) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("(*Venue).UnmarshalJSON: %w", err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("(*Venue).UnmarshalJSON: want 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &v.Name); err != nil {
		return fmt.Errorf("(*Venue).UnmarshalJSON: name: %w", err)
	}
	if err := json.Unmarshal(raw[1], &v.Capacity); err != nil {
		return fmt.Errorf("(*Venue).UnmarshalJSON: capacity: %w", err)
	}
	if err := json.Unmarshal(raw[2], &v.Location); err != nil {
		return fmt.Errorf("(*Venue).UnmarshalJSON: location: %w", err)
	}
	return nil
}
