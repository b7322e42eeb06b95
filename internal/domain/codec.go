package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// wireOrder is the JSON shape exchanged with the cupcake endpoint. The
// "streetAdress" key is misspelled on purpose: the remote side expects it.
type wireOrder struct {
	Type          *int    `json:"type"`
	Quantity      *int    `json:"quantity"`
	ExtraFrosting *bool   `json:"extraFrosting"`
	AddSprinkles  *bool   `json:"addSprinkles"`
	Name          *string `json:"name"`
	StreetAddress *string `json:"streetAdress"`
	City          *string `json:"city"`
	Eircode       *string `json:"eircode"`
}

func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireOrder{
		Type:          &o.Type,
		Quantity:      &o.Quantity,
		ExtraFrosting: &o.ExtraFrosting,
		AddSprinkles:  &o.AddSprinkles,
		Name:          &o.Name,
		StreetAddress: &o.StreetAddress,
		City:          &o.City,
		Eircode:       &o.Eircode,
	})
}

// UnmarshalJSON requires every wire key to be present and well typed. The
// special request gate is not part of the wire form and comes back disabled.
func (o *Order) UnmarshalJSON(data []byte) error {
	var w wireOrder
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	missing := func(key string) error {
		return fmt.Errorf("%w: key %q not found", ErrDecode, key)
	}
	switch {
	case w.Type == nil:
		return missing("type")
	case w.Quantity == nil:
		return missing("quantity")
	case w.ExtraFrosting == nil:
		return missing("extraFrosting")
	case w.AddSprinkles == nil:
		return missing("addSprinkles")
	case w.Name == nil:
		return missing("name")
	case w.StreetAddress == nil:
		return missing("streetAdress")
	case w.City == nil:
		return missing("city")
	case w.Eircode == nil:
		return missing("eircode")
	}

	*o = Order{
		Type:          *w.Type,
		Quantity:      *w.Quantity,
		ExtraFrosting: *w.ExtraFrosting,
		AddSprinkles:  *w.AddSprinkles,
		Name:          *w.Name,
		StreetAddress: *w.StreetAddress,
		City:          *w.City,
		Eircode:       *w.Eircode,
	}
	return nil
}

func EncodeOrder(o Order) ([]byte, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func DecodeOrder(data []byte) (Order, error) {
	var o Order
	if err := json.Unmarshal(data, &o); err != nil {
		if errors.Is(err, ErrDecode) {
			return Order{}, err
		}
		return Order{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return o, nil
}

func (p PlacedOrder) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(p.Order)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	fields["id"] = p.ID
	fields["createdAt"] = p.CreatedAt.UTC().Format(time.RFC3339Nano)
	return json.Marshal(fields)
}
