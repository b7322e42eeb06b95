package domain

import (
	"strings"
)

// Flavors is the fixed list an Order.Type indexes into.
var Flavors = [4]string{"Vanilla", "Strawberry", "Chocolate", "Rainbow"}

const DefaultQuantity = 3

// Order holds the customer's cupcake selection and delivery address.
// A session owns exactly one and mutates it in place.
type Order struct {
	Type     int
	Quantity int

	specialRequestEnabled bool
	ExtraFrosting         bool
	AddSprinkles          bool

	Name          string
	StreetAddress string
	City          string
	Eircode       string
}

func NewOrder() Order {
	return Order{Quantity: DefaultQuantity}
}

func (o Order) SpecialRequestEnabled() bool {
	return o.specialRequestEnabled
}

// SetSpecialRequestEnabled toggles the special request gate. Turning it off
// clears both toppings.
func (o *Order) SetSpecialRequestEnabled(enabled bool) {
	o.specialRequestEnabled = enabled
	if !enabled {
		o.ExtraFrosting = false
		o.AddSprinkles = false
	}
}

func (o Order) HasValidAddress() bool {
	for _, field := range []string{o.Name, o.StreetAddress, o.City, o.Eircode} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// Cost is €2 per cake, plus half the flavor index, plus €1/cake for extra
// frosting and €0.50/cake for sprinkles. No rounding happens here.
func (o Order) Cost() float64 {
	cost := float64(o.Quantity) * 2
	cost += float64(o.Type) / 2

	if o.ExtraFrosting {
		cost += float64(o.Quantity)
	}
	if o.AddSprinkles {
		cost += float64(o.Quantity) / 2
	}
	return cost
}

// FlavorName looks up the display name for a flavor index.
func FlavorName(flavorType int) (string, bool) {
	if flavorType < 0 || flavorType >= len(Flavors) {
		return "", false
	}
	return Flavors[flavorType], true
}

// FlavorIndex resolves a flavor by case-insensitive name.
func FlavorIndex(name string) (int, bool) {
	for i, f := range Flavors {
		if strings.EqualFold(f, strings.TrimSpace(name)) {
			return i, true
		}
	}
	return 0, false
}
