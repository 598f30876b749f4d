package order

// Address is a billing or shipping address record from the party store.
type Address struct {
	id      uint
	line1   string
	city    string
	state   string
	pincode string
	country string
}

func (a *Address) ID() uint {
	return a.id
}

func (a *Address) Line1() string {
	return a.line1
}

func (a *Address) City() string {
	return a.city
}

func (a *Address) State() string {
	return a.state
}

func (a *Address) Pincode() string {
	return a.pincode
}

func (a *Address) Country() string {
	return a.country
}

func ReconstructAddress(id uint, line1, city, state, pincode, country string) *Address {
	return &Address{
		id:      id,
		line1:   line1,
		city:    city,
		state:   state,
		pincode: pincode,
		country: country,
	}
}
