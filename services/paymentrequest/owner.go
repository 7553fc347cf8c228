package paymentrequest

import (
	"fmt"

	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/services/cartapi"
)

// NewOwner converts a cart address into the tokenizer's owner block. A cart
// without an email on the billing address falls back to the shopper record.
func NewOwner(address cartapi.Address, shopper cartapi.Shopper) Owner {
	email := address.EmailAddress
	if email == "" {
		email = shopper.EmailAddress
	}

	return Owner{
		FirstName:    address.FirstName,
		LastName:     address.LastName,
		PhoneNumber:  address.PhoneNumber,
		Email:        email,
		Organization: address.Organization,
		Address: OwnerAddress{
			Line1:      address.Line1,
			Line2:      address.Line2,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		Additional: AdditionalAddressInfo{
			Neighborhood:      address.Additional.Neighborhood,
			Division:          address.Additional.Division,
			PhoneticFirstName: address.Additional.PhoneticFirstName,
			PhoneticLastName:  address.Additional.PhoneticLastName,
		},
	}
}

// ValidateAddress rejects characters the downstream processors can not take,
// before any network call is made.
func ValidateAddress(address cartapi.Address) error {
	fields := map[string]string{
		"firstName":  address.FirstName,
		"lastName":   address.LastName,
		"line1":      address.Line1,
		"line2":      address.Line2,
		"city":       address.City,
		"state":      address.State,
		"postalCode": address.PostalCode,
	}
	for name, value := range fields {
		if containsDisallowedRune(value) {
			return myerrors.NewInvalidInputError(fmt.Errorf("address field %s contains unsupported characters", name))
		}
	}

	return nil
}

func containsDisallowedRune(s string) bool {
	for _, r := range s {
		if isEmojiRune(r) {
			return true
		}
	}

	return false
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // mahjong tiles through symbols-extended
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, zero-width joiner
		return true
	default:
		return false
	}
}
