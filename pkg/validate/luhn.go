package validate

import (
	"encoding/binary"
	"fmt"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/google/uuid"
)

const voucherDigits = 1e11

// IsLuhn reports whether s is a digit string with a valid Luhn check digit.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// VoucherCode returns a twelve digit pickup code whose last digit is a Luhn check digit.
func VoucherCode() (string, error) {
	id := uuid.New()
	seed := fmt.Sprintf("%011d", binary.BigEndian.Uint64(id[:8])%voucherDigits)

	_, code, err := goluhn.Calculate(seed)
	if err != nil {
		return "", fmt.Errorf("can't calculate voucher check digit: %w", err)
	}
	return code, nil
}
