package validator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walletRequest struct {
	OwnerID   string `validate:"required"`
	OwnerType string `validate:"required,oneof=usuario sistema"`
}

type emissionRequest struct {
	AmountFC  decimal.Decimal `validate:"gt=0"`
	AmountUSD decimal.Decimal `validate:"gte=0"`
}

type distributionRequest struct {
	TotalUSD decimal.Decimal `validate:"gt=0"`
	Reserve  decimal.Decimal `validate:"gte=0,lte=100"`
}

func TestValidate(t *testing.T) {
	t.Run("valid wallet request", func(t *testing.T) {
		assert.NoError(t, Validate(walletRequest{OwnerID: "user-1", OwnerType: "usuario"}))
	})

	t.Run("missing owner", func(t *testing.T) {
		err := Validate(walletRequest{OwnerType: "usuario"})

		require.ErrorIs(t, err, ErrValidationFailed)
		assert.ErrorContains(t, err, "'OwnerID': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("every failing field is reported", func(t *testing.T) {
		err := Validate(walletRequest{OwnerType: "admin"})

		require.ErrorIs(t, err, ErrValidationFailed)
		assert.ErrorContains(t, err, "'OwnerID'")
		assert.ErrorContains(t, err, "'OwnerType': value 'admin' does not meet the requirements for the 'oneof' validation")
	})

	t.Run("non struct input", func(t *testing.T) {
		err := Validate("wallet")

		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrValidationFailed))
	})
}

func TestValidateDecimal(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name    string
		input   any
		wantErr string
	}{
		{"positive emission", emissionRequest{AmountFC: d("0.0001"), AmountUSD: d("0")}, ""},
		{"zero value decimal", emissionRequest{AmountUSD: d("1")}, "'AmountFC'"},
		{"negative amount", emissionRequest{AmountFC: d("-5"), AmountUSD: d("1")}, "'AmountFC'"},
		{"negative usd", emissionRequest{AmountFC: d("5"), AmountUSD: d("-0.01")}, "'AmountUSD'"},
		{"percentage in range", distributionRequest{TotalUSD: d("1000"), Reserve: d("100")}, ""},
		{"percentage above range", distributionRequest{TotalUSD: d("1000"), Reserve: d("100.5")}, "'Reserve'"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.input)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidationFailed)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestFormatError(t *testing.T) {
	plain := errors.New("not a validation error")

	assert.Same(t, plain, formatError(plain))
}
