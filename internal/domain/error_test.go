package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genericMessage = "An internal error occurred. Please try again later."

func TestError_Error(t *testing.T) {
	cause := errors.New("connection reset")

	assert.Equal(t, "Payment has not succeeded", ErrPaymentNotSucceeded.Error())
	assert.Equal(t, "cart.update: Cart item not found",
		(&Error{Code: ENOTFOUND, Op: "cart.update", Message: "Cart item not found"}).Error())
	assert.Equal(t, "payment.verify: failed to verify payment: connection reset",
		Gateway(cause, "payment.verify", "failed to verify payment").Error())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "gateway", err: Gateway(errors.New("dial tcp"), "payment.intent", "failed to create payment"), expected: EGATEWAY},
		{name: "too_large", err: Errorf(ETOOLARGE, "", "Request body too large"), expected: ETOOLARGE},
		{name: "timeout", err: Errorf(ETIMEOUT, "", "Request timed out"), expected: ETIMEOUT},
		{name: "rate_limited", err: Errorf(ERATELIMIT, "", "Too many requests"), expected: ERATELIMIT},
		{name: "payment_required", err: ErrPaymentMismatch, expected: EPAYMENT},
		{name: "validation_maps_to_invalid", err: NewValidationError("order.create", "items[0].quantity", "must be at most 1000"), expected: EINVALID},
		{name: "wrapped_validation", err: fmt.Errorf("assemble: %w", NewValidationError("order.create", "amount", "must be at most 9999999999.99")), expected: EINVALID},
		{name: "wrapped_domain", err: fmt.Errorf("cancel: %w", ErrIllegalTransition), expected: ECONFLICT},
		{name: "unknown_is_internal", err: errors.New("pq: deadlock detected"), expected: EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
			if tt.err != nil {
				assert.True(t, IsCode(tt.err, tt.expected))
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "gateway_message_is_shown", err: Gateway(errors.New("stripe: 500"), "payment.intent", "failed to create payment"), expected: "failed to create payment"},
		{name: "internal_message_is_hidden", err: Internal(errors.New("dsn=postgres://admin:pw@db"), "order.create", "failed to save order"), expected: genericMessage},
		{name: "validation", err: NewValidationError("order.create", "amount", "must be at most 9999999999.99"), expected: "Validation failed"},
		{name: "unknown", err: errors.New("raw driver detail"), expected: genericMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorMessage(tt.err))
		})
	}
}

func TestErrorOp(t *testing.T) {
	assert.Equal(t, "order.status", ErrorOp(Errorf(EINVALID, "order.status", "unknown status: %s", "lost")))
	assert.Equal(t, "", ErrorOp(ErrOrderNotFound))
	assert.Equal(t, "", ErrorOp(errors.New("plain")))
}

func TestWrappingKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")

	for _, err := range []error{
		Gateway(cause, "payment.verify", "failed to verify payment"),
		Internal(cause, "order.create", "failed to save order"),
		WrapError(cause, ETIMEOUT, "member.login", "login timed out"),
	} {
		assert.ErrorIs(t, err, cause)
	}
	assert.NoError(t, WrapError(nil, EINTERNAL, "order.create", "unused"))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("order.create", "address.pincode", "must be exactly 6 digits")
	assert.Equal(t, "order.create: address.pincode: must be exactly 6 digits", err.Error())

	err = AddFieldError(err, "items[0].quantity", "must be at most 1000")
	fields := GetValidationFields(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "must be at most 1000", fields["items[0].quantity"])
	assert.Equal(t, "order.create: validation failed for 2 fields", err.Error())

	fresh := AddFieldError(ErrAmountMismatch, "amount", "does not match")
	assert.True(t, IsValidationError(fresh))
	assert.Len(t, GetValidationFields(fresh), 1)

	assert.False(t, IsValidationError(ErrAmountMismatch))
	assert.Nil(t, GetValidationFields(ErrAmountMismatch))
}

func TestConstructorCodes(t *testing.T) {
	assert.Equal(t, ENOTFOUND, ErrorCode(NotFound("product.get", "product", "abc")))
	assert.Equal(t, "product not found: abc", ErrorMessage(NotFound("product.get", "product", "abc")))
	assert.Equal(t, EUNAUTHORIZED, ErrorCode(Unauthorized("member.login", "invalid credentials")))
	assert.Equal(t, EFORBIDDEN, ErrorCode(Forbidden("order.get", "order belongs to another member")))
	assert.Equal(t, EINVALID, ErrorCode(Invalid("payment.intent", "amount must be greater than 0")))
	assert.Equal(t, ECONFLICT, ErrorCode(Conflict("segment.create", "segment name already exists")))
}

func TestPreDefinedErrors(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{ErrAuthRequired, EUNAUTHORIZED},
		{ErrInvalidCredentials, EUNAUTHORIZED},
		{ErrEmailTaken, ECONFLICT},
		{ErrAdminRequired, EFORBIDDEN},
		{ErrCategoryNotAllowed, EFORBIDDEN},
		{ErrNotOrderOwner, EFORBIDDEN},
		{ErrAmountMismatch, EINVALID},
		{ErrUnexpectedPayment, EINVALID},
		{ErrPaymentRequired, EPAYMENT},
		{ErrPaymentNotSucceeded, EPAYMENT},
		{ErrPaymentMismatch, EPAYMENT},
		{ErrPaymentAlreadyUsed, ECONFLICT},
		{ErrIllegalTransition, ECONFLICT},
		{ErrCartItemNotFound, ENOTFOUND},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, ErrorCode(tt.err), tt.err.Error())
	}
}
