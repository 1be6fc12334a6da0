package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInsufficientBalance = errors.New("balance is not enough")
	ErrStateConflict       = errors.New("entity state does not allow this action")
	ErrRefundWindowClosed  = errors.New("refund window has closed")
	ErrCourseNotInOrder    = errors.New("course is not part of the order")
	ErrUnknownPayment      = errors.New("unknown payment method")
	ErrEmptyOrder          = errors.New("order has no lines")

	// * Gateway errors.
	ErrSignatureInvalid   = errors.New("callback signature verification failed")
	ErrGatewayUnavailable = errors.New("payment gateway is unavailable")
	ErrUnknownCorrelation = errors.New("callback does not match any registered payment")
	ErrAmountMismatch     = errors.New("callback amount does not match the registered payment")
	ErrCallbackMalformed  = errors.New("callback payload is malformed")
)
