// Package errors defines the application-specific error taxonomy.
// Every operation surfaces either a success payload or one of these
// structured failures; stack traces never reach the boundary.
package errors

import (
	"net/http"

	"buytrek/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication and authorization
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrAccountNotActivated = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_NOT_ACTIVATED",
		"Account has not been activated",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"Invalid or expired OTP",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Forbidden",
		"",
	)

	// User and address
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_REGISTERED",
		"Email address is already registered",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	ErrNoDefaultAddress = NewBaseError(
		http.StatusBadRequest,
		"NO_DEFAULT_ADDRESS",
		"No default address set",
		"",
	)

	// Catalog and cart
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductInCart = NewBaseError(
		http.StatusConflict,
		"PRODUCT_IN_CART",
		"Product Exists in Cart",
		"",
	)

	ErrProductNotInCart = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NOT_IN_CART",
		"Product does not exist in Cart",
		"",
	)

	ErrCartMinimumQuantity = NewBaseError(
		http.StatusBadRequest,
		"CART_MINIMUM_QUANTITY",
		"Quantity can not go below one, remove the product instead",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusNotFound,
		"CART_EMPTY",
		"Cart is empty",
		"",
	)

	// Orders and payment
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrPaymentInitFailed = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_INIT_FAILED",
		"Payment initialization failed. Please try again.",
		"",
	)

	ErrOrderNotCancellable = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_CANCELLABLE",
		"Order can not be cancelled",
		"",
	)

	ErrOrderAwaitingPayment = NewBaseError(
		http.StatusBadRequest,
		"ORDER_AWAITING_PAYMENT",
		"Order not confirmed yet, awaiting payment confirmation",
		"",
	)

	ErrOrderNotPackaging = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_PACKAGING",
		"Order needs to be updated to packaging",
		"",
	)

	ErrOrderNotPackaged = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_PACKAGED",
		"Order needs to be updated to packaged",
		"",
	)

	ErrOrderNotOutForDelivery = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_OUT_FOR_DELIVERY",
		"Order needs to be updated to out for delivery",
		"",
	)

	// Webhook
	ErrWebhookSourceForbidden = NewBaseError(
		http.StatusForbidden,
		"WEBHOOK_SOURCE_FORBIDDEN",
		"Forbidden",
		"",
	)

	ErrWebhookSignature = NewBaseError(
		http.StatusBadRequest,
		"WEBHOOK_SIGNATURE_INVALID",
		"Not allowed",
		"",
	)

	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSACTION_NOT_FOUND",
		"Transaction not found",
		"",
	)

	ErrAmountMismatch = NewBaseError(
		http.StatusBadRequest,
		"AMOUNT_MISMATCH",
		"Amount does not match transaction amount",
		"",
	)

	// Validation and general
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
