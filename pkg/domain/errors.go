package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrEmptyCompletion is returned when the model backend answered with a
	// success status but no usable content.
	ErrEmptyCompletion = errors.New("model returned an empty completion")

	// ErrRateLimited signals backend throttling; the caller may retry after a
	// backoff. It is never retried inside the pipeline.
	ErrRateLimited = errors.New("model backend rate limited")

	// ErrQuotaExhausted signals depleted backend credits; terminal for the
	// current request until resolved externally.
	ErrQuotaExhausted = errors.New("model backend credits exhausted")
)

type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func NewInvalidInputError(reason string) error {
	return &InvalidInputError{Reason: reason}
}

func IsInvalidInputError(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %s", e.Setting, e.Reason)
}

func NewConfigurationError(setting, reason string) error {
	return &ConfigurationError{Setting: setting, Reason: reason}
}

func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// UpstreamError carries the backend status for diagnostics. Timeouts and an
// open circuit breaker are reported through it as well.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("upstream error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream error: %s", e.Message)
}

func NewUpstreamError(status int, message string) error {
	return &UpstreamError{Status: status, Message: message}
}

func IsUpstreamError(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

type MalformedVerdictError struct {
	Reason string
}

func (e *MalformedVerdictError) Error() string {
	return fmt.Sprintf("malformed verdict: %s", e.Reason)
}

func NewMalformedVerdictError(reason string) error {
	return &MalformedVerdictError{Reason: reason}
}

func IsMalformedVerdictError(err error) bool {
	var target *MalformedVerdictError
	return errors.As(err, &target)
}

// PreconditionFailedError marks a sequencing violation, e.g. requesting a
// safer version before a verdict exists. Not retryable.
type PreconditionFailedError struct {
	Reason string
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("precondition failed: %s", e.Reason)
}

func NewPreconditionFailedError(reason string) error {
	return &PreconditionFailedError{Reason: reason}
}

func IsPreconditionFailedError(err error) bool {
	var target *PreconditionFailedError
	return errors.As(err, &target)
}

type NotOwnerError struct {
	RecordID uuid.UUID
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("record '%s' is not owned by the requesting identity", e.RecordID.String())
}

func NewNotOwnerError(recordID uuid.UUID) error {
	return &NotOwnerError{RecordID: recordID}
}

func IsNotOwnerError(err error) bool {
	var target *NotOwnerError
	return errors.As(err, &target)
}

type notFoundError struct {
	EntityType string
	ID         uuid.UUID
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID.String())
}

func NewNotFoundError(entityType string, id uuid.UUID) error {
	return &notFoundError{EntityType: entityType, ID: id}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var target *notFoundError
	return errors.As(err, &target)
}
