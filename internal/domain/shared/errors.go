package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Tank-related errors

type TankError struct {
	*DomainError
}

func NewTankError(message string) *TankError {
	return &TankError{DomainError: NewDomainError(message)}
}

// ConfigurationError is returned when a tank is built from invalid arguments
type ConfigurationError struct {
	*TankError
}

func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{TankError: NewTankError(message)}
}

// CapacityExceededError is returned when fuel would overflow the tank
type CapacityExceededError struct {
	*TankError
	Requested float64
	Available float64
}

func NewCapacityExceededError(requested, available float64) *CapacityExceededError {
	return &CapacityExceededError{
		TankError: NewTankError(fmt.Sprintf("not sufficient tank capacity: requested %g, room for %g", requested, available)),
		Requested: requested,
		Available: available,
	}
}

// InvalidArgumentError is returned for out-of-range fill arguments
type InvalidArgumentError struct {
	*TankError
	Argument string
}

func NewInvalidArgumentError(argument, message string) *InvalidArgumentError {
	return &InvalidArgumentError{
		TankError: NewTankError(fmt.Sprintf("%s: %s", argument, message)),
		Argument:  argument,
	}
}

// InvalidRequestError is returned when mutually exclusive fill modes are combined
type InvalidRequestError struct {
	*TankError
}

func NewInvalidRequestError(message string) *InvalidRequestError {
	return &InvalidRequestError{TankError: NewTankError(message)}
}

type UnknownCapacityError struct {
	*TankError
}

func NewUnknownCapacityError() *UnknownCapacityError {
	return &UnknownCapacityError{TankError: NewTankError("tank capacity not known, tank cannot be filled")}
}

// FuelUnavailableError is returned by tanks whose fill policy refuses every request
type FuelUnavailableError struct {
	*TankError
}

func NewFuelUnavailableError(message string) *FuelUnavailableError {
	return &FuelUnavailableError{TankError: NewTankError(message)}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
