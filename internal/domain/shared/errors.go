package shared

import (
	"fmt"
	"strings"
)

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

// Route errors

type RouteError struct {
	*DomainError
}

func NewRouteError(message string) *RouteError {
	return &RouteError{DomainError: &DomainError{Message: message}}
}

// InvalidSpeedError is returned when a route is armed with a non-positive FTL speed.
// This is a configuration bug, never a runtime condition to recover from.
type InvalidSpeedError struct {
	*RouteError
	Speed int
}

func NewInvalidSpeedError(speed int) *InvalidSpeedError {
	return &InvalidSpeedError{
		RouteError: NewRouteError(fmt.Sprintf("invalid route speed %d: must be positive", speed)),
		Speed:      speed,
	}
}

// Mission errors

type MissionError struct {
	*DomainError
	FleetName string
}

func NewMissionError(message, fleetName string) *MissionError {
	return &MissionError{
		DomainError: &DomainError{Message: message},
		FleetName:   fleetName,
	}
}

// StaleReferenceError marks a mission whose bound fleet no longer exists
type StaleReferenceError struct {
	*MissionError
	MissionType string
}

func NewStaleReferenceError(missionType, fleetName string) *StaleReferenceError {
	return &StaleReferenceError{
		MissionError: NewMissionError(
			fmt.Sprintf("%s mission references missing fleet %q", missionType, fleetName),
			fleetName,
		),
		MissionType: missionType,
	}
}

// PlanningConflictError reports fleets bound by more than one mission
type PlanningConflictError struct {
	*DomainError
	FleetNames []string
}

func NewPlanningConflictError(fleetNames []string) *PlanningConflictError {
	return &PlanningConflictError{
		DomainError: &DomainError{
			Message: fmt.Sprintf("fleets bound to more than one mission: %s", strings.Join(fleetNames, ", ")),
		},
		FleetNames: fleetNames,
	}
}
