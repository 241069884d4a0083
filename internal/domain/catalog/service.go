// Package catalog holds the per-hotel additional-service price list
// (breakfast, spa, parking, late checkout). Immutable reference data.
package catalog

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceName = errors.New("invalid service name")
	ErrServiceNotOffered  = errors.New("service not offered by hotel")
)

type ServiceName string

const (
	ServiceBreakfast    ServiceName = "breakfast"
	ServiceSpa          ServiceName = "spa"
	ServiceParking      ServiceName = "parking"
	ServiceLateCheckout ServiceName = "late_checkout"
)

func (n ServiceName) String() string { return string(n) }

func (n ServiceName) IsValid() bool {
	switch n {
	case ServiceBreakfast, ServiceSpa, ServiceParking, ServiceLateCheckout:
		return true
	default:
		return false
	}
}

func NewServiceName(s string) (ServiceName, error) {
	n := ServiceName(s)
	if !n.IsValid() {
		return "", ErrInvalidServiceName
	}
	return n, nil
}

type Service struct {
	ID      uuid.UUID
	HotelID uuid.UUID
	Name    ServiceName
	Price   float64
}

// Offering is a hotel's service catalog indexed by name.
type Offering struct {
	byName map[ServiceName]Service
}

func NewOffering(services []Service) *Offering {
	byName := make(map[ServiceName]Service, len(services))
	for _, s := range services {
		byName[s.Name] = s
	}
	return &Offering{byName: byName}
}

// Resolve returns the catalog entry for a selected service name, failing when
// the hotel does not offer it.
func (o *Offering) Resolve(name ServiceName) (Service, error) {
	s, ok := o.byName[name]
	if !ok {
		return Service{}, ErrServiceNotOffered
	}
	return s, nil
}
