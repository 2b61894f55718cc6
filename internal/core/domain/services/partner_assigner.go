package services

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/partner"
	"shiptrack/internal/core/domain/model/shipment"
)

// ErrNoPartnerAvailable is returned when no delivery partner can take the
// shipment. This occurs when no candidates are provided, or when every
// candidate serving the destination is already at capacity.
var ErrNoPartnerAvailable = errors.New("no delivery partner available")

// PartnerAssigner is a domain service responsible for picking the delivery
// partner for a newly placed shipment.
//
// Selection is first-fit: candidates are walked in the order supplied, and the
// first one that serves the destination with remaining capacity wins. No
// load-balancing or scoring is applied; the caller controls fairness through
// the candidate ordering.
//
// Business rules:
//   - The shipment must be valid and not yet assigned
//   - The chosen partner must serve the destination zip code
//   - The chosen partner must have capacity for one more shipment
//   - Assignment is atomic: on failure neither side is mutated
//
// Example usage:
//
//	assigner := services.NewPartnerAssigner()
//	chosen, err := assigner.Assign(shipment, candidates)
//	if errors.Is(err, services.ErrNoPartnerAvailable) {
//	    // No partner covers this destination right now
//	    return
//	}
type PartnerAssigner struct{}

// NewPartnerAssigner creates a new PartnerAssigner instance.
func NewPartnerAssigner() PartnerAssigner {
	return PartnerAssigner{}
}

// Assign picks the first candidate that can accept the shipment and performs
// the assignment on both aggregates.
//
// Parameters:
//   - s: The shipment to assign (must be valid and unassigned)
//   - candidates: Partners to consider, in retrieval order
//
// Returns the chosen partner, ErrNoPartnerAvailable when no candidate can
// take the shipment, or a validation error.
func (a PartnerAssigner) Assign(s *shipment.Shipment, candidates []*partner.Partner) (*partner.Partner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Partner() != nil {
		return nil, shipment.ErrPartnerAlreadyAssigned
	}

	chosen, err := a.findFirstFit(s.Destination(), candidates)
	if err != nil {
		return nil, err
	}

	if err = chosen.AcceptShipment(); err != nil {
		return nil, err
	}

	if err = s.AssignPartner(chosen.ID()); err != nil {
		chosen.ReleaseShipment()
		return nil, err
	}

	return chosen, nil
}

// findFirstFit walks the candidates in order and returns the first partner
// serving the destination with remaining capacity.
func (a PartnerAssigner) findFirstFit(
	destination kernel.ZipCode,
	candidates []*partner.Partner,
) (*partner.Partner, error) {
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if candidate.CanAccept(destination) {
			return candidate, nil
		}
	}

	return nil, ErrNoPartnerAvailable
}
