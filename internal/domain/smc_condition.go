package domain

import (
	"fmt"
	"strings"
)

// BodyPart is the structured anatomical tag attached to an SMC condition.
// Upstream adapters resolve free-text descriptions into one of these values;
// the engines never inspect condition names.
type BodyPart string

// Recognised body parts.
const (
	BodyPartNone          BodyPart = ""
	BodyPartHand          BodyPart = "hand"
	BodyPartFoot          BodyPart = "foot"
	BodyPartArm           BodyPart = "arm"
	BodyPartLeg           BodyPart = "leg"
	BodyPartEye           BodyPart = "eye"
	BodyPartCreativeOrgan BodyPart = "creative_organ"
	BodyPartButtocks      BodyPart = "buttocks"
	BodyPartEar           BodyPart = "ear"
	BodyPartOther         BodyPart = "other"
)

// Side identifies which of a paired body part is affected.
type Side string

// Recognised sides.
const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBoth  Side = "both"
)

var bodyParts = map[BodyPart]struct{}{
	BodyPartNone:          {},
	BodyPartHand:          {},
	BodyPartFoot:          {},
	BodyPartArm:           {},
	BodyPartLeg:           {},
	BodyPartEye:           {},
	BodyPartCreativeOrgan: {},
	BodyPartButtocks:      {},
	BodyPartEar:           {},
	BodyPartOther:         {},
}

// ParseBodyPart converts an exact tag into a BodyPart.
// Matching is case-insensitive but never partial.
func ParseBodyPart(tag string) (BodyPart, error) {
	bp := BodyPart(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := bodyParts[bp]; !ok {
		return BodyPartNone, fmt.Errorf("%w: %q", ErrUnknownBodyPart, tag)
	}
	return bp, nil
}

// ParseSide converts an exact tag into a Side.
func ParseSide(tag string) (Side, error) {
	s := Side(strings.ToLower(strings.TrimSpace(tag)))
	switch s {
	case SideNone, SideLeft, SideRight, SideBoth:
		return s, nil
	default:
		return SideNone, fmt.Errorf("%w: %q", ErrUnknownSide, tag)
	}
}

// IsExtremity reports whether the body part is an arm, leg, hand or foot.
func (b BodyPart) IsExtremity() bool {
	switch b {
	case BodyPartArm, BodyPartLeg, BodyPartHand, BodyPartFoot:
		return true
	default:
		return false
	}
}

// SMCCondition is a single condition evaluated for Special Monthly Compensation.
type SMCCondition struct {
	Name                  string   `json:"name"`
	Rating                int      `json:"rating"`
	LossOfUse             bool     `json:"loss_of_use"`
	AnatomicalLoss        bool     `json:"anatomical_loss"`
	BodyPart              BodyPart `json:"body_part,omitempty"`
	Side                  Side     `json:"side,omitempty"`
	RequiresAidAttendance bool     `json:"requires_aid_attendance"`
	IsHousebound          bool     `json:"is_housebound"`
}

// Validate checks that the condition has a name, a valid rating, and known tags.
func (c SMCCondition) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCondition)
	}
	if err := ValidatePercentage(c.Rating); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidCondition, c.Name, err)
	}
	if _, ok := bodyParts[c.BodyPart]; !ok {
		return fmt.Errorf("%w: %s: %w", ErrInvalidCondition, c.Name, ErrUnknownBodyPart)
	}
	if _, err := ParseSide(string(c.Side)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidCondition, c.Name, err)
	}
	return nil
}

// NewSMCCondition validates and returns the given condition.
func NewSMCCondition(c SMCCondition) (SMCCondition, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return SMCCondition{}, err
	}
	return c, nil
}

// HasLoss reports whether the condition records loss of use or anatomical loss.
func (c SMCCondition) HasLoss() bool {
	return c.LossOfUse || c.AnatomicalLoss
}
