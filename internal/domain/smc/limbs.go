package smc

import "github.com/vaclaims/ratings-api/internal/domain"

// limbTally counts affected sides of one paired body part.
type limbTally struct {
	left     bool
	right    bool
	unsided  int
	evidence []string
}

func (l *limbTally) add(c domain.SMCCondition) {
	switch c.Side {
	case domain.SideLeft:
		l.left = true
	case domain.SideRight:
		l.right = true
	case domain.SideBoth:
		l.left = true
		l.right = true
	default:
		l.unsided++
	}
	l.evidence = append(l.evidence, c.Name)
}

// affected reports whether at least one side is affected.
func (l *limbTally) affected() bool {
	return l != nil && (l.left || l.right || l.unsided > 0)
}

// pair reports whether both members of the pair are affected. A condition
// without a side tag counts as one unspecified member.
func (l *limbTally) pair() bool {
	if l == nil {
		return false
	}
	sided := 0
	if l.left {
		sided++
	}
	if l.right {
		sided++
	}
	return sided+l.unsided >= 2
}

// limbs groups qualifying conditions by body part.
type limbs map[domain.BodyPart]*limbTally

func tallyLimbs(conditions []domain.SMCCondition, include func(domain.SMCCondition) bool) limbs {
	out := limbs{}
	for _, c := range conditions {
		if !include(c) {
			continue
		}
		t, ok := out[c.BodyPart]
		if !ok {
			t = &limbTally{}
			out[c.BodyPart] = t
		}
		t.add(c)
	}
	return out
}

// pairedExtremity reports the first symmetric extremity combination found:
// both arms, both legs, both hands, both feet, or one arm with one leg.
func (l limbs) pairedExtremity() (string, []string, bool) {
	pairs := []struct {
		part  domain.BodyPart
		label string
	}{
		{domain.BodyPartArm, "both arms"},
		{domain.BodyPartLeg, "both legs"},
		{domain.BodyPartHand, "both hands"},
		{domain.BodyPartFoot, "both feet"},
	}
	for _, p := range pairs {
		if t := l[p.part]; t.pair() {
			return p.label, t.evidence, true
		}
	}

	arm, leg := l[domain.BodyPartArm], l[domain.BodyPartLeg]
	if arm.affected() && leg.affected() {
		return "one arm and one leg", append(append([]string{}, arm.evidence...), leg.evidence...), true
	}
	return "", nil, false
}
