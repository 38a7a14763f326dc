package api

import "github.com/vaclaims/ratings-api/internal/domain/compensation"

// RatingInput is one disability rating as submitted by a client.
type RatingInput struct {
	Percentage     Percent `json:"percentage"`
	Description    string  `json:"description" validate:"max=200"`
	IsBilateral    bool    `json:"is_bilateral"`
	BilateralGroup string  `json:"bilateral_group" validate:"max=64"`
}

// ConditionInput is one condition submitted for SMC evaluation. Body part and
// side are exact tags such as "hand" and "left".
type ConditionInput struct {
	Name                  string  `json:"name" validate:"required,max=200"`
	Rating                Percent `json:"rating"`
	LossOfUse             bool    `json:"loss_of_use"`
	AnatomicalLoss        bool    `json:"anatomical_loss"`
	BodyPart              string  `json:"body_part" validate:"max=32"`
	Side                  string  `json:"side" validate:"max=16"`
	RequiresAidAttendance bool    `json:"requires_aid_attendance"`
	IsHousebound          bool    `json:"is_housebound"`
}

// DependentsInput describes the veteran's dependents.
type DependentsInput struct {
	Spouse          bool `json:"spouse"`
	ChildrenUnder18 int  `json:"children_under_18" validate:"gte=0,lte=50"`
	Parents         int  `json:"parents" validate:"gte=0,lte=10"`
}

func (d DependentsInput) toDomain() compensation.Dependents {
	return compensation.Dependents{
		Spouse:          d.Spouse,
		ChildrenUnder18: d.ChildrenUnder18,
		Parents:         d.Parents,
	}
}

// CombineRequest is the body of POST /api/ratings/combine.
type CombineRequest struct {
	Ratings []RatingInput `json:"ratings" validate:"max=100,dive"`
}

// CompensationRequest is the body of POST /api/compensation/estimate.
// Year zero selects the configured default year.
type CompensationRequest struct {
	CombinedRating Percent         `json:"combined_rating"`
	Dependents     DependentsInput `json:"dependents"`
	Year           int             `json:"year" validate:"omitempty,gte=2000,lte=2100"`
}

// SMCCheckRequest is the body of POST /api/smc/check.
type SMCCheckRequest struct {
	Conditions []ConditionInput `json:"conditions" validate:"max=100,dive"`
	Year       int              `json:"year" validate:"omitempty,gte=2000,lte=2100"`
}

// TDIUCheckRequest is the body of POST /api/tdiu/check.
type TDIUCheckRequest struct {
	Ratings []RatingInput `json:"ratings" validate:"max=100,dive"`
}

// ReportRequest is the body of POST /api/reports.
type ReportRequest struct {
	Ratings    []RatingInput    `json:"ratings" validate:"max=100,dive"`
	Conditions []ConditionInput `json:"conditions" validate:"max=100,dive"`
	Dependents DependentsInput  `json:"dependents"`
	Year       int              `json:"year" validate:"omitempty,gte=2000,lte=2100"`
}
