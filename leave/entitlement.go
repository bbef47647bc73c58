package leave

// Entitlement constants. Vacation maps the grade tier to a banded
// allowance; maternity is fixed regardless of tier.
const (
	vacationDaysLowerBand = 21  // grade tier 0-6
	vacationDaysUpperBand = 30  // grade tier 7+
	maternityDays         = 112 // fixed
	gradeTierBandSplit    = 6
)

// ResolveEntitlement maps a request to its required number of working
// days. It fails with ErrMissingParameter when a kind-specific
// parameter is absent and ErrInvalidRequest for an unknown kind; a
// request that passed ValidateRequest never fails here.
func ResolveEntitlement(req Request) (int, error) {
	switch req.Kind {
	case KindVacation:
		if req.GradeTier == nil {
			return 0, &MissingParameterError{Kind: req.Kind, Parameter: "grade tier"}
		}
		if *req.GradeTier <= gradeTierBandSplit {
			return vacationDaysLowerBand, nil
		}
		return vacationDaysUpperBand, nil

	case KindMaternity:
		return maternityDays, nil

	case KindCasual, KindStudy, KindSick, KindSabbatical:
		if req.ExplicitDays == nil {
			return 0, &MissingParameterError{Kind: req.Kind, Parameter: "number of days"}
		}
		return *req.ExplicitDays, nil

	default:
		return 0, &UnknownKindError{Kind: req.Kind}
	}
}
