package leave

import "fmt"

// Validation bounds. Grade tiers above 17 do not exist in the grade
// structure; explicit day counts are capped at one year.
const (
	maxGradeTier    = 17
	maxExplicitDays = 365
)

// ValidateRequest checks a request for completeness and range errors
// before the engine runs. It returns ALL applicable human-readable
// messages in one pass (never fail-fast) so a caller can display them
// together; an empty slice means the request is valid.
func ValidateRequest(req Request) []string {
	var errs []string

	if req.StartDate.IsZero() {
		errs = append(errs, "Start date is required")
	}

	switch req.Kind {
	case KindVacation:
		if req.GradeTier == nil {
			errs = append(errs, "Grade level is required for vacation leave")
		} else if *req.GradeTier < 0 || *req.GradeTier > maxGradeTier {
			errs = append(errs, fmt.Sprintf("Grade level must be between 0 and %d", maxGradeTier))
		}

	case KindCasual, KindStudy, KindSick, KindSabbatical:
		if req.ExplicitDays == nil {
			errs = append(errs, fmt.Sprintf("Number of days is required for %s leave", req.Kind))
		} else if *req.ExplicitDays <= 0 {
			errs = append(errs, "Number of days must be greater than 0")
		} else if *req.ExplicitDays > maxExplicitDays {
			errs = append(errs, fmt.Sprintf("Number of days cannot exceed %d", maxExplicitDays))
		}

	case KindMaternity:
		// Fixed entitlement, nothing further to check.

	default:
		errs = append(errs, "Invalid leave type")
	}

	return errs
}
