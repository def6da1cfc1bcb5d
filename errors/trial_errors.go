// api/errors/trial_errors.go
package errors

var (
	ErrTrialNotFound = New(ErrNotFound, "trial not found")
	ErrTrialConflict = New(ErrConflict, "trial study id or protocol number already exists")
	ErrTrialDates    = New(ErrValidation, "trial start date must be before end date")

	ErrSiteNotFound = New(ErrNotFound, "site not found")
	ErrSiteConflict = New(ErrConflict, "site id already exists")

	ErrMilestoneNotFound     = New(ErrNotFound, "milestone not found")
	ErrMilestoneConflict     = New(ErrConflict, "milestone id already exists")
	ErrMilestoneDependencies = New(ErrInvalidState, "milestone dependencies are not completed")
)
