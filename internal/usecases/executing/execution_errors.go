package executing

import "errors"

var (
	// ErrNoApprovedActions means none of the requested actions exist in
	// APPROVED status and none have already reached a terminal status.
	ErrNoApprovedActions = errors.New("no approved actions to execute")

	// ErrExecutionInProgress means another run for the same recommendation
	// is still RUNNING.
	ErrExecutionInProgress = errors.New("an execution is already in progress for this recommendation")

	// ErrDuplicateEntity means two requested actions target the same
	// external entity; executing them in one batch risks lost updates.
	ErrDuplicateEntity = errors.New("batch contains multiple actions for the same entity")

	// ErrRecommendationNotFound means the recommendation does not exist in
	// the workspace.
	ErrRecommendationNotFound = errors.New("recommendation not found")

	// ErrRecommendationNotApproved means the recommendation has not passed
	// the approval gate yet, or was rejected.
	ErrRecommendationNotApproved = errors.New("recommendation is not approved for execution")
)
