package recommending

import "errors"

var (
	// ErrNoEntityData means the trailing window held no entity with spend.
	ErrNoEntityData = errors.New("no entity data available")

	// ErrSchemaViolation means the text-generation collaborator returned a
	// payload that failed validation even after a retry. Nothing is persisted.
	ErrSchemaViolation = errors.New("generated payload violates the recommendation schema")

	// ErrRecommendationNotFound means the recommendation does not exist in
	// the workspace.
	ErrRecommendationNotFound = errors.New("recommendation not found")

	// ErrInvalidTransition means the requested lifecycle change is not
	// allowed from the recommendation's current status.
	ErrInvalidTransition = errors.New("invalid recommendation status transition")

	// ErrActionNotFound means the proposed action does not exist.
	ErrActionNotFound = errors.New("proposed action not found")

	// ErrActionNotPending means the proposed action already left PENDING.
	ErrActionNotPending = errors.New("proposed action is not pending")
)
