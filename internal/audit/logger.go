package audit

import (
	"context"

	"github.com/google/uuid"
)

// Logger defines the interface for recording privileged admin actions.
// Implementations must treat entries as append-only.
type Logger interface {
	// LogVerificationDecision logs an approve or reject decision on a
	// company's verification request
	LogVerificationDecision(
		ctx context.Context,
		adminID uuid.UUID,
		companyID uuid.UUID,
		approved bool,
		details map[string]interface{},
	) error

	// LogGrowthRequestUpdate logs a status change on a growth request
	LogGrowthRequestUpdate(
		ctx context.Context,
		adminID uuid.UUID,
		requestID uuid.UUID,
		newStatus string,
		details map[string]interface{},
	) error

	// LogProfileReset logs deletion of a partner's company record
	LogProfileReset(
		ctx context.Context,
		adminID uuid.UUID,
		companyID uuid.UUID,
	) error

	// LogAdminAction logs any other privileged mutation
	LogAdminAction(
		ctx context.Context,
		adminID uuid.UUID,
		action string,
		targetType string,
		targetID string,
		details map[string]interface{},
	) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogVerificationDecision implements Logger.LogVerificationDecision
func (l *NoOpLogger) LogVerificationDecision(
	ctx context.Context,
	adminID uuid.UUID,
	companyID uuid.UUID,
	approved bool,
	details map[string]interface{},
) error {
	return nil
}

// LogGrowthRequestUpdate implements Logger.LogGrowthRequestUpdate
func (l *NoOpLogger) LogGrowthRequestUpdate(
	ctx context.Context,
	adminID uuid.UUID,
	requestID uuid.UUID,
	newStatus string,
	details map[string]interface{},
) error {
	return nil
}

// LogProfileReset implements Logger.LogProfileReset
func (l *NoOpLogger) LogProfileReset(
	ctx context.Context,
	adminID uuid.UUID,
	companyID uuid.UUID,
) error {
	return nil
}

// LogAdminAction implements Logger.LogAdminAction
func (l *NoOpLogger) LogAdminAction(
	ctx context.Context,
	adminID uuid.UUID,
	action string,
	targetType string,
	targetID string,
	details map[string]interface{},
) error {
	return nil
}
