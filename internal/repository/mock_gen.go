// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks CompanyRepositoryIface
//go:generate mockgen -source=./growth_request.go -destination=../mocks/mock_growth_request_repository.go -package=mocks GrowthRequestRepositoryIface
//go:generate mockgen -source=./notification.go -destination=../mocks/mock_notification_repository.go -package=mocks NotificationRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./admin_activity_log.go -destination=../mocks/mock_activity_log_repository.go -package=mocks ActivityLogRepositoryIface
//go:generate mockgen -source=./plan_intent.go -destination=../mocks/mock_plan_intent_repository.go -package=mocks PlanIntentRepositoryIface
//go:generate mockgen -source=./repository.go -destination=../mocks/mock_transaction.go -package=mocks Transaction
//go:generate mockgen -source=../audit/logger.go -destination=../mocks/mock_audit_logger.go -package=mocks Logger
