// internal/email/mailer/growth_request_update.go
package mailer

import "github.com/bridgeops/partnerflow/internal/email"

// GrowthUpdateData contains data for the growth request update template
type GrowthUpdateData struct {
	ServiceType string
	Status      string
}

// SendGrowthRequestUpdate notifies a partner that an admin changed the
// status of one of their growth service requests.
func SendGrowthRequestUpdate(s *email.Service, to, serviceType, status string) error {
	templateData := GrowthUpdateData{
		ServiceType: serviceType,
		Status:      status,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Partnerflow",
		Subject:      "Update on your " + serviceType + " service request",
		TemplateName: "growth_request_update",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
