// internal/email/mailer/verification_decision.go
package mailer

import "github.com/bridgeops/partnerflow/internal/email"

// VerificationDecisionData contains data for the verification decision template
type VerificationDecisionData struct {
	CompanyName string
	Approved    bool
	Reason      string
}

// SendVerificationDecision notifies a partner about the outcome of their
// business verification request.
func SendVerificationDecision(s *email.Service, to, companyName string, approved bool, reason string) error {
	templateData := VerificationDecisionData{
		CompanyName: companyName,
		Approved:    approved,
		Reason:      reason,
	}

	subject := "Your business verification was approved"
	if !approved {
		subject = "Update on your business verification"
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Partnerflow",
		Subject:      subject,
		TemplateName: "verification_decision",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
