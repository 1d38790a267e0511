package partnerflow

import "embed"

// EmailFS holds the email template pairs (html + plaintext) shipped with the
// binary. Each directory under templates/emails is one template group.
//
//go:embed templates/emails
var EmailFS embed.FS
