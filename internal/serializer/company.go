package serializer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bridgeops/partnerflow/internal/model"
)

// CompanySerializer renders companies for API responses. The is_verified
// flag is derived from the status enum at encode time and never stored.
type CompanySerializer struct{}

type companyView struct {
	*model.Company
	IsVerified bool `json:"is_verified"`
}

func (s *CompanySerializer) Encode(input any, output io.Writer) error {
	company, ok := input.(*model.Company)
	if !ok {
		return fmt.Errorf("expected *model.Company, got %T", input)
	}

	return json.NewEncoder(output).Encode(companyView{
		Company:    company,
		IsVerified: company.Verified(),
	})
}

func (s *CompanySerializer) Decode(input []byte, output any) error {
	company, ok := output.(*model.Company)
	if !ok {
		return fmt.Errorf("expected *model.Company, got %T", output)
	}

	return json.Unmarshal(input, company)
}

func init() {
	Register(&model.Company{}, &CompanySerializer{})
}
