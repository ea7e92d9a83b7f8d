package company

import "questiondesk/internal/domain/company"

type listInput struct{}

type listOutput struct {
	Body []company.Company
}
