package company

// Company is an id/name pair found on question records. Both values are
// passed through as stored, so a numeric company_id stays a number.
type Company struct {
	ID   any `json:"company_id"`
	Name any `json:"company_name"`
}
