package user

type listInput struct{}

type listOutput struct {
	Body []string
}
