package service

type AccountService interface {
	RequestPasswordReset(email string) (string, error)
}
