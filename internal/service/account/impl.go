package account

// RequestPasswordReset starts the backend's password-reset flow and returns
// the backend's confirmation message for display.
func (s *AccountService) RequestPasswordReset(email string) (string, error) {
	return s.userRepository.ForgotPassword(email)
}
