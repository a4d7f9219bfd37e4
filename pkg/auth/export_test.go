package auth

// NewAuthServiceWithCost builds the service with a custom bcrypt cost.
func NewAuthServiceWithCost(repo UserRepository, tokens TokenIssuer, cost int) AuthUseCase {
	return newAuthServiceWithCost(repo, tokens, cost)
}
