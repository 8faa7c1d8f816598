package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Each orchestrator call runs its read-modify-write sequence inside Execute,
// which commits once at the end of the call: the single unit of work of the
// catalog store.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the function
	// use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute shares one connection.
type RepositoryFactory interface {
	// BeautyRepo returns a BeautyRepository bound to the current transaction.
	BeautyRepo() BeautyRepository

	// ServiceRepo returns a ServiceRepository bound to the current transaction.
	ServiceRepo() ServiceRepository

	// FavoriteRepo returns a FavoriteRepository bound to the current transaction.
	FavoriteRepo() FavoriteRepository

	// OwnerRepo returns an OwnerRepository bound to the current transaction.
	OwnerRepo() OwnerRepository

	// OTPRepo returns an OTPRepository bound to the current transaction.
	OTPRepo() OTPRepository
}
