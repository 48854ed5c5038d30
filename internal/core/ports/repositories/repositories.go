package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container at startup.
type RepositoryProvider struct {
	UserRepo    UserRepository
	ContactRepo ContactRepository
	UserCache   UserCache
}
