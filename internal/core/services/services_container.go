package services

import (
	portsrepo "github.com/webgroup16/contacts_app/internal/core/ports/repositories"
	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. External collaborators (mailer, avatar storage)
// are injected by the caller so tests can swap them out.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	mailer portssvc.EmailSender,
	avatars portssvc.AvatarStorage,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Contact = NewContactService(repos.ContactRepo)
	container.Token = NewTokenService(cfg, repos.UserRepo, repos.UserCache)
	container.Email = mailer
	container.Avatar = avatars

	return container
}
