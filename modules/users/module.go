// Package users provides user resource management functionality.
// This file defines the module's public API - the single interface
// that other modules use to interact with the users bounded context.
package users

import (
	"net/http"

	"github.com/mzukov/web-api/modules/shared/events"
	"github.com/mzukov/web-api/modules/users/application/commands"
	"github.com/mzukov/web-api/modules/users/application/queries"
	"github.com/mzukov/web-api/modules/users/domain"
	httphandler "github.com/mzukov/web-api/modules/users/infrastructure/http"
	"github.com/mzukov/web-api/modules/users/infrastructure/persistence"
)

// Module is the public API for the users bounded context.
// External communication: HTTP API (RegisterRoutes)
// Cross-module communication: Domain Events (published on writes)
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration.
type Config struct {
	// Repository is the storage backend. Defaults to in-memory when nil.
	Repository     domain.UserRepository
	EventPublisher events.Publisher
}

// module implements the Module interface.
type module struct {
	createUserHandler  *commands.CreateUserHandler
	replaceUserHandler *commands.ReplaceUserHandler
	patchUserHandler   *commands.PatchUserHandler
	deleteUserHandler  *commands.DeleteUserHandler
	getUserHandler     *queries.GetUserHandler
	userExistsHandler  *queries.UserExistsHandler
	listUsersHandler   *queries.ListUsersHandler
}

// New creates a new users module with all dependencies wired.
func New(cfg Config) Module {
	repository := cfg.Repository
	if repository == nil {
		repository = persistence.NewInMemoryRepository()
	}

	// Wire up command handlers
	createUserHandler := commands.NewCreateUserHandler(repository, cfg.EventPublisher)
	replaceUserHandler := commands.NewReplaceUserHandler(repository, cfg.EventPublisher)
	patchUserHandler := commands.NewPatchUserHandler(repository, cfg.EventPublisher)
	deleteUserHandler := commands.NewDeleteUserHandler(repository, cfg.EventPublisher)

	// Wire up query handlers
	getUserHandler := queries.NewGetUserHandler(repository)
	userExistsHandler := queries.NewUserExistsHandler(repository)
	listUsersHandler := queries.NewListUsersHandler(repository)

	return &module{
		createUserHandler:  createUserHandler,
		replaceUserHandler: replaceUserHandler,
		patchUserHandler:   patchUserHandler,
		deleteUserHandler:  deleteUserHandler,
		getUserHandler:     getUserHandler,
		userExistsHandler:  userExistsHandler,
		listUsersHandler:   listUsersHandler,
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	httphandler.RegisterRoutes(
		mux,
		m.createUserHandler,
		m.replaceUserHandler,
		m.patchUserHandler,
		m.deleteUserHandler,
		m.getUserHandler,
		m.userExistsHandler,
		m.listUsersHandler,
	)
}
