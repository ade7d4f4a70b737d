package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskdel-api/internal/config"
	"github.com/phrazzld/taskdel-api/internal/domain"
	"github.com/phrazzld/taskdel-api/internal/platform/memory"
	"github.com/phrazzld/taskdel-api/internal/service/auth"
	"github.com/phrazzld/taskdel-api/internal/service/stats"
	"github.com/phrazzld/taskdel-api/internal/store"
)

// application holds the server's wired dependencies.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	directory store.UserDirectory
	taskStore store.TaskStore
	stats     *stats.Service
}

// newApplication provisions the roster and wires the stores and services.
// Roster passwords are hashed here, once, so plaintext secrets never
// outlive startup.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	users, err := provisionRoster(cfg.Roster, hasher)
	if err != nil {
		return nil, fmt.Errorf("provisioning roster: %w", err)
	}

	directory, err := memory.NewDirectory(users, auth.NewBcryptVerifier())
	if err != nil {
		return nil, fmt.Errorf("building user directory: %w", err)
	}

	taskStore := memory.NewTaskStore(directory)

	return &application{
		config:    cfg,
		logger:    logger,
		directory: directory,
		taskStore: taskStore,
		stats:     stats.NewService(taskStore, directory),
	}, nil
}

// provisionRoster turns configured roster entries into directory users.
// Entries carrying a pre-computed hash are taken as-is; plaintext passwords
// are hashed here.
func provisionRoster(entries []config.RosterEntry, hasher auth.PasswordHasher) ([]domain.User, error) {
	users := make([]domain.User, 0, len(entries))
	for _, entry := range entries {
		hashed := entry.HashedPassword
		if hashed == "" {
			var err error
			hashed, err = hasher.Hash(entry.Password)
			if err != nil {
				return nil, fmt.Errorf("hashing password for %q: %w", entry.Login, err)
			}
		}
		users = append(users, domain.User{
			ID:             entry.ID,
			Name:           entry.Name,
			Login:          entry.Login,
			HashedPassword: hashed,
			Ava:            entry.Ava,
		})
	}
	return users, nil
}
