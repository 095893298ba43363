package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TaskQuest_Go/internal/database/postgres"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Progress *postgres.ProgressRepository
	Task     *postgres.TaskRepository
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Progress: postgres.NewProgressRepository(dbPool),
		Task:     postgres.NewTaskRepository(dbPool),
	}
}
