package repository

import (
	"github.com/synergysphere/synergysphere-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves users with pagination
	List(page, pageSize int) ([]models.User, int64, error)

	// Update updates a user
	Update(user *models.User) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithOwner creates a project and its owner membership within a
	// single transaction.
	CreateWithOwner(project *models.Project, member *models.ProjectMember) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// ListByUserID lists all projects a user is a member of
	ListByUserID(userID uint64) ([]models.Project, error)

	// AddMember adds a member to a project
	AddMember(member *models.ProjectMember) error

	// FindMember finds a specific project member
	FindMember(projectID, userID uint64) (*models.ProjectMember, error)

	// ListMembers lists all members of a project with user details
	ListMembers(projectID uint64) ([]models.ProjectMember, error)

	// ListMembershipsByUserID lists a user's memberships with their projects
	ListMembershipsByUserID(userID uint64) ([]models.ProjectMember, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// ListByProject retrieves the tasks of a project
	ListByProject(projectID uint64) ([]models.Task, error)

	// ListAll retrieves every task
	ListAll() ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Assign records a task assignment
	Assign(assignment *models.TaskAssignment) error

	// FindAssignment finds a specific task assignment
	FindAssignment(taskID, userID uint64) (*models.TaskAssignment, error)

	// ListAssignments lists the assignments of a task with user details
	ListAssignments(taskID uint64) ([]models.TaskAssignment, error)

	// CountAssignedTasks counts live tasks assigned to a user within a project
	CountAssignedTasks(userID, projectID uint64) (int64, error)
}

// CommentRepository defines the interface for task comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.TaskComment) error

	// FindByID finds a comment by ID
	FindByID(id uint64) (*models.TaskComment, error)

	// ListByTask lists the comments of a task with user details
	ListByTask(taskID uint64) ([]models.TaskComment, error)

	// Update updates a comment
	Update(comment *models.TaskComment) error

	// Delete removes a comment
	Delete(id uint64) error
}

// DependencyRepository defines the interface for task dependency data access
type DependencyRepository interface {
	// Create creates a new dependency edge
	Create(dependency *models.TaskDependency) error

	// FindByID finds a dependency by ID
	FindByID(id uint64) (*models.TaskDependency, error)

	// Update updates a dependency
	Update(dependency *models.TaskDependency) error

	// Delete removes a dependency
	Delete(id uint64) error

	// ListBlockedBy lists edges where the given task is blocked
	ListBlockedBy(taskID uint64) ([]models.TaskDependency, error)

	// ListBlocking lists edges where the given task blocks others
	ListBlocking(taskID uint64) ([]models.TaskDependency, error)
}

// WorkloadRepository defines the interface for workload data access
type WorkloadRepository interface {
	// Create creates a new workload row
	Create(workload *models.Workload) error

	// FindByID finds a workload row by ID
	FindByID(id uint64) (*models.Workload, error)

	// FindByUserProject finds the workload row for a user/project pair
	FindByUserProject(userID, projectID uint64) (*models.Workload, error)

	// ListByUser lists a user's workload rows with project details
	ListByUser(userID uint64) ([]models.Workload, error)

	// ListAll retrieves every workload row
	ListAll() ([]models.Workload, error)

	// Update updates a workload row
	Update(workload *models.Workload) error
}

// MoodRepository defines the interface for mood pulse data access
type MoodRepository interface {
	// Create records a mood pulse
	Create(pulse *models.MoodPulse) error

	// ListByProject lists a project's mood pulses in submission order
	ListByProject(projectID uint64) ([]models.MoodPulse, error)
}

// TunnelRepository defines the interface for tunnel data access
type TunnelRepository interface {
	// Create creates a new tunnel
	Create(tunnel *models.Tunnel) error

	// ListBySource lists tunnels originating from a source entity
	ListBySource(sourceType models.TunnelEntityType, sourceID uint64) ([]models.Tunnel, error)
}
