package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	LocationRepository       *LocationRepository
	GroupRepository          *GroupRepository
	RoleRepository           *RoleRepository
	PositionRepository       *PositionRepository
	SupervisorRepository     *SupervisorRepository
	CatalogRepository        *CatalogRepository
	StudentRepository        *StudentRepository
	DiaryRepository          *DiaryRepository
	IndividualWorkRepository *IndividualWorkRepository
	ReportRepository         *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		LocationRepository:       NewLocationRepository(db),
		GroupRepository:          NewGroupRepository(db),
		RoleRepository:           NewRoleRepository(db),
		PositionRepository:       NewPositionRepository(db),
		SupervisorRepository:     NewSupervisorRepository(db),
		CatalogRepository:        NewCatalogRepository(db),
		StudentRepository:        NewStudentRepository(db),
		DiaryRepository:          NewDiaryRepository(db),
		IndividualWorkRepository: NewIndividualWorkRepository(db),
		ReportRepository:         NewReportRepository(db),
	}
}
