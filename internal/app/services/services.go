package services

import (
	appauth "github.com/yigit/practicum/internal/app/auth"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/app/repositories"
	"github.com/yigit/practicum/internal/db"
)

var (
	_ TxRunner                         = (*db.PostgresDB)(nil)
	_ ReadOnlyRunner                   = (*db.PostgresDB)(nil)
	_ DictionaryStore[models.Location] = (*repositories.LocationRepository)(nil)
	_ DictionaryStore[models.Group]    = (*repositories.GroupRepository)(nil)
	_ DictionaryStore[models.Role]     = (*repositories.RoleRepository)(nil)
	_ PositionStore                    = (*repositories.PositionRepository)(nil)
	_ SupervisorStore                  = (*repositories.SupervisorRepository)(nil)
	_ CatalogStore                     = (*repositories.CatalogRepository)(nil)
	_ UserStore                        = (*repositories.UserRepository)(nil)
	_ StudentStore                     = (*repositories.StudentRepository)(nil)
	_ DiaryStore                       = (*repositories.DiaryRepository)(nil)
	_ IndividualWorkStore              = (*repositories.IndividualWorkRepository)(nil)
	_ ReportStore                      = (*repositories.ReportRepository)(nil)
	_ appauth.StudentLookup            = (*repositories.StudentRepository)(nil)
)
