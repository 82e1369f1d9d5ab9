package repositories

import (
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
)

type configRepository struct {
	*GormRepository[string, models.Config]
	db shared.DB
}

func NewConfigRepository(db shared.DB) *configRepository {
	return &configRepository{
		db:             db,
		GormRepository: newGormRepository[string, models.Config](db),
	}
}
