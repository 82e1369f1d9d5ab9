package services

import (
	"encoding/json"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/database/repositories"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
)

type ConfigService struct {
	db shared.DB
}

func NewConfigService(db shared.DB) ConfigService {
	return ConfigService{db: db}
}

func (service ConfigService) GetJSONConfig(key string, v any) error {
	var config models.Config
	if err := service.db.Where("key = ?", key).First(&config).Error; err != nil {
		return err
	}

	return json.Unmarshal([]byte(config.Val), v)
}

func (service ConfigService) SetJSONConfig(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	config := models.Config{
		Key: key,
		Val: string(b),
	}

	repository := repositories.NewConfigRepository(service.db)
	return repository.Save(nil, &config)
}
