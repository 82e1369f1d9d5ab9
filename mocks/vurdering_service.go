package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/stretchr/testify/mock"
)

type VurderingService struct {
	mock.Mock
}

func NewVurderingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *VurderingService {
	m := &VurderingService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *VurderingService) CreateVurdering(ctx context.Context, callID string, input models.NewVurderingInput) (models.Vurdering, error) {
	args := m.Called(ctx, callID, input)
	return args.Get(0).(models.Vurdering), args.Error(1)
}

func (m *VurderingService) GetVurderinger(personident models.Personident) ([]models.Vurdering, error) {
	args := m.Called(personident)
	if v := args.Get(0); v != nil {
		return v.([]models.Vurdering), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VurderingService) GetVurdering(id uuid.UUID) (models.Vurdering, error) {
	args := m.Called(id)
	return args.Get(0).(models.Vurdering), args.Error(1)
}

func (m *VurderingService) GetLatestVurderinger(personidenter []models.Personident) (map[models.Personident]models.Vurdering, error) {
	args := m.Called(personidenter)
	if v := args.Get(0); v != nil {
		return v.(map[models.Personident]models.Vurdering), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VurderingService) JournalforVurderinger(ctx context.Context) (int, int) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1)
}

func (m *VurderingService) PublishUnpublishedVurderinger(ctx context.Context) (int, int) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1)
}

func (m *VurderingService) PublishExpiredForhandsvarsler(ctx context.Context) (int, int) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1)
}
