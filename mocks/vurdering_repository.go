package mocks

import (
	"github.com/google/uuid"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/stretchr/testify/mock"
)

type VurderingRepository struct {
	mock.Mock
}

func NewVurderingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *VurderingRepository {
	m := &VurderingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *VurderingRepository) CreateVurdering(vurdering models.Vurdering, pdf []byte) (models.Vurdering, error) {
	args := m.Called(vurdering, pdf)
	if fn, ok := args.Get(0).(func(models.Vurdering, []byte) models.Vurdering); ok {
		return fn(vurdering, pdf), args.Error(1)
	}
	return args.Get(0).(models.Vurdering), args.Error(1)
}

func (m *VurderingRepository) GetVurderinger(personident models.Personident) ([]models.Vurdering, error) {
	args := m.Called(personident)
	if v := args.Get(0); v != nil {
		return v.([]models.Vurdering), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VurderingRepository) GetVurdering(id uuid.UUID) (models.Vurdering, error) {
	args := m.Called(id)
	return args.Get(0).(models.Vurdering), args.Error(1)
}

func (m *VurderingRepository) GetLatestVurdering(personident models.Personident) (*models.Vurdering, error) {
	args := m.Called(personident)
	if v := args.Get(0); v != nil {
		return v.(*models.Vurdering), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VurderingRepository) GetPdf(vurderingID uuid.UUID) (models.VurderingPdf, error) {
	args := m.Called(vurderingID)
	return args.Get(0).(models.VurderingPdf), args.Error(1)
}

func (m *VurderingRepository) GetNotJournalforteVurderinger() ([]models.Vurdering, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Vurdering), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VurderingRepository) GetUnpublishedVurderinger() ([]models.Vurdering, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Vurdering), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VurderingRepository) GetUnpublishedExpiredVarsler() ([]models.Varsel, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Varsel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VurderingRepository) SetJournalpostID(vurdering models.Vurdering) error {
	args := m.Called(vurdering)
	return args.Error(0)
}

func (m *VurderingRepository) SetPublished(vurdering models.Vurdering) error {
	args := m.Called(vurdering)
	return args.Error(0)
}

func (m *VurderingRepository) UpdateVarsel(varsel models.Varsel) error {
	args := m.Called(varsel)
	return args.Error(0)
}

func (m *VurderingRepository) UpdatePersonident(active models.Personident, inactive []models.Personident) (int64, error) {
	args := m.Called(active, inactive)
	return args.Get(0).(int64), args.Error(1)
}
