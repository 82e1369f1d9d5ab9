package mocks

import (
	"context"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/stretchr/testify/mock"
)

type PdfGenClient struct {
	mock.Mock
}

func NewPdfGenClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *PdfGenClient {
	m := &PdfGenClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PdfGenClient) CreateVurderingPdf(ctx context.Context, callID string, vurdering models.Vurdering, personName string) ([]byte, error) {
	args := m.Called(ctx, callID, vurdering, personName)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

type PdlClient struct {
	mock.Mock
}

func NewPdlClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *PdlClient {
	m := &PdlClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PdlClient) GetPersonName(ctx context.Context, callID string, personident models.Personident) (string, error) {
	args := m.Called(ctx, callID, personident)
	return args.String(0), args.Error(1)
}

type DokarkivClient struct {
	mock.Mock
}

func NewDokarkivClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *DokarkivClient {
	m := &DokarkivClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DokarkivClient) Journalfor(ctx context.Context, callID string, vurdering models.Vurdering, pdf []byte) (models.JournalpostID, error) {
	args := m.Called(ctx, callID, vurdering, pdf)
	return args.Get(0).(models.JournalpostID), args.Error(1)
}

type VeilederTilgangClient struct {
	mock.Mock
}

func NewVeilederTilgangClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *VeilederTilgangClient {
	m := &VeilederTilgangClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *VeilederTilgangClient) HasAccess(ctx context.Context, callID string, token string, personident models.Personident) (bool, error) {
	args := m.Called(ctx, callID, token, personident)
	return args.Bool(0), args.Error(1)
}

func (m *VeilederTilgangClient) FilterAccessible(ctx context.Context, callID string, token string, personidenter []models.Personident) ([]models.Personident, error) {
	args := m.Called(ctx, callID, token, personidenter)
	if v := args.Get(0); v != nil {
		return v.([]models.Personident), args.Error(1)
	}
	return nil, args.Error(1)
}

type VurderingProducer struct {
	mock.Mock
}

func NewVurderingProducer(t interface {
	mock.TestingT
	Cleanup(func())
}) *VurderingProducer {
	m := &VurderingProducer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *VurderingProducer) SendVurdering(ctx context.Context, vurdering models.Vurdering) error {
	args := m.Called(ctx, vurdering)
	return args.Error(0)
}

func (m *VurderingProducer) SendVarsel(ctx context.Context, vurdering models.Vurdering, varsel models.Varsel) error {
	args := m.Called(ctx, vurdering, varsel)
	return args.Error(0)
}

func (m *VurderingProducer) SendExpiredVarsel(ctx context.Context, vurdering models.Vurdering, varsel models.Varsel) error {
	args := m.Called(ctx, vurdering, varsel)
	return args.Error(0)
}
