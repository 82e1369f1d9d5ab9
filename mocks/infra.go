package mocks

import (
	"github.com/stretchr/testify/mock"
)

type ConfigService struct {
	mock.Mock
}

func NewConfigService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConfigService {
	m := &ConfigService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ConfigService) GetJSONConfig(key string, v any) error {
	args := m.Called(key, v)
	return args.Error(0)
}

func (m *ConfigService) SetJSONConfig(key string, v any) error {
	args := m.Called(key, v)
	return args.Error(0)
}

type LeaderElector struct {
	mock.Mock
}

func NewLeaderElector(t interface {
	mock.TestingT
	Cleanup(func())
}) *LeaderElector {
	m := &LeaderElector{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *LeaderElector) IsLeader() bool {
	args := m.Called()
	return args.Bool(0)
}
