package handlers

import (
	"context"
	"errors"

	"github.com/Werneck0live/brhelpers/internal/broker"
	"github.com/Werneck0live/brhelpers/internal/models"
)

type repoMock struct {
	GetAllFn  func(ctx context.Context, limit, skip int64) ([]models.Cliente, error)
	CreateFn  func(ctx context.Context, c *models.Cliente) (string, error)
	GetByIDFn func(ctx context.Context, id string) (*models.Cliente, error)
	UpdateFn  func(ctx context.Context, id string, p models.ClientePatch) error
	ReplaceFn func(ctx context.Context, id string, c *models.Cliente) error
	DeleteFn  func(ctx context.Context, id string) error
}

func (m *repoMock) GetAll(ctx context.Context, limit, skip int64) ([]models.Cliente, error) {
	if m.GetAllFn == nil {
		return nil, errors.New("GetAllFn not set")
	}
	return m.GetAllFn(ctx, limit, skip)
}
func (m *repoMock) Create(ctx context.Context, c *models.Cliente) (string, error) {
	if m.CreateFn == nil {
		return "", errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, c)
}
func (m *repoMock) GetByID(ctx context.Context, id string) (*models.Cliente, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, id string, p models.ClientePatch) error {
	if m.UpdateFn == nil {
		return errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, id, p)
}
func (m *repoMock) Replace(ctx context.Context, id string, c *models.Cliente) error {
	if m.ReplaceFn == nil {
		return errors.New("ReplaceFn not set")
	}
	return m.ReplaceFn(ctx, id, c)
}
func (m *repoMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}

type pubMock struct {
	PublishFn func(ctx context.Context, ev broker.Event) error
	CloseFn   func() error
}

func (p *pubMock) Publish(ctx context.Context, ev broker.Event) error {
	if p.PublishFn == nil {
		return nil
	}
	return p.PublishFn(ctx, ev)
}
func (p *pubMock) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
