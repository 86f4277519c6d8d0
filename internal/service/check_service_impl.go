package service

import (
	"context"

	"github.com/sunghoyun/vulnview/internal/domain"
	"github.com/sunghoyun/vulnview/internal/repository"
)

type checkService struct {
	checks repository.CheckRepo
}

// NewCheckService wires a CheckService over the check repository.
func NewCheckService(checks repository.CheckRepo) CheckService {
	return &checkService{checks: checks}
}

func (s *checkService) List(ctx context.Context) ([]*domain.VulnCheck, error) {
	return s.checks.List(ctx)
}
