package alerts

import "context"

type Service struct {
	infra Notificator
}

func NewService(infra Notificator) *Service {
	return &Service{infra: infra}
}

func (s *Service) Notify(ctx context.Context, service string, err error, details string) error {
	return s.infra.Notify(ctx, service, err, details)
}
