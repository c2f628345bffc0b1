package ports

import "context"

type Notificator interface {
	// Notify sends an error report to the admin channel.
	Notify(ctx context.Context, service string, err error, details string) error
}
