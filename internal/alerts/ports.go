package alerts

import "context"

type Notificator interface {
	// Notify sends an error report to the operators' channel.
	Notify(ctx context.Context, service string, err error, details string) error
}
