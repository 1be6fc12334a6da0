package port

import "github.com/edumart/edupay/internal/core/domain"

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock

// Notifier delivers user-facing notifications. Fire and forget: delivery is
// at most once and never blocks the caller.
type Notifier interface {
	Notify(n domain.Notification)
}
