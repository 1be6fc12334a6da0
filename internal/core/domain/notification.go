package domain

type NotificationKind string

const (
	NotifyOrderPaid            NotificationKind = "ORDER_PAID"
	NotifyOrderAwaitingPayment NotificationKind = "ORDER_AWAITING_PAYMENT"
	NotifyOrderRefunded        NotificationKind = "ORDER_REFUNDED"
	NotifyWithdrawalResolved   NotificationKind = "WITHDRAWAL_RESOLVED"
)

type Notification struct {
	UserID  uint64
	Kind    NotificationKind
	Message string
}
