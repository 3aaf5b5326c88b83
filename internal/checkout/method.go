package checkout

import "robux-storefront/internal/domain"

// MethodInfo describes a selectable payment channel.
type MethodInfo struct {
	ID      domain.PaymentMethod `json:"id"`
	Name    string               `json:"name"`
	Popular bool                 `json:"popular"`
}

var methods = []MethodInfo{
	{ID: domain.MethodSBP, Name: "СБП (Система быстрых платежей)", Popular: true},
	{ID: domain.MethodCard, Name: "Банковская карта", Popular: true},
	{ID: domain.MethodYooMoney, Name: "ЮMoney"},
	{ID: domain.MethodQIWI, Name: "QIWI"},
}

// Methods returns the selectable payment channels in display order.
func Methods() []MethodInfo {
	out := make([]MethodInfo, len(methods))
	copy(out, methods)
	return out
}

// KnownMethod reports whether m is a selectable payment channel.
func KnownMethod(m domain.PaymentMethod) bool {
	for _, info := range methods {
		if info.ID == m {
			return true
		}
	}
	return false
}

// RequiresQRConfirmation reports whether the method routes through the
// scan-and-confirm step instead of going straight to processing.
func RequiresQRConfirmation(m domain.PaymentMethod) bool {
	return m == domain.MethodSBP
}
