// Package subscriber defines the capability markers for hook subscribers.
// Registering subscribers against named hooks is the host's job; this
// package only lets a subscriber declare which kind of hook it serves.
package subscriber

// Kind identifies the hook family a subscriber attaches to.
type Kind string

const (
	KindAction Kind = "action"
	KindFilter Kind = "filter"
)

// Subscriber is implemented by every hook subscriber.
type Subscriber interface {
	SubscriberKind() Kind
}

// Action is embedded by subscribers of action hooks.
type Action struct{}

// SubscriberKind returns KindAction.
func (Action) SubscriberKind() Kind { return KindAction }

// Filter is embedded by subscribers of filter hooks.
type Filter struct{}

// SubscriberKind returns KindFilter.
func (Filter) SubscriberKind() Kind { return KindFilter }

// IsAction reports whether s subscribes to action hooks.
func IsAction(s Subscriber) bool { return s != nil && s.SubscriberKind() == KindAction }

// IsFilter reports whether s subscribes to filter hooks.
func IsFilter(s Subscriber) bool { return s != nil && s.SubscriberKind() == KindFilter }

// ParseKind converts a string to a Kind, returning false if invalid.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "action":
		return KindAction, true
	case "filter":
		return KindFilter, true
	default:
		return "", false
	}
}
