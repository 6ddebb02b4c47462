package cart

import (
	"fmt"

	"github.com/jacksmith/larder/internal/model"
)

// NoticeKind identifies the operation a Notice confirms.
type NoticeKind string

const (
	NoticeSaved   NoticeKind = "saved"
	NoticeMoved   NoticeKind = "moved"
	NoticeRemoved NoticeKind = "removed"
)

// Notice is a user-facing confirmation sent after a transfer between lists.
type Notice struct {
	Kind NoticeKind
	Item model.LineItem
}

// Message returns the text shown to the user.
func (n Notice) Message() string {
	switch n.Kind {
	case NoticeSaved:
		return fmt.Sprintf("%s saved for later", n.Item.Name)
	case NoticeMoved:
		return fmt.Sprintf("%s moved to cart", n.Item.Name)
	case NoticeRemoved:
		return fmt.Sprintf("%s removed from saved items", n.Item.Name)
	default:
		return string(n.Kind)
	}
}

// Notifier receives confirmation notices.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notice) {}
