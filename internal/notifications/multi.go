package notifications

import (
	"context"
	"errors"
)

// MultiNotifier delivers to every notifier and joins their errors
type MultiNotifier struct {
	notifiers []Notifier
}

func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

func (m *MultiNotifier) NotifyRenewal(ctx context.Context, reminder RenewalReminder) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.NotifyRenewal(ctx, reminder); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiNotifier) Len() int {
	return len(m.notifiers)
}
