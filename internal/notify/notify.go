// Package notify composes and dispatches operator/user email for
// catalog events. Delivery failure is absorbed here: it is logged and
// reported to the caller, but never propagated as an error.
package notify

import (
	"fmt"

	"github.com/An2rei-84/skystore/internal/model"
	"github.com/An2rei-84/skystore/pkg/mailer"

	"go.uber.org/zap"
)

// Notifier sends event email through the configured mailer
type Notifier struct {
	mailer    mailer.Mailer
	recipient string
	log       *zap.Logger
}

// New creates a notifier that delivers operator notifications to recipient
func New(m mailer.Mailer, recipient string, log *zap.Logger) *Notifier {
	return &Notifier{mailer: m, recipient: recipient, log: log}
}

// PostReachedMilestone sends the operator notification when a blog post's
// view count lands exactly on the milestone value. The equality check
// means a reset counter re-fires only when it passes through the
// milestone again. Returns whether a send was attempted and whether it
// was delivered.
func (n *Notifier) PostReachedMilestone(post *model.BlogPost, views int) (attempted, delivered bool) {
	if views != model.ViewsNotifyThreshold {
		return false, false
	}

	subject := fmt.Sprintf("Congratulations! The post %q reached %d views", post.Title, views)
	body := fmt.Sprintf("The post %q just reached %d views on the site.", post.Title, views)

	if err := n.mailer.Send(subject, body, []string{n.recipient}); err != nil {
		n.log.Error("Failed to send views milestone notification",
			zap.String("slug", post.Slug),
			zap.Error(err))
		return true, false
	}

	n.log.Info("Views milestone notification sent",
		zap.String("slug", post.Slug),
		zap.Int("views", views))
	return true, true
}

// WelcomeUser sends the registration confirmation email. Returns whether
// delivery succeeded; a failure never blocks registration.
func (n *Notifier) WelcomeUser(email string) bool {
	subject := "Welcome to Skystore!"
	body := "You have successfully registered on our site!"

	if err := n.mailer.Send(subject, body, []string{email}); err != nil {
		n.log.Error("Failed to send welcome email",
			zap.String("email", email),
			zap.Error(err))
		return false
	}
	return true
}
