package notify

import (
	"errors"
	"testing"

	"github.com/An2rei-84/skystore/internal/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	subject string
	body    string
	to      []string
}

func (f *fakeMailer) Send(subject, body string, to []string) error {
	f.sent = append(f.sent, sentMail{subject: subject, body: body, to: to})
	return f.err
}

func TestPostReachedMilestoneFiresExactlyAt100(t *testing.T) {
	m := &fakeMailer{}
	n := New(m, "operator@example.com", zap.NewNop())
	post := &model.BlogPost{Title: "Popular post", Slug: "popular-post"}

	// 99 -> 100: exactly one notification
	attempted, delivered := n.PostReachedMilestone(post, 100)
	assert.True(t, attempted)
	assert.True(t, delivered)
	assert.Len(t, m.sent, 1)
	assert.Equal(t, []string{"operator@example.com"}, m.sent[0].to)

	// 100 -> 101: nothing
	attempted, delivered = n.PostReachedMilestone(post, 101)
	assert.False(t, attempted)
	assert.False(t, delivered)
	assert.Len(t, m.sent, 1)
}

func TestPostReachedMilestoneNotBelowThreshold(t *testing.T) {
	m := &fakeMailer{}
	n := New(m, "operator@example.com", zap.NewNop())
	post := &model.BlogPost{Title: "Quiet post", Slug: "quiet-post"}

	for views := 1; views < 100; views++ {
		attempted, _ := n.PostReachedMilestone(post, views)
		assert.False(t, attempted)
	}
	assert.Empty(t, m.sent)
}

func TestPostReachedMilestoneRefiresAfterReset(t *testing.T) {
	m := &fakeMailer{}
	n := New(m, "operator@example.com", zap.NewNop())
	post := &model.BlogPost{Title: "Reset post", Slug: "reset-post"}

	n.PostReachedMilestone(post, 100)
	// Counter was reset and climbed back up to the milestone
	n.PostReachedMilestone(post, 100)

	assert.Len(t, m.sent, 2)
}

func TestPostReachedMilestoneAbsorbsDeliveryFailure(t *testing.T) {
	m := &fakeMailer{err: errors.New("smtp down")}
	n := New(m, "operator@example.com", zap.NewNop())
	post := &model.BlogPost{Title: "Post", Slug: "post"}

	attempted, delivered := n.PostReachedMilestone(post, 100)
	assert.True(t, attempted)
	assert.False(t, delivered)
}

func TestWelcomeUser(t *testing.T) {
	m := &fakeMailer{}
	n := New(m, "operator@example.com", zap.NewNop())

	assert.True(t, n.WelcomeUser("new@example.com"))
	assert.Len(t, m.sent, 1)
	assert.Equal(t, []string{"new@example.com"}, m.sent[0].to)

	m.err = errors.New("smtp down")
	assert.False(t, n.WelcomeUser("new@example.com"))
}
