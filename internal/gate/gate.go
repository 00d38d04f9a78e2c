// Package gate decides whether a user may use the bot, based on
// membership in a required channel.
package gate

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Status is the outcome of one membership check. CheckUnavailable means
// the check itself could not be performed, which is distinct from a
// confirmed non-member.
type Status int

const (
	Authorized Status = iota
	Denied
	CheckUnavailable
)

// Membership statuses as reported by the chat platform.
type Membership string

const (
	MemberStatusMember        Membership = "member"
	MemberStatusAdministrator Membership = "administrator"
	MemberStatusCreator       Membership = "creator"
	MemberStatusLeft          Membership = "left"
	MemberStatusKicked        Membership = "kicked"
)

// ErrUnreachable marks a membership lookup that failed because the
// channel or the service is unreachable or misconfigured, not because the
// user was found to be a non-member.
var ErrUnreachable = errors.New("membership check unreachable")

type MembershipChecker interface {
	Member(ctx context.Context, channel string, userID int64) (Membership, error)
}

// Gate wraps the checker with the fail-open policy: a gate that cannot be
// evaluated must never lock out all users. The first unreachable result
// disables the remote check for the rest of the process lifetime.
type Gate struct {
	checker MembershipChecker
	channel string
	log     zerolog.Logger

	enabled atomic.Bool
}

func New(checker MembershipChecker, channel string, log zerolog.Logger) *Gate {
	g := &Gate{checker: checker, channel: channel, log: log}
	g.enabled.Store(true)
	return g
}

// Check classifies the user. Once the gate has been disabled no remote
// call is made and every user is authorized until restart.
func (g *Gate) Check(ctx context.Context, userID int64) Status {
	if !g.enabled.Load() {
		return Authorized
	}

	m, err := g.checker.Member(ctx, g.channel, userID)
	if err != nil {
		if errors.Is(err, ErrUnreachable) {
			if g.enabled.CompareAndSwap(true, false) {
				g.log.Warn().Str("channel", g.channel).
					Msg("required channel unreachable, subscription gate disabled")
			}
			return CheckUnavailable
		}
		g.log.Debug().Err(err).Int64("user_id", userID).Msg("membership check failed")
		return Denied
	}

	switch m {
	case MemberStatusMember, MemberStatusAdministrator, MemberStatusCreator:
		return Authorized
	}
	return Denied
}

// Allow applies the policy: only a confirmed non-member is kept out.
func (g *Gate) Allow(ctx context.Context, userID int64) bool {
	return g.Check(ctx, userID) != Denied
}

// Enabled reports whether the remote check is still being performed.
func (g *Gate) Enabled() bool {
	return g.enabled.Load()
}
