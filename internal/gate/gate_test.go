package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	status Membership
	err    error
	calls  int
}

func (f *fakeChecker) Member(ctx context.Context, channel string, userID int64) (Membership, error) {
	f.calls++
	return f.status, f.err
}

func TestCheckMemberStatuses(t *testing.T) {
	tests := []struct {
		status Membership
		want   Status
	}{
		{MemberStatusMember, Authorized},
		{MemberStatusAdministrator, Authorized},
		{MemberStatusCreator, Authorized},
		{MemberStatusLeft, Denied},
		{MemberStatusKicked, Denied},
		{Membership("restricted"), Denied},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			g := New(&fakeChecker{status: tt.status}, "@chan", zerolog.Nop())
			assert.Equal(t, tt.want, g.Check(context.Background(), 1))
			assert.True(t, g.Enabled())
		})
	}
}

func TestUnreachableDisablesGateOnce(t *testing.T) {
	fc := &fakeChecker{err: ErrUnreachable}
	g := New(fc, "@chan", zerolog.Nop())
	ctx := context.Background()

	assert.Equal(t, CheckUnavailable, g.Check(ctx, 1))
	assert.False(t, g.Enabled())
	assert.Equal(t, 1, fc.calls)

	// a different, never-before-seen user: authorized without a remote call
	assert.Equal(t, Authorized, g.Check(ctx, 99))
	assert.Equal(t, 1, fc.calls)
}

func TestOrdinaryErrorDenies(t *testing.T) {
	fc := &fakeChecker{err: errors.New("user not found")}
	g := New(fc, "@chan", zerolog.Nop())

	assert.Equal(t, Denied, g.Check(context.Background(), 1))
	assert.True(t, g.Enabled(), "only unreachable disables the gate")
}

func TestAllowPolicy(t *testing.T) {
	ctx := context.Background()

	member := New(&fakeChecker{status: MemberStatusMember}, "@chan", zerolog.Nop())
	assert.True(t, member.Allow(ctx, 1))

	left := New(&fakeChecker{status: MemberStatusLeft}, "@chan", zerolog.Nop())
	assert.False(t, left.Allow(ctx, 1))

	// fail-open: an unevaluable gate lets everyone through
	broken := New(&fakeChecker{err: ErrUnreachable}, "@chan", zerolog.Nop())
	assert.True(t, broken.Allow(ctx, 1))
	assert.True(t, broken.Allow(ctx, 2))
}
