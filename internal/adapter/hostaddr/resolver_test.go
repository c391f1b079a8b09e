package hostaddr

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portsm "github.com/khmm12/open-watcher/internal/ports/mocks"
)

func TestResolver_AcceptsIPv4Literal(t *testing.T) {
	addr, err := NewResolver(nil).Resolve(t.Context(), "1.2.3.4")
	require.NoError(t, err)
	require.Equal(t, netip.MustParseAddr("1.2.3.4"), addr)
}

func TestResolver_UnmapsIPv4InIPv6(t *testing.T) {
	addr, err := NewResolver(nil).Resolve(t.Context(), "::ffff:10.0.0.1")
	require.NoError(t, err)
	require.Equal(t, netip.MustParseAddr("10.0.0.1"), addr)
}

func TestResolver_RejectsIPv6(t *testing.T) {
	_, err := NewResolver(nil).Resolve(t.Context(), "2001:db8::1")
	require.ErrorIs(t, err, ErrNotIPv4)
}

func TestResolver_RejectsHostnameWithoutLocalResolver(t *testing.T) {
	_, err := NewResolver(nil).Resolve(t.Context(), "printer.local")
	require.ErrorIs(t, err, ErrNotResolvable)
}

func TestResolver_DelegatesLocalNames(t *testing.T) {
	local := portsm.NewMockHostResolver(t)
	local.On("Resolve", mock.Anything, "server.local.").Return(netip.MustParseAddr("192.168.1.5"), nil)

	addr, err := NewResolver(local).Resolve(t.Context(), "server.local.")
	require.NoError(t, err)
	require.Equal(t, netip.MustParseAddr("192.168.1.5"), addr)
}

func TestResolver_DoesNotDelegateOtherNames(t *testing.T) {
	local := portsm.NewMockHostResolver(t)

	_, err := NewResolver(local).Resolve(t.Context(), "example.com")
	require.ErrorIs(t, err, ErrNotResolvable)

	local.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestResolver_PropagatesLocalFailure(t *testing.T) {
	local := portsm.NewMockHostResolver(t)
	local.On("Resolve", mock.Anything, "gone.local").Return(netip.Addr{}, errors.New("timeout"))

	_, err := NewResolver(local).Resolve(t.Context(), "gone.local")
	require.ErrorContains(t, err, "timeout")
}
