package notifier

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portsm "github.com/khmm12/open-watcher/internal/ports/mocks"
)

func TestFanout_NotifiesEveryChannel(t *testing.T) {
	sound := portsm.NewMockNotifier(t)
	sound.On("Notify", mock.Anything, "A").Return(nil).Once()

	alert := portsm.NewMockNotifier(t)
	alert.On("Notify", mock.Anything, "A").Return(nil).Once()

	fanout := NewFanout().Add("sound", sound).Add("alert", alert)

	require.NoError(t, fanout.Notify(t.Context(), "A"))
	require.Equal(t, []string{"sound", "alert"}, fanout.Channels())
}

func TestFanout_KeepsGoingAfterFailure(t *testing.T) {
	sound := portsm.NewMockNotifier(t)
	sound.On("Notify", mock.Anything, "A").Return(errors.New("no audio device")).Once()

	alert := portsm.NewMockNotifier(t)
	alert.On("Notify", mock.Anything, "A").Return(nil).Once()

	err := NewFanout().Add("sound", sound).Add("alert", alert).Notify(t.Context(), "A")
	require.ErrorContains(t, err, "sound: no audio device")
}

func TestFanout_EmptyIsNoop(t *testing.T) {
	require.NoError(t, NewFanout().Notify(context.Background(), "A"))
}

func TestDesktop_AlertCarriesEndpointName(t *testing.T) {
	var gotTitle, gotMessage string

	d := &Desktop{alert: func(title, message string) error {
		gotTitle, gotMessage = title, message
		return nil
	}}

	require.NoError(t, d.Notify(t.Context(), "天鹅坪"))
	require.Equal(t, "Server open", gotTitle)
	require.Equal(t, "天鹅坪 is open!", gotMessage)
}

func TestDesktop_WrapsAlertError(t *testing.T) {
	d := &Desktop{alert: func(string, string) error {
		return errors.New("no notification daemon")
	}}

	err := d.Notify(t.Context(), "A")
	require.ErrorContains(t, err, "failed to raise desktop alert")
}

func TestLoadSound_MissingFile(t *testing.T) {
	_, err := LoadSound(filepath.Join(t.TempDir(), "open.flac"))
	require.ErrorContains(t, err, "failed to open sound")
}
