package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/khmm12/open-watcher/internal/usecase"
)

func TestCLI_ParsesRepeatedServers(t *testing.T) {
	cli, kctx, err := parseTestCLI(t, "-s", "天鹅坪", "--server", "长安城", "-i", "250")
	require.NoError(t, err)

	require.Equal(t, "watch", kctx.Command())
	require.Equal(t, []string{"天鹅坪", "长安城"}, cli.Watch.Servers)
	require.Equal(t, 250*time.Millisecond, cli.Watch.interval())
}

func TestCLI_Defaults(t *testing.T) {
	cli, _, err := parseTestCLI(t, "-s", "A")
	require.NoError(t, err)

	require.Equal(t, 100*time.Millisecond, cli.Watch.interval())
	require.Equal(t, time.Duration(0), cli.Watch.Probe.Deadline)
	require.Equal(t, 5*time.Second, cli.Watch.Probe.DialTimeout)
	require.Equal(t, "info", cli.LogLevel)
	require.Empty(t, cli.Watch.Metrics.Addr)
	require.False(t, cli.Watch.Resolve.MDNS)
}

func TestCLI_RequiresServer(t *testing.T) {
	_, _, err := parseTestCLI(t)
	require.ErrorContains(t, err, "--server")
}

func TestCLI_RejectsNonNumericInterval(t *testing.T) {
	_, _, err := parseTestCLI(t, "-s", "A", "-i", "soon")
	require.Error(t, err)
}

func TestCLI_ListDoesNotRequireServer(t *testing.T) {
	_, kctx, err := parseTestCLI(t, "list")
	require.NoError(t, err)
	require.Equal(t, "list", kctx.Command())
}

func TestCLI_ValidatesGlobals(t *testing.T) {
	_, _, err := parseTestCLI(t, "-s", "A", "--log.level", "fatal", "--directory.url", "serverlist.ini")
	require.ErrorContains(t, err, "--log.level")
	require.ErrorContains(t, err, "--directory.url")
}

func TestCLI_ValidatesWatchFlags(t *testing.T) {
	_, _, err := parseTestCLI(t, "-s", "A", "--metrics.addr", "localhost:80", "--metrics.path", "metrics", "-i", "100000000")
	require.ErrorContains(t, err, "--metrics.addr")
	require.ErrorContains(t, err, "--metrics.path")
	require.ErrorContains(t, err, "--interval")
}

func TestCLI_ValidatesMDNSOnlyWhenEnabled(t *testing.T) {
	_, _, err := parseTestCLI(t, "-s", "A", "--resolve.mdns-ipv4-addr", "bogus")
	require.NoError(t, err)

	_, _, err = parseTestCLI(t, "-s", "A", "--resolve.mdns", "--resolve.mdns-ipv4-addr", "bogus")
	require.ErrorContains(t, err, "--resolve.mdns-ipv4-addr")
}

type stubUC struct {
	cmd usecase.WatchEndpointsCommand
	err error
}

func (s *stubUC) Execute(_ context.Context, cmd usecase.WatchEndpointsCommand) error {
	s.cmd = cmd
	return s.err
}

func TestTask_PassesCommandAndError(t *testing.T) {
	cmd := usecase.WatchEndpointsCommand{Servers: []string{"A"}, Interval: time.Second}
	uc := &stubUC{err: errors.New("boom")}

	err := newTask(slog.New(slog.NewTextHandler(io.Discard, nil)), uc, cmd).Execute(t.Context())
	require.ErrorContains(t, err, "boom")
	require.Equal(t, cmd, uc.cmd)
}

func parseTestCLI(t *testing.T, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()

	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("open-watcher"),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		kong.Writers(io.Discard, io.Discard),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)

	return &cli, kctx, err
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{name: "success", code: 0, want: exitCodeSuccess},
		{name: "failure", code: 1, want: exitCodeFailure},
		{name: "kong usage error", code: 80, want: exitCodeFailure},
		{name: "negative", code: -1, want: exitCodeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, exitCode(tt.code))
		})
	}
}

type exitPanic struct{ code int }

// runExiting parses args and returns the status the program would exit with.
func runExiting(t *testing.T, args ...string) (code int) {
	t.Helper()

	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("open-watcher"),
		kong.Exit(func(c int) { panic(exitPanic{code: exitCode(c)}) }),
		kong.Writers(io.Discard, io.Discard),
	)
	require.NoError(t, err)

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		p, ok := r.(exitPanic)
		if !ok {
			panic(r)
		}

		code = p.code
	}()

	_, err = parser.Parse(args)
	parser.FatalIfErrorf(err)

	return exitCodeSuccess
}

func TestCLI_HelpExitsWithSuccess(t *testing.T) {
	require.Equal(t, exitCodeSuccess, runExiting(t, "--help"))
}

func TestCLI_UsageErrorExitsWithFailure(t *testing.T) {
	require.Equal(t, exitCodeFailure, runExiting(t, "-s", "A", "--no-such-flag"))
}
