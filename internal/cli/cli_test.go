package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/kofuk/bungie/enums"
	"github.com/kofuk/bungie/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseMembershipType(t *testing.T) {
	testCases := []struct {
		in      string
		want    enums.MembershipType
		wantErr bool
	}{
		{in: "3", want: enums.MembershipTypeSteam},
		{in: "steam", want: enums.MembershipTypeSteam},
		{in: "PSN", want: enums.MembershipTypePSN},
		{in: "all", want: enums.MembershipTypeAll},
		{in: "epic_games_store", want: enums.MembershipTypeEpicGames},
		{in: "gamecube", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseMembershipType(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_parseComponents(t *testing.T) {
	cs, err := parseComponents("100, 200,,205")
	require.NoError(t, err)
	assert.Equal(t, []enums.ComponentType{100, 200, 205}, cs)

	_, err = parseComponents("100,profiles")
	assert.Error(t, err)
}

type fakeManifestClient struct {
	versions  []string
	downloads int
	err       error
}

func (c *fakeManifestClient) FetchManifestVersion(ctx context.Context) (string, error) {
	v := c.versions[0]
	if len(c.versions) > 1 {
		c.versions = c.versions[1:]
	}
	return v, nil
}

func (c *fakeManifestClient) DownloadSQLiteManifest(ctx context.Context, opts manifest.Options) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if !opts.Force {
		return "", errors.New("expected a forced download")
	}
	c.downloads++
	return "/tmp/manifest.sqlite3", nil
}

type fakePusher struct {
	pushed []string
}

func (p *fakePusher) Push(ctx context.Context, version, file string) (string, error) {
	p.pushed = append(p.pushed, version+":"+file)
	return "manifests/" + version, nil
}

func Test_WatcherDownloadsOnlyNewVersions(t *testing.T) {
	client := &fakeManifestClient{versions: []string{"v1", "v1", "v2"}}
	mirror := &fakePusher{}
	invalidated := 0

	w := NewWatcher(client, manifest.Options{})
	w.mirror = mirror
	w.invalidate = func(ctx context.Context) error {
		invalidated++
		return nil
	}

	ctx := context.Background()
	for _, want := range []bool{true, false, true} {
		changed, err := w.Check(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, changed)
	}
	assert.Equal(t, 2, client.downloads)
	assert.Equal(t, []string{"v1:/tmp/manifest.sqlite3", "v2:/tmp/manifest.sqlite3"}, mirror.pushed)
	assert.Equal(t, 2, invalidated)
}

func Test_WatcherRetriesAfterFailure(t *testing.T) {
	client := &fakeManifestClient{versions: []string{"v1"}, err: errors.New("disk full")}
	w := NewWatcher(client, manifest.Options{})

	_, err := w.Check(context.Background())
	assert.Error(t, err)

	client.err = nil
	changed, err := w.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
}

func Test_UserCommand(t *testing.T) {
	t.Setenv("BUNGIE_API_KEY", "key")
	t.Setenv("BUNGIE_REDIS_ADDRESS", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, "https://www.bungie.net/Platform/User/GetBungieNetUserById/20315338/",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
			"Response": map[string]any{
				"membershipId":                      "20315338",
				"cachedBungieGlobalDisplayName":     "Jim",
				"cachedBungieGlobalDisplayNameCode": 1234,
			},
			"ErrorCode":   1,
			"ErrorStatus": "Success",
		}))

	app := &App{}
	defer app.teardown()

	var out bytes.Buffer
	cmd := NewRootCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"user", "20315338"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), "20315338")
	assert.Contains(t, out.String(), "Jim")
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}
