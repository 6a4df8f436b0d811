package query

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/marketcal/calendar"
	"github.com/alpacahq/marketcal/frontend"
	"github.com/alpacahq/marketcal/holidays"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	c := NewCommand()
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs(args)
	err = c.Execute()
	return out.String(), errOut.String(), err
}

func TestEasterTable(t *testing.T) {
	t.Parallel()

	out, stderr, err := run(t, "easter", "2024")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Using built-in calendars")
	assert.Equal(t, "YEAR  COMPUTUS  DATE\n"+
		strings.Repeat("=", 26)+"\n"+
		"2024  western   2024-03-31\n"+
		"(1 rows)\n", out)
}

func TestEasterOrthodoxJSON(t *testing.T) {
	t.Parallel()

	out, stderr, err := run(t, "easter", "2024", "--orthodox", "--format", "json")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var reply frontend.EasterReply
	require.NoError(t, json.Unmarshal([]byte(out), &reply))
	assert.Equal(t, frontend.EasterReply{Year: 2024, Orthodox: true, Date: "2024-05-05"}, reply)
}

func TestHolidaysCSV(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "holidays", "us", "2024", "-f", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "date,observed,weekday,name", lines[0])
	assert.Equal(t, "2024-01-01,2024-01-01,Monday,New Year's Day", lines[1])
	assert.Equal(t, "2024-12-25,2024-12-25,Wednesday,Christmas Day", lines[11])
}

func TestCheck(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "check", "GB", "2022-12-27", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "country,date,holiday,working_day,names\n"+
		"GB,2022-12-27,true,false,Boxing Day\n", out)

	out, _, err = run(t, "check", "US", "--timezone", "UTC", "--format", "json")
	require.NoError(t, err)
	var reply frontend.IsHolidayReply
	require.NoError(t, json.Unmarshal([]byte(out), &reply))
	assert.Equal(t, calendar.DateOf(time.Now().UTC()).String(), reply.Date)
}

func TestWorkday(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "workday", "GB", "2024-03-28", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "country,from,date,days\nGB,2024-03-28,2024-04-02,5\n", out)

	out, _, err = run(t, "workday", "GB", "2024-04-02", "--backward", "--count", "2", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "country,from,date,days\nGB,2024-04-02,2024-03-27,-6\n", out)
}

func TestCountries(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "countries", "--match", "n?", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "code,name\nNL,Netherlands\nNO,Norway\nNZ,New Zealand\n", out)
}

func TestQueryErrors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "easter", "2024", "--format", "xml")
	assert.True(t, errors.Is(err, calendar.ErrInvalidArgument))

	_, _, err = run(t, "easter", "next")
	assert.True(t, errors.Is(err, calendar.ErrInvalidArgument))

	_, _, err = run(t, "holidays", "XX", "2024")
	assert.True(t, errors.Is(err, holidays.ErrUnknownCountry))

	_, _, err = run(t, "check", "US", "--timezone", "Mars/Olympus_Mons")
	assert.Error(t, err)

	_, _, err = run(t, "workday")
	assert.Error(t, err)
}

func TestRemoteQuery(t *testing.T) {
	t.Parallel()

	c := calendar.NewComputus()
	serv, err := frontend.NewServer(frontend.NewHolidayService(holidays.NewRegistry(c), c, "US"))
	require.NoError(t, err)
	mux := http.NewServeMux()
	mux.Handle("/rpc", serv)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	out, stderr, err := run(t, "--server", ts.URL, "workday", "US", "2024-07-03")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Connected to remote instance at: "+ts.URL)
	assert.Contains(t, out, "2024-07-05")

	_, _, err = run(t, "--server", ts.URL, "easter", "0")
	assert.Error(t, err)
}

func TestShift(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "shift", "2022-12-25", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "date,policy,observed,weekday\n"+
		"2022-12-25,none,2022-12-25,Sunday\n"+
		"2022-12-25,forward,2022-12-26,Monday\n"+
		"2022-12-25,sunday-forward,2022-12-26,Monday\n"+
		"2022-12-25,straddle,2022-12-26,Monday\n"+
		"2022-12-25,paired-after,2022-12-27,Tuesday\n"+
		"2022-12-25,paired-before,2022-12-23,Friday\n", out)

	out, _, err = run(t, "shift", "2022-12-24", "--policy", "Straddle", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "date,policy,observed,weekday\n2022-12-24,straddle,2022-12-23,Friday\n", out)

	_, _, err = run(t, "shift", "2022-12-24", "--policy", "nearest")
	assert.True(t, errors.Is(err, calendar.ErrInvalidArgument))
}

// stubAPI answers Easter queries from a fixed value and records calls.
type stubAPI struct {
	APIClient
	server string
	calls  []string
	err    error
}

func (s *stubAPI) PrintConnectInfo(w io.Writer) { fmt.Fprintf(w, "stub %s\n", s.server) }

func (s *stubAPI) Easter(_ context.Context, year int, orthodox bool) (*frontend.EasterReply, error) {
	s.calls = append(s.calls, fmt.Sprintf("easter %d %t", year, orthodox))
	if s.err != nil {
		return nil, s.err
	}
	return &frontend.EasterReply{Year: year, Orthodox: orthodox, Date: "2000-04-23"}, nil
}

func TestQueryUsesAPIClient(t *testing.T) {
	t.Parallel()

	stub := &stubAPI{}
	c := newCommand(&options{newAPI: func(server string) (APIClient, error) {
		stub.server = server
		return stub, nil
	}})
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs([]string{"--server", "http://cal:5995", "easter", "2000", "-o", "-f", "csv"})
	require.NoError(t, c.Execute())

	assert.Equal(t, "http://cal:5995", stub.server)
	assert.Equal(t, []string{"easter 2000 true"}, stub.calls)
	assert.Equal(t, "year,computus,date\n2000,orthodox,2000-04-23\n", out.String())
	assert.Empty(t, errOut.String())

	stub.err = errors.New("connection refused")
	c = newCommand(&options{newAPI: func(string) (APIClient, error) { return stub, nil }})
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs([]string{"easter", "2001"})
	err := c.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, errOut.String(), "stub ")

	c = newCommand(&options{newAPI: func(string) (APIClient, error) { return nil, errors.New("bad url") }})
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs([]string{"easter", "2001"})
	assert.EqualError(t, c.Execute(), "bad url")
}
