package client

import (
	"bytes"
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/alpacahq/marketcal/frontend"
	"github.com/alpacahq/marketcal/utils/rpc/msgpack2"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient intializes a new marketcal RPC client.
func NewClient(baseurl string) (*Client, error) {
	if _, err := url.Parse(baseurl); err != nil {
		return nil, errors.Wrapf(err, "invalid server url %q", baseurl)
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(baseurl, "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// DoRPC calls HolidayService.<functionName> with the msgpack codec and
// decodes the result into reply.
func (cl *Client) DoRPC(ctx context.Context, functionName string, args, reply interface{}) error {
	if args == nil {
		return errors.New("args must be non-nil")
	}
	message, err := msgpack2.EncodeClientRequest("HolidayService."+functionName, args)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.BaseURL+"/rpc", bytes.NewBuffer(message))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-msgpack")
	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Handle any error in the RPC call
	if resp.StatusCode != http.StatusOK {
		var errText string
		bodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			errText = err.Error()
		} else {
			errText = string(bodyBytes)
		}
		return errors.Errorf("response error (%d): %s", resp.StatusCode, errText)
	}

	return msgpack2.DecodeClientResponse(resp.Body, reply)
}

func (cl *Client) ListHolidays(ctx context.Context, country string, year int) (*frontend.ListHolidaysReply, error) {
	reply := &frontend.ListHolidaysReply{}
	err := cl.DoRPC(ctx, "ListHolidays", &frontend.ListHolidaysArgs{Country: country, Year: year}, reply)
	return reply, err
}

func (cl *Client) IsHoliday(ctx context.Context, country, date string) (*frontend.IsHolidayReply, error) {
	reply := &frontend.IsHolidayReply{}
	err := cl.DoRPC(ctx, "IsHoliday", &frontend.IsHolidayArgs{Country: country, Date: date}, reply)
	return reply, err
}

func (cl *Client) AdvanceWorkingDays(ctx context.Context, args *frontend.AdvanceWorkingDaysArgs,
) (*frontend.AdvanceWorkingDaysReply, error) {
	reply := &frontend.AdvanceWorkingDaysReply{}
	err := cl.DoRPC(ctx, "AdvanceWorkingDays", args, reply)
	return reply, err
}

func (cl *Client) Easter(ctx context.Context, year int, orthodox bool) (*frontend.EasterReply, error) {
	reply := &frontend.EasterReply{}
	err := cl.DoRPC(ctx, "Easter", &frontend.EasterArgs{Year: year, Orthodox: orthodox}, reply)
	return reply, err
}

func (cl *Client) Countries(ctx context.Context, match string) (*frontend.CountriesReply, error) {
	reply := &frontend.CountriesReply{}
	err := cl.DoRPC(ctx, "Countries", &frontend.CountriesArgs{Match: match}, reply)
	return reply, err
}
