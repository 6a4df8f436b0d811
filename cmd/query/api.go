package query

import (
	"context"
	"fmt"
	"io"

	"github.com/alpacahq/marketcal/calendar"
	"github.com/alpacahq/marketcal/frontend"
	"github.com/alpacahq/marketcal/frontend/client"
	"github.com/alpacahq/marketcal/holidays"
)

// APIClient answers calendar queries either in-process or against a
// running marketcal server.
type APIClient interface {
	// PrintConnectInfo describes where queries are answered.
	PrintConnectInfo(w io.Writer)
	ListHolidays(ctx context.Context, country string, year int) (*frontend.ListHolidaysReply, error)
	IsHoliday(ctx context.Context, country, date string) (*frontend.IsHolidayReply, error)
	AdvanceWorkingDays(ctx context.Context, args *frontend.AdvanceWorkingDaysArgs,
	) (*frontend.AdvanceWorkingDaysReply, error)
	Easter(ctx context.Context, year int, orthodox bool) (*frontend.EasterReply, error)
	Countries(ctx context.Context, match string) (*frontend.CountriesReply, error)
}

// LocalAPIClient runs queries against the built-in holiday tables.
type LocalAPIClient struct {
	service *frontend.HolidayService
}

func NewLocalAPIClient() *LocalAPIClient {
	return &LocalAPIClient{
		service: frontend.NewHolidayService(holidays.Default, calendar.DefaultComputus, ""),
	}
}

func (lc *LocalAPIClient) PrintConnectInfo(w io.Writer) {
	fmt.Fprintf(w, "Using built-in calendars (%d)\n", holidays.Default.Len())
}

func (lc *LocalAPIClient) ListHolidays(_ context.Context, country string, year int,
) (*frontend.ListHolidaysReply, error) {
	reply := &frontend.ListHolidaysReply{}
	err := lc.service.ListHolidays(nil, &frontend.ListHolidaysArgs{Country: country, Year: year}, reply)
	return reply, err
}

func (lc *LocalAPIClient) IsHoliday(_ context.Context, country, date string) (*frontend.IsHolidayReply, error) {
	reply := &frontend.IsHolidayReply{}
	err := lc.service.IsHoliday(nil, &frontend.IsHolidayArgs{Country: country, Date: date}, reply)
	return reply, err
}

func (lc *LocalAPIClient) AdvanceWorkingDays(_ context.Context, args *frontend.AdvanceWorkingDaysArgs,
) (*frontend.AdvanceWorkingDaysReply, error) {
	reply := &frontend.AdvanceWorkingDaysReply{}
	err := lc.service.AdvanceWorkingDays(nil, args, reply)
	return reply, err
}

func (lc *LocalAPIClient) Easter(_ context.Context, year int, orthodox bool) (*frontend.EasterReply, error) {
	reply := &frontend.EasterReply{}
	err := lc.service.Easter(nil, &frontend.EasterArgs{Year: year, Orthodox: orthodox}, reply)
	return reply, err
}

func (lc *LocalAPIClient) Countries(_ context.Context, match string) (*frontend.CountriesReply, error) {
	reply := &frontend.CountriesReply{}
	err := lc.service.Countries(nil, &frontend.CountriesArgs{Match: match}, reply)
	return reply, err
}

// RemoteAPIClient forwards queries to a marketcal server.
type RemoteAPIClient struct {
	*client.Client
}

func NewRemoteAPIClient(url string) (*RemoteAPIClient, error) {
	cl, err := client.NewClient(url)
	if err != nil {
		return nil, err
	}
	return &RemoteAPIClient{Client: cl}, nil
}

func (rc *RemoteAPIClient) PrintConnectInfo(w io.Writer) {
	fmt.Fprintf(w, "Connected to remote instance at: %v\n", rc.BaseURL)
}
