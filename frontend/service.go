package frontend

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/alpacahq/marketcal/calendar"
	"github.com/alpacahq/marketcal/holidays"
	"github.com/alpacahq/marketcal/metrics"
	"github.com/alpacahq/marketcal/utils/log"
)

var errArgsNil = errors.Wrap(calendar.ErrInvalidArgument, "arguments are nil")

type HolidayResult struct {
	Code     string `msgpack:"code" json:"code"`
	Name     string `msgpack:"name" json:"name"`
	Date     string `msgpack:"date" json:"date"`
	Observed string `msgpack:"observed" json:"observed"`
	Weekday  string `msgpack:"weekday" json:"weekday"`
}

func toHolidayResult(h calendar.Holiday) HolidayResult {
	return HolidayResult{
		Code:     h.Code,
		Name:     h.Name,
		Date:     h.Date.String(),
		Observed: h.Observed.String(),
		Weekday:  h.Observed.Weekday().String(),
	}
}

func toHolidayResults(hs []calendar.Holiday) []HolidayResult {
	out := make([]HolidayResult, len(hs))
	for i, h := range hs {
		out[i] = toHolidayResult(h)
	}
	return out
}

type ListHolidaysArgs struct {
	Country string `msgpack:"country" json:"country"`
	Year    int    `msgpack:"year" json:"year"`
}

type ListHolidaysReply struct {
	Country  string          `msgpack:"country" json:"country"`
	Year     int             `msgpack:"year" json:"year"`
	Holidays []HolidayResult `msgpack:"holidays" json:"holidays"`
}

type IsHolidayArgs struct {
	Country string `msgpack:"country" json:"country"`
	Date    string `msgpack:"date" json:"date"`
}

type IsHolidayReply struct {
	Country    string          `msgpack:"country" json:"country"`
	Date       string          `msgpack:"date" json:"date"`
	Holiday    bool            `msgpack:"holiday" json:"holiday"`
	WorkingDay bool            `msgpack:"working_day" json:"working_day"`
	Holidays   []HolidayResult `msgpack:"holidays" json:"holidays"`
}

type AdvanceWorkingDaysArgs struct {
	Country        string `msgpack:"country" json:"country"`
	Date           string `msgpack:"date" json:"date"`
	Count          int    `msgpack:"count" json:"count"`
	Backward       bool   `msgpack:"backward" json:"backward"`
	IncludeSameDay bool   `msgpack:"include_same_day" json:"include_same_day"`
}

type AdvanceWorkingDaysReply struct {
	Country string `msgpack:"country" json:"country"`
	Date    string `msgpack:"date" json:"date"`
	// Days is the signed number of calendar days between start and result.
	Days int `msgpack:"days" json:"days"`
}

type EasterArgs struct {
	Year     int  `msgpack:"year" json:"year"`
	Orthodox bool `msgpack:"orthodox" json:"orthodox"`
}

type EasterReply struct {
	Year     int    `msgpack:"year" json:"year"`
	Orthodox bool   `msgpack:"orthodox" json:"orthodox"`
	Date     string `msgpack:"date" json:"date"`
}

type CountriesArgs struct {
	// Match is an optional glob such as "DE-*".
	Match string `msgpack:"match" json:"match"`
}

type CountryResult struct {
	Code string `msgpack:"code" json:"code"`
	Name string `msgpack:"name" json:"name"`
}

type CountriesReply struct {
	Countries []CountryResult `msgpack:"countries" json:"countries"`
}

// HolidayService answers holiday and working-day questions over RPC.
type HolidayService struct {
	registry       *holidays.Registry
	computus       *calendar.Computus
	defaultCountry string
	loc            *time.Location
	now            func() time.Time
}

func NewHolidayService(registry *holidays.Registry, computus *calendar.Computus, defaultCountry string,
) *HolidayService {
	return &HolidayService{
		registry:       registry,
		computus:       computus,
		defaultCountry: strings.ToUpper(defaultCountry),
		loc:            time.UTC,
		now:            time.Now,
	}
}

// SetLocation sets the time zone used to resolve an empty date to today.
func (s *HolidayService) SetLocation(loc *time.Location) {
	if loc != nil {
		s.loc = loc
	}
}

// date parses a request date, defaulting to today in the service location.
func (s *HolidayService) date(str string) (calendar.Date, error) {
	if strings.TrimSpace(str) == "" {
		return calendar.DateOf(s.now().In(s.loc)), nil
	}
	return calendar.ParseDate(str)
}

func (s *HolidayService) table(country string) (*calendar.Table, error) {
	if strings.TrimSpace(country) == "" {
		country = s.defaultCountry
	}
	return s.registry.Lookup(country)
}

func checkYear(year int) error {
	if year < calendar.MinYear || year > calendar.MaxYear {
		return errors.Wrapf(calendar.ErrInvalidArgument, "year %d out of range [%d, %d]",
			year, calendar.MinYear, calendar.MaxYear)
	}
	return nil
}

// ListHolidays returns the holidays of a country for a year.
func (s *HolidayService) ListHolidays(_ *http.Request, args *ListHolidaysArgs, reply *ListHolidaysReply) error {
	if args == nil {
		return errArgsNil
	}
	if err := checkYear(args.Year); err != nil {
		return err
	}
	tbl, err := s.table(args.Country)
	if err != nil {
		return err
	}

	*reply = ListHolidaysReply{
		Country:  tbl.Code,
		Year:     args.Year,
		Holidays: toHolidayResults(tbl.Holidays(args.Year)),
	}
	return nil
}

// IsHoliday reports whether a date is a holiday and a working day.
func (s *HolidayService) IsHoliday(_ *http.Request, args *IsHolidayArgs, reply *IsHolidayReply) error {
	if args == nil {
		return errArgsNil
	}
	tbl, err := s.table(args.Country)
	if err != nil {
		return err
	}
	d, err := s.date(args.Date)
	if err != nil {
		return err
	}

	found := tbl.Lookup(d)
	*reply = IsHolidayReply{
		Country:    tbl.Code,
		Date:       d.String(),
		Holiday:    len(found) > 0,
		WorkingDay: calendar.IsWorkingDay(tbl, d),
		Holidays:   toHolidayResults(found),
	}
	return nil
}

// AdvanceWorkingDays moves a date by a number of working days.
func (s *HolidayService) AdvanceWorkingDays(_ *http.Request, args *AdvanceWorkingDaysArgs,
	reply *AdvanceWorkingDaysReply,
) error {
	if args == nil {
		return errArgsNil
	}
	tbl, err := s.table(args.Country)
	if err != nil {
		return err
	}
	start, err := s.date(args.Date)
	if err != nil {
		return err
	}

	dir := calendar.Forward
	if args.Backward {
		dir = calendar.Backward
	}
	result, err := calendar.AdvanceWorkingDays(tbl, start, dir, args.Count, args.IncludeSameDay)
	if err != nil {
		return err
	}

	days := start.DaysUntil(result)
	scanned := days
	if scanned < 0 {
		scanned = -scanned
	}
	metrics.WorkingDayScanDays.WithLabelValues(tbl.Code).Observe(float64(scanned))
	log.Debug("advanced %s %d working days %s from %s to %s", tbl.Code, args.Count, dir, start, result)

	*reply = AdvanceWorkingDaysReply{
		Country: tbl.Code,
		Date:    result.String(),
		Days:    days,
	}
	return nil
}

// Easter returns Western or Orthodox Easter Sunday of a year.
func (s *HolidayService) Easter(_ *http.Request, args *EasterArgs, reply *EasterReply) error {
	if args == nil {
		return errArgsNil
	}
	if err := checkYear(args.Year); err != nil {
		return err
	}

	d := s.computus.EasterSunday(args.Year)
	if args.Orthodox {
		d = s.computus.OrthodoxEasterSunday(args.Year)
	}
	*reply = EasterReply{Year: args.Year, Orthodox: args.Orthodox, Date: d.String()}
	return nil
}

// Countries lists the served jurisdictions, optionally filtered by a glob.
func (s *HolidayService) Countries(_ *http.Request, args *CountriesArgs, reply *CountriesReply) error {
	codes := s.registry.Codes()
	if args != nil && args.Match != "" {
		var err error
		if codes, err = s.registry.Match(args.Match); err != nil {
			return err
		}
	}

	reply.Countries = make([]CountryResult, 0, len(codes))
	for _, code := range codes {
		tbl, err := s.registry.Lookup(code)
		if err != nil {
			return err
		}
		reply.Countries = append(reply.Countries, CountryResult{Code: tbl.Code, Name: tbl.Name})
	}
	return nil
}
