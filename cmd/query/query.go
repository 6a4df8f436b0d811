package query

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alpacahq/marketcal/calendar"
	"github.com/alpacahq/marketcal/frontend"
	"github.com/alpacahq/marketcal/utils/log"
)

const (
	// Command
	// -------------.
	usage   = "query"
	short   = "Answer holiday and working-day questions from the command line"
	long    = "This command queries the built-in holiday calendars, or a running marketcal server"
	example = "marketcal query workday GB 2024-03-28 --count 2"

	// Flags.
	// -------------
	serverFlag   = "server"
	serverDesc   = "base URL of a marketcal server, e.g. http://localhost:5995; built-in calendars are used when empty"
	formatFlag   = "format"
	formatDesc   = "output format: table, csv or json"
	timezoneFlag = "timezone"
	timezoneDesc = "IANA time zone used to resolve today's date when none is given"
)

// Cmd is the query command.
var Cmd = NewCommand()

type options struct {
	server   string
	format   string
	timezone string

	newAPI func(server string) (APIClient, error)
}

func defaultAPI(server string) (APIClient, error) {
	if server == "" {
		return NewLocalAPIClient(), nil
	}
	return NewRemoteAPIClient(server)
}

// NewCommand builds the query command tree.
func NewCommand() *cobra.Command {
	return newCommand(&options{newAPI: defaultAPI})
}

func newCommand(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"q"},
		SuggestFor: []string{"ask", "cal"},
		Example:    example,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return checkFormat(opts.format)
		},
	}
	c.PersistentFlags().StringVarP(&opts.server, serverFlag, "s", "", serverDesc)
	c.PersistentFlags().StringVarP(&opts.format, formatFlag, "f", formatTable, formatDesc)
	c.PersistentFlags().StringVar(&opts.timezone, timezoneFlag, "UTC", timezoneDesc)

	c.AddCommand(
		holidaysCommand(opts),
		checkCommand(opts),
		workdayCommand(opts),
		easterCommand(opts),
		countriesCommand(opts),
		shiftCommand(opts),
	)
	return c
}

func (o *options) api(cmd *cobra.Command) (APIClient, error) {
	a, err := o.newAPI(o.server)
	if err != nil {
		return nil, err
	}
	if o.format == formatTable {
		a.PrintConnectInfo(cmd.ErrOrStderr())
	}
	return a, nil
}

// today resolves the current date in the configured time zone.
func (o *options) today() (calendar.Date, error) {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return calendar.Date{}, errors.Wrapf(err, "invalid timezone %q", o.timezone)
	}
	return calendar.DateOf(time.Now().In(loc)), nil
}

// dateArg returns args[i] as a date string, or today when absent.
func (o *options) dateArg(args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	d, err := o.today()
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func yearArg(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(calendar.ErrInvalidArgument, "invalid year %q", s)
	}
	return year, nil
}

func holidaysCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "holidays CODE [YEAR]",
		Short:   "List the holidays of a calendar for a year",
		Example: "marketcal query holidays US 2024 --format csv",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var year int
			if len(args) > 1 {
				y, err := yearArg(args[1])
				if err != nil {
					return err
				}
				year = y
			} else {
				d, err := opts.today()
				if err != nil {
					return err
				}
				year = d.Year()
			}

			a, err := opts.api(cmd)
			if err != nil {
				return err
			}
			reply, err := a.ListHolidays(context.Background(), args[0], year)
			if err != nil {
				return err
			}
			log.Debug("%d holidays in %s for %d", len(reply.Holidays), reply.Country, reply.Year)

			rows := make([]holidayRow, len(reply.Holidays))
			for i, h := range reply.Holidays {
				rows[i] = holidayRow{Date: h.Date, Observed: h.Observed, Weekday: h.Weekday, Name: h.Name}
			}
			return render(cmd.OutOrStdout(), opts.format, reply, rows)
		},
	}
}

func checkCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "check CODE [DATE]",
		Short:   "Report whether a date is a holiday or a working day",
		Example: "marketcal query check GB 2022-12-27",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := opts.dateArg(args, 1)
			if err != nil {
				return err
			}
			a, err := opts.api(cmd)
			if err != nil {
				return err
			}
			reply, err := a.IsHoliday(context.Background(), args[0], date)
			if err != nil {
				return err
			}

			names := make([]string, len(reply.Holidays))
			for i, h := range reply.Holidays {
				names[i] = h.Name
			}
			rows := []checkRow{{
				Country:    reply.Country,
				Date:       reply.Date,
				Holiday:    reply.Holiday,
				WorkingDay: reply.WorkingDay,
				Names:      strings.Join(names, "; "),
			}}
			return render(cmd.OutOrStdout(), opts.format, reply, rows)
		},
	}
}

func workdayCommand(opts *options) *cobra.Command {
	var (
		count    int
		backward bool
		sameDay  bool
	)
	c := &cobra.Command{
		Use:     "workday CODE [DATE]",
		Short:   "Step a number of working days forward or backward from a date",
		Example: "marketcal query workday US 2024-07-03 --count 1",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := opts.dateArg(args, 1)
			if err != nil {
				return err
			}
			a, err := opts.api(cmd)
			if err != nil {
				return err
			}
			reply, err := a.AdvanceWorkingDays(context.Background(), &frontend.AdvanceWorkingDaysArgs{
				Country:        args[0],
				Date:           date,
				Count:          count,
				Backward:       backward,
				IncludeSameDay: sameDay,
			})
			if err != nil {
				return err
			}
			rows := []workdayRow{{Country: reply.Country, From: date, Date: reply.Date, Days: reply.Days}}
			return render(cmd.OutOrStdout(), opts.format, reply, rows)
		},
	}
	c.Flags().IntVarP(&count, "count", "n", 1, "number of working days to step")
	c.Flags().BoolVarP(&backward, "backward", "b", false, "step towards earlier dates")
	c.Flags().BoolVar(&sameDay, "same-day", false, "count the start date when it is a working day")
	return c
}

func easterCommand(opts *options) *cobra.Command {
	var orthodox bool
	c := &cobra.Command{
		Use:     "easter YEAR",
		Short:   "Print the date of Easter Sunday",
		Example: "marketcal query easter 2024 --orthodox",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			year, err := yearArg(args[0])
			if err != nil {
				return err
			}
			a, err := opts.api(cmd)
			if err != nil {
				return err
			}
			reply, err := a.Easter(context.Background(), year, orthodox)
			if err != nil {
				return err
			}
			computus := "western"
			if reply.Orthodox {
				computus = "orthodox"
			}
			rows := []easterRow{{Year: reply.Year, Computus: computus, Date: reply.Date}}
			return render(cmd.OutOrStdout(), opts.format, reply, rows)
		},
	}
	c.Flags().BoolVarP(&orthodox, "orthodox", "o", false, "use the Julian computus of the Orthodox churches")
	return c
}

func countriesCommand(opts *options) *cobra.Command {
	var match string
	c := &cobra.Command{
		Use:     "countries",
		Short:   "List the available calendar codes",
		Example: "marketcal query countries --match 'DE-*'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := opts.api(cmd)
			if err != nil {
				return err
			}
			reply, err := a.Countries(context.Background(), match)
			if err != nil {
				return err
			}
			rows := make([]countryRow, len(reply.Countries))
			for i, cr := range reply.Countries {
				rows[i] = countryRow{Code: cr.Code, Name: cr.Name}
			}
			return render(cmd.OutOrStdout(), opts.format, reply, rows)
		},
	}
	c.Flags().StringVarP(&match, "match", "m", "", "glob pattern on calendar codes")
	return c
}

func shiftCommand(opts *options) *cobra.Command {
	var policy string
	c := &cobra.Command{
		Use:     "shift DATE",
		Short:   "Show where a holiday on DATE is observed under each weekend shift policy",
		Example: "marketcal query shift 2022-12-25 --policy paired-after",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			d, err := calendar.ParseDate(args[0])
			if err != nil {
				return err
			}

			policies := []calendar.ShiftPolicy{
				calendar.ShiftNone, calendar.ShiftForward, calendar.ShiftSundayForward,
				calendar.ShiftStraddle, calendar.ShiftPairedAfter, calendar.ShiftPairedBefore,
			}
			if policy != "" {
				p, err := calendar.ParseShiftPolicy(policy)
				if err != nil {
					return err
				}
				policies = []calendar.ShiftPolicy{p}
			}

			rows := make([]shiftRow, len(policies))
			for i, p := range policies {
				observed := calendar.ShiftWeekend(d, p)
				rows[i] = shiftRow{
					Date:     d.String(),
					Policy:   p.String(),
					Observed: observed.String(),
					Weekday:  observed.Weekday().String(),
				}
			}
			return render(cmd.OutOrStdout(), opts.format, rows, rows)
		},
	}
	c.Flags().StringVarP(&policy, "policy", "p", "",
		"one of none, forward, sunday-forward, straddle, paired-after, paired-before; all when empty")
	return c
}
