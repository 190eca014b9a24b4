package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
	"github.com/spf13/cobra"
)

var (
	holidaysYear  int
	holidaysScope string
	calendarJSON  bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Query the business calendar",
}

var calendarHolidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "List the holidays of a year",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		year := holidaysYear
		if year == 0 {
			year = time.Now().Year()
		}
		holidays, err := services.Calendar.Holidays(year, calendar.Scope(holidaysScope))
		if err != nil {
			return err
		}
		if calendarJSON {
			return writeJSON(os.Stdout, holidays)
		}
		renderHolidays(os.Stdout, year, holidays)
		return nil
	},
}

var calendarCheckCmd = &cobra.Command{
	Use:   "check <date>",
	Short: "Classify a date as business day, weekend or holiday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		info, err := services.Calendar.Classify(args[0])
		if err != nil {
			return MapError(err)
		}
		if calendarJSON {
			return writeJSON(os.Stdout, info)
		}
		renderDay(os.Stdout, info)
		return nil
	},
}

var calendarAddCmd = &cobra.Command{
	Use:   "add <date> <n>",
	Short: "Move n business days forward from a date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return shiftBusinessDays(args, 1)
	},
}

var calendarSubtractCmd = &cobra.Command{
	Use:   "subtract <date> <n>",
	Short: "Move n business days back from a date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return shiftBusinessDays(args, -1)
	},
}

var calendarHoursCmd = &cobra.Command{
	Use:   "hours <from> <to>",
	Short: "Count the business hours between two instants",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		hours, err := services.Calendar.BusinessHours(args[0], args[1])
		if err != nil {
			return MapError(err)
		}
		span := services.Calendar.DaysAndHours(args[0], args[1])
		if calendarJSON {
			return writeJSON(os.Stdout, span)
		}
		fmt.Printf("%d business hours (%s)\n", hours, span.Message)
		return nil
	},
}

func shiftBusinessDays(args []string, sign int) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid day count %q: %w", args[1], err)
	}

	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	var result time.Time
	if sign > 0 {
		result, err = services.Calendar.AddBusinessDays(args[0], n)
	} else {
		result, err = services.Calendar.SubtractBusinessDays(args[0], n)
	}
	if err != nil {
		return MapError(err)
	}
	if calendarJSON {
		return writeJSON(os.Stdout, map[string]interface{}{"date": result})
	}
	fmt.Println(formatStamp(result))
	return nil
}

func init() {
	calendarHolidaysCmd.Flags().IntVar(&holidaysYear, "year", 0, "Year to list (defaults to the current year)")
	calendarHolidaysCmd.Flags().StringVar(&holidaysScope, "scope", "", "Only list holidays of this scope: national, state, local or optional")
	calendarCmd.PersistentFlags().BoolVar(&calendarJSON, "json", false, "Output in JSON format")

	calendarCmd.AddCommand(calendarHolidaysCmd, calendarCheckCmd, calendarAddCmd, calendarSubtractCmd, calendarHoursCmd)
	RootCmd.AddCommand(calendarCmd)
}
