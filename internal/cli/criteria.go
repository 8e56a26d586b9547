package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradelens/internal/models"
)

// addCriteriaFlags registers the repeatable filter flags shared by the
// analytics commands. Each flag maps to one filter dimension; leaving
// a flag unset leaves that dimension unconstrained.
func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("mistake", nil, "filter by mistake tag (repeatable)")
	cmd.Flags().StringSlice("strategy", nil, "filter by strategy id (repeatable)")
	cmd.Flags().StringSlice("setup", nil, "filter by setup id (repeatable)")
	cmd.Flags().IntSlice("month", nil, "filter by month 0-11 (repeatable)")
	cmd.Flags().IntSlice("weekday", nil, "filter by weekday 0-6, Sunday=0 (repeatable)")
	cmd.Flags().IntSlice("hour", nil, "filter by closing hour 0-23 (repeatable)")
	cmd.Flags().StringSlice("symbol", nil, "filter by symbol (repeatable)")
	cmd.Flags().StringSlice("direction", nil, "filter by direction: Buy or Sell (repeatable)")
}

// criteriaFromFlags builds the filter criteria from the command flags.
func criteriaFromFlags(cmd *cobra.Command) (models.FilterCriteria, error) {
	var c models.FilterCriteria

	c.Mistakes, _ = cmd.Flags().GetStringSlice("mistake")
	c.Strategies, _ = cmd.Flags().GetStringSlice("strategy")
	c.Setups, _ = cmd.Flags().GetStringSlice("setup")
	c.Symbols, _ = cmd.Flags().GetStringSlice("symbol")

	months, _ := cmd.Flags().GetIntSlice("month")
	for _, m := range months {
		if m < 0 || m > 11 {
			return c, fmt.Errorf("month %d out of range 0-11", m)
		}
	}
	c.Months = months

	weekdays, _ := cmd.Flags().GetIntSlice("weekday")
	for _, w := range weekdays {
		if w < 0 || w > 6 {
			return c, fmt.Errorf("weekday %d out of range 0-6", w)
		}
	}
	c.Weekdays = weekdays

	hours, _ := cmd.Flags().GetIntSlice("hour")
	for _, h := range hours {
		if h < 0 || h > 23 {
			return c, fmt.Errorf("hour %d out of range 0-23", h)
		}
	}
	c.Hours = hours

	directions, _ := cmd.Flags().GetStringSlice("direction")
	for _, d := range directions {
		switch models.Direction(d) {
		case models.DirectionBuy, models.DirectionSell:
			c.Directions = append(c.Directions, models.Direction(d))
		default:
			return c, fmt.Errorf("invalid direction %q (use Buy or Sell)", d)
		}
	}

	return c, nil
}
