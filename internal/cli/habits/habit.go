// Package habits holds the kong subcommands for managing habit records.
package habits

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Show   HabitShowCmd   `cmd:"" help:"Show a habit's full details."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Done   HabitDoneCmd   `cmd:"" help:"Mark a habit as completed."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit permanently."`
}
