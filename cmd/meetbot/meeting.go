package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/tablewriter"
	"github.com/dustin/go-humanize"
	"github.com/girltalk-community/meetbot/pkg/backend"
	"github.com/girltalk-community/meetbot/pkg/db/models"
	"github.com/spf13/cobra"
)

// inputTimeLayout is the format meeting times are entered with, matching the
// bot's "YYYY-MM-DD HH:MM" prompt.
const inputTimeLayout = "2006-01-02 15:04"

var meetingCmd = &cobra.Command{
	Use:               "meeting",
	Aliases:           []string{"meetings"},
	Short:             "Manage meetings",
	PersistentPreRunE: initBackendContext,
}

func init() {
	var (
		createEventID      string
		createCreatorID    int64
		createCreator      string
		createDescription  string
		createStart        string
		createEnd          string
		createCalendarLink string
	)

	createCmd := &cobra.Command{
		Use:   "create TITLE",
		Short: "Create a new meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			start, err := time.ParseInLocation(inputTimeLayout, createStart, time.Local)
			if err != nil {
				return fmt.Errorf("invalid start time %q, want YYYY-MM-DD HH:MM", createStart)
			}

			var end time.Time
			if createEnd != "" {
				end, err = time.ParseInLocation(inputTimeLayout, createEnd, time.Local)
				if err != nil {
					return fmt.Errorf("invalid end time %q, want YYYY-MM-DD HH:MM", createEnd)
				}
			}

			m, err := be.CreateMeeting(ctx, backend.CreateMeetingOptions{
				EventID:         createEventID,
				CreatorID:       createCreatorID,
				CreatorUsername: createCreator,
				Title:           args[0],
				Description:     createDescription,
				StartTime:       start,
				EndTime:         end,
				CalendarLink:    createCalendarLink,
			})
			if err != nil {
				return err
			}

			cmd.PrintErrln("Meeting created")
			cmd.Println(m.ID)

			return nil
		},
	}

	createCmd.Flags().StringVar(&createEventID, "event-id", "", "External calendar event ID (generated when empty)")
	createCmd.Flags().Int64Var(&createCreatorID, "creator-id", 0, "Numeric ID of the creator")
	createCmd.Flags().StringVar(&createCreator, "creator", "", "Display name of the creator")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Meeting description")
	createCmd.Flags().StringVar(&createStart, "start", "", "Start time (YYYY-MM-DD HH:MM)")
	createCmd.Flags().StringVar(&createEnd, "end", "", "End time, defaults to one hour after start")
	createCmd.Flags().StringVar(&createCalendarLink, "calendar-link", "", "External calendar link")
	_ = createCmd.MarkFlagRequired("creator-id")
	_ = createCmd.MarkFlagRequired("start")

	var (
		listCreator int64
		listUser    int64
	)

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List upcoming meetings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			var (
				meetings []models.Meeting
				err      error
			)
			switch {
			case listCreator != 0:
				meetings, err = be.MeetingsByCreator(ctx, listCreator)
			case listUser != 0:
				meetings, err = be.MeetingsForUser(ctx, listUser)
			default:
				meetings, err = be.UpcomingMeetings(ctx, time.Time{})
			}
			if err != nil {
				return err
			}

			if len(meetings) == 0 {
				cmd.Println("No meetings found")
				return nil
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				meetings,
				[]string{"ID", "Title", "Starts", "Created By", "Registered"},
				func(m models.Meeting) ([]string, error) {
					count, err := be.RegistrationCount(ctx, m.ID)
					if err != nil {
						return nil, err
					}

					return []string{
						strconv.FormatInt(m.ID, 10),
						m.Title,
						renderTime(m.StartTime),
						m.CreatorUsername.String,
						strconv.FormatInt(count, 10),
					}, nil
				},
			)
		},
	}

	listCmd.Flags().Int64Var(&listCreator, "creator", 0, "Only meetings created by this user ID")
	listCmd.Flags().Int64Var(&listUser, "user", 0, "Only meetings this user ID registered for")
	listCmd.MarkFlagsMutuallyExclusive("creator", "user")

	infoCmd := &cobra.Command{
		Use:   "info ID",
		Short: "Show meeting details and registrants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid meeting ID %q", args[0])
			}

			m, err := be.Meeting(ctx, id)
			if err != nil {
				return err
			}

			cmd.Printf("Title: %s\n", m.Title)
			if m.Description.Valid && m.Description.String != "" {
				cmd.Printf("Description: %s\n", m.Description.String)
			}
			cmd.Printf("Event ID: %s\n", m.EventID)
			cmd.Printf("Starts: %s\n", renderTime(m.StartTime))
			cmd.Printf("Ends: %s\n", renderTime(m.EndTime))
			cmd.Printf("Created by: %s (%d)\n", m.CreatorUsername.String, m.CreatorID)
			if m.CalendarLink.Valid && m.CalendarLink.String != "" {
				cmd.Printf("Calendar: %s\n", m.CalendarLink.String)
			}

			regs, err := be.Registrations(ctx, m.ID)
			if err != nil {
				return err
			}

			cmd.Printf("Registered: %d\n", len(regs))
			if len(regs) == 0 {
				return nil
			}

			cmd.Println()
			return renderRegistrations(cmd, regs)
		},
	}

	meetingCmd.AddCommand(
		createCmd,
		listCmd,
		infoCmd,
	)
}

// renderTime renders a stored textual timestamp relative to now, falling
// back to the raw string when it doesn't parse.
func renderTime(s string) string {
	t, err := time.ParseInLocation(backend.TimeLayout, s, time.Local)
	if err != nil {
		return s
	}
	return t.Format(inputTimeLayout) + " (" + humanize.Time(t) + ")"
}
