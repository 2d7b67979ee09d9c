package main

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/tablewriter"
	"github.com/dustin/go-humanize"
	"github.com/girltalk-community/meetbot/pkg/backend"
	"github.com/girltalk-community/meetbot/pkg/db/models"
	"github.com/spf13/cobra"
)

var (
	registerUserID   int64
	registerUsername string

	registerCmd = &cobra.Command{
		Use:               "register MEETING_ID",
		Short:             "Register a user for a meeting",
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: initBackendContext,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			meetingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid meeting ID %q", args[0])
			}

			r, err := be.RegisterUser(ctx, meetingID, registerUserID, registerUsername)
			if err != nil {
				return err
			}

			count, err := be.RegistrationCount(ctx, meetingID)
			if err != nil {
				return err
			}

			cmd.PrintErrf("Registered for meeting %d (%d registered)\n", meetingID, count)
			cmd.Println(r.ID)

			return nil
		},
	}

	registrationsCmd = &cobra.Command{
		Use:               "registrations MEETING_ID",
		Short:             "List registrations for a meeting",
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: initBackendContext,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			meetingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid meeting ID %q", args[0])
			}

			// Surface a not-found error instead of an empty table.
			if _, err := be.Meeting(ctx, meetingID); err != nil {
				return err
			}

			regs, err := be.Registrations(ctx, meetingID)
			if err != nil {
				return err
			}

			if len(regs) == 0 {
				cmd.Println("No registrations found")
				return nil
			}

			return renderRegistrations(cmd, regs)
		},
	}
)

func init() {
	registerCmd.Flags().Int64Var(&registerUserID, "user", 0, "Numeric ID of the user")
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Display name of the user")
	_ = registerCmd.MarkFlagRequired("user")
}

func renderRegistrations(cmd *cobra.Command, regs []models.Registration) error {
	return tablewriter.Render(
		cmd.OutOrStdout(),
		regs,
		[]string{"User ID", "Username", "Registered"},
		func(r models.Registration) ([]string, error) {
			return []string{
				strconv.FormatInt(r.UserID, 10),
				r.Username.String,
				humanize.Time(r.RegisteredAt),
			}, nil
		},
	)
}
