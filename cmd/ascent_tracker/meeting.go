package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ascent-tracker/internal/observability"
	"github.com/jonathan/ascent-tracker/internal/types"
)

var meetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Manage the meeting log",
}

var meetingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meeting",
	RunE:  runMeetingAdd,
}

var meetingUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace a logged meeting by position",
	RunE:  runMeetingUpdate,
}

var meetingDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a logged meeting by position",
	RunE:  runMeetingDelete,
}

var meetingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meetings, newest first",
	RunE:  runMeetingList,
}

var (
	meetingDate       string
	meetingTitle      string
	meetingHighlights string
	meetingNotes      string
	meetingActions    string
	meetingIndex      int
)

func init() {
	for _, cmd := range []*cobra.Command{meetingAddCmd, meetingUpdateCmd} {
		cmd.Flags().StringVar(&meetingDate, "date", "", "Meeting date (DD/MM/YYYY, required)")
		cmd.Flags().StringVar(&meetingTitle, "title", "", "Meeting title")
		cmd.Flags().StringVar(&meetingHighlights, "highlights", "", "Highlights")
		cmd.Flags().StringVar(&meetingNotes, "notes", "", "Detailed notes")
		cmd.Flags().StringVar(&meetingActions, "action-items", "", "Action items")
		cmd.MarkFlagRequired("date")
	}

	for _, cmd := range []*cobra.Command{meetingUpdateCmd, meetingDeleteCmd} {
		cmd.Flags().IntVar(&meetingIndex, "index", 0, "Meeting position in storage order, starting at 0")
		cmd.MarkFlagRequired("index")
	}

	meetingCmd.AddCommand(meetingAddCmd, meetingUpdateCmd, meetingDeleteCmd, meetingListCmd)
	rootCmd.AddCommand(meetingCmd)
}

func meetingRequest() types.AddMeetingRequest {
	return types.AddMeetingRequest{
		Date:        meetingDate,
		Title:       meetingTitle,
		Highlights:  meetingHighlights,
		Notes:       meetingNotes,
		ActionItems: meetingActions,
	}
}

func runMeetingAdd(cmd *cobra.Command, args []string) error {
	req := meetingRequest()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid meeting details: %w", err)
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.meetings.Add(req); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Meeting added successfully")
	return nil
}

func runMeetingUpdate(cmd *cobra.Command, args []string) error {
	req := meetingRequest()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid meeting details: %w", err)
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.meetings.Update(meetingIndex, req); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Meeting updated successfully")
	return nil
}

func runMeetingDelete(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.meetings.Delete(meetingIndex); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Meeting deleted successfully")
	return nil
}

func runMeetingList(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintMeetings(app.meetings.SortedByDateDesc())
	return nil
}
