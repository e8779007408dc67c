package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/schedule"
	"github.com/jonathan/instagrowth/internal/types"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Manage the local content calendar",
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scheduled posts, earliest first",
	RunE:  runCalendarList,
}

var calendarScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule a post idea",
	Long:  "Schedule a post idea at a given time. Pass --id to schedule an idea generated by 'instagrowth ideas'; scheduling an id that is already on the calendar is a no-op.",
	RunE:  runCalendarSchedule,
}

var calendarUnscheduleCmd = &cobra.Command{
	Use:   "unschedule <id>",
	Short: "Remove a scheduled post by idea id",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarUnschedule,
}

var (
	scheduleID       string
	scheduleTitle    string
	scheduleCaption  string
	scheduleHashtags []string
	scheduleAt       string
)

func init() {
	calendarScheduleCmd.Flags().StringVar(&scheduleID, "id", "", "Idea id (a new id is generated when omitted)")
	calendarScheduleCmd.Flags().StringVar(&scheduleTitle, "title", "", "Idea title (required)")
	calendarScheduleCmd.Flags().StringVar(&scheduleCaption, "caption", "", "Post caption")
	calendarScheduleCmd.Flags().StringSliceVar(&scheduleHashtags, "hashtags", nil, "Hashtags for the post")
	calendarScheduleCmd.Flags().StringVar(&scheduleAt, "at", "", "Scheduled time, RFC 3339 (required)")

	calendarCmd.AddCommand(calendarListCmd)
	calendarCmd.AddCommand(calendarScheduleCmd)
	calendarCmd.AddCommand(calendarUnscheduleCmd)
	rootCmd.AddCommand(calendarCmd)
}

func calendarService() (*schedule.Service, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}
	s, err := newStore(cfg)
	if err != nil {
		return nil, err
	}
	return schedule.NewService(s), nil
}

func runCalendarList(_ *cobra.Command, _ []string) error {
	svc, err := calendarService()
	if err != nil {
		return err
	}
	posts, err := svc.List()
	if err != nil {
		return err
	}
	printer().PrintCalendar(posts)
	return nil
}

func runCalendarSchedule(_ *cobra.Command, _ []string) error {
	if strings.TrimSpace(scheduleTitle) == "" {
		return fmt.Errorf("--title is required")
	}
	if scheduleAt == "" {
		return fmt.Errorf("--at is required (RFC 3339, e.g. 2026-09-14T18:00:00Z)")
	}
	at, err := time.Parse(time.RFC3339, scheduleAt)
	if err != nil {
		return fmt.Errorf("invalid --at value: %w", err)
	}

	svc, err := calendarService()
	if err != nil {
		return err
	}

	id := scheduleID
	if id == "" {
		id = uuid.NewString()
	}
	idea := types.PostIdea{
		ID:        id,
		IdeaTitle: scheduleTitle,
		Caption:   scheduleCaption,
		Hashtags:  scheduleHashtags,
	}
	if err := svc.Schedule(idea, at); err != nil {
		return err
	}
	fmt.Printf("Scheduled %q at %s (id: %s)\n", scheduleTitle, at.Format(time.RFC1123), id)
	return nil
}

func runCalendarUnschedule(_ *cobra.Command, args []string) error {
	svc, err := calendarService()
	if err != nil {
		return err
	}
	if err := svc.Unschedule(args[0]); err != nil {
		return err
	}
	fmt.Printf("Unscheduled %s\n", args[0])
	return nil
}
