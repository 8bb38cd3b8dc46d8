package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/service"

	"github.com/spf13/cobra"
)

var sensorType string

var sensorsCmd = &cobra.Command{
	Annotations: liveAnnotation,
	Use:         "sensors",
	Short:       "List sensors",
	Long:        `List the sensors of the active data source, optionally filtered by type.`,
	RunE:        runSensors,
}

var roomsCmd = &cobra.Command{
	Annotations: liveAnnotation,
	Use:         "rooms",
	Short:       "List rooms",
	Long:        `List the rooms of the active data source with their sensor count.`,
	RunE:        runRooms,
}

var summaryCmd = &cobra.Command{
	Annotations: liveAnnotation,
	Use:         "summary",
	Short:       "Show status counters",
	RunE:        runSummary,
}

var controlCmd = &cobra.Command{
	Annotations: liveAnnotation,
	Use:         "control <entity_id> <on|off|toggle>",
	Short:       "Switch a device",
	Long:        `Switch a Home Assistant device. Requires the homeassistant data source.`,
	Args:        cobra.ExactArgs(2),
	RunE:        runControl,
}

func init() {
	sensorsCmd.Flags().StringVarP(&sensorType, "type", "t", "", "sensor type (temperature, humidity, co2, motion, door, light)")
	rootCmd.AddCommand(sensorsCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(controlCmd)
}

func runSensors(cmd *cobra.Command, args []string) error {
	sensors := homeFrom(cmd).Sensors(cmd.Context())
	printSensors(cmd.OutOrStdout(), service.FilterByType(sensors, domain.SensorType(sensorType)))
	return nil
}

func runRooms(cmd *cobra.Command, args []string) error {
	printRooms(cmd.OutOrStdout(), homeFrom(cmd).Rooms(cmd.Context()))
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	home := homeFrom(cmd)
	summary := service.Summarize(home.Sensors(cmd.Context()), home.Rooms(cmd.Context()))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source:   %s\n", home.DataSource())
	fmt.Fprintf(out, "Sensors:  %d in %d rooms\n", summary.Sensors, summary.Rooms)
	fmt.Fprintf(out, "Status:   %d normal, %d warning, %d critical\n", summary.Normal, summary.Warning, summary.Critical)
	if summary.AverageTemperature != 0 {
		fmt.Fprintf(out, "Avg temp: %.1f\n", summary.AverageTemperature)
	}
	return nil
}

func runControl(cmd *cobra.Command, args []string) error {
	action, err := domain.ParseDeviceAction(strings.ToLower(args[1]))
	if err != nil {
		return fmt.Errorf("%w: %s", err, args[1])
	}
	if err := homeFrom(cmd).ControlDevice(cmd.Context(), args[0], action); err != nil {
		return fmt.Errorf("failed to control device: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], action)
	return nil
}

func printSensors(w io.Writer, sensors []domain.Sensor) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROOM\tVALUE\tSTATUS")
	for _, s := range sensors {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%g %s\t%s\n",
			s.Id, domain.SensorIcon(s.Type), s.Name, s.Room, s.Value, s.Unit, s.Status)
	}
	tw.Flush()
}

func printRooms(w io.Writer, rooms []domain.Room) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSENSORS")
	for _, r := range rooms {
		fmt.Fprintf(tw, "%s\t%s %s\t%d\n", r.Id, r.Icon, r.Name, len(r.Sensors))
	}
	tw.Flush()
}
