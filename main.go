package main

import (
	"log"
	"os"

	dashboardcmd "github.com/Gthulhu/podboard/dashboard/cmd"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{Use: "podboard"}
)

func main() {
	rootCmd.AddCommand(dashboardcmd.DashboardCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
