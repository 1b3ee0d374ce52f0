package cmd

import (
	"context"

	dashboardapp "github.com/Gthulhu/podboard/dashboard/app"
	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/spf13/cobra"
)

var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve the container status dashboard",
	Run:   RunDashboardApp,
}

func init() {
	DashboardCmd.Flags().StringP("config-name", "c", "", "Configuration file name without extension")
	DashboardCmd.Flags().StringP("config-dir", "d", "", "Configuration file directory path")
}

func RunDashboardApp(cmd *cobra.Command, args []string) {
	configName, configDirPath := getConfigInfo(cmd)
	logger.InitLogger()
	app, err := dashboardapp.NewRestApp(configName, configDirPath)
	if err != nil {
		logger.Logger(context.Background()).Fatal().Err(err).Msg("failed to create rest app")
	}
	app.Run()
}

func getConfigInfo(cmd *cobra.Command) (string, string) {
	configName := "dashboard_config"
	configDirPath := ""
	if cmd != nil {
		configNameFlag, err := cmd.Flags().GetString("config-name")
		if err == nil && configNameFlag != "" {
			configName = configNameFlag
		}
		configPathFlag, err := cmd.Flags().GetString("config-dir")
		if err == nil && configPathFlag != "" {
			configDirPath = configPathFlag
		}
	}
	return configName, configDirPath
}
