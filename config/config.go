package config

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host               string `mapstructure:"host"`
	RefreshIntervalSec int    `mapstructure:"refresh_interval_sec"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type RenderConfig struct {
	// ShowInfra appends pod-sandbox container rows to the table.
	ShowInfra bool `mapstructure:"show_infra"`
}

type TransportConfig struct {
	Backend string `mapstructure:"backend"`
}

type UbusConfig struct {
	URL        string      `mapstructure:"url"`
	Username   string      `mapstructure:"username"`
	Password   SecretValue `mapstructure:"password"`
	TimeoutSec int         `mapstructure:"timeout_sec"`
	Object     string      `mapstructure:"object"`
}

type DockerConfig struct {
	Socket     string `mapstructure:"socket"`
	PodLabel   string `mapstructure:"pod_label"`
	InfraLabel string `mapstructure:"infra_label"`
}

type KubernetesConfig struct {
	KubeConfigPath string   `mapstructure:"kube_config_path"`
	InCluster      bool     `mapstructure:"in_cluster"`
	Namespaces     []string `mapstructure:"namespaces"`
}

type DashboardConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Render     RenderConfig     `mapstructure:"render"`
	Transport  TransportConfig  `mapstructure:"transport"`
	Ubus       UbusConfig       `mapstructure:"ubus"`
	Docker     DockerConfig     `mapstructure:"docker"`
	Kubernetes KubernetesConfig `mapstructure:"kubernetes"`
}

const (
	BackendUbus       = "ubus"
	BackendDocker     = "docker"
	BackendKubernetes = "kubernetes"
)

var (
	dashboardCfg *DashboardConfig
)

func GetConfig() *DashboardConfig {
	return dashboardCfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", ":8090")
	v.SetDefault("server.refresh_interval_sec", 5)
	v.SetDefault("logging.level", "debug")
	v.SetDefault("render.show_infra", false)
	v.SetDefault("transport.backend", BackendUbus)
	v.SetDefault("ubus.url", "http://127.0.0.1/ubus")
	v.SetDefault("ubus.timeout_sec", 10)
	v.SetDefault("ubus.object", "podman")
	v.SetDefault("docker.socket", "/var/run/docker.sock")
	v.SetDefault("docker.pod_label", "io.podman.pod.name")
}

func InitDashboardConfig(configName string, configPath string) (DashboardConfig, error) {
	var cfg DashboardConfig
	v := viper.New()
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "dashboard_config"
	}
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix("DASHBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	err := v.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	dashboardCfg = &cfg
	return cfg, nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(1)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
