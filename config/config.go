package config

import (
	"fmt"
	"os"
	"strconv"

	"svm/types"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port           int                      // HTTP 端口
	Udc            float64                  // 默认母线电压
	BoxSizeVolts   float64                  // 默认栅格宽度
	ShowPhases     bool                     // 默认显示相轴
	ShowSVM        bool                     // 默认显示 SVM
	OverModulation types.OverModulationMode // 过调制策略
	SweepSteps     int                      // 扫描点数
	LogLevel       string
	PrettyLog      bool
}

// Load 读取 .env 与环境变量
func Load() (*Config, error) {
	_ = godotenv.Load()

	mode, err := types.ParseOverModulationMode(getEnv("SVM_OVERMODULATION", "passthrough"))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Port:           getEnvAsInt("SVM_PORT", 8080),
		Udc:            getEnvAsFloat("SVM_UDC", types.DefaultUdc),
		BoxSizeVolts:   getEnvAsFloat("SVM_BOX_SIZE", types.DefaultBoxSizeVolts),
		ShowPhases:     getEnvAsBool("SVM_SHOW_PHASES", true),
		ShowSVM:        getEnvAsBool("SVM_SHOW_SVM", false),
		OverModulation: mode,
		SweepSteps:     getEnvAsInt("SVM_SWEEP_STEPS", 360),
		LogLevel:       getEnv("SVM_LOG_LEVEL", "info"),
		PrettyLog:      getEnvAsBool("SVM_PRETTY_LOG", true),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("SVM_PORT 超出范围: %d", c.Port)
	}
	if !(c.Udc > 0) {
		return fmt.Errorf("SVM_UDC 必须为正: %g", c.Udc)
	}
	if !(c.BoxSizeVolts > 0) {
		return fmt.Errorf("SVM_BOX_SIZE 必须为正: %g", c.BoxSizeVolts)
	}
	if c.SweepSteps < 1 || c.SweepSteps > MaxSweepSteps {
		return fmt.Errorf("SVM_SWEEP_STEPS 必须在 1..%d 之间: %d", MaxSweepSteps, c.SweepSteps)
	}
	return nil
}

// MaxSweepSteps 扫描点数上限
const MaxSweepSteps = 36000

// Params 默认计算参数
func (c *Config) Params() types.RenderParameters {
	return types.RenderParameters{
		Udc:            c.Udc,
		BoxSizeVolts:   c.BoxSizeVolts,
		ShowPhases:     c.ShowPhases,
		ShowSVM:        c.ShowSVM,
		OverModulation: c.OverModulation,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
