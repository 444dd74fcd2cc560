package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Drivers de armazenamento das leituras
const (
	ReadingsDriverCSV      = "csv"
	ReadingsDriverPostgres = "postgres"
	ReadingsDriverSQLite   = "sqlite"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Storage          Storage          `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Stream           Stream           `mapstructure:",squash"`
	Report           Report           `mapstructure:",squash"`
	SensorSimulation SensorSimulation `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Storage struct {
	ReadingsDriver    string `mapstructure:"readings_driver"`
	SensorsCSVFile    string `mapstructure:"sensors_csv_file"`
	ProjectDataFile   string `mapstructure:"project_data_file"`
	ProjectSchemaFile string `mapstructure:"project_schema_file"`
}

type Database struct {
	DSN      string `mapstructure:"database_dsn"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Stream struct {
	IntervalSeconds int `mapstructure:"stream_interval_seconds"`
}

// Interval retorna o intervalo entre eventos do stream
func (s Stream) Interval() time.Duration {
	return time.Duration(s.IntervalSeconds) * time.Second
}

type Report struct {
	DefaultVelocity float64 `mapstructure:"report_default_velocity"`
}

type SensorSimulation struct {
	CronSchedule string `mapstructure:"sensor_simulation_cron"`
	Enabled      bool   `mapstructure:"sensor_simulation_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*") // Qualquer origem (dev do Angular)

	viper.SetDefault("READINGS_DRIVER", ReadingsDriverCSV)
	viper.SetDefault("SENSORS_CSV_FILE", "sensors_data.csv")
	viper.SetDefault("PROJECT_DATA_FILE", "project_data.json")
	viper.SetDefault("PROJECT_SCHEMA_FILE", "")

	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sensors?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STREAM_INTERVAL_SECONDS", 5)
	viper.SetDefault("REPORT_DEFAULT_VELOCITY", 24)

	viper.SetDefault("SENSOR_SIMULATION_CRON", "*/1 * * * *") // A cada minuto
	viper.SetDefault("SENSOR_SIMULATION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Stream.IntervalSeconds <= 0 {
		return nil, fmt.Errorf("config: STREAM_INTERVAL_SECONDS deve ser maior que zero: %d", config.Stream.IntervalSeconds)
	}

	switch config.Storage.ReadingsDriver {
	case ReadingsDriverCSV:
	case ReadingsDriverPostgres, ReadingsDriverSQLite:
		config.Database.Driver = config.Storage.ReadingsDriver
	default:
		return nil, fmt.Errorf("config: READINGS_DRIVER inválido: %q", config.Storage.ReadingsDriver)
	}

	if config.Database.DSN == "" {
		config.Database.DSN = buildDSN(config.Database)
	}

	return config, nil
}

// buildDSN monta a string de conexão a partir das partes configuradas
func buildDSN(db Database) string {
	if db.Driver == ReadingsDriverSQLite {
		return db.URL
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// loadEnvFile carrega o arquivo .env do diretório atual ou de um dos diretórios pais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
