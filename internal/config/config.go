package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Sendblue         Sendblue         `mapstructure:",squash"`
	CalendarOAuth    CalendarOAuth    `mapstructure:",squash"`
	RetentionCron    RetentionCron    `mapstructure:",squash"`
	DSRCron          DSRCron          `mapstructure:",squash"`
	CalendarSyncCron CalendarSyncCron `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Sendblue são as credenciais do provedor de mensagens SMS/iMessage
type Sendblue struct {
	URL       string `mapstructure:"sendblue_url"`
	APIKey    string `mapstructure:"sendblue_api_key"`
	APISecret string `mapstructure:"sendblue_api_secret"`
	Enabled   bool   `mapstructure:"sendblue_enabled"`
}

// CalendarOAuth são as credenciais OAuth do provedor de calendário
type CalendarOAuth struct {
	ClientID     string `mapstructure:"calendar_oauth_client_id"`
	ClientSecret string `mapstructure:"calendar_oauth_client_secret"`
	TokenURL     string `mapstructure:"calendar_oauth_token_url"`
	APIBaseURL   string `mapstructure:"calendar_api_base_url"`
}

// RetentionCron controla a varredura diária de retenção de dados
type RetentionCron struct {
	CronSchedule string `mapstructure:"retention_cron"`
	MaxPerRun    int    `mapstructure:"retention_max_per_run"`
	Enabled      bool   `mapstructure:"retention_enabled"`
	DefaultDays  int    `mapstructure:"retention_default_days"`
	ActivityDays int    `mapstructure:"retention_activity_days"`
	MessageDays  int    `mapstructure:"retention_message_days"`
}

// DSRCron controla a checagem de solicitações de dados vencidas
type DSRCron struct {
	CronSchedule string `mapstructure:"dsr_overdue_cron"`
	DueDays      int    `mapstructure:"dsr_due_days"`
	MaxPerRun    int    `mapstructure:"dsr_max_per_run"`
	Enabled      bool   `mapstructure:"dsr_overdue_enabled"`
}

// CalendarSyncCron controla a sincronização periódica dos calendários
type CalendarSyncCron struct {
	CronSchedule string `mapstructure:"calendar_sync_cron"`
	Enabled      bool   `mapstructure:"calendar_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/crm")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("SENDBLUE_URL", "https://api.sendblue.co/api")
	viper.SetDefault("SENDBLUE_API_KEY", "")
	viper.SetDefault("SENDBLUE_API_SECRET", "")
	viper.SetDefault("SENDBLUE_ENABLED", false)

	viper.SetDefault("CALENDAR_OAUTH_CLIENT_ID", "")
	viper.SetDefault("CALENDAR_OAUTH_CLIENT_SECRET", "")
	viper.SetDefault("CALENDAR_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("CALENDAR_API_BASE_URL", "https://www.googleapis.com/calendar/v3")

	// Defaults para a varredura de retenção de dados
	viper.SetDefault("RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RETENTION_MAX_PER_RUN", 500)  // Limite de registros por execução
	viper.SetDefault("RETENTION_ENABLED", false)
	viper.SetDefault("RETENTION_DEFAULT_DAYS", 1095) // 3 anos sem interação
	viper.SetDefault("RETENTION_ACTIVITY_DAYS", 730) // 2 anos
	viper.SetDefault("RETENTION_MESSAGE_DAYS", 365)  // 1 ano

	// Defaults para a checagem de solicitações de dados
	viper.SetDefault("DSR_OVERDUE_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("DSR_DUE_DAYS", 15)              // Prazo de atendimento em dias
	viper.SetDefault("DSR_MAX_PER_RUN", 500)          // Limite de registros por execução
	viper.SetDefault("DSR_OVERDUE_ENABLED", false)

	// Defaults para a sincronização de calendários
	viper.SetDefault("CALENDAR_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("CALENDAR_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
