package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contém toda a configuração da aplicação
type Config struct {
	App        AppConfig
	Log        LogConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Storage    StorageConfig
	JWT        JWTConfig
	Auth       AuthConfig
	Fiscal     FiscalConfig
	CORS       CORSConfig
	Migrations MigrationsConfig

	v *viper.Viper
}

// AppConfig contém os dados gerais do serviço
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig contém as opções de log
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// DatabaseConfig contém a conexão com o PostgreSQL
type DatabaseConfig struct {
	URL            string
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConnections int32
	MinConnections int32
	MaxLifetime    time.Duration
}

// RedisConfig contém a conexão com o Redis usado pela numeração
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// StorageConfig define onde os certificados A1 são guardados
type StorageConfig struct {
	Driver string // database, s3
	S3     S3Config
}

// S3Config contém o acesso ao bucket S3 (ou compatível)
type S3Config struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

// JWTConfig contém a assinatura dos tokens
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// AuthConfig contém o operador autorizado a usar a API
type AuthConfig struct {
	OperatorEmail        string
	OperatorPasswordHash string
	CompanyID            string
}

// FiscalConfig contém as opções de numeração e de origem das configurações fiscais
type FiscalConfig struct {
	ParameterSource string // database, file
	NumberPrefix    string
	SequenceCode    string
}

// CORSConfig contém as origens permitidas
type CORSConfig struct {
	AllowOrigins []string
}

// MigrationsConfig contém o diretório dos arquivos de migração
type MigrationsConfig struct {
	Path string
}

// Drivers de armazenamento de certificados
const (
	StorageDatabase = "database"
	StorageS3       = "s3"
)

// Origens das configurações fiscais
const (
	ParametersDatabase = "database"
	ParametersFile     = "file"
)

// Load lê a configuração de config.yaml (opcional) e das variáveis de ambiente.
// As variáveis seguem o nome da chave em maiúsculas, com "_" no lugar de "." (ex.: APP_PORT).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("falha ao ler arquivo de configuração: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return FromViper(v)
}

// FromViper monta a configuração a partir de uma instância do viper
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Database: DatabaseConfig{
			URL:            v.GetString("database.url"),
			Host:           v.GetString("db.host"),
			Port:           v.GetInt("db.port"),
			User:           v.GetString("db.user"),
			Password:       v.GetString("db.password"),
			Name:           v.GetString("db.name"),
			SSLMode:        v.GetString("db.sslmode"),
			MaxConnections: v.GetInt32("db.max_connections"),
			MinConnections: v.GetInt32("db.min_connections"),
			MaxLifetime:    v.GetDuration("db.max_lifetime"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("storage.driver")),
			S3: S3Config{
				Endpoint:     v.GetString("s3.endpoint"),
				Region:       v.GetString("s3.region"),
				Bucket:       v.GetString("s3.bucket"),
				AccessKey:    v.GetString("s3.access_key"),
				SecretKey:    v.GetString("s3.secret_key"),
				UsePathStyle: v.GetBool("s3.use_path_style"),
			},
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret_key"),
			Expiration: time.Duration(v.GetInt("jwt.expiration_hours")) * time.Hour,
			Issuer:     v.GetString("jwt.issuer"),
		},
		Auth: AuthConfig{
			OperatorEmail:        v.GetString("auth.operator_email"),
			OperatorPasswordHash: v.GetString("auth.operator_password_hash"),
			CompanyID:            v.GetString("auth.company_id"),
		},
		Fiscal: FiscalConfig{
			ParameterSource: strings.ToLower(v.GetString("fiscal.parameter_source")),
			NumberPrefix:    v.GetString("fiscal.number_prefix"),
			SequenceCode:    v.GetString("fiscal.sequence_code"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(v.GetString("cors.allow_origins")),
		},
		Migrations: MigrationsConfig{
			Path: v.GetString("migrations.path"),
		},
		v: v,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDatabase:
	case StorageS3:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET é obrigatório quando STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("driver de armazenamento inválido: %s", c.Storage.Driver)
	}

	switch c.Fiscal.ParameterSource {
	case ParametersDatabase, ParametersFile:
	default:
		return fmt.Errorf("origem de configurações fiscais inválida: %s", c.Fiscal.ParameterSource)
	}

	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS deve ser maior que zero")
	}
	return nil
}

// ParameterStore devolve o armazenamento de configurações fiscais baseado no viper
func (c *Config) ParameterStore() *ViperParameterStore {
	return NewViperParameterStore(c.v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "nota-fiscal")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "nota_fiscal")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_connections", 10)
	v.SetDefault("db.min_connections", 1)
	v.SetDefault("db.max_lifetime", time.Hour)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.driver", StorageDatabase)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.use_path_style", true)

	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("jwt.issuer", "nota-fiscal-api")

	v.SetDefault("auth.company_id", "default")

	v.SetDefault("fiscal.parameter_source", ParametersDatabase)
	v.SetDefault("fiscal.number_prefix", "NF")
	v.SetDefault("fiscal.sequence_code", "fiscal_document")

	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("migrations.path", "migrations")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
