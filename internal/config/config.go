package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

// StorageCfg selects where project records live and where site files are written.
type StorageCfg struct {
	Backend  string // file | memory | redis | postgres
	Root     string
	SitesDir string
	DBFile   string
	RedisKey string
}

type UploadCfg struct {
	MaxFileSize int64
	MaxFiles    int
}

// PublicCfg overrides the scheme://host used to build project URLs.
// When BaseURL is empty the request's scheme and host are used.
type PublicCfg struct {
	BaseURL string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type MQCfg struct {
	URL      string
	Exchange string
	Queue    string
}

type S3Cfg struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	Prefix       string
	UsePathStyle bool
	SSE          string
}

type CaptchaCfg struct {
	Secret     string
	VerifyURL  string
	TimeoutSec int
}

type GitHubCfg struct {
	BaseURL    string
	Token      string
	TimeoutSec int
}

type Config struct {
	App      AppCfg
	Log      LogCfg
	Storage  StorageCfg
	Upload   UploadCfg
	Public   PublicCfg
	Database DBCfg
	Redis    RedisCfg
	RabbitMQ MQCfg
	S3       S3Cfg
	Captcha  CaptchaCfg
	GitHub   GitHubCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_APP_PORT -> app.port

	// Defaults apply whether or not a config file exists
	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// Expand ${ENV} references in the file once before parsing it
		raw, err := os.ReadFile(base.ConfigFileUsed())
		if err != nil {
			return nil, err
		}
		return LoadFromYAML([]byte(os.ExpandEnv(string(raw))))
	}

	// No config file: env + defaults only
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromYAML parses an already-expanded YAML document, layering env and defaults on top.
func LoadFromYAML(raw []byte) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBuffer(raw)); err != nil {
		return nil, err
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	setDefaults(v)

	cfg := new(Config)
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "codewave-webhost")
	v.SetDefault("app.env", "release")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 3000)
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.root", "./storage")
	v.SetDefault("storage.sitesDir", "sites")
	v.SetDefault("storage.dbFile", "projects.json")
	v.SetDefault("storage.redisKey", "codewave:projects")
	v.SetDefault("upload.maxFileSize", 10<<20)
	v.SetDefault("upload.maxFiles", 20)
	v.SetDefault("database.maxOpen", 10)
	v.SetDefault("database.maxIdle", 2)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("rabbitmq.exchange", "")
	v.SetDefault("rabbitmq.queue", "codewave.projects")
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.prefix", "sites")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("captcha.verifyURL", "https://www.google.com/recaptcha/api/siteverify")
	v.SetDefault("captcha.timeoutSec", 10)
	v.SetDefault("github.baseURL", "https://api.github.com")
	v.SetDefault("github.timeoutSec", 15)
}
