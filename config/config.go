package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"automation-hub" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"dev-secret" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"900" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"604800" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"noreply@automation-hub.local" env:"SMTP_FROM"`
		// домен для алиасов отделов (it@<домен>, hr@<домен>)
		DeptAliasDomain string `default:"" env:"SMTP_DEPT_ALIAS_DOMAIN"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		ResumeBucket    string `default:"resumes" env:"S3_RESUME_BUCKET"`
	}
	YandexGPT struct {
		APIKey    string `default:"" env:"YAGPT_API_KEY"`
		CatalogID string `default:"" env:"YAGPT_CATALOG_ID"`
	}
	Screener struct {
		ProviderName    string `default:"yagpt" env:"SCREENER_PROVIDER_NAME"`
		Retries         int    `default:"2" env:"SCREENER_RETRIES"`
		TimeoutInSec    int    `default:"20" env:"SCREENER_TIMEOUT_IN_SEC"`
		BatchLimit      int    `default:"10" env:"SCREENER_BATCH_LIMIT"`
		ResultsLimit    int    `default:"200" env:"SCREENER_RESULTS_LIMIT"`
		MaxResumeSizeKb int    `default:"30" env:"SCREENER_MAX_RESUME_SIZE_KB"`
		WorkerPeriodSec int    `default:"5" env:"SCREENER_WORKER_PERIOD_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
