package configs

import "github.com/spf13/viper"

type Conf struct {
	Env              string  `mapstructure:"APP_ENV"`
	DBDriver         string  `mapstructure:"DB_DRIVER"`
	DBHost           string  `mapstructure:"DB_HOST"`
	DBPort           string  `mapstructure:"DB_PORT"`
	DBUser           string  `mapstructure:"DB_USER"`
	DBPassword       string  `mapstructure:"DB_PASSWORD"`
	DBName           string  `mapstructure:"DB_NAME"`
	RedisHost        string  `mapstructure:"REDIS_HOST"`
	RedisPort        string  `mapstructure:"REDIS_PORT"`
	WebServerPort    string  `mapstructure:"WEB_SERVER_PORT"`
	AMQPort          string  `mapstructure:"AMQ_PORT"`
	MetricsPort      string  `mapstructure:"METRICS_PORT"`
	OtelCollector    string  `mapstructure:"OTEL_COLLECTOR_ADDR"`
	PhotonBaseURL    string  `mapstructure:"PHOTON_BASE_URL"`
	DriverAPIBaseURL string  `mapstructure:"DRIVER_API_BASE_URL"`
	IdentityBaseURL  string  `mapstructure:"IDENTITY_BASE_URL"`
	IdentityAPIKey   string  `mapstructure:"IDENTITY_API_KEY"`
	CitySpeedKmh     float64 `mapstructure:"CITY_SPEED_KMH"`
	FarePerMinute    float64 `mapstructure:"FARE_PER_MINUTE"`
}

func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("METRICS_PORT", "9090")
	viper.SetDefault("PHOTON_BASE_URL", "https://photon.komoot.io")
	viper.SetDefault("CITY_SPEED_KMH", 30.0)
	viper.SetDefault("FARE_PER_MINUTE", 0.5)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
