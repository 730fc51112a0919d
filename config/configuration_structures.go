package config

import "github.com/aws/aws-sdk-go-v2/service/s3"

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Client   *s3.Client
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

// JWTConfig : секреты и время жизни access и refresh токенов.
// Секреты у access и refresh разные: утёкший access-секрет не позволяет
// подделать долгоживущий refresh токен
type JWTConfig struct {
	AccessSecretKey  string `yaml:"access_secret_key"`
	RefreshSecretKey string `yaml:"refresh_secret_key"`
	AccessTokenTTL   string `yaml:"access_token_ttl"`
	RefreshTokenTTL  string `yaml:"refresh_token_ttl"`
}

// RetentionConfig : настройки фоновой чистки таблицы issued_tokens
type RetentionConfig struct {
	Retention string `yaml:"retention"`
	Interval  string `yaml:"interval"`
	Archive   bool   `yaml:"archive"`
}

// TTL : время жизни кэша в секундах
type TTL struct {
	Redis int `yaml:"redis"`
}
