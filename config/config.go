package config

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Settings is the runtime configuration shared by every binary in the repo.
// Each service reads only the fields it needs.
type Settings struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	DatabaseURL     string        `mapstructure:"database_url"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	KafkaBroker     string        `mapstructure:"kafka_broker"`
	KafkaTopic      string        `mapstructure:"kafka_topic"`
	KafkaGroupID    string        `mapstructure:"kafka_group_id"`
	PublicBaseURL   string        `mapstructure:"public_base_url"`
	UploadDir       string        `mapstructure:"upload_dir"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	RateLimitRPS    float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
	LogLevel        string        `mapstructure:"log_level"`
	OrderSvcURL     string        `mapstructure:"order_svc_url"`
	ReportSvcURL    string        `mapstructure:"report_svc_url"`
	FrontendDir     string        `mapstructure:"frontend_dir"`
}

func SetDefaults(v *viper.Viper, httpAddr string) {
	v.SetDefault("http_addr", httpAddr)
	v.SetDefault("kafka_topic", "restaurant-events")
	v.SetDefault("kafka_group_id", "agg-svc-consumer")
	v.SetDefault("public_base_url", "http://localhost:8080")
	v.SetDefault("upload_dir", "./uploads")
	v.SetDefault("refresh_interval", 3*time.Second)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_limit_burst", 10)
	v.SetDefault("log_level", "info")
	v.SetDefault("order_svc_url", "http://localhost:8081")
	v.SetDefault("report_svc_url", "http://localhost:8083")
	v.SetDefault("frontend_dir", "./frontend")

	// Keys without a default are invisible to Unmarshal unless bound.
	for _, key := range []string{"database_url", "redis_addr", "kafka_broker", "db_host", "db_port", "db_name", "db_user", "db_password"} {
		_ = v.BindEnv(key)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file and returns the merged settings.
func Load(v *viper.Viper, file string) (Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}

	if s.DatabaseURL == "" && v.GetString("db_host") != "" {
		s.DatabaseURL = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			v.GetString("db_host"), v.GetString("db_port"), v.GetString("db_user"),
			v.GetString("db_password"), v.GetString("db_name"))
	}
	return s, nil
}

func NewLogger(service, level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger.WithField("service", service)
}

func MustInitPostgres(dsn string, log *logrus.Entry) *sql.DB {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(addr string, log *logrus.Entry) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

// NewKafkaWriter hashes message keys to partitions so events sharing a key stay
// ordered, and flushes small batches quickly.
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
