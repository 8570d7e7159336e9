package config

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"
	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	Env           string             `mapstructure:"env"`
	Port          int                `mapstructure:"port"`
	PublicBaseURL string             `mapstructure:"public_base_url"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Redis         RedisConfig        `mapstructure:"redis"`
	Kafka         KafkaConfig        `mapstructure:"kafka"`
	Auth          AuthConfig         `mapstructure:"auth"`
	Razorpay      RazorpayConfig     `mapstructure:"razorpay"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Ratings       RatingsConfig      `mapstructure:"ratings"`
	Reservations  ReservationsConfig `mapstructure:"reservations"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	CartTTL  time.Duration `mapstructure:"cart_ttl"`
}

type KafkaConfig struct {
	Broker     string `mapstructure:"broker"`
	OrderTopic string `mapstructure:"order_topic"`
	GroupID    string `mapstructure:"group_id"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type RazorpayConfig struct {
	KeyID     string        `mapstructure:"key_id"`
	KeySecret string        `mapstructure:"key_secret"`
	BaseURL   string        `mapstructure:"base_url"`
	Currency  string        `mapstructure:"currency"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type StorageConfig struct {
	UploadDir string `mapstructure:"upload_dir"`
	S3Bucket  string `mapstructure:"s3_bucket"`
	AWSRegion string `mapstructure:"aws_region"`
}

type RatingsConfig struct {
	AllowRepeat bool `mapstructure:"allow_repeat"`
}

type ReservationsConfig struct {
	BookingFee float64       `mapstructure:"booking_fee"`
	SlotWindow time.Duration `mapstructure:"slot_window"`
}

// envBindings maps config keys to the environment variables operators already use.
var envBindings = map[string][]string{
	"env":                      {"ENV", "APP_ENV"},
	"port":                     {"PORT"},
	"public_base_url":          {"PUBLIC_BASE_URL"},
	"database.url":             {"DATABASE_URL"},
	"database.host":            {"DB_HOST"},
	"database.port":            {"DB_PORT"},
	"database.name":            {"DB_NAME"},
	"database.user":            {"DB_USER"},
	"database.password":        {"DB_PASSWORD"},
	"redis.host":               {"REDIS_HOST"},
	"redis.port":               {"REDIS_PORT"},
	"redis.password":           {"REDIS_PASSWORD"},
	"kafka.broker":             {"KAFKA_BROKER"},
	"kafka.order_topic":        {"KAFKA_ORDER_TOPIC"},
	"kafka.group_id":           {"KAFKA_GROUP_ID"},
	"auth.jwt_secret":          {"JWT_SECRET"},
	"razorpay.key_id":          {"RAZORPAY_KEY_ID"},
	"razorpay.key_secret":      {"RAZORPAY_KEY_SECRET"},
	"razorpay.base_url":        {"RAZORPAY_BASE_URL"},
	"storage.upload_dir":       {"UPLOAD_DIR"},
	"storage.s3_bucket":        {"S3_BUCKET"},
	"storage.aws_region":       {"AWS_REGION"},
	"ratings.allow_repeat":     {"RATINGS_ALLOW_REPEAT"},
	"reservations.booking_fee": {"TABLE_BOOKING_FEE"},
	"reservations.slot_window": {"TABLE_SLOT_WINDOW"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("port", 5000)
	v.SetDefault("public_base_url", "http://localhost:3000")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "tiffinbox")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cart_ttl", 30*24*time.Hour)
	v.SetDefault("kafka.broker", "localhost:9092")
	v.SetDefault("kafka.order_topic", "marketplace-events")
	v.SetDefault("kafka.group_id", "agg-svc")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("razorpay.key_id", "")
	v.SetDefault("razorpay.key_secret", "")
	v.SetDefault("razorpay.base_url", "https://api.razorpay.com")
	v.SetDefault("razorpay.currency", "INR")
	v.SetDefault("razorpay.timeout", 15*time.Second)
	v.SetDefault("storage.upload_dir", "./uploads")
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.aws_region", "ap-south-1")
	v.SetDefault("ratings.allow_repeat", false)
	v.SetDefault("reservations.booking_fee", 100.0)
	v.SetDefault("reservations.slot_window", 2*time.Hour)
}

// Load reads an optional config file and overlays environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func OpenPostgres(cfg DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func MustInitPostgres(cfg DatabaseConfig) *sql.DB {
	db, err := OpenPostgres(cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.OrderTopic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Broker),
		Topic:                  cfg.OrderTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// NewS3Client returns nil when no bucket is configured.
func NewS3Client(ctx context.Context, cfg StorageConfig) (*s3.Client, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}
