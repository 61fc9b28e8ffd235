package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server      ServerConfig
	Store       StoreConfig
	Email       EmailConfig
	SecretsFile string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreConfig struct {
	DataDir string
	LogFile string
}

type EmailConfig struct {
	MailerSendKey string
	DevMode       bool // print emails to logs instead of sending
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8501"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Store: StoreConfig{
			DataDir: getEnv("DATA_DIR", "data"),
			LogFile: getEnv("BOOKINGS_FILE", "bookings.csv"),
		},
		Email: EmailConfig{
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			DevMode:       getBool("EMAIL_DEV_MODE", false),
		},
		SecretsFile: getEnv("SECRETS_FILE", ".streamlit/secrets.toml"),
	}
}

// Secrets is the sectioned secrets document, loaded once at startup and
// treated as read-only afterwards.
type Secrets struct {
	Payments PaymentsConfig `toml:"payments"`
	SMTP     SMTPConfig     `toml:"smtp"`
	Social   SocialConfig   `toml:"social"`
}

type PaymentsConfig struct {
	UPIID               string `toml:"upi_id"`
	UPIPayeeName        string `toml:"upi_payee_name"`
	AmountINR           int    `toml:"amount_inr"`
	StripeCheckoutURL   string `toml:"stripe_checkout_url"`
	RazorpayCheckoutURL string `toml:"razorpay_checkout_url"`
	PayPalLink          string `toml:"paypal_link"`
}

type SMTPConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	User string `toml:"user"`
	Pass string `toml:"pass"`
	From string `toml:"from"`
}

type SocialConfig struct {
	InstagramHandle string `toml:"instagram_handle"`
	WhatsAppNumber  string `toml:"whatsapp_number"`
}

// Complete reports whether the relay can actually be used. All four of
// host, user, pass and from must be present.
func (s SMTPConfig) Complete() bool {
	return strings.TrimSpace(s.Host) != "" &&
		strings.TrimSpace(s.User) != "" &&
		strings.TrimSpace(s.Pass) != "" &&
		strings.TrimSpace(s.From) != ""
}

// LoadSecrets reads the TOML secrets document at path. A missing file is
// not an error: every section degrades to its documented defaults so the
// service still serves submissions, just without email.
func LoadSecrets(path string) (*Secrets, error) {
	s := &Secrets{}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, s); err != nil {
			return nil, err
		}
	}

	s.applyDefaults()
	return s, nil
}

func (s *Secrets) applyDefaults() {
	if s.Payments.UPIID == "" {
		s.Payments.UPIID = "your-upi@bank"
	}
	if s.Payments.UPIPayeeName == "" {
		s.Payments.UPIPayeeName = "Abhijit"
	}
	if s.Payments.AmountINR == 0 {
		s.Payments.AmountINR = 500
	}
	if s.SMTP.Port == 0 {
		s.SMTP.Port = 587
	}
	if s.SMTP.From == "" {
		s.SMTP.From = s.SMTP.User
	}
	if s.Social.InstagramHandle == "" {
		s.Social.InstagramHandle = "ask_abhijit"
	}
	if s.Social.WhatsAppNumber == "" {
		s.Social.WhatsAppNumber = "919876543210"
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
