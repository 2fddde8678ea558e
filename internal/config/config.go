package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// AppConfig represents the complete site configuration. It is built once at
// startup and passed explicitly; nothing reads the environment afterwards.
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Site    SiteConfig    `toml:"site"`
	Social  SocialConfig  `toml:"social"`
	Storage StorageConfig `toml:"storage"`
	Media   MediaConfig   `toml:"media"`
	Minio   MinioConfig   `toml:"minio"`
	Logger  LoggerConfig  `toml:"logger"`
	Jobs    JobsConfig    `toml:"jobs"`
}

type ServerConfig struct {
	Port          int    `toml:"port"`
	SecretKey     string `toml:"secret_key"`
	StaticDir     string `toml:"static_dir"`
	StaticVersion string `toml:"static_version"`
}

// SiteConfig contains the copy shown in the page chrome
type SiteConfig struct {
	Name         string `toml:"name"`
	Brand        string `toml:"brand"`
	ContactEmail string `toml:"contact_email"`
	ContactPhone string `toml:"contact_phone"`
	ContactNote  string `toml:"contact_note"`
	AboutText    string `toml:"about_text"`
	CatalogPDF   string `toml:"catalog_pdf"`
}

type SocialConfig struct {
	InstagramURL    string `toml:"instagram_url"`
	InstagramHandle string `toml:"instagram_handle"`
	FacebookURL     string `toml:"facebook_url"`
	FacebookHandle  string `toml:"facebook_handle"`
	TiktokURL       string `toml:"tiktok_url"`
	TiktokHandle    string `toml:"tiktok_handle"`
}

// StorageConfig selects the lead store. A non-empty DatabaseURL switches
// from SQLite to PostgreSQL.
type StorageConfig struct {
	DBPath      string `toml:"db_path"`
	DatabaseURL string `toml:"database_url"`
}

type MediaConfig struct {
	BaseURL      string   `toml:"base_url"`
	Files        []string `toml:"files"`
	HeroVideoURL string   `toml:"hero_video_url"`
}

// MinioConfig enables bucket listing for the video page when Endpoint is set
type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix"`
}

type LoggerConfig struct {
	Mode     string `toml:"mode"` // "development" or "production"
	Filename string `toml:"filename"`
}

type JobsConfig struct {
	QRRefreshInterval time.Duration `toml:"qr_refresh_interval"`
}

// Default returns the configuration used when nothing is overridden
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:      5000,
			SecretKey: "dev-change-me",
			StaticDir: "static",
		},
		Site: SiteConfig{
			Name:         "X-Estetik",
			Brand:        "X-Estetik",
			ContactEmail: "kontakt@x-estetik.pl",
			ContactPhone: "+48 000 000 000",
			ContactNote:  "Odpowiadamy zwykle w ciągu 24 godzin w dni robocze.",
			AboutText:    "Dostarczamy nowoczesne urządzenia do gabinetów medycyny estetycznej wraz ze szkoleniem i serwisem.",
			CatalogPDF:   "katalog.pdf",
		},
		Social: SocialConfig{
			InstagramURL:    "https://www.instagram.com/x_estetik/",
			InstagramHandle: "@x_estetik",
			FacebookURL:     "https://www.facebook.com/xestetik",
			FacebookHandle:  "X-Estetik",
		},
		Storage: StorageConfig{
			DBPath: "instance/app.db",
		},
		Minio: MinioConfig{
			Bucket: "media",
		},
		Logger: LoggerConfig{
			Mode: "development",
		},
		Jobs: JobsConfig{
			QRRefreshInterval: 24 * time.Hour,
		},
	}
}

// Load builds the configuration from defaults, then the optional TOML file,
// then environment variables. An empty variable counts as unset.
func Load(filename string) (*AppConfig, error) {
	cfg := Default()
	if filename == "" {
		filename = os.Getenv("CONFIG_FILE")
	}
	if filename != "" {
		if _, err := toml.DecodeFile(filename, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if cfg.Server.StaticVersion == "" {
		// Busts browser caches on every restart
		cfg.Server.StaticVersion = strconv.FormatInt(time.Now().Unix(), 10)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	str("SECRET_KEY", &c.Server.SecretKey)
	str("STATIC_DIR", &c.Server.StaticDir)
	str("STATIC_VERSION", &c.Server.StaticVersion)
	str("SITE_NAME", &c.Site.Name)
	str("BRAND", &c.Site.Brand)
	str("CONTACT_EMAIL", &c.Site.ContactEmail)
	str("CONTACT_PHONE", &c.Site.ContactPhone)
	str("CONTACT_NOTE", &c.Site.ContactNote)
	str("ABOUT_TEXT", &c.Site.AboutText)
	str("CATALOG_PDF", &c.Site.CatalogPDF)
	str("INSTAGRAM_URL", &c.Social.InstagramURL)
	str("INSTAGRAM_HANDLE", &c.Social.InstagramHandle)
	str("FACEBOOK_URL", &c.Social.FacebookURL)
	str("FACEBOOK_HANDLE", &c.Social.FacebookHandle)
	str("TIKTOK_URL", &c.Social.TiktokURL)
	str("TIKTOK_HANDLE", &c.Social.TiktokHandle)
	str("DB_PATH", &c.Storage.DBPath)
	str("DATABASE_URL", &c.Storage.DatabaseURL)
	str("MEDIA_BASE_URL", &c.Media.BaseURL)
	str("HERO_VIDEO_URL", &c.Media.HeroVideoURL)
	str("MINIO_ENDPOINT", &c.Minio.Endpoint)
	str("MINIO_ACCESS_KEY", &c.Minio.AccessKey)
	str("MINIO_SECRET_KEY", &c.Minio.SecretKey)
	str("MINIO_BUCKET", &c.Minio.Bucket)
	str("MINIO_PREFIX", &c.Minio.Prefix)
	str("LOG_MODE", &c.Logger.Mode)
	str("LOG_FILE", &c.Logger.Filename)

	if v := strings.TrimSpace(getenv("MEDIA_FILES")); v != "" {
		c.Media.Files = splitList(v)
	}
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := strings.TrimSpace(getenv("MINIO_USE_SSL")); v != "" {
		useSSL, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MINIO_USE_SSL %q: %w", v, err)
		}
		c.Minio.UseSSL = useSSL
	}
	if v := strings.TrimSpace(getenv("QR_REFRESH_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid QR_REFRESH_INTERVAL %q: %w", v, err)
		}
		c.Jobs.QRRefreshInterval = d
	}
	return nil
}

// Validate rejects values the server cannot start with
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Server.Port)
	}
	if c.Server.StaticDir == "" {
		return fmt.Errorf("static directory is required")
	}
	if c.Storage.DatabaseURL == "" && c.Storage.DBPath == "" {
		return fmt.Errorf("either DB_PATH or DATABASE_URL is required")
	}
	if c.Jobs.QRRefreshInterval < 0 {
		return fmt.Errorf("qr refresh interval must not be negative")
	}
	return nil
}

func (c *AppConfig) UsePostgres() bool {
	return c.Storage.DatabaseURL != ""
}

func (c *AppConfig) MinioEnabled() bool {
	return c.Minio.Endpoint != ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
