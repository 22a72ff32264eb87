package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8080"`
	CORSOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`

	// Gemini ayarları. Anahtar boşsa AI uçları sabit metin döner.
	GeminiAPIKey           string `envconfig:"GEMINI_API_KEY"`
	GeminiDescriptionModel string `envconfig:"GEMINI_DESCRIPTION_MODEL" default:"gemini-3-flash-preview"`
	GeminiInsightModel     string `envconfig:"GEMINI_INSIGHT_MODEL" default:"gemini-3-pro-preview"`

	// Açılışta demo verisi yüklensin mi? Kalıcı depolama olmadığı için
	// kapalıyken sistem tamamen boş başlar.
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "ortam değişkenleri okunamadı")
	}

	if cfg.GeminiAPIKey == "" {
		log.Warn("[WARN] GEMINI_API_KEY tanımlanmamış, AI uçları sabit metin dönecek.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Warn("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return &cfg, nil
}
