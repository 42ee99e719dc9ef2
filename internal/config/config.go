package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var conf *viper.Viper

func init() {
	conf = viper.New()

	// defaults used when the school row lookup yields nothing
	conf.SetDefault("school_name", "Complexe Scolaire La Référence")
	conf.SetDefault("school_address", "Abidjan, Cocody Angré")
	conf.SetDefault("school_phone", "+225 07 00 00 00 00")
	conf.SetDefault("school_email", "contact@lareference.ci")
	conf.SetDefault("national_heading", "RÉPUBLIQUE DE CÔTE D'IVOIRE")
	conf.SetDefault("motto", "Union - Discipline - Travail")
	conf.SetDefault("logo_path", "")
	conf.SetDefault("logo_url", "")

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	conf.SetEnvPrefix("ECOLEDOC")
	conf.AutomaticEnv()
}

// Config carries the environment-driven settings consumed by document
// generation: the optional logo sources and the header fallback identity.
type Config struct {
	LogoPath string
	LogoURL  string

	NationalHeading string
	Motto           string

	SchoolName    string
	SchoolAddress string
	SchoolPhone   string
	SchoolEmail   string
}

// Load reads the configuration fresh from the environment. Values are not
// cached between calls.
func Load() *Config {
	return &Config{
		LogoPath:        conf.GetString("logo_path"),
		LogoURL:         conf.GetString("logo_url"),
		NationalHeading: conf.GetString("national_heading"),
		Motto:           conf.GetString("motto"),
		SchoolName:      conf.GetString("school_name"),
		SchoolAddress:   conf.GetString("school_address"),
		SchoolPhone:     conf.GetString("school_phone"),
		SchoolEmail:     conf.GetString("school_email"),
	}
}
