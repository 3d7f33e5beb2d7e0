package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config regroupe toute la configuration du serveur.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Chemin de la base sqlite du "local store" (rapports et notes de suivi)
	LocalStorePath string
}

// LoadConfig charge le .env puis lit les variables d'environnement.
func LoadConfig() (*Config, error) {
	// .env optionnel en production
	_ = godotenv.Load()

	cfg := &Config{
		Port:                get("PORT", "8080"),
		DBHost:              get("DB_HOST", "localhost"),
		DBPort:              get("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              get("DB_NAME", "samadhaan"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		LocalStorePath:      get("LOCAL_STORE_PATH", "data/localstore.db"),
	}

	if cfg.DBUser == "" || cfg.DBPassword == "" {
		return nil, fmt.Errorf("missing env DB_USER or DB_PASSWORD")
	}

	return cfg, nil
}

// get retourne la variable d'environnement k ou def si absente.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
