package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// BackendBaseURL retourne l'URL de base de l'API BookBrew (persistance et
// logique métier). Toute la couche backend passe par cette URL fixe.
func BackendBaseURL() string {
	if url := os.Getenv("BACKEND_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:3333/api"
}

// Port retourne le port d'écoute du serveur BFF.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// JWTSecret retourne le secret de signature des tokens de session.
func JWTSecret() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	return "super_secret"
}

// AllowedOrigins retourne l'origine autorisée pour le front (CORS).
func AllowedOrigins() string {
	if origin := os.Getenv("FRONT_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:5173"
}
