// Package conf reads the environment-driven configuration. Missing
// optional credentials degrade features (email, admin API) instead of
// failing startup.
package conf

import (
	"fmt"
	"os"
	"strconv"

	"github.com/digiserv/backend/auth"
	"github.com/digiserv/backend/email"
	"github.com/digiserv/backend/relay"
)

// GetListenAddrFromEnv returns the address the server binds, derived
// from PORT (default 5000).
func GetListenAddrFromEnv() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return ":" + port
}

// GetSubmissionsFileFromEnv returns the legacy flat-file path.
func GetSubmissionsFileFromEnv() string {
	path := os.Getenv("SUBMISSIONS_FILE")
	if path == "" {
		path = "data/submissions.json"
	}
	return path
}

// GetSMTPConfigFromEnv reads the email transport settings. The second
// return value is false when credentials are absent or still the
// placeholder from the sample env file; email is then disabled.
func GetSMTPConfigFromEnv() (email.Config, bool) {
	user := os.Getenv("EMAIL_USER")
	if user == "" || user == "your-email@gmail.com" {
		return email.Config{}, false
	}

	host := os.Getenv("EMAIL_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p := os.Getenv("EMAIL_PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			panic(fmt.Sprintf("invalid EMAIL_PORT %q: %v", p, err))
		}
		port = parsed
	}

	return email.Config{
		Host:     host,
		Port:     port,
		Username: user,
		Password: os.Getenv("EMAIL_PASS"),
		To:       os.Getenv("EMAIL_TO"),
	}, true
}

// GetRelayConfigFromEnv reads the hosted email-relay credentials. Use
// Config.Configured to find out whether the relay sink is usable.
func GetRelayConfigFromEnv() relay.Config {
	return relay.Config{
		ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		BaseURL:    os.Getenv("EMAILJS_BASE_URL"),
	}
}

// GetPgConnStrFromEnv builds the Postgres connection string for the
// hosted submissions table. Returns "" when POSTGRES_HOST is unset;
// the admin API is then disabled.
func GetPgConnStrFromEnv() string {
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return ""
	}
	user := os.Getenv("POSTGRES_USER")
	pw := os.Getenv("POSTGRES_PW")
	port := os.Getenv("POSTGRES_PORT")
	db := os.Getenv("POSTGRES_DB")
	ssl := os.Getenv("POSTGRES_SSLMODE")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pw, db, ssl)
}

// GetAdminCredsFromEnv reads the single admin account. Use
// AdminCreds.Configured to find out whether logins are possible.
func GetAdminCredsFromEnv() auth.AdminCreds {
	return auth.AdminCreds{
		Email:        os.Getenv("ADMIN_EMAIL"),
		PasswordHash: []byte(os.Getenv("ADMIN_PASSWORD_HASH")),
	}
}
