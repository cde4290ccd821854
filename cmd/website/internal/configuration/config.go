package configuration

import "github.com/adampresley/configinator"

type Config struct {
	BaseURL          string `flag:"baseurl" env:"BASE_URL" default:"https://mosesmugisha.com" description:"Public base URL for the portfolio"`
	ContactFromEmail string `flag:"contactfromemail" env:"CONTACT_FROM_EMAIL" default:"noreply@mosesmugisha.com" description:"From address for inquiry notifications"`
	ContactFromName  string `flag:"contactfromname" env:"CONTACT_FROM_NAME" default:"Portfolio Contact Form" description:"From name for inquiry notifications"`
	ContactToEmail   string `flag:"contacttoemail" env:"CONTACT_TO_EMAIL" default:"hello@mosesmugisha.com" description:"Address inquiry notifications are sent to"`
	ContactToName    string `flag:"contacttoname" env:"CONTACT_TO_NAME" default:"Moses Mugisha" description:"Name inquiry notifications are sent to"`
	DSN              string `flag:"dsn" env:"DSN" default:"file:./data/portfolio.db" description:"Data source name"`
	EmailApiKey      string `flag:"emailapikey" env:"EMAIL_API_KEY" default:"" description:"API key for sending emails"`
	Host             string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	LogLevel         string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
