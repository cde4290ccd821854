package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"us-central-1" description:"AWS region"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket          string `flag:"awsbucket" env:"AWS_BUCKET" default:"" description:"S3 bucket to upload artifacts to. Leave empty to skip the upload"`
	BaseURL            string `flag:"baseurl" env:"BASE_URL" default:"https://mosesmugisha.com" description:"Public base URL for the portfolio"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"info" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxVerifyWorkers   int    `flag:"mvw" env:"MAX_VERIFY_WORKERS" default:"20" description:"Maximum number of concurrent image checks. Zero skips verification"`
	OutputDir          string `flag:"out" env:"OUTPUT_DIR" default:"./dist" description:"Directory the publish artifacts are written to"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
