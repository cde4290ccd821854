package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
)

func uploadArtifacts(artifacts map[string][]byte) error {
	var (
		err error
	)

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("error loading AWS config: %w", err)
	}

	s3Client, err := s3.NewClient(awsConfig)

	if err != nil {
		return fmt.Errorf("error creating S3 client: %w", err)
	}

	for name, body := range artifacts {
		if _, err = s3Client.Put(config.AwsBucket, name, bytes.NewReader(body)); err != nil {
			return fmt.Errorf("error uploading %s: %w", name, err)
		}

		slog.Info("artifact uploaded", slog.String("bucket", config.AwsBucket), slog.String("key", name))
	}

	return nil
}
